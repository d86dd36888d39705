package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyFormValid(t *testing.T) {
	f := Company{Name: "Test Company", Address: "123 Test St"}
	errs := f.Validate()
	assert.Empty(t, errs)
}

func TestCompanyFormRequiredFields(t *testing.T) {
	f := Company{}
	errs := f.Validate()
	assert.Equal(t, "This field is required.", errs["name"])
	assert.Equal(t, "This field is required.", errs["address"])
}

func TestCompanyFormWhitespaceOnlyIsRequired(t *testing.T) {
	f := Company{Name: "   ", Address: "\t\n"}
	errs := f.Validate()
	assert.Equal(t, "This field is required.", errs["name"])
	assert.Equal(t, "This field is required.", errs["address"])
}

func TestCompanyFormTrimsInput(t *testing.T) {
	f := Company{Name: "  Test Company  ", Address: " 123 Test St "}
	errs := f.Validate()
	assert.Empty(t, errs)
	assert.Equal(t, "Test Company", f.Name)
	assert.Equal(t, "123 Test St", f.Address)
}

func TestCompanyFormMaxLength(t *testing.T) {
	f := Company{Name: strings.Repeat("A", 255), Address: "123 Test St"}
	assert.Empty(t, f.Validate())

	f = Company{Name: strings.Repeat("A", 256), Address: "123 Test St"}
	errs := f.Validate()
	assert.Equal(t, "Ensure this value has at most 255 characters.", errs["name"])

	f = Company{Name: "Test Company", Address: strings.Repeat("A", 1001)}
	errs = f.Validate()
	assert.Equal(t, "Ensure this value has at most 1000 characters.", errs["address"])
}

// Length limits count runes, not bytes: a 255-rune Arabic name is several
// hundred bytes and must still pass.
func TestCompanyFormLengthCountsRunes(t *testing.T) {
	f := Company{Name: strings.Repeat("ش", 255), Address: strings.Repeat("ع", 1000)}
	assert.Empty(t, f.Validate())
}

func TestCompanyFormUnicodeNames(t *testing.T) {
	names := []string{
		"شركة الاختبار",
		"测试公司",
		"テスト株式会社",
		"Test 测试 テスト شركة 123",
		"Comp@ny & Søns #1!",
		"∞",
		"-∞",
	}
	for _, name := range names {
		f := Company{Name: name, Address: "123 Test St"}
		errs := f.Validate()
		assert.Empty(t, errs, "name %q should be accepted", name)
		assert.Equal(t, name, f.Name)
	}
}

func TestUnitFormValid(t *testing.T) {
	f := Unit{Name: "HR", CompanyID: 1}
	assert.Empty(t, f.Validate())
}

func TestUnitFormMissingCompany(t *testing.T) {
	f := Unit{Name: "HR"}
	errs := f.Validate()
	assert.Equal(t, "Select a valid choice.", errs["company"])
}

func TestUnitFormRequiredName(t *testing.T) {
	f := Unit{CompanyID: 1}
	errs := f.Validate()
	assert.Equal(t, "This field is required.", errs["name"])
}

func TestUnitFormUnicodeNames(t *testing.T) {
	names := []string{"部门", "قسم الموارد البشرية", "開発部", "Unit ∞", "R&D 研发 قسم"}
	for _, name := range names {
		f := Unit{Name: name, CompanyID: 1}
		assert.Empty(t, f.Validate(), "name %q should be accepted", name)
	}
}

func TestEmployeeFormValid(t *testing.T) {
	f := Employee{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		UnitID:    1,
	}
	assert.Empty(t, f.Validate())
}

func TestEmployeeFormEmailFormat(t *testing.T) {
	invalid := []string{"not-an-email", "invalid-email", "missing@tld", "@example.com", "spaces in@example.com"}
	for _, email := range invalid {
		f := Employee{FirstName: "John", LastName: "Doe", Email: email, UnitID: 1}
		errs := f.Validate()
		assert.Equal(t, "Enter a valid email address.", errs["email"], "email %q should be rejected", email)
	}

	f := Employee{FirstName: "John", LastName: "Doe", Email: "jane+tag@example.co.uk", UnitID: 1}
	assert.Empty(t, f.Validate())
}

func TestEmployeeFormRequiredFields(t *testing.T) {
	f := Employee{}
	errs := f.Validate()
	assert.Equal(t, "This field is required.", errs["first_name"])
	assert.Equal(t, "This field is required.", errs["last_name"])
	assert.Equal(t, "This field is required.", errs["email"])
	assert.Equal(t, "Select a valid choice.", errs["unit"])
}

func TestEmployeeFormUnicodeNames(t *testing.T) {
	cases := []struct{ first, last string }{
		{"山田", "太郎"},
		{"محمد", "العربي"},
		{"伟", "张"},
		{"José", "测试123"},
		{"O'Brien-Smith", "von Müller"},
	}
	for _, tc := range cases {
		f := Employee{FirstName: tc.first, LastName: tc.last, Email: "test@example.com", UnitID: 1}
		assert.Empty(t, f.Validate(), "%q %q should be accepted", tc.first, tc.last)
	}
}

func TestEmployeeFormNameMaxLength(t *testing.T) {
	f := Employee{
		FirstName: strings.Repeat("木", 255),
		LastName:  strings.Repeat("A", 256),
		Email:     "long.name@example.com",
		UnitID:    1,
	}
	errs := f.Validate()
	assert.NotContains(t, errs, "first_name")
	assert.Equal(t, "Ensure this value has at most 255 characters.", errs["last_name"])
}
