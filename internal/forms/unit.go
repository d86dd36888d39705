package forms

import "strings"

type Unit struct {
	Name      string `form:"name" validate:"required,max=255"`
	CompanyID uint   `form:"company" validate:"required"`
}

func (f *Unit) Validate() Errors {
	f.Name = strings.TrimSpace(f.Name)

	errs := check(f)
	// an unparseable or missing select value binds to zero
	if _, ok := errs["company"]; ok {
		errs["company"] = "Select a valid choice."
	}
	return errs
}
