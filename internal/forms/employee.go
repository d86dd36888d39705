package forms

import "strings"

type Employee struct {
	FirstName string `form:"first_name" validate:"required,max=255"`
	LastName  string `form:"last_name" validate:"required,max=255"`
	Email     string `form:"email" validate:"required,email,max=255"`
	UnitID    uint   `form:"unit" validate:"required"`
}

func (f *Employee) Validate() Errors {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)

	errs := check(f)
	if _, ok := errs["unit"]; ok {
		errs["unit"] = "Select a valid choice."
	}
	return errs
}
