package forms

import "strings"

type Company struct {
	Name    string `form:"name" validate:"required,max=255"`
	Address string `form:"address" validate:"required,max=1000"`
}

func (f *Company) Validate() Errors {
	f.Name = strings.TrimSpace(f.Name)
	f.Address = strings.TrimSpace(f.Address)
	return check(f)
}
