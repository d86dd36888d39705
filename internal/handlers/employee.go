package handlers

import (
	"net/http"
	"strconv"

	"org-registry/internal/database"
	"org-registry/internal/forms"
	"org-registry/internal/models"

	"github.com/gin-gonic/gin"
)

func ListEmployees(c *gin.Context) {
	var employees []models.Employee
	database.DB.Preload("Unit").Preload("Unit.Company").
		Order("last_name asc, first_name asc").Find(&employees)

	render(c, http.StatusOK, "employees_list.html", gin.H{
		"employees": employees,
	})
}

func ShowNewEmployee(c *gin.Context) {
	render(c, http.StatusOK, "employee_form.html", gin.H{
		"Title":  "New Employee",
		"form":   forms.Employee{},
		"errors": forms.Errors{},
		"units":  unitChoices(),
	})
}

func CreateEmployee(c *gin.Context) {
	var form forms.Employee
	_ = c.ShouldBind(&form)

	errs := form.Validate()
	checkUnitChoice(form.UnitID, errs)
	checkEmailUnique(form.Email, 0, errs)

	if len(errs) > 0 {
		render(c, http.StatusBadRequest, "employee_form.html", gin.H{
			"Title":  "New Employee",
			"form":   form,
			"errors": errs,
			"units":  unitChoices(),
		})
		return
	}

	employee := models.Employee{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		UnitID:    form.UnitID,
	}

	if err := database.DB.Create(&employee).Error; err != nil {
		render(c, http.StatusInternalServerError, "employee_form.html", gin.H{
			"Title":  "New Employee",
			"form":   form,
			"errors": forms.Errors{},
			"units":  unitChoices(),
			"error":  "Failed to save employee.",
		})
		return
	}

	auditLog(c, "employee", employee.ID, "create", "Created employee: "+employee.FullName())

	c.Redirect(http.StatusFound, "/employees")
}

func ShowEditEmployee(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid employee ID")
		return
	}

	var employee models.Employee
	if err := database.DB.First(&employee, id).Error; err != nil {
		c.String(http.StatusNotFound, "Employee not found")
		return
	}

	render(c, http.StatusOK, "employee_form.html", gin.H{
		"Title": "Edit Employee",
		"form": forms.Employee{
			FirstName: employee.FirstName,
			LastName:  employee.LastName,
			Email:     employee.Email,
			UnitID:    employee.UnitID,
		},
		"errors": forms.Errors{},
		"units":  unitChoices(),
	})
}

func UpdateEmployee(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid employee ID")
		return
	}

	var employee models.Employee
	if err := database.DB.First(&employee, id).Error; err != nil {
		c.String(http.StatusNotFound, "Employee not found")
		return
	}

	var form forms.Employee
	_ = c.ShouldBind(&form)

	errs := form.Validate()
	checkUnitChoice(form.UnitID, errs)
	checkEmailUnique(form.Email, employee.ID, errs)

	if len(errs) > 0 {
		render(c, http.StatusBadRequest, "employee_form.html", gin.H{
			"Title":  "Edit Employee",
			"form":   form,
			"errors": errs,
			"units":  unitChoices(),
		})
		return
	}

	employee.FirstName = form.FirstName
	employee.LastName = form.LastName
	employee.Email = form.Email
	employee.UnitID = form.UnitID

	if err := database.DB.Save(&employee).Error; err != nil {
		render(c, http.StatusInternalServerError, "employee_form.html", gin.H{
			"Title":  "Edit Employee",
			"form":   form,
			"errors": forms.Errors{},
			"units":  unitChoices(),
			"error":  "Failed to save employee.",
		})
		return
	}

	auditLog(c, "employee", employee.ID, "update", "Updated employee: "+employee.FullName())

	c.Redirect(http.StatusFound, "/employees")
}

// unit choices for the employee form select, labelled "Unit (Company)"
func unitChoices() []models.Unit {
	var units []models.Unit
	database.DB.Preload("Company").Order("name asc").Find(&units)
	return units
}

func checkUnitChoice(id uint, errs forms.Errors) {
	if _, ok := errs["unit"]; ok || id == 0 {
		return
	}
	var count int64
	database.DB.Model(&models.Unit{}).Where("id = ?", id).Count(&count)
	if count == 0 {
		errs["unit"] = "Select a valid choice."
	}
}

// --- EMAIL UNIQUENESS (excluding the row being edited) ---
func checkEmailUnique(email string, excludeID uint, errs forms.Errors) {
	if _, ok := errs["email"]; ok {
		return
	}
	var count int64
	database.DB.Model(&models.Employee{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, excludeID).
		Count(&count)

	if count > 0 {
		errs["email"] = "Employee with this Email already exists."
	}
}
