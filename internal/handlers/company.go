package handlers

import (
	"net/http"
	"strconv"

	"org-registry/internal/database"
	"org-registry/internal/forms"
	"org-registry/internal/models"

	"github.com/gin-gonic/gin"
)

func ListCompanies(c *gin.Context) {
	var companies []models.Company
	database.DB.Order("name asc").Find(&companies)

	render(c, http.StatusOK, "companies_list.html", gin.H{
		"companies": companies,
	})
}

func ShowNewCompany(c *gin.Context) {
	render(c, http.StatusOK, "company_form.html", gin.H{
		"Title":  "New Company",
		"form":   forms.Company{},
		"errors": forms.Errors{},
	})
}

func CreateCompany(c *gin.Context) {
	var form forms.Company
	_ = c.ShouldBind(&form)

	errs := form.Validate()

	// --- NAME UNIQUENESS ---
	if _, ok := errs["name"]; !ok {
		var count int64
		database.DB.Model(&models.Company{}).
			Where("LOWER(name) = LOWER(?)", form.Name).
			Count(&count)

		if count > 0 {
			errs["name"] = "Company with this Name already exists."
		}
	}

	if len(errs) > 0 {
		render(c, http.StatusBadRequest, "company_form.html", gin.H{
			"Title":  "New Company",
			"form":   form,
			"errors": errs,
		})
		return
	}

	company := models.Company{
		Name:    form.Name,
		Address: form.Address,
	}

	if err := database.DB.Create(&company).Error; err != nil {
		render(c, http.StatusInternalServerError, "company_form.html", gin.H{
			"Title":  "New Company",
			"form":   form,
			"errors": forms.Errors{},
			"error":  "Failed to save company.",
		})
		return
	}

	auditLog(c, "company", company.ID, "create", "Created company: "+company.Name)

	c.Redirect(http.StatusFound, "/companies")
}

func ShowEditCompany(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid company ID")
		return
	}

	var company models.Company
	if err := database.DB.First(&company, id).Error; err != nil {
		c.String(http.StatusNotFound, "Company not found")
		return
	}

	render(c, http.StatusOK, "company_form.html", gin.H{
		"Title":  "Edit Company",
		"form":   forms.Company{Name: company.Name, Address: company.Address},
		"errors": forms.Errors{},
	})
}

func UpdateCompany(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid company ID")
		return
	}

	var company models.Company
	if err := database.DB.First(&company, id).Error; err != nil {
		c.String(http.StatusNotFound, "Company not found")
		return
	}

	var form forms.Company
	_ = c.ShouldBind(&form)

	errs := form.Validate()

	// --- NAME UNIQUENESS (excluding this row) ---
	if _, ok := errs["name"]; !ok {
		var count int64
		database.DB.Model(&models.Company{}).
			Where("LOWER(name) = LOWER(?) AND id <> ?", form.Name, company.ID).
			Count(&count)

		if count > 0 {
			errs["name"] = "Company with this Name already exists."
		}
	}

	if len(errs) > 0 {
		render(c, http.StatusBadRequest, "company_form.html", gin.H{
			"Title":  "Edit Company",
			"form":   form,
			"errors": errs,
		})
		return
	}

	company.Name = form.Name
	company.Address = form.Address

	if err := database.DB.Save(&company).Error; err != nil {
		render(c, http.StatusInternalServerError, "company_form.html", gin.H{
			"Title":  "Edit Company",
			"form":   form,
			"errors": forms.Errors{},
			"error":  "Failed to save company.",
		})
		return
	}

	auditLog(c, "company", company.ID, "update", "Updated company: "+company.Name)

	c.Redirect(http.StatusFound, "/companies")
}
