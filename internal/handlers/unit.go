package handlers

import (
	"net/http"
	"strconv"

	"org-registry/internal/database"
	"org-registry/internal/forms"
	"org-registry/internal/models"

	"github.com/gin-gonic/gin"
)

func ListUnits(c *gin.Context) {
	var units []models.Unit
	database.DB.Preload("Company").Order("name asc").Find(&units)

	render(c, http.StatusOK, "units_list.html", gin.H{
		"units": units,
	})
}

func ShowNewUnit(c *gin.Context) {
	render(c, http.StatusOK, "unit_form.html", gin.H{
		"Title":     "New Unit",
		"form":      forms.Unit{},
		"errors":    forms.Errors{},
		"companies": companyChoices(),
	})
}

func CreateUnit(c *gin.Context) {
	var form forms.Unit
	_ = c.ShouldBind(&form)

	errs := form.Validate()
	checkCompanyChoice(form.CompanyID, errs)

	if len(errs) > 0 {
		render(c, http.StatusBadRequest, "unit_form.html", gin.H{
			"Title":     "New Unit",
			"form":      form,
			"errors":    errs,
			"companies": companyChoices(),
		})
		return
	}

	unit := models.Unit{
		Name:      form.Name,
		CompanyID: form.CompanyID,
	}

	if err := database.DB.Create(&unit).Error; err != nil {
		render(c, http.StatusInternalServerError, "unit_form.html", gin.H{
			"Title":     "New Unit",
			"form":      form,
			"errors":    forms.Errors{},
			"companies": companyChoices(),
			"error":     "Failed to save unit.",
		})
		return
	}

	auditLog(c, "unit", unit.ID, "create", "Created unit: "+unit.Name)

	c.Redirect(http.StatusFound, "/units")
}

func ShowEditUnit(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid unit ID")
		return
	}

	var unit models.Unit
	if err := database.DB.First(&unit, id).Error; err != nil {
		c.String(http.StatusNotFound, "Unit not found")
		return
	}

	render(c, http.StatusOK, "unit_form.html", gin.H{
		"Title":     "Edit Unit",
		"form":      forms.Unit{Name: unit.Name, CompanyID: unit.CompanyID},
		"errors":    forms.Errors{},
		"companies": companyChoices(),
	})
}

func UpdateUnit(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid unit ID")
		return
	}

	var unit models.Unit
	if err := database.DB.First(&unit, id).Error; err != nil {
		c.String(http.StatusNotFound, "Unit not found")
		return
	}

	var form forms.Unit
	_ = c.ShouldBind(&form)

	errs := form.Validate()
	checkCompanyChoice(form.CompanyID, errs)

	if len(errs) > 0 {
		render(c, http.StatusBadRequest, "unit_form.html", gin.H{
			"Title":     "Edit Unit",
			"form":      form,
			"errors":    errs,
			"companies": companyChoices(),
		})
		return
	}

	unit.Name = form.Name
	unit.CompanyID = form.CompanyID

	if err := database.DB.Save(&unit).Error; err != nil {
		render(c, http.StatusInternalServerError, "unit_form.html", gin.H{
			"Title":     "Edit Unit",
			"form":      form,
			"errors":    forms.Errors{},
			"companies": companyChoices(),
			"error":     "Failed to save unit.",
		})
		return
	}

	auditLog(c, "unit", unit.ID, "update", "Updated unit: "+unit.Name)

	c.Redirect(http.StatusFound, "/units")
}

// company choices for the unit form select
func companyChoices() []models.Company {
	var companies []models.Company
	database.DB.Order("name asc").Find(&companies)
	return companies
}

// the posted company id must reference an existing row
func checkCompanyChoice(id uint, errs forms.Errors) {
	if _, ok := errs["company"]; ok || id == 0 {
		return
	}
	var count int64
	database.DB.Model(&models.Company{}).Where("id = ?", id).Count(&count)
	if count == 0 {
		errs["company"] = "Select a valid choice."
	}
}
