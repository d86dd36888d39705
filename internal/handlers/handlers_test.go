package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"org-registry/internal/database"
	"org-registry/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter swaps database.DB for an in-memory SQLite database and builds
// a router with the entity routes, templates, and session store. Auth gates
// are exercised separately; here we test the handlers themselves.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Unit{},
		&models.Employee{},
		&models.AuditLog{},
	)
	require.NoError(t, err, "failed to migrate test database")
	database.DB = db

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")

	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("org_session", store))

	r.GET("/", IndexPage)

	r.GET("/register", ShowRegister)
	r.POST("/register", Register)
	r.GET("/login", ShowLogin)
	r.POST("/login", Login)
	r.GET("/logout", Logout)

	r.GET("/companies", ListCompanies)
	r.GET("/companies/new", ShowNewCompany)
	r.POST("/companies/new", CreateCompany)
	r.GET("/companies/:id/edit", ShowEditCompany)
	r.POST("/companies/:id/edit", UpdateCompany)

	r.GET("/units", ListUnits)
	r.GET("/units/new", ShowNewUnit)
	r.POST("/units/new", CreateUnit)
	r.GET("/units/:id/edit", ShowEditUnit)
	r.POST("/units/:id/edit", UpdateUnit)

	r.GET("/employees", ListEmployees)
	r.GET("/employees/new", ShowNewEmployee)
	r.POST("/employees/new", CreateEmployee)
	r.GET("/employees/:id/edit", ShowEditEmployee)
	r.POST("/employees/:id/edit", UpdateEmployee)

	r.GET("/audit", ListAuditLogs)

	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPost(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCompany(t *testing.T, name, address string) models.Company {
	t.Helper()
	company := models.Company{Name: name, Address: address}
	require.NoError(t, database.DB.Create(&company).Error)
	return company
}

func createUnit(t *testing.T, name string, companyID uint) models.Unit {
	t.Helper()
	unit := models.Unit{Name: name, CompanyID: companyID}
	require.NoError(t, database.DB.Create(&unit).Error)
	return unit
}
