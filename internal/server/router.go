package server

import (
	"net/http"

	"org-registry/internal/config"
	"org-registry/internal/handlers"
	"org-registry/internal/middleware"
	"org-registry/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("org_session", store))

	r.Use(middleware.InjectUser())

	// HOME
	r.GET("/", handlers.IndexPage)

	// AUTH
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// COMPANIES
	auth.GET("/companies", handlers.ListCompanies)
	auth.GET("/companies/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		handlers.ShowNewCompany,
	)
	auth.POST("/companies/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		handlers.CreateCompany,
	)
	auth.GET("/companies/:id/edit",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		handlers.ShowEditCompany,
	)
	auth.POST("/companies/:id/edit",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		handlers.UpdateCompany,
	)

	// UNITS
	auth.GET("/units", handlers.ListUnits)
	auth.GET("/units/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		handlers.ShowNewUnit,
	)
	auth.POST("/units/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		handlers.CreateUnit,
	)
	auth.GET("/units/:id/edit",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		handlers.ShowEditUnit,
	)
	auth.POST("/units/:id/edit",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		handlers.UpdateUnit,
	)

	// EMPLOYEES
	auth.GET("/employees", handlers.ListEmployees)
	auth.GET("/employees/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		handlers.ShowNewEmployee,
	)
	auth.POST("/employees/new",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		handlers.CreateEmployee,
	)
	auth.GET("/employees/:id/edit",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		handlers.ShowEditEmployee,
	)
	auth.POST("/employees/:id/edit",
		middleware.RequireRole(models.RoleAdmin, models.RoleStaff),
		handlers.UpdateEmployee,
	)

	// AUDIT
	auth.GET("/audit",
		middleware.RequireRole(models.RoleAdmin, models.RoleViewer),
		handlers.ListAuditLogs,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
