package handlers

import (
	"org-registry/internal/models"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and hands every template the current user that
// middleware.InjectUser resolved from the session.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		switch u := uVal.(type) {
		case models.User:
			data["CurrentUser"] = u
			data["CurrentUserEmail"] = u.Email
			data["CurrentUserRole"] = u.Role
		case *models.User:
			data["CurrentUser"] = u
			data["CurrentUserEmail"] = u.Email
			data["CurrentUserRole"] = u.Role
		}
	}

	c.HTML(status, tmpl, data)
}
