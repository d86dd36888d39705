package handlers

import (
	"net/http"
	"strings"

	"org-registry/internal/database"
	"org-registry/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"error": ""})
}

type registerForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Role     string `form:"role"`
}

func Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Invalid form data."})
		return
	}

	form.Email = strings.TrimSpace(form.Email)
	if len(form.Email) < 3 || !strings.Contains(form.Email, "@") {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Enter a valid email address."})
		return
	}
	if len(form.Password) < 6 {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Password must be at least 6 characters."})
		return
	}

	role := models.UserRole(form.Role)

	// the register form only hands out staff / viewer; admins are seeded
	switch role {
	case models.RoleStaff, models.RoleViewer:
	default:
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Invalid role."})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", form.Email).First(&existing).Error; err == nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "User already exists."})
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	user := models.User{
		Email:        form.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "Failed to save user."})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data."})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", strings.TrimSpace(form.Email)).First(&user).Error; err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Wrong email or password."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Wrong email or password."})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/companies")
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
