package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lodging-backend/middleware"
	"lodging-backend/services"
	"lodging-backend/utils"
)

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

type loginPayload struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// LoginPage answers unauthenticated GETs (and the redirect target of
// the auth middleware) with a login prompt.
func (ctl *AuthController) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "POST username and password to /login"})
}

func (ctl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	user, err := ctl.Users.Authenticate(username, payload.Password)
	if err != nil {
		// Same message for unknown user and wrong password.
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid username or password")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// Logout revokes the presented token for the rest of its lifetime.
func (ctl *AuthController) Logout(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	if claims != nil {
		middleware.RevokeToken(claims)
	}
	utils.JSONMessage(c, http.StatusOK, "logged out")
}
