package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lodging-backend/models"
	"lodging-backend/services"
	"lodging-backend/utils"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// ManageUsers returns the data behind the user-management view.
func (ctl *UserController) ManageUsers(c *gin.Context) {
	users, err := ctl.Users.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load users")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

type addUserPayload struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
	Role     string `form:"role" json:"role"`
}

func (ctl *UserController) AddUser(c *gin.Context) {
	var payload addUserPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	user, err := ctl.Users.Create(username, payload.Password, models.Role(payload.Role))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			utils.JSONError(c, http.StatusBadRequest, "role must be admin or staff")
		case errors.Is(err, services.ErrDuplicateUsername):
			utils.JSONError(c, http.StatusConflict, "username already exists")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, user)
}
