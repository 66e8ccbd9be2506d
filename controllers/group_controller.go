package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"lodging-backend/models"
	"lodging-backend/services"
	"lodging-backend/utils"
)

type GroupController struct {
	Groups *services.GroupService
}

func NewGroupController(groups *services.GroupService) *GroupController {
	return &GroupController{Groups: groups}
}

// Index lists every group with its guests.
func (ctl *GroupController) Index(c *gin.Context) {
	groups, err := ctl.Groups.GetAllWithGuests()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load groups")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, groups)
}

type createGroupPayload struct {
	GroupName string `form:"group_name" json:"group_name"`
	CheckIn   string `form:"check_in" json:"check_in"`
	CheckOut  string `form:"check_out" json:"check_out"`
}

func parseDate(value string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func (ctl *GroupController) CreateGroup(c *gin.Context) {
	var payload createGroupPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.GroupName == "" {
		utils.JSONError(c, http.StatusBadRequest, "group_name required")
		return
	}

	checkIn, err := parseDate(payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_out must be YYYY-MM-DD")
		return
	}

	group := models.Group{
		Name:     payload.GroupName,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
	if err := ctl.Groups.Create(&group); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create group")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, group)
}
