package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lodging-backend/services"
	"lodging-backend/utils"
)

type GuestController struct {
	Guests   *services.GuestService
	Importer *services.ImportService
}

func NewGuestController(guests *services.GuestService, importer *services.ImportService) *GuestController {
	return &GuestController{Guests: guests, Importer: importer}
}

// UploadGuests bulk-creates guests from an uploaded workbook. The
// whole import fails on an unreadable file or a missing name column.
func (ctl *GuestController) UploadGuests(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.PostForm("group_id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "group_id must be a number")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer file.Close()

	guests, err := ctl.Importer.ImportGuests(uint(groupID), fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGroupNotFound):
			utils.JSONError(c, http.StatusNotFound, "group not found")
		case errors.Is(err, services.ErrMalformedWorkbook), errors.Is(err, services.ErrMissingNameColumn):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "import failed")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"imported": len(guests),
		"data":     guests,
	})
}

type assignRoomPayload struct {
	GuestID  uint   `form:"guest_id" json:"guest_id"`
	RoomNo   string `form:"room_no" json:"room_no"`
	RoomType string `form:"room_type" json:"room_type"`
}

// AssignRoom sets room number and type on a guest; the price falls out
// of the pricing table.
func (ctl *GuestController) AssignRoom(c *gin.Context) {
	var payload assignRoomPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.GuestID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "guest_id required")
		return
	}

	guest, err := ctl.Guests.AssignRoom(payload.GuestID, payload.RoomNo, payload.RoomType)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			utils.JSONError(c, http.StatusNotFound, "guest not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to assign room")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, guest)
}
