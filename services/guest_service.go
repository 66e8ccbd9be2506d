package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"lodging-backend/models"
)

var ErrGuestNotFound = errors.New("guest not found")

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// BulkCreate inserts one guest per name into the group, room fields
// unset. The group must exist; names are inserted as given, with no
// per-row validation.
func (s *GuestService) BulkCreate(groupID uint, names []string) ([]models.Guest, error) {
	log.Printf("➡️ GuestService.BulkCreate group_id=%d names=%d", groupID, len(names))

	var group models.Group
	if err := s.DB.First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	guests := make([]models.Guest, 0, len(names))
	for _, name := range names {
		guests = append(guests, models.Guest{FullName: name, GroupID: groupID})
	}
	if len(guests) == 0 {
		return guests, nil
	}

	err := s.DB.Create(&guests).Error

	log.Printf("⬅️ GuestService.BulkCreate inserted=%d err=%v", len(guests), err)
	if err != nil {
		return nil, err
	}
	return guests, nil
}

// AssignRoom sets the room fields on a guest, deriving the price from
// the room type at this moment. The type is normalized to uppercase;
// types outside the table price at models.DefaultRoomPrice. Nothing
// stops two guests from sharing a room number.
func (s *GuestService) AssignRoom(guestID uint, roomNo, rawType string) (*models.Guest, error) {
	log.Printf("➡️ GuestService.AssignRoom guest_id=%d room_no=%q type=%q", guestID, roomNo, rawType)

	var guest models.Guest
	if err := s.DB.First(&guest, guestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	roomType := models.NormalizeRoomType(rawType)
	price := roomType.Price()

	guest.RoomNo = &roomNo
	guest.RoomType = &roomType
	guest.Price = &price

	err := s.DB.Model(&models.Guest{}).
		Where("id = ?", guest.ID).
		Updates(map[string]interface{}{
			"room_no":   roomNo,
			"room_type": roomType,
			"price":     price,
		}).Error

	log.Printf("⬅️ GuestService.AssignRoom price=%d err=%v", price, err)
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (s *GuestService) ListByGroup(groupID uint) ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.
		Where("group_id = ?", groupID).
		Order("id ASC").
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}
