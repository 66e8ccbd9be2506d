package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"lodging-backend/models"
)

var ErrGroupNotFound = errors.New("group not found")

type GroupService struct {
	DB *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{DB: db}
}

func (s *GroupService) Create(group *models.Group) error {
	log.Printf("➡️ GroupService.Create name=%q", group.Name)

	err := s.DB.Create(group).Error

	log.Printf("⬅️ GroupService.Create id=%d err=%v", group.ID, err)
	return err
}

// GetAllWithGuests returns every group with its guests preloaded, in
// insertion order.
func (s *GroupService) GetAllWithGuests() ([]models.Group, error) {
	log.Println("➡️ GroupService.GetAllWithGuests")

	var groups []models.Group
	err := s.DB.
		Preload("Guests", func(db *gorm.DB) *gorm.DB {
			return db.Order("guests.id ASC")
		}).
		Order("groups.id ASC").
		Find(&groups).Error

	if err != nil {
		log.Printf("⬅️ GroupService.GetAllWithGuests error: %v", err)
		return nil, err
	}

	log.Printf("⬅️ GroupService.GetAllWithGuests ok: %d groups", len(groups))
	return groups, nil
}

func (s *GroupService) GetByID(id uint) (*models.Group, error) {
	var group models.Group
	if err := s.DB.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}
