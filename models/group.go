package models

import (
	"time"

	"gorm.io/datatypes"
)

// Group is a set of guests sharing one stay window.
type Group struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	Name     string         `gorm:"size:255" json:"name"`
	CheckIn  datatypes.Date `gorm:"column:check_in" json:"check_in"`
	CheckOut datatypes.Date `gorm:"column:check_out" json:"check_out"`

	Guests []Guest `gorm:"foreignKey:GroupID" json:"guests,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
