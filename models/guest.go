package models

import "time"

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	FullName string `gorm:"size:255" json:"full_name"`

	GroupID uint  `gorm:"index;column:group_id" json:"group_id"`
	Group   Group `gorm:"foreignKey:GroupID" json:"-"`

	// Room fields stay nil until a room is assigned. Price is derived
	// from RoomType at assignment time and never recomputed.
	RoomNo   *string   `gorm:"size:64;column:room_no" json:"room_no,omitempty"`
	RoomType *RoomType `gorm:"size:32;column:room_type" json:"room_type,omitempty"`
	Price    *int      `gorm:"column:price" json:"price,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
