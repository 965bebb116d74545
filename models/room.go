package models

import (
	"time"

	"gorm.io/datatypes"
)

// Room is a bookable hostel room. Available must stay in sync with the
// bookings table: BookingService flips it inside the same transaction as the
// booking write.
type Room struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255" json:"name"`
	HostelName  string         `gorm:"column:hostel_name;size:255;index" json:"hostel_name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int            `json:"price"`
	Capacity    int            `json:"capacity"`
	RoomType    string         `gorm:"column:room_type;size:64" json:"room_type"`
	Floor       string         `gorm:"size:32" json:"floor"`
	Available   bool           `gorm:"default:true" json:"available"`
	Amenities   datatypes.JSON `json:"amenities"`
	Image       string         `gorm:"size:512" json:"image"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
