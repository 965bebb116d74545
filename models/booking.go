package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        uint   `gorm:"column:user_id;index" json:"user_id"`
	RoomID        uint   `gorm:"column:room_id;index" json:"room_id"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	CheckInDate  *time.Time `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"check_out_date"`

	TotalPrice      int    `gorm:"column:total_price" json:"total_price"`
	Status          string `gorm:"size:32" json:"status"`
	SpecialRequests string `gorm:"column:special_requests;type:text" json:"special_requests"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Serialized as "rooms" because the frontend consumes bookings with the
	// room row embedded under that key.
	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"rooms"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ReferenceCode == "" {
		b.ReferenceCode = uuid.NewString()
	}
	return nil
}
