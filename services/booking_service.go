// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hostel-backend/apperrors"
	"hostel-backend/models"
)

// BookingService owns the booking lifecycle. Creating a booking and flipping
// the room's availability always happen inside one transaction so the rooms
// table never disagrees with the bookings table after a partial failure.
type BookingService struct {
	DB      *gorm.DB
	Pricing *DashboardService
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, Pricing: NewDashboardService()}
}

type CreateBookingInput struct {
	UserID          uint
	RoomID          uint
	CheckInDate     time.Time
	CheckOutDate    time.Time
	SpecialRequests string
	// TotalPrice <= 0 means "compute server-side".
	TotalPrice int
}

// Create books an available room for the user. The availability flip is a
// conditional update: if another request grabbed the room between our read
// and our write, RowsAffected is 0 and the whole transaction rolls back, so
// two confirmed bookings can never share one room.
func (s *BookingService) Create(in CreateBookingInput) (*models.Booking, error) {
	var room models.Room
	if err := s.DB.First(&room, in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Room not found")
		}
		return nil, apperrors.Internal("Server error", fmt.Errorf("failed to load room %d: %w", in.RoomID, err))
	}
	if !room.Available {
		return nil, apperrors.Conflict("Room is not available")
	}

	totalPrice := in.TotalPrice
	if totalPrice <= 0 {
		totalPrice = s.Pricing.PriceForStay(in.CheckInDate, in.CheckOutDate)
	}

	checkIn := in.CheckInDate
	checkOut := in.CheckOutDate
	booking := models.Booking{
		UserID:          in.UserID,
		RoomID:          in.RoomID,
		CheckInDate:     &checkIn,
		CheckOutDate:    &checkOut,
		TotalPrice:      totalPrice,
		Status:          "confirmed",
		SpecialRequests: in.SpecialRequests,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return apperrors.Validation("Failed to create booking", err)
		}

		result := tx.Model(&models.Room{}).
			Where("id = ? AND available = ?", in.RoomID, true).
			Update("available", false)
		if result.Error != nil {
			return apperrors.Internal("Failed to update room availability", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.Conflict("Room is not available")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Room").First(&booking, booking.ID).Error; err != nil {
		return nil, apperrors.Internal("Server error", fmt.Errorf("failed to reload booking %d: %w", booking.ID, err))
	}
	return &booking, nil
}

// Cancel hard-deletes the booking and frees its room. A booking that exists
// but belongs to another user reports the same not-found error as a missing
// one, so cancellation never confirms another user's booking to the caller.
func (s *BookingService) Cancel(userID, bookingID uint) (uint, error) {
	var booking models.Booking
	err := s.DB.Where("id = ? AND user_id = ?", bookingID, userID).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NotFound("Booking not found")
		}
		return 0, apperrors.Internal("Server error", fmt.Errorf("failed to load booking %d: %w", bookingID, err))
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", bookingID, userID).Delete(&models.Booking{})
		if result.Error != nil {
			return apperrors.Internal("Failed to delete booking", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("Booking not found")
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", booking.RoomID).
			Update("available", true).Error; err != nil {
			return apperrors.Internal("Failed to update room availability", err)
		}
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}

	return bookingID, nil
}

// ListForUser returns the user's bookings, newest first, each with its room
// embedded.
func (s *BookingService) ListForUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, apperrors.Validation("Failed to fetch bookings", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}
