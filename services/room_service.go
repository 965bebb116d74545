// services/room_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostel-backend/apperrors"
	"hostel-backend/models"
)

const featuredRoomLimit = 6

// RoomFilter holds the optional query filters of GET /api/rooms. MinPrice
// and MaxPrice are accepted but not applied, matching the deployed behavior
// the frontend was built against.
type RoomFilter struct {
	HostelName string
	Capacity   *int
	Available  *bool
	MinPrice   *int
	MaxPrice   *int
}

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) List(filter RoomFilter) ([]models.Room, error) {
	query := s.DB.Model(&models.Room{}).Order("created_at DESC")

	if filter.HostelName != "" {
		query = query.Where("hostel_name LIKE ?", "%"+filter.HostelName+"%")
	}
	if filter.Capacity != nil {
		query = query.Where("capacity = ?", *filter.Capacity)
	}
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}

	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		return nil, apperrors.Internal("Failed to fetch rooms", err)
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, nil
}

// Featured returns the newest available rooms for the landing page.
func (s *RoomService) Featured() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.
		Where("available = ?", true).
		Order("created_at DESC").
		Limit(featuredRoomLimit).
		Find(&rooms).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch featured rooms", err)
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Room not found")
		}
		return nil, apperrors.Internal("Server error", fmt.Errorf("failed to load room %d: %w", id, err))
	}
	return &room, nil
}
