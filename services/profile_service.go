// services/profile_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"hostel-backend/apperrors"
	"hostel-backend/models"
)

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// Create inserts the profile row that accompanies a fresh identity record.
// The profile shares the user's ID.
func (s *ProfileService) Create(userID uint, name, studentID, email string) (*models.Profile, error) {
	profile := models.Profile{
		ID:        userID,
		Name:      strings.TrimSpace(name),
		StudentID: strings.TrimSpace(studentID),
		Email:     strings.ToLower(strings.TrimSpace(email)),
	}
	if err := s.DB.Create(&profile).Error; err != nil {
		return nil, apperrors.Validation("Failed to create profile", err)
	}
	return &profile, nil
}

func (s *ProfileService) GetByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.DB.First(&profile, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Profile not found")
		}
		return nil, apperrors.Internal("Server error", fmt.Errorf("failed to load profile: %w", err))
	}
	return &profile, nil
}

type UpdateProfileInput struct {
	Name             string
	StudentID        string
	EmergencyContact string
	EmergencyPhone   string
	ParentName       string
	ParentPhone      string
}

func (s *ProfileService) Update(userID uint, in UpdateProfileInput) (*models.Profile, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.StudentID) == "" {
		return nil, apperrors.Validation("Name and Student ID are required", nil)
	}

	result := s.DB.Model(&models.Profile{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"name":              strings.TrimSpace(in.Name),
		"student_id":        strings.TrimSpace(in.StudentID),
		"emergency_contact": in.EmergencyContact,
		"emergency_phone":   in.EmergencyPhone,
		"parent_name":       in.ParentName,
		"parent_phone":      in.ParentPhone,
		"updated_at":        time.Now(),
	})
	if result.Error != nil {
		return nil, apperrors.Validation("Failed to update profile", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFound("Profile not found")
	}

	return s.GetByUserID(userID)
}
