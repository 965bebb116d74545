package models

import "time"

// User is the identity record: credentials only, never profile data.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:255" json:"email"`
	Password  string    `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile carries the student data beyond the identity record. Its primary
// key is the owning user's ID, created at registration time.
type Profile struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:255" json:"name"`
	StudentID        string    `gorm:"column:student_id;size:64" json:"student_id"`
	Email            string    `gorm:"size:255" json:"email"`
	EmergencyContact string    `gorm:"column:emergency_contact;size:255" json:"emergency_contact"`
	EmergencyPhone   string    `gorm:"column:emergency_phone;size:64" json:"emergency_phone"`
	ParentName       string    `gorm:"column:parent_name;size:255" json:"parent_name"`
	ParentPhone      string    `gorm:"column:parent_phone;size:64" json:"parent_phone"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
