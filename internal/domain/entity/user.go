package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table.
// The phone number is the login handle and must be unique.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(120)" json:"name,omitempty"`
	Phone        string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'patient';index" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	PatientProfile   *PatientProfile   `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
	ClinicianProfile *ClinicianProfile `gorm:"foreignKey:UserID" json:"clinician_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Role constants
const (
	RolePatient   = "patient"
	RoleClinician = "clinician"
	RoleAdmin     = "admin"
)
