package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents a patient's request for a scheduled service.
// Bookings are immutable once created; there is no update or cancel
// operation. Service is free text and is not validated against the
// care service catalog.
type Booking struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	Service     string     `gorm:"type:varchar(100);not null" json:"service"`
	ScheduledAt time.Time  `gorm:"not null;index" json:"scheduled_at"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	ClinicianID *uuid.UUID `gorm:"type:uuid;index" json:"clinician_id"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient   PatientProfile    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Clinician *ClinicianProfile `gorm:"foreignKey:ClinicianID" json:"clinician,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}
