package entity

import "github.com/google/uuid"

// ClinicianProfile represents clinician-specific profile data.
// Bookings may reference a clinician through a nullable foreign key.
type ClinicianProfile struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Biography      string    `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bookings []Booking `gorm:"foreignKey:ClinicianID" json:"bookings,omitempty"`
}

func (ClinicianProfile) TableName() string {
	return "clinician_profiles"
}
