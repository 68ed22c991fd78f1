package dto

import "github.com/google/uuid"

type ClinicianResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Biography      string    `json:"biography,omitempty"`
}
