package dto

import "github.com/google/uuid"

// Request DTOs

type CreateBookingRequest struct {
	Service     string     `json:"service" validate:"required,max=100"`
	Datetime    string     `json:"datetime" validate:"required"`
	Notes       string     `json:"notes" validate:"omitempty"`
	ClinicianID *uuid.UUID `json:"clinician_id" validate:"omitempty"`
}

// Response DTOs

type CreateBookingResponse struct {
	Msg       string    `json:"msg"`
	BookingID uuid.UUID `json:"booking_id"`
}

// BookingResponse mirrors the booking list wire format. Datetime is an
// ISO-8601 string and clinician_id is null when unassigned.
type BookingResponse struct {
	ID          uuid.UUID  `json:"id"`
	Service     string     `json:"service"`
	Datetime    string     `json:"datetime"`
	Notes       string     `json:"notes"`
	ClinicianID *uuid.UUID `json:"clinician_id"`
}
