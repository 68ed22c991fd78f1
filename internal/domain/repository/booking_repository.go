package repository

import (
	"context"

	"carebook/internal/domain/entity"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	// FindByPatientID returns the patient's bookings ordered by
	// scheduled time, most recent first.
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Booking, error)
}
