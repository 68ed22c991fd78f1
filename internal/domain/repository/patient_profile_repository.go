package repository

import (
	"context"

	"carebook/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientProfileRepository interface {
	// FindByUserID returns nil without error when the user has no profile.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error)
}
