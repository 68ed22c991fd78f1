package repository

import (
	"context"

	"carebook/internal/domain/entity"

	"github.com/google/uuid"
)

type ClinicianProfileRepository interface {
	Create(ctx context.Context, profile *entity.ClinicianProfile) error
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
	// FindAll preloads the owning user for directory listings.
	FindAll(ctx context.Context) ([]entity.ClinicianProfile, error)
}
