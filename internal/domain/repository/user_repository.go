package repository

import (
	"context"

	"carebook/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	// CreateWithProfile persists a user and their patient profile in a
	// single transaction. Neither row exists if either insert fails.
	CreateWithProfile(ctx context.Context, user *entity.User, profile *entity.PatientProfile) error
	// FindByPhone returns nil without error when no user matches.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
