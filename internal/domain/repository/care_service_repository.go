package repository

import (
	"context"

	"carebook/internal/domain/entity"
)

type CareServiceRepository interface {
	Create(ctx context.Context, service *entity.CareService) error
	FindAll(ctx context.Context) ([]entity.CareService, error)
}
