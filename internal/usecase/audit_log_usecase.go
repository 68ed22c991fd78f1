package usecase

import (
	"context"

	"carebook/internal/converter"
	"carebook/internal/delivery/dto"
	"carebook/internal/domain/repository"
)

const auditLogPageSize = 100

type AuditLogUsecase interface {
	ListRecent(ctx context.Context) ([]dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{auditRepo: auditRepo}
}

func (u *auditLogUsecase) ListRecent(ctx context.Context) ([]dto.AuditLogResponse, error) {
	logs, err := u.auditRepo.FindRecent(ctx, auditLogPageSize)
	if err != nil {
		return nil, err
	}
	return converter.AuditLogsToResponses(logs), nil
}
