package service

import (
	"context"

	"carebook/internal/domain/entity"
	"carebook/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuditRecorder writes audit trail entries. Recording is best effort:
// a failed write is logged and never fails the calling flow.
type AuditRecorder interface {
	Record(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON)
}

type auditRecorder struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditRecorder(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditRecorder {
	return &auditRecorder{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditRecorder) Record(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON) {
	entry := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.log.Warnf("Failed to write audit entry %s: %+v", action, err)
	}
}
