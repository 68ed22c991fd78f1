package usecase

import (
	"context"
	"errors"
	"time"

	"carebook/internal/converter"
	"carebook/internal/delivery/dto"
	"carebook/internal/domain/entity"
	"carebook/internal/domain/repository"
	"carebook/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPatientProfileNotFound = errors.New("patient profile not found")
	ErrInvalidDatetime        = errors.New("invalid datetime format, use ISO8601 e.g. 2026-01-26T15:00:00")
	ErrClinicianNotFound      = errors.New("clinician not found")
)

// Accepted datetime layouts, tried in order. Past timestamps are
// allowed; nothing requires a booking to be in the future.
var datetimeLayouts = []string{
	time.RFC3339,
	converter.DatetimeLayout,
}

type BookingUsecase interface {
	// ListBookings returns an empty slice when the user has no patient
	// profile. CreateBooking fails instead; the asymmetry is intentional
	// and matches the established API behavior.
	ListBookings(ctx context.Context, userID uuid.UUID) ([]dto.BookingResponse, error)
	CreateBooking(ctx context.Context, userID uuid.UUID, req *dto.CreateBookingRequest) (uuid.UUID, error)
}

type bookingUsecase struct {
	log           *logrus.Logger
	patientRepo   repository.PatientProfileRepository
	bookingRepo   repository.BookingRepository
	clinicianRepo repository.ClinicianProfileRepository
	audit         service.AuditRecorder
}

func NewBookingUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
	bookingRepo repository.BookingRepository,
	clinicianRepo repository.ClinicianProfileRepository,
	audit service.AuditRecorder,
) BookingUsecase {
	return &bookingUsecase{
		log:           log,
		patientRepo:   patientRepo,
		bookingRepo:   bookingRepo,
		clinicianRepo: clinicianRepo,
		audit:         audit,
	}
}

func (u *bookingUsecase) ListBookings(ctx context.Context, userID uuid.UUID) ([]dto.BookingResponse, error) {
	profile, err := u.patientRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return []dto.BookingResponse{}, nil
	}

	bookings, err := u.bookingRepo.FindByPatientID(ctx, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for patient %s: %+v", profile.ID, err)
		return nil, err
	}

	return converter.BookingsToResponses(bookings), nil
}

func (u *bookingUsecase) CreateBooking(ctx context.Context, userID uuid.UUID, req *dto.CreateBookingRequest) (uuid.UUID, error) {
	profile, err := u.patientRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", userID, err)
		return uuid.Nil, err
	}
	if profile == nil {
		return uuid.Nil, ErrPatientProfileNotFound
	}

	scheduledAt, err := parseDatetime(req.Datetime)
	if err != nil {
		return uuid.Nil, ErrInvalidDatetime
	}

	if req.ClinicianID != nil {
		exists, err := u.clinicianRepo.Exists(ctx, *req.ClinicianID)
		if err != nil {
			u.log.Warnf("Failed to check clinician %s: %+v", *req.ClinicianID, err)
			return uuid.Nil, err
		}
		if !exists {
			return uuid.Nil, ErrClinicianNotFound
		}
	}

	booking := &entity.Booking{
		PatientID:   profile.ID,
		Service:     req.Service,
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
		ClinicianID: req.ClinicianID,
	}

	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		u.log.Warnf("Failed to create booking for patient %s: %+v", profile.ID, err)
		return uuid.Nil, err
	}

	u.audit.Record(ctx, &userID, entity.AuditActionBookingCreate, entity.JSON{
		"booking_id": booking.ID.String(),
		"service":    booking.Service,
	})

	return booking.ID, nil
}

func parseDatetime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range datetimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
