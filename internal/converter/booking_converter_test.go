package converter

import (
	"testing"
	"time"

	"carebook/internal/domain/entity"

	"github.com/google/uuid"
)

func TestBookingToResponse_FormatsDatetime(t *testing.T) {
	clinicianID := uuid.New()
	booking := &entity.Booking{
		ID:          uuid.New(),
		Service:     "physiotherapy",
		ScheduledAt: time.Date(2026, 1, 26, 15, 0, 0, 0, time.UTC),
		Notes:       "Initial visit",
		ClinicianID: &clinicianID,
	}

	resp := BookingToResponse(booking)
	if resp.Datetime != "2026-01-26T15:00:00" {
		t.Fatalf("expected zone-less ISO-8601 datetime, got %q", resp.Datetime)
	}
	if resp.ID != booking.ID || resp.Service != booking.Service || resp.Notes != booking.Notes {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.ClinicianID == nil || *resp.ClinicianID != clinicianID {
		t.Fatalf("expected clinician %s, got %v", clinicianID, resp.ClinicianID)
	}
}

func TestBookingToResponse_NilInputs(t *testing.T) {
	if resp := BookingToResponse(nil); resp != nil {
		t.Fatalf("expected nil response for nil booking, got %+v", resp)
	}

	resp := BookingToResponse(&entity.Booking{ID: uuid.New()})
	if resp.ClinicianID != nil {
		t.Fatalf("unassigned clinician must stay nil, got %v", resp.ClinicianID)
	}
}

func TestBookingsToResponses_PreservesOrder(t *testing.T) {
	base := time.Date(2026, 1, 26, 15, 0, 0, 0, time.UTC)
	bookings := []entity.Booking{
		{ID: uuid.New(), Notes: "first", ScheduledAt: base.Add(48 * time.Hour)},
		{ID: uuid.New(), Notes: "second", ScheduledAt: base.Add(24 * time.Hour)},
		{ID: uuid.New(), Notes: "third", ScheduledAt: base},
	}

	responses := BookingsToResponses(bookings)
	if len(responses) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(responses))
	}
	for i, booking := range bookings {
		if responses[i].ID != booking.ID || responses[i].Notes != booking.Notes {
			t.Fatalf("position %d: response %+v does not match booking %+v", i, responses[i], booking)
		}
	}
}

func TestBookingsToResponses_Empty(t *testing.T) {
	responses := BookingsToResponses(nil)
	if responses == nil || len(responses) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", responses)
	}
}
