package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carebook/internal/delivery/dto"
	"carebook/internal/delivery/http/middleware"
	"carebook/internal/usecase"
	"carebook/pkg/validator"

	"github.com/google/uuid"
)

// --- mock usecase ---

type mockBookingUsecase struct {
	listFn   func(ctx context.Context, userID uuid.UUID) ([]dto.BookingResponse, error)
	createFn func(ctx context.Context, userID uuid.UUID, req *dto.CreateBookingRequest) (uuid.UUID, error)
}

func (m *mockBookingUsecase) ListBookings(ctx context.Context, userID uuid.UUID) ([]dto.BookingResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return []dto.BookingResponse{}, nil
}

func (m *mockBookingUsecase) CreateBooking(ctx context.Context, userID uuid.UUID, req *dto.CreateBookingRequest) (uuid.UUID, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, req)
	}
	return uuid.New(), nil
}

var _ usecase.BookingUsecase = (*mockBookingUsecase)(nil)

func newBookingHandler(uc *mockBookingUsecase) *BookingHandler {
	return NewBookingHandler(uc, validator.NewValidator())
}

// authenticatedRequest builds a request carrying the user id the auth
// middleware would have put in context.
func authenticatedRequest(method, target string, body string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

// --- tests ---

func TestListBookingsHandler_Unauthenticated_Returns401(t *testing.T) {
	h := newBookingHandler(&mockBookingUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	h.ListBookings(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth context, got %d", rec.Code)
	}
}

func TestListBookingsHandler_EmptyList(t *testing.T) {
	h := newBookingHandler(&mockBookingUsecase{})

	rec := httptest.NewRecorder()
	h.ListBookings(rec, authenticatedRequest(http.MethodGet, "/bookings", "", uuid.New()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected an empty JSON array, got %q", got)
	}
}

func TestListBookingsHandler_ReturnsCallerBookings(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()
	uc := &mockBookingUsecase{
		listFn: func(_ context.Context, gotUserID uuid.UUID) ([]dto.BookingResponse, error) {
			if gotUserID != userID {
				t.Fatalf("listing used %s, want caller %s", gotUserID, userID)
			}
			return []dto.BookingResponse{
				{ID: bookingID, Service: "physiotherapy", Datetime: "2026-01-26T15:00:00", Notes: "Initial visit"},
			}, nil
		},
	}
	h := newBookingHandler(uc)

	rec := httptest.NewRecorder()
	h.ListBookings(rec, authenticatedRequest(http.MethodGet, "/bookings", "", userID))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected one booking, got %d", len(resp))
	}
	if resp[0]["datetime"] != "2026-01-26T15:00:00" {
		t.Fatalf("unexpected datetime: %v", resp[0]["datetime"])
	}
	if clinician, present := resp[0]["clinician_id"]; !present || clinician != nil {
		t.Fatalf("expected clinician_id to be explicit null, got %v (present=%v)", clinician, present)
	}
}

func TestCreateBookingHandler_Success(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()
	uc := &mockBookingUsecase{
		createFn: func(_ context.Context, gotUserID uuid.UUID, req *dto.CreateBookingRequest) (uuid.UUID, error) {
			if gotUserID != userID {
				t.Fatalf("create used %s, want caller %s", gotUserID, userID)
			}
			if req.Service != "physiotherapy" || req.Datetime != "2026-01-26T15:00:00" {
				t.Fatalf("unexpected request: %+v", req)
			}
			return bookingID, nil
		},
	}
	h := newBookingHandler(uc)

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, authenticatedRequest(http.MethodPost, "/bookings",
		`{"service": "physiotherapy", "datetime": "2026-01-26T15:00:00", "notes": "Initial visit"}`, userID))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var resp dto.CreateBookingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Msg != "booking created" || resp.BookingID != bookingID {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateBookingHandler_NoProfile_Returns400(t *testing.T) {
	uc := &mockBookingUsecase{
		createFn: func(_ context.Context, _ uuid.UUID, _ *dto.CreateBookingRequest) (uuid.UUID, error) {
			return uuid.Nil, usecase.ErrPatientProfileNotFound
		},
	}
	h := newBookingHandler(uc)

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, authenticatedRequest(http.MethodPost, "/bookings",
		`{"service": "physiotherapy", "datetime": "2026-01-26T15:00:00"}`, uuid.New()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeMsg(t, rec.Body.String()); msg != "patient profile not found" {
		t.Fatalf("expected msg %q, got %q", "patient profile not found", msg)
	}
}

func TestCreateBookingHandler_InvalidDatetime_Returns400(t *testing.T) {
	uc := &mockBookingUsecase{
		createFn: func(_ context.Context, _ uuid.UUID, _ *dto.CreateBookingRequest) (uuid.UUID, error) {
			return uuid.Nil, usecase.ErrInvalidDatetime
		},
	}
	h := newBookingHandler(uc)

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, authenticatedRequest(http.MethodPost, "/bookings",
		`{"service": "physiotherapy", "datetime": "tomorrow"}`, uuid.New()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	want := "invalid datetime format, use ISO8601 e.g. 2026-01-26T15:00:00"
	if msg := decodeMsg(t, rec.Body.String()); msg != want {
		t.Fatalf("expected msg %q, got %q", want, msg)
	}
}

func TestCreateBookingHandler_MissingFields_Returns400(t *testing.T) {
	called := false
	uc := &mockBookingUsecase{
		createFn: func(_ context.Context, _ uuid.UUID, _ *dto.CreateBookingRequest) (uuid.UUID, error) {
			called = true
			return uuid.Nil, nil
		},
	}
	h := newBookingHandler(uc)

	for _, body := range []string{
		`{}`,
		`{"service": "physiotherapy"}`,
		`{"datetime": "2026-01-26T15:00:00"}`,
	} {
		rec := httptest.NewRecorder()
		h.CreateBooking(rec, authenticatedRequest(http.MethodPost, "/bookings", body, uuid.New()))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
	if called {
		t.Fatal("invalid requests must not reach the usecase")
	}
}
