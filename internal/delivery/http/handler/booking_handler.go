package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"carebook/internal/delivery/dto"
	"carebook/internal/delivery/http/middleware"
	"carebook/internal/usecase"
	"carebook/pkg/response"
	"carebook/pkg/validator"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// ListBookings returns the caller's bookings, most recent scheduled
// time first. A user without a patient profile gets an empty list.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	bookings, err := h.bookingUsecase.ListBookings(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "failed to get bookings")
		return
	}

	response.JSON(w, http.StatusOK, bookings)
}

// CreateBooking persists a new booking for the caller's patient
// profile. Unlike listing, a missing profile is an error here.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bookingID, err := h.bookingUsecase.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientProfileNotFound):
			response.BadRequest(w, "patient profile not found")
		case errors.Is(err, usecase.ErrInvalidDatetime):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrClinicianNotFound):
			response.BadRequest(w, "clinician not found")
		default:
			response.InternalServerError(w, "failed to create booking")
		}
		return
	}

	response.JSON(w, http.StatusCreated, dto.CreateBookingResponse{
		Msg:       "booking created",
		BookingID: bookingID,
	})
}
