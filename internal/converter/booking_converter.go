package converter

import (
	"carebook/internal/delivery/dto"
	"carebook/internal/domain/entity"
)

// DatetimeLayout is the zone-less ISO-8601 form used on the wire for
// booking times, e.g. 2026-01-26T15:00:00.
const DatetimeLayout = "2006-01-02T15:04:05"

// BookingToResponse converts a Booking entity to its wire format.
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:          booking.ID,
		Service:     booking.Service,
		Datetime:    booking.ScheduledAt.Format(DatetimeLayout),
		Notes:       booking.Notes,
		ClinicianID: booking.ClinicianID,
	}
}

// BookingsToResponses converts a slice of bookings, preserving order.
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
