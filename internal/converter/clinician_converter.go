package converter

import (
	"carebook/internal/delivery/dto"
	"carebook/internal/domain/entity"
)

// ClinicianToResponse expects the owning user to be preloaded; the
// directory entry is keyed by the clinician's user id, which is what
// bookings reference.
func ClinicianToResponse(profile *entity.ClinicianProfile) *dto.ClinicianResponse {
	if profile == nil {
		return nil
	}

	return &dto.ClinicianResponse{
		ID:             profile.UserID,
		Name:           profile.User.Name,
		Specialization: profile.Specialization,
		Biography:      profile.Biography,
	}
}

func CliniciansToResponses(profiles []entity.ClinicianProfile) []dto.ClinicianResponse {
	responses := make([]dto.ClinicianResponse, len(profiles))
	for i, profile := range profiles {
		resp := ClinicianToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
