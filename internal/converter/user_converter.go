package converter

import (
	"carebook/internal/delivery/dto"
	"carebook/internal/domain/entity"
)

// UserToSummary converts a User entity to the minimal identity block
// returned on login and /me.
func UserToSummary(user *entity.User) *dto.UserSummary {
	if user == nil {
		return nil
	}

	return &dto.UserSummary{
		ID:    user.ID,
		Phone: user.Phone,
		Name:  user.Name,
	}
}
