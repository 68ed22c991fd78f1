package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"carebook/internal/delivery/dto"
	"carebook/internal/delivery/http/middleware"
	"carebook/internal/service"
	"carebook/internal/usecase"
	"carebook/pkg/response"
	"carebook/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Register creates a user and their patient profile. Duplicate phone
// numbers answer 400 to match the established wire contract.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	userID, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPhoneAlreadyExists):
			response.BadRequest(w, "user already exists")
		default:
			response.InternalServerError(w, "failed to register user")
		}
		return
	}

	response.JSON(w, http.StatusCreated, dto.RegisterResponse{
		Msg:    "registered",
		UserID: userID,
	})
}

// Login verifies credentials and issues a bearer token. Unknown phone
// and wrong password are indistinguishable in the response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.Unauthorized(w, "invalid credentials")
		case errors.Is(err, service.ErrTooManyLoginAttempts):
			response.TooManyRequests(w, err.Error())
		default:
			response.InternalServerError(w, "failed to login")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Me returns the authenticated user's summary.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	user, err := h.authUsecase.CurrentUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.Unauthorized(w, "user not found")
		default:
			response.InternalServerError(w, "failed to get user info")
		}
		return
	}

	response.JSON(w, http.StatusOK, user)
}
