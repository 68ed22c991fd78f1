package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carebook/internal/delivery/dto"
	"carebook/internal/usecase"
	"carebook/pkg/validator"

	"github.com/google/uuid"
)

// --- mock usecase ---

type mockAuthUsecase struct {
	registerFn    func(ctx context.Context, req *dto.RegisterRequest) (uuid.UUID, error)
	loginFn       func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	currentUserFn func(ctx context.Context, userID uuid.UUID) (*dto.UserSummary, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (uuid.UUID, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return uuid.New(), nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return &dto.LoginResponse{}, nil
}

func (m *mockAuthUsecase) CurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserSummary, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx, userID)
	}
	return &dto.UserSummary{ID: userID}, nil
}

var _ usecase.AuthUsecase = (*mockAuthUsecase)(nil)

func newAuthHandler(uc *mockAuthUsecase) *AuthHandler {
	return NewAuthHandler(uc, validator.NewValidator())
}

func decodeMsg(t *testing.T, body string) string {
	t.Helper()
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("response is not valid JSON: %v (%s)", err, body)
	}
	msg, _ := parsed["msg"].(string)
	return msg
}

// --- tests ---

func TestRegisterHandler_Success(t *testing.T) {
	userID := uuid.New()
	uc := &mockAuthUsecase{
		registerFn: func(_ context.Context, req *dto.RegisterRequest) (uuid.UUID, error) {
			if req.Phone != "9876543210" || req.Password != "password" {
				t.Fatalf("unexpected request: %+v", req)
			}
			return userID, nil
		},
	}
	h := newAuthHandler(uc)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(
		`{"phone": "9876543210", "password": "password", "name": "Test Patient", "address": "Delhi, India"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var resp dto.RegisterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Msg != "registered" || resp.UserID != userID {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRegisterHandler_DuplicatePhone_Returns400(t *testing.T) {
	uc := &mockAuthUsecase{
		registerFn: func(_ context.Context, _ *dto.RegisterRequest) (uuid.UUID, error) {
			return uuid.Nil, usecase.ErrPhoneAlreadyExists
		},
	}
	h := newAuthHandler(uc)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(
		`{"phone": "9876543210", "password": "password"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeMsg(t, rec.Body.String()); msg != "user already exists" {
		t.Fatalf("expected msg %q, got %q", "user already exists", msg)
	}
}

func TestRegisterHandler_MissingFields_Returns400(t *testing.T) {
	called := false
	uc := &mockAuthUsecase{
		registerFn: func(_ context.Context, _ *dto.RegisterRequest) (uuid.UUID, error) {
			called = true
			return uuid.Nil, nil
		},
	}
	h := newAuthHandler(uc)

	for _, body := range []string{
		`{}`,
		`{"phone": "9876543210"}`,
		`{"password": "password"}`,
		`not json`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		h.Register(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
	if called {
		t.Fatal("invalid requests must not reach the usecase")
	}
}

func TestLoginHandler_Success(t *testing.T) {
	userID := uuid.New()
	uc := &mockAuthUsecase{
		loginFn: func(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
			return &dto.LoginResponse{
				AccessToken: "signed-token",
				User:        dto.UserSummary{ID: userID, Phone: "9876543210", Name: "Test Patient"},
			}, nil
		},
	}
	h := newAuthHandler(uc)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(
		`{"phone": "9876543210", "password": "password"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var resp dto.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.AccessToken != "signed-token" {
		t.Fatalf("expected access token in response, got %+v", resp)
	}
	if resp.User.ID != userID || resp.User.Phone != "9876543210" {
		t.Fatalf("unexpected user summary: %+v", resp.User)
	}
}

func TestLoginHandler_InvalidCredentials_Returns401(t *testing.T) {
	uc := &mockAuthUsecase{
		loginFn: func(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
			return nil, usecase.ErrInvalidCredentials
		},
	}
	h := newAuthHandler(uc)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(
		`{"phone": "9876543210", "password": "wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := decodeMsg(t, rec.Body.String()); msg != "invalid credentials" {
		t.Fatalf("expected msg %q, got %q", "invalid credentials", msg)
	}
}
