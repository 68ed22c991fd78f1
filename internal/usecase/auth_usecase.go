package usecase

import (
	"context"
	"errors"
	"strings"

	"carebook/internal/converter"
	"carebook/internal/delivery/dto"
	"carebook/internal/domain/entity"
	"carebook/internal/domain/repository"
	"carebook/internal/service"
	"carebook/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPhoneAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both an unknown phone and a wrong
	// password so responses cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserSummary, error)
}

type authUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.Service
	throttle   service.LoginThrottle
	audit      service.AuditRecorder
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.Service,
	throttle service.LoginThrottle,
	audit service.AuditRecorder,
) AuthUsecase {
	return &authUsecase{
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
		throttle:   throttle,
		audit:      audit,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (uuid.UUID, error) {
	existing, err := u.userRepo.FindByPhone(ctx, req.Phone)
	if err != nil {
		u.log.Warnf("Failed to look up phone during registration: %+v", err)
		return uuid.Nil, err
	}
	if existing != nil {
		return uuid.Nil, ErrPhoneAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return uuid.Nil, err
	}

	user := &entity.User{
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Role:         entity.RolePatient,
	}
	profile := &entity.PatientProfile{
		Address: req.Address,
	}

	// User and profile are created in one transaction; neither row
	// survives a partial failure.
	if err := u.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		// A concurrent registration can slip past the lookup above and
		// hit the unique constraint instead.
		if isDuplicateKeyError(err, "phone") {
			return uuid.Nil, ErrPhoneAlreadyExists
		}
		u.log.Warnf("Failed to create user with profile: %+v", err)
		return uuid.Nil, err
	}

	u.audit.Record(ctx, &user.ID, entity.AuditActionUserRegister, entity.JSON{
		"phone": user.Phone,
	})

	return user.ID, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := u.throttle.Check(ctx, req.Phone); err != nil {
		if errors.Is(err, service.ErrTooManyLoginAttempts) {
			return nil, err
		}
		u.log.Warnf("Login throttle check failed: %+v", err)
		return nil, err
	}

	user, err := u.userRepo.FindByPhone(ctx, req.Phone)
	if err != nil {
		u.log.Warnf("Failed to find user by phone: %+v", err)
		return nil, err
	}
	if user == nil {
		u.recordFailedAttempt(ctx, req.Phone)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		u.recordFailedAttempt(ctx, req.Phone)
		return nil, ErrInvalidCredentials
	}

	if err := u.throttle.Reset(ctx, req.Phone); err != nil {
		u.log.Warnf("Failed to reset login attempt counter: %+v", err)
	}

	accessToken, err := u.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, &user.ID, entity.AuditActionUserLogin, nil)

	return &dto.LoginResponse{
		AccessToken: accessToken,
		User:        *converter.UserToSummary(user),
	}, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserSummary, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToSummary(user), nil
}

func (u *authUsecase) recordFailedAttempt(ctx context.Context, phone string) {
	if err := u.throttle.RecordFailure(ctx, phone); err != nil {
		u.log.Warnf("Failed to record failed login attempt: %+v", err)
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
