package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusspace/backend/internal/app/models"
	"github.com/campusspace/backend/internal/app/models/dto"
	"github.com/campusspace/backend/internal/app/repositories"
	"github.com/campusspace/backend/internal/pkg/apperrors"
	"github.com/campusspace/backend/internal/pkg/auth"
)

// UserService handles teacher account operations. Every operation that needs
// an authenticated caller takes the identity explicitly; a nil caller means
// anonymous.
type UserService interface {
	Register(ctx context.Context, caller *models.CallerIdentity, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetTeachers(ctx context.Context) ([]*models.User, error)
	ChangeAdmin(ctx context.Context, caller *models.CallerIdentity, teacherID int64) (bool, error)
	DeleteTeacher(ctx context.Context, caller *models.CallerIdentity, teacherID int64) error
}

type userService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) UserService {
	return &userService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// requireAdmin checks the caller identity for the admin gate.
func requireAdmin(caller *models.CallerIdentity) error {
	if caller == nil {
		return apperrors.ErrNotAuthenticated
	}
	if !caller.IsAdmin {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// generateAccessToken reloads the account by ID and signs a token for it.
// Any failure here, including the account having vanished between creation
// and signing, collapses into ErrTokenGeneration. The real cause is logged
// so operators can still tell the cases apart.
func (s *userService) generateAccessToken(ctx context.Context, userID int64) (string, int, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Token issuance failed: could not load account")
		return "", 0, apperrors.ErrTokenGeneration
	}

	accessToken, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Token issuance failed: could not sign token")
		return "", 0, apperrors.ErrTokenGeneration
	}

	return accessToken, expiresIn, nil
}

// Register creates a new teacher account. Admin-only: anonymous callers get
// ErrNotAuthenticated, non-admins ErrPermissionDenied. The new account is
// always created with the admin flag off, and a session token is issued for
// it in a separate, non-transactional step.
func (s *userService) Register(ctx context.Context, caller *models.CallerIdentity, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperrors.ErrValidationFailed
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashed,
		IsAdmin:  false,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.ClearPassword()

	accessToken, expiresIn, err := s.generateAccessToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:        mapUserToResponse(user),
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	}, nil
}

// Login authenticates a teacher by email and password. An unknown email maps
// to ErrUserNotFound, a wrong password to ErrInvalidPassword.
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.ErrValidationFailed
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidPassword
	}

	user.ClearPassword()

	accessToken, expiresIn, err := s.generateAccessToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:        mapUserToResponse(user),
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
	}, nil
}

// GetTeachers returns every account without password hashes. An empty
// collection is reported as a not-found error rather than an empty list.
func (s *userService) GetTeachers(ctx context.Context) ([]*models.User, error) {
	teachers, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(teachers) == 0 {
		return nil, apperrors.NewResourceNotFoundError("Teachers not found")
	}

	return teachers, nil
}

// ChangeAdmin flips the admin flag of the target account and returns the new
// value. The flag is persisted directly without re-validating the rest of the
// record.
func (s *userService) ChangeAdmin(ctx context.Context, caller *models.CallerIdentity, teacherID int64) (bool, error) {
	if err := requireAdmin(caller); err != nil {
		return false, err
	}

	user, err := s.userRepo.GetByID(ctx, teacherID)
	if err != nil {
		return false, err
	}

	newAdmin := !user.IsAdmin
	if err := s.userRepo.SetAdmin(ctx, teacherID, newAdmin); err != nil {
		return false, err
	}

	return newAdmin, nil
}

// DeleteTeacher removes the target account unconditionally. Deleting an ID
// that matches nothing succeeds; absence records pointing at it are left in
// place and resolve to a nil teacher on read.
func (s *userService) DeleteTeacher(ctx context.Context, caller *models.CallerIdentity, teacherID int64) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	if teacherID <= 0 {
		return apperrors.NewBadRequestError("Teacher id is required")
	}

	return s.userRepo.Delete(ctx, teacherID)
}

// mapUserToResponse converts a user model to its response DTO.
func mapUserToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	}
}
