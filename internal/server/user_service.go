package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nikhil/placement-hub/internal/config"
	"github.com/nikhil/placement-hub/internal/db"
	"github.com/nikhil/placement-hub/internal/types"
)

// UserStore is the subset of the database the user service needs. Declared
// here so auth logic is testable against a fake.
type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CreateProfile(ctx context.Context, userID uuid.UUID, role, fullName, email string) (*types.Profile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
}

// UserService provides business logic for account registration and login.
type UserService struct {
	db             UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             store,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new account and its profile row. Role defaults to
// student. Duplicate emails surface as ErrEmailAlreadyExists regardless of
// which step detects them.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.Profile, error) {
	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = types.RoleStudent
	}

	userID, err := s.db.CreateUser(ctx, req.Email, passwordHash)
	if err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			return nil, &ErrEmailAlreadyExists{Email: req.Email}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile, err := s.db.CreateProfile(ctx, userID, role, req.FullName, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// Login authenticates a user and returns their profile. A missing account
// and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.Profile, error) {
	user, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	profile, err := s.db.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		// Account rows without a profile should not exist; treat as a login
		// failure rather than leaking internals.
		return nil, &ErrInvalidCredentials{}
	}

	return profile, nil
}
