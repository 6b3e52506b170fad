package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"store-ratings/internal/data/entity"
	"store-ratings/internal/data/repository"
	"store-ratings/internal/dto/request"
	"store-ratings/internal/dto/response"
	"store-ratings/pkg/token"
	"store-ratings/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	tokens *token.JWT
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, tokens *token.JWT, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		log:    log,
	}
}

// Signup registers a new account. Self-service signups are always normal
// users; other roles are assigned by an admin through the users endpoint.
func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		Address:      req.Address,
		PasswordHash: hashedPassword,
		Role:         entity.RoleNormalUser,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Same answer for unknown email and wrong password.
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	tokenString, expiresAt, err := s.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return &response.AuthResponse{
		Token:     tokenString,
		ExpiresAt: expiresAt,
		User:      response.UserToSummary(user),
	}, nil
}

// UpdatePassword replaces the caller's password after verifying the old one.
func (s *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		s.log.Warn("Old password mismatch", zap.String("user_id", userID.String()))
		return ErrOldPasswordMismatch
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password updated", zap.String("user_id", userID.String()))
	return nil
}
