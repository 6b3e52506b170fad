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
	"store-ratings/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	List(ctx context.Context, query *request.ListUsersQuery) ([]response.UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DashboardStats(ctx context.Context) (*response.DashboardResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

// Create adds a user with an explicitly chosen role. Admin only; the role is
// fixed at creation and never updated afterwards.
func (s *userService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
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
		Role:         entity.UserRole(req.Role),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("role", req.Role))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, query *request.ListUsersQuery) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx, repository.UserFilter{
		Name:    query.Name,
		Email:   query.Email,
		Address: query.Address,
		Role:    query.Role,
		SortBy:  query.SortBy,
		Order:   query.Order,
	})
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	responses := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, response.UserToResponse(user))
	}

	return responses, nil
}

// GetByID returns the user; for store owners the mean rating across their
// stores is attached.
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)

	if user.Role == entity.RoleStoreOwner {
		avg, err := s.repo.User.OwnerAverageRating(ctx, user.ID)
		if err != nil {
			s.log.Error("Failed to get owner average rating",
				zap.Error(err), zap.String("user_id", id.String()))
			return nil, fmt.Errorf("owner average rating: %w", err)
		}
		resp.AverageRating = avg
	}

	return &resp, nil
}

// Delete is idempotent: removing an already-removed user succeeds.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *userService) DashboardStats(ctx context.Context) (*response.DashboardResponse, error) {
	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalStores, err := s.repo.Store.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count stores: %w", err)
	}

	totalRatings, err := s.repo.Rating.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count ratings: %w", err)
	}

	return &response.DashboardResponse{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}
