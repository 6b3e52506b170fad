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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StoreService interface {
	Create(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error)
	ListAdmin(ctx context.Context, query *request.ListStoresQuery) ([]response.StoreWithStatsResponse, error)
	ListForUser(ctx context.Context, userID uuid.UUID, role entity.UserRole, query *request.UserStoresQuery) ([]response.StoreForUserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.StoreWithStatsResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type storeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStoreService(repo *repository.Repository, log *zap.Logger) StoreService {
	return &storeService{
		repo: repo,
		log:  log,
	}
}

// Create adds a store, optionally assigned to an owner. The owner must be an
// existing user holding the store_owner role.
func (s *storeService) Create(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error) {
	var ownerID *uuid.UUID
	if req.OwnerID != nil {
		parsed, err := uuid.Parse(*req.OwnerID)
		if err != nil {
			return nil, ErrInvalidOwner
		}

		owner, err := s.repo.User.FindByID(ctx, parsed)
		if err != nil {
			s.log.Error("Failed to look up store owner", zap.Error(err), zap.String("owner_id", parsed.String()))
			return nil, fmt.Errorf("find owner: %w", err)
		}
		if owner == nil || owner.Role != entity.RoleStoreOwner {
			return nil, ErrInvalidOwner
		}

		ownerID = &parsed
	}

	now := time.Now()
	store := &entity.Store{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: ownerID,
	}

	if err := s.repo.Store.Create(ctx, store); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrStoreEmailTaken
		}
		s.log.Error("Failed to create store", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create store: %w", err)
	}

	s.log.Info("Store created",
		zap.String("store_id", store.ID.String()),
		zap.String("name", store.Name))

	resp := response.StoreToResponse(store)
	return &resp, nil
}

func (s *storeService) ListAdmin(ctx context.Context, query *request.ListStoresQuery) ([]response.StoreWithStatsResponse, error) {
	stores, err := s.repo.Store.FindAllWithStats(ctx, repository.StoreFilter{
		Name:    query.Name,
		Email:   query.Email,
		Address: query.Address,
		SortBy:  query.SortBy,
		Order:   query.Order,
	})
	if err != nil {
		s.log.Error("Failed to list stores", zap.Error(err))
		return nil, fmt.Errorf("list stores: %w", err)
	}

	responses := make([]response.StoreWithStatsResponse, 0, len(stores))
	for _, store := range stores {
		responses = append(responses, response.StoreWithStatsToResponse(store))
	}

	return responses, nil
}

// ListForUser lists stores with the requester's own rating attached. The
// owner-only flag is honored only for store owners.
func (s *storeService) ListForUser(ctx context.Context, userID uuid.UUID, role entity.UserRole, query *request.UserStoresQuery) ([]response.StoreForUserResponse, error) {
	ownerOnly := query.OwnerOnly && role == entity.RoleStoreOwner

	stores, err := s.repo.Store.FindAllForUser(ctx, userID, query.Search, ownerOnly, query.SortBy, query.Order)
	if err != nil {
		s.log.Error("Failed to list stores for user",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list stores for user: %w", err)
	}

	responses := make([]response.StoreForUserResponse, 0, len(stores))
	for _, store := range stores {
		responses = append(responses, response.StoreForUserToResponse(store))
	}

	return responses, nil
}

func (s *storeService) GetByID(ctx context.Context, id uuid.UUID) (*response.StoreWithStatsResponse, error) {
	store, err := s.repo.Store.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find store", zap.Error(err), zap.String("store_id", id.String()))
		return nil, fmt.Errorf("find store: %w", err)
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}

	resp := response.StoreWithStatsToResponse(store)
	return &resp, nil
}

// Delete is idempotent: removing an already-removed store succeeds.
func (s *storeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Store.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete store", zap.Error(err), zap.String("store_id", id.String()))
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}
