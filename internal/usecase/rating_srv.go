package usecase

import (
	"context"
	"fmt"

	"store-ratings/internal/data/entity"
	"store-ratings/internal/data/repository"
	"store-ratings/internal/dto/request"
	"store-ratings/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingService interface {
	Submit(ctx context.Context, userID uuid.UUID, req *request.SubmitRatingRequest) (*response.RatingResponse, error)
	GetUserRating(ctx context.Context, userID, storeID uuid.UUID) (*response.RatingResponse, error)
	GetStoreRatings(ctx context.Context, requesterID, storeID uuid.UUID) (*response.StoreRatingsResponse, error)
	ListAll(ctx context.Context) ([]response.RatingDetailResponse, error)
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log,
	}
}

// Submit records the user's rating for a store. A repeated submission for
// the same store replaces the earlier value; there is never more than one
// row per (user, store).
func (s *ratingService) Submit(ctx context.Context, userID uuid.UUID, req *request.SubmitRatingRequest) (*response.RatingResponse, error) {
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return nil, ErrStoreNotFound
	}

	exists, err := s.repo.Store.Exists(ctx, storeID)
	if err != nil {
		s.log.Error("Failed to check store", zap.Error(err), zap.String("store_id", storeID.String()))
		return nil, fmt.Errorf("check store: %w", err)
	}
	if !exists {
		return nil, ErrStoreNotFound
	}

	rating := &entity.Rating{
		Base: entity.Base{
			ID: uuid.New(),
		},
		UserID:  userID,
		StoreID: storeID,
		Rating:  req.Rating,
	}

	if err := s.repo.Rating.Upsert(ctx, rating); err != nil {
		s.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("store_id", storeID.String()))
		return nil, fmt.Errorf("upsert rating: %w", err)
	}

	s.log.Info("Rating submitted",
		zap.String("user_id", userID.String()),
		zap.String("store_id", storeID.String()),
		zap.Int("rating", req.Rating))

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

func (s *ratingService) GetUserRating(ctx context.Context, userID, storeID uuid.UUID) (*response.RatingResponse, error) {
	rating, err := s.repo.Rating.FindByUserAndStore(ctx, userID, storeID)
	if err != nil {
		s.log.Error("Failed to find rating",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("store_id", storeID.String()))
		return nil, fmt.Errorf("find rating: %w", err)
	}
	if rating == nil {
		return nil, ErrRatingNotFound
	}

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

// GetStoreRatings is the owner's view of their store. Role membership is
// checked at the route; ownership of this particular store is checked here.
func (s *ratingService) GetStoreRatings(ctx context.Context, requesterID, storeID uuid.UUID) (*response.StoreRatingsResponse, error) {
	store, err := s.repo.Store.FindByID(ctx, storeID)
	if err != nil {
		s.log.Error("Failed to find store", zap.Error(err), zap.String("store_id", storeID.String()))
		return nil, fmt.Errorf("find store: %w", err)
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}

	if store.OwnerID == nil || *store.OwnerID != requesterID {
		s.log.Warn("Ratings view denied: requester does not own store",
			zap.String("requester_id", requesterID.String()),
			zap.String("store_id", storeID.String()))
		return nil, ErrNotStoreOwner
	}

	raters, err := s.repo.Rating.FindRatersByStore(ctx, storeID)
	if err != nil {
		s.log.Error("Failed to list store ratings", zap.Error(err), zap.String("store_id", storeID.String()))
		return nil, fmt.Errorf("list store ratings: %w", err)
	}

	avg, err := s.repo.Rating.StoreAverage(ctx, storeID)
	if err != nil {
		s.log.Error("Failed to get store average", zap.Error(err), zap.String("store_id", storeID.String()))
		return nil, fmt.Errorf("store average: %w", err)
	}

	resp := &response.StoreRatingsResponse{
		Ratings:       make([]response.StoreRaterResponse, 0, len(raters)),
		AverageRating: avg,
	}
	for _, rater := range raters {
		resp.Ratings = append(resp.Ratings, response.StoreRaterToResponse(rater))
	}

	return resp, nil
}

func (s *ratingService) ListAll(ctx context.Context) ([]response.RatingDetailResponse, error) {
	details, err := s.repo.Rating.FindAllDetailed(ctx)
	if err != nil {
		s.log.Error("Failed to list all ratings", zap.Error(err))
		return nil, fmt.Errorf("list all ratings: %w", err)
	}

	responses := make([]response.RatingDetailResponse, 0, len(details))
	for _, detail := range details {
		responses = append(responses, response.RatingDetailToResponse(detail))
	}

	return responses, nil
}
