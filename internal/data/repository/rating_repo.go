package repository

import (
	"context"
	"fmt"

	"store-ratings/internal/data/entity"
	"store-ratings/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *entity.Rating) error
	FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error)
	FindRatersByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreRater, error)
	StoreAverage(ctx context.Context, storeID uuid.UUID) (*float64, error)
	FindAllDetailed(ctx context.Context) ([]*entity.RatingDetail, error)
	CountAll(ctx context.Context) (int64, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

// Upsert inserts the rating or, when the (user, store) pair already has one,
// updates it in place. The unique constraint makes concurrent submissions of
// the same pair collapse into a single row. The stored row is written back
// into the argument.
func (rr *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, user_id, store_id, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := rr.db.QueryRow(ctx, query,
		rating.ID,
		rating.UserID,
		rating.StoreID,
		rating.Rating,
	).Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt)

	if err != nil {
		rr.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", rating.UserID.String()),
			zap.String("store_id", rating.StoreID.String()),
		)
		return fmt.Errorf("upsert rating for store %s by user %s: %w",
			rating.StoreID.String(), rating.UserID.String(), err)
	}

	return nil
}

func (rr *ratingRepository) FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error) {
	query := `
		SELECT id, user_id, store_id, rating, created_at, updated_at
		FROM ratings
		WHERE user_id = $1 AND store_id = $2
	`

	var rating entity.Rating
	err := rr.db.QueryRow(ctx, query, userID, storeID).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.StoreID,
		&rating.Rating,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find rating by user and store",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("find rating by user %s and store %s: %w",
			userID.String(), storeID.String(), err)
	}

	return &rating, nil
}

// FindRatersByStore returns each rating of the store with the submitting
// user's identity, newest first.
func (rr *ratingRepository) FindRatersByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreRater, error) {
	query := `
		SELECT u.id, u.name, u.email, r.rating, r.created_at
		FROM ratings r
		JOIN users u ON r.user_id = u.id
		WHERE r.store_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := rr.db.Query(ctx, query, storeID)
	if err != nil {
		rr.log.Error("Failed to find ratings by store",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("find ratings by store %s: %w", storeID.String(), err)
	}
	defer rows.Close()

	var raters []*entity.StoreRater
	for rows.Next() {
		var rater entity.StoreRater
		err := rows.Scan(
			&rater.UserID,
			&rater.Name,
			&rater.Email,
			&rater.Rating,
			&rater.CreatedAt,
		)
		if err != nil {
			rr.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		raters = append(raters, &rater)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate ratings rows: %w", err)
	}

	return raters, nil
}

// StoreAverage is the grouped mean rounded to 2 decimals; nil when the store
// has no ratings.
func (rr *ratingRepository) StoreAverage(ctx context.Context, storeID uuid.UUID) (*float64, error) {
	query := `SELECT ROUND(AVG(rating)::numeric, 2) FROM ratings WHERE store_id = $1`

	var avg *float64
	err := rr.db.QueryRow(ctx, query, storeID).Scan(&avg)
	if err != nil {
		rr.log.Error("Failed to get store average rating",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("store average rating for %s: %w", storeID.String(), err)
	}

	return avg, nil
}

// FindAllDetailed joins every rating with user and store identity, for the
// admin listing, newest first.
func (rr *ratingRepository) FindAllDetailed(ctx context.Context) ([]*entity.RatingDetail, error) {
	query := `
		SELECT r.id, r.user_id, r.store_id, r.rating, r.created_at, r.updated_at,
		       u.name AS user_name, u.email AS user_email,
		       s.name AS store_name, s.email AS store_email
		FROM ratings r
		JOIN users u ON r.user_id = u.id
		JOIN stores s ON r.store_id = s.id
		ORDER BY r.created_at DESC
	`

	rows, err := rr.db.Query(ctx, query)
	if err != nil {
		rr.log.Error("Failed to list all ratings", zap.Error(err))
		return nil, fmt.Errorf("list all ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*entity.RatingDetail
	for rows.Next() {
		var detail entity.RatingDetail
		err := rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.StoreID,
			&detail.Rating.Rating,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&detail.UserName,
			&detail.UserEmail,
			&detail.StoreName,
			&detail.StoreEmail,
		)
		if err != nil {
			rr.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, &detail)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate ratings rows: %w", err)
	}

	return ratings, nil
}

func (rr *ratingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM ratings`

	var count int64
	err := rr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		rr.log.Error("Failed to count ratings", zap.Error(err))
		return 0, fmt.Errorf("count all ratings: %w", err)
	}

	return count, nil
}
