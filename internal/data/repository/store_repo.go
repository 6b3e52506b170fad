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

// StoreFilter narrows and orders the admin store listing.
type StoreFilter struct {
	Name    string
	Email   string
	Address string
	SortBy  string
	Order   string
}

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StoreWithStats, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	FindAllWithStats(ctx context.Context, filter StoreFilter) ([]*entity.StoreWithStats, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, search string, ownerOnly bool, sortBy, order string) ([]*entity.StoreForUser, error)
	CountAll(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type storeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoreRepository(db database.PgxIface, log *zap.Logger) StoreRepository {
	return &storeRepository{
		db:  db,
		log: log.With(zap.String("repository", "store")),
	}
}

func (sr *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, email, address, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := sr.db.Exec(ctx, query,
		store.ID,
		store.Name,
		store.Email,
		store.Address,
		store.OwnerID,
		store.CreatedAt,
		store.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create store %s: %w", store.Email, ErrDuplicate)
		}
		sr.log.Error("Failed to create store",
			zap.Error(err),
			zap.String("email", store.Email),
		)
		return fmt.Errorf("create store %s: %w", store.Email, err)
	}

	return nil
}

// FindByID returns the store together with its rating aggregates.
func (sr *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StoreWithStats, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at, s.updated_at,
		       ROUND(AVG(r.rating)::numeric, 2) AS average_rating,
		       COUNT(r.id) AS total_ratings,
		       u.name AS owner_name
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		LEFT JOIN users u ON s.owner_id = u.id
		WHERE s.id = $1
		GROUP BY s.id, u.name
	`

	var store entity.StoreWithStats
	err := sr.db.QueryRow(ctx, query, id).Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
		&store.UpdatedAt,
		&store.AverageRating,
		&store.TotalRatings,
		&store.OwnerName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store by ID",
			zap.Error(err),
			zap.String("store_id", id.String()),
		)
		return nil, fmt.Errorf("find store by ID %s: %w", id.String(), err)
	}

	return &store, nil
}

func (sr *storeRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM stores WHERE id = $1)`

	var exists bool
	err := sr.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		sr.log.Error("Failed to check store existence",
			zap.Error(err),
			zap.String("store_id", id.String()),
		)
		return false, fmt.Errorf("check store %s exists: %w", id.String(), err)
	}

	return exists, nil
}

// FindAllWithStats is the admin listing: aggregates, rating count, and the
// owner's name per store.
func (sr *storeRepository) FindAllWithStats(ctx context.Context, filter StoreFilter) ([]*entity.StoreWithStats, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at, s.updated_at,
		       ROUND(AVG(r.rating)::numeric, 2) AS average_rating,
		       COUNT(r.id) AS total_ratings,
		       u.name AS owner_name
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		LEFT JOIN users u ON s.owner_id = u.id
		WHERE 1=1
	`

	var args []any

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		query += fmt.Sprintf(" AND s.name ILIKE $%d", len(args))
	}
	if filter.Email != "" {
		args = append(args, "%"+filter.Email+"%")
		query += fmt.Sprintf(" AND s.email ILIKE $%d", len(args))
	}
	if filter.Address != "" {
		args = append(args, "%"+filter.Address+"%")
		query += fmt.Sprintf(" AND s.address ILIKE $%d", len(args))
	}

	query += " GROUP BY s.id, u.name"
	query += orderByClause(storeSortColumns, filter.SortBy, filter.Order)

	rows, err := sr.db.Query(ctx, query, args...)
	if err != nil {
		sr.log.Error("Failed to list stores", zap.Error(err))
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var stores []*entity.StoreWithStats
	for rows.Next() {
		var store entity.StoreWithStats
		err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Email,
			&store.Address,
			&store.OwnerID,
			&store.CreatedAt,
			&store.UpdatedAt,
			&store.AverageRating,
			&store.TotalRatings,
			&store.OwnerName,
		)
		if err != nil {
			sr.log.Error("Failed to scan store row", zap.Error(err))
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		stores = append(stores, &store)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate stores rows: %w", err)
	}

	return stores, nil
}

// FindAllForUser lists stores with aggregates plus the requesting user's own
// rating. search matches name or address; ownerOnly restricts to stores the
// requester owns.
func (sr *storeRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, search string, ownerOnly bool, sortBy, order string) ([]*entity.StoreForUser, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id, s.created_at, s.updated_at,
		       ROUND(AVG(r.rating)::numeric, 2) AS average_rating,
		       ur.rating AS user_rating
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		LEFT JOIN ratings ur ON s.id = ur.store_id AND ur.user_id = $1
		WHERE 1=1
	`

	args := []any{userID}

	if ownerOnly {
		args = append(args, userID)
		query += fmt.Sprintf(" AND s.owner_id = $%d", len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(" AND (s.name ILIKE $%d OR s.address ILIKE $%d)", len(args), len(args))
	}

	query += " GROUP BY s.id, ur.rating"
	query += orderByClause(storeSortColumns, sortBy, order)

	rows, err := sr.db.Query(ctx, query, args...)
	if err != nil {
		sr.log.Error("Failed to list stores for user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list stores for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var stores []*entity.StoreForUser
	for rows.Next() {
		var store entity.StoreForUser
		err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Email,
			&store.Address,
			&store.OwnerID,
			&store.CreatedAt,
			&store.UpdatedAt,
			&store.AverageRating,
			&store.UserRating,
		)
		if err != nil {
			sr.log.Error("Failed to scan store row", zap.Error(err))
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		stores = append(stores, &store)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate stores rows: %w", err)
	}

	return stores, nil
}

func (sr *storeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM stores`

	var count int64
	err := sr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		sr.log.Error("Failed to count stores", zap.Error(err))
		return 0, fmt.Errorf("count all stores: %w", err)
	}

	return count, nil
}

// Delete removes the store; its ratings cascade. Deleting a missing store is
// not an error.
func (sr *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM stores WHERE id = $1`

	_, err := sr.db.Exec(ctx, query, id)
	if err != nil {
		sr.log.Error("Failed to delete store",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete store %s: %w", id.String(), err)
	}

	sr.log.Info("Store deleted", zap.String("id", id.String()))
	return nil
}
