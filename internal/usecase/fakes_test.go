package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"store-ratings/internal/data/entity"
	"store-ratings/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. They honor the same contracts as the pgx
// implementations: nil for missing rows, sentinel errors for duplicates,
// idempotent deletes.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	// preset answer for OwnerAverageRating
	ownerAvg *float64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return fmt.Errorf("create user %s: %w", user.Email, repository.ErrDuplicate)
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, _ repository.UserFilter) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range f.users {
		clone := *user
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	user, ok := f.users[id]
	if !ok {
		return fmt.Errorf("update password for user %s: %w", id.String(), repository.ErrNotFound)
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) OwnerAverageRating(_ context.Context, _ uuid.UUID) (*float64, error) {
	return f.ownerAvg, nil
}

type fakeStoreRepo struct {
	stores map[uuid.UUID]*entity.Store
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: make(map[uuid.UUID]*entity.Store)}
}

func (f *fakeStoreRepo) Create(_ context.Context, store *entity.Store) error {
	for _, existing := range f.stores {
		if existing.Email == store.Email {
			return fmt.Errorf("create store %s: %w", store.Email, repository.ErrDuplicate)
		}
	}
	clone := *store
	f.stores[store.ID] = &clone
	return nil
}

func (f *fakeStoreRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.StoreWithStats, error) {
	store, ok := f.stores[id]
	if !ok {
		return nil, nil
	}
	return &entity.StoreWithStats{Store: *store}, nil
}

func (f *fakeStoreRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.stores[id]
	return ok, nil
}

func (f *fakeStoreRepo) FindAllWithStats(_ context.Context, _ repository.StoreFilter) ([]*entity.StoreWithStats, error) {
	var out []*entity.StoreWithStats
	for _, store := range f.stores {
		out = append(out, &entity.StoreWithStats{Store: *store})
	}
	return out, nil
}

func (f *fakeStoreRepo) FindAllForUser(_ context.Context, userID uuid.UUID, _ string, ownerOnly bool, _, _ string) ([]*entity.StoreForUser, error) {
	var out []*entity.StoreForUser
	for _, store := range f.stores {
		if ownerOnly && (store.OwnerID == nil || *store.OwnerID != userID) {
			continue
		}
		out = append(out, &entity.StoreForUser{Store: *store})
	}
	return out, nil
}

func (f *fakeStoreRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.stores)), nil
}

func (f *fakeStoreRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.stores, id)
	return nil
}

type ratingKey struct {
	userID  uuid.UUID
	storeID uuid.UUID
}

type fakeRatingRepo struct {
	ratings map[ratingKey]*entity.Rating
	users   *fakeUserRepo // rater identity for the owner view
}

func newFakeRatingRepo(users *fakeUserRepo) *fakeRatingRepo {
	return &fakeRatingRepo{
		ratings: make(map[ratingKey]*entity.Rating),
		users:   users,
	}
}

func (f *fakeRatingRepo) Upsert(_ context.Context, rating *entity.Rating) error {
	key := ratingKey{userID: rating.UserID, storeID: rating.StoreID}
	now := time.Now()

	if existing, ok := f.ratings[key]; ok {
		existing.Rating = rating.Rating
		existing.UpdatedAt = now
		*rating = *existing
		return nil
	}

	rating.CreatedAt = now
	rating.UpdatedAt = now
	clone := *rating
	f.ratings[key] = &clone
	return nil
}

func (f *fakeRatingRepo) FindByUserAndStore(_ context.Context, userID, storeID uuid.UUID) (*entity.Rating, error) {
	rating, ok := f.ratings[ratingKey{userID: userID, storeID: storeID}]
	if !ok {
		return nil, nil
	}
	clone := *rating
	return &clone, nil
}

func (f *fakeRatingRepo) FindRatersByStore(_ context.Context, storeID uuid.UUID) ([]*entity.StoreRater, error) {
	var out []*entity.StoreRater
	for key, rating := range f.ratings {
		if key.storeID != storeID {
			continue
		}
		rater := &entity.StoreRater{
			UserID:    key.userID,
			Rating:    rating.Rating,
			CreatedAt: rating.CreatedAt,
		}
		if user, ok := f.users.users[key.userID]; ok {
			rater.Name = user.Name
			rater.Email = user.Email
		}
		out = append(out, rater)
	}
	return out, nil
}

func (f *fakeRatingRepo) StoreAverage(_ context.Context, storeID uuid.UUID) (*float64, error) {
	var sum, count float64
	for key, rating := range f.ratings {
		if key.storeID == storeID {
			sum += float64(rating.Rating)
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := math.Round(sum/count*100) / 100
	return &avg, nil
}

func (f *fakeRatingRepo) FindAllDetailed(_ context.Context) ([]*entity.RatingDetail, error) {
	var out []*entity.RatingDetail
	for _, rating := range f.ratings {
		detail := &entity.RatingDetail{Rating: *rating}
		if user, ok := f.users.users[rating.UserID]; ok {
			detail.UserName = user.Name
			detail.UserEmail = user.Email
		}
		out = append(out, detail)
	}
	return out, nil
}

func (f *fakeRatingRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.ratings)), nil
}

// newFakeRepository bundles the fakes the way main bundles the real ones.
func newFakeRepository() (*repository.Repository, *fakeUserRepo, *fakeStoreRepo, *fakeRatingRepo) {
	users := newFakeUserRepo()
	stores := newFakeStoreRepo()
	ratings := newFakeRatingRepo(users)

	return &repository.Repository{
		User:   users,
		Store:  stores,
		Rating: ratings,
	}, users, stores, ratings
}
