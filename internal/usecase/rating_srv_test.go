package usecase

import (
	"context"
	"testing"
	"time"

	"store-ratings/internal/data/entity"
	"store-ratings/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedStore(t *testing.T, stores *fakeStoreRepo, name string, ownerID *uuid.UUID) *entity.Store {
	t.Helper()

	now := time.Now()
	store := &entity.Store{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    name,
		Email:   name + "@example.com",
		Address: "12 Market Street",
		OwnerID: ownerID,
	}
	require.NoError(t, stores.Create(context.Background(), store))
	return store
}

func TestRatingSubmit(t *testing.T) {
	repo, users, stores, _ := newFakeRepository()
	svc := NewRatingService(repo, zap.NewNop())

	user := seedUser(t, users, "Jonathan Michael Harrington", "jonathan@example.com", "Sup3rSecret!", entity.RoleNormalUser)
	store := seedStore(t, stores, "corner-books", nil)

	resp, err := svc.Submit(context.Background(), user.ID, &request.SubmitRatingRequest{
		StoreID: store.ID.String(),
		Rating:  4,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, 4, resp.Rating)
	assert.Equal(t, user.ID.String(), resp.UserID)
	assert.Equal(t, store.ID.String(), resp.StoreID)
}

func TestRatingSubmitUnknownStore(t *testing.T) {
	repo, users, _, _ := newFakeRepository()
	svc := NewRatingService(repo, zap.NewNop())

	user := seedUser(t, users, "Jonathan Michael Harrington", "jonathan@example.com", "Sup3rSecret!", entity.RoleNormalUser)

	resp, err := svc.Submit(context.Background(), user.ID, &request.SubmitRatingRequest{
		StoreID: uuid.New().String(),
		Rating:  3,
	})
	assert.ErrorIs(t, err, ErrStoreNotFound)
	assert.Nil(t, resp)
}

// Submitting twice for the same store must replace the earlier value, not
// add a second row.
func TestRatingResubmitReplaces(t *testing.T) {
	repo, users, stores, ratings := newFakeRepository()
	svc := NewRatingService(repo, zap.NewNop())

	user := seedUser(t, users, "Jonathan Michael Harrington", "jonathan@example.com", "Sup3rSecret!", entity.RoleNormalUser)
	store := seedStore(t, stores, "corner-books", nil)

	_, err := svc.Submit(context.Background(), user.ID, &request.SubmitRatingRequest{
		StoreID: store.ID.String(),
		Rating:  3,
	})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), user.ID, &request.SubmitRatingRequest{
		StoreID: store.ID.String(),
		Rating:  5,
	})
	require.NoError(t, err)

	count, err := ratings.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	current, err := svc.GetUserRating(context.Background(), user.ID, store.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, current.Rating)
}

func TestRatingGetUserRatingNotFound(t *testing.T) {
	repo, _, stores, _ := newFakeRepository()
	svc := NewRatingService(repo, zap.NewNop())

	store := seedStore(t, stores, "corner-books", nil)

	resp, err := svc.GetUserRating(context.Background(), uuid.New(), store.ID)
	assert.ErrorIs(t, err, ErrRatingNotFound)
	assert.Nil(t, resp)
}

func TestRatingGetStoreRatings(t *testing.T) {
	repo, users, stores, _ := newFakeRepository()
	svc := NewRatingService(repo, zap.NewNop())

	owner := seedUser(t, users, "Alexandra Josephine Whitfield", "alexandra@example.com", "Sup3rSecret!", entity.RoleStoreOwner)
	rater := seedUser(t, users, "Jonathan Michael Harrington", "jonathan@example.com", "Sup3rSecret!", entity.RoleNormalUser)
	store := seedStore(t, stores, "corner-books", &owner.ID)

	_, err := svc.Submit(context.Background(), rater.ID, &request.SubmitRatingRequest{
		StoreID: store.ID.String(),
		Rating:  4,
	})
	require.NoError(t, err)

	resp, err := svc.GetStoreRatings(context.Background(), owner.ID, store.ID)
	require.NoError(t, err)
	require.Len(t, resp.Ratings, 1)

	assert.Equal(t, rater.ID.String(), resp.Ratings[0].UserID)
	assert.Equal(t, "Jonathan Michael Harrington", resp.Ratings[0].Name)
	assert.Equal(t, 4, resp.Ratings[0].Rating)
	require.NotNil(t, resp.AverageRating)
	assert.InDelta(t, 4.0, *resp.AverageRating, 0.001)
}

func TestRatingGetStoreRatingsNotOwner(t *testing.T) {
	repo, users, stores, _ := newFakeRepository()
	svc := NewRatingService(repo, zap.NewNop())

	owner := seedUser(t, users, "Alexandra Josephine Whitfield", "alexandra@example.com", "Sup3rSecret!", entity.RoleStoreOwner)
	other := seedUser(t, users, "Jonathan Michael Harrington", "jonathan@example.com", "Sup3rSecret!", entity.RoleStoreOwner)
	store := seedStore(t, stores, "corner-books", &owner.ID)

	resp, err := svc.GetStoreRatings(context.Background(), other.ID, store.ID)
	assert.ErrorIs(t, err, ErrNotStoreOwner)
	assert.Nil(t, resp)
}

func TestRatingGetStoreRatingsUnownedStore(t *testing.T) {
	repo, users, stores, _ := newFakeRepository()
	svc := NewRatingService(repo, zap.NewNop())

	requester := seedUser(t, users, "Alexandra Josephine Whitfield", "alexandra@example.com", "Sup3rSecret!", entity.RoleStoreOwner)
	store := seedStore(t, stores, "corner-books", nil)

	resp, err := svc.GetStoreRatings(context.Background(), requester.ID, store.ID)
	assert.ErrorIs(t, err, ErrNotStoreOwner)
	assert.Nil(t, resp)
}

func TestRatingGetStoreRatingsUnknownStore(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewRatingService(repo, zap.NewNop())

	resp, err := svc.GetStoreRatings(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrStoreNotFound)
	assert.Nil(t, resp)
}

func TestRatingListAll(t *testing.T) {
	repo, users, stores, _ := newFakeRepository()
	svc := NewRatingService(repo, zap.NewNop())

	rater := seedUser(t, users, "Jonathan Michael Harrington", "jonathan@example.com", "Sup3rSecret!", entity.RoleNormalUser)
	store := seedStore(t, stores, "corner-books", nil)

	_, err := svc.Submit(context.Background(), rater.ID, &request.SubmitRatingRequest{
		StoreID: store.ID.String(),
		Rating:  2,
	})
	require.NoError(t, err)

	details, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Jonathan Michael Harrington", details[0].UserName)
	assert.Equal(t, 2, details[0].Rating)
}
