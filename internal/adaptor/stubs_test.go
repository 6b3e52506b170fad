package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"store-ratings/internal/data/entity"
	"store-ratings/internal/dto/request"
	"store-ratings/internal/dto/response"
	"store-ratings/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Function-field stubs for the service interfaces. A nil field means the
// test does not expect that method to be reached.

type stubAuthService struct {
	signupFn         func(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error)
	loginFn          func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	updatePasswordFn func(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error
}

func (s *stubAuthService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	return s.signupFn(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error {
	return s.updatePasswordFn(ctx, userID, req)
}

type stubRatingService struct {
	submitFn          func(ctx context.Context, userID uuid.UUID, req *request.SubmitRatingRequest) (*response.RatingResponse, error)
	getUserRatingFn   func(ctx context.Context, userID, storeID uuid.UUID) (*response.RatingResponse, error)
	getStoreRatingsFn func(ctx context.Context, requesterID, storeID uuid.UUID) (*response.StoreRatingsResponse, error)
	listAllFn         func(ctx context.Context) ([]response.RatingDetailResponse, error)
}

func (s *stubRatingService) Submit(ctx context.Context, userID uuid.UUID, req *request.SubmitRatingRequest) (*response.RatingResponse, error) {
	return s.submitFn(ctx, userID, req)
}

func (s *stubRatingService) GetUserRating(ctx context.Context, userID, storeID uuid.UUID) (*response.RatingResponse, error) {
	return s.getUserRatingFn(ctx, userID, storeID)
}

func (s *stubRatingService) GetStoreRatings(ctx context.Context, requesterID, storeID uuid.UUID) (*response.StoreRatingsResponse, error) {
	return s.getStoreRatingsFn(ctx, requesterID, storeID)
}

func (s *stubRatingService) ListAll(ctx context.Context) ([]response.RatingDetailResponse, error) {
	return s.listAllFn(ctx)
}

type stubUserService struct {
	createFn         func(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	listFn           func(ctx context.Context, query *request.ListUsersQuery) ([]response.UserResponse, error)
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	deleteFn         func(ctx context.Context, id uuid.UUID) error
	dashboardStatsFn func(ctx context.Context) (*response.DashboardResponse, error)
}

func (s *stubUserService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubUserService) List(ctx context.Context, query *request.ListUsersQuery) ([]response.UserResponse, error) {
	return s.listFn(ctx, query)
}

func (s *stubUserService) GetByID(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func (s *stubUserService) DashboardStats(ctx context.Context) (*response.DashboardResponse, error) {
	return s.dashboardStatsFn(ctx)
}

type stubStoreService struct {
	createFn      func(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error)
	listAdminFn   func(ctx context.Context, query *request.ListStoresQuery) ([]response.StoreWithStatsResponse, error)
	listForUserFn func(ctx context.Context, userID uuid.UUID, role entity.UserRole, query *request.UserStoresQuery) ([]response.StoreForUserResponse, error)
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*response.StoreWithStatsResponse, error)
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (s *stubStoreService) Create(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubStoreService) ListAdmin(ctx context.Context, query *request.ListStoresQuery) ([]response.StoreWithStatsResponse, error) {
	return s.listAdminFn(ctx, query)
}

func (s *stubStoreService) ListForUser(ctx context.Context, userID uuid.UUID, role entity.UserRole, query *request.UserStoresQuery) ([]response.StoreForUserResponse, error) {
	return s.listForUserFn(ctx, userID, role, query)
}

func (s *stubStoreService) GetByID(ctx context.Context, id uuid.UUID) (*response.StoreWithStatsResponse, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubStoreService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

// withUser attaches an authenticated identity the way the auth middleware does.
func withUser(r *http.Request, userID uuid.UUID, role entity.UserRole) *http.Request {
	ctx := utils.SetUserContext(r.Context(), userID, "user@example.com", string(role))
	return r.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}
