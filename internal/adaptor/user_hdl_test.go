package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"store-ratings/internal/data/entity"
	"store-ratings/internal/dto/request"
	"store-ratings/internal/dto/response"
	"store-ratings/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func userRouter(handler *UserHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/users", handler.Create)
	r.Get("/api/users/all", handler.List)
	r.Get("/api/users/dashboard", handler.Dashboard)
	r.Get("/api/users/{id}", handler.GetByID)
	r.Delete("/api/users/{id}", handler.Delete)
	return r
}

func TestUserCreateValidation(t *testing.T) {
	handler := NewUserHandler(&stubUserService{}, zap.NewNop())
	router := userRouter(handler)

	// Role outside the known set is rejected before the service is reached.
	body := `{"name":"Jonathan Michael Harrington","email":"jonathan@example.com","password":"Sup3rSecret!","role":"superuser"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	fields, ok := envelope.Errors.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "Role")
}

func TestUserCreateSuccess(t *testing.T) {
	handler := NewUserHandler(&stubUserService{
		createFn: func(_ context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
			return &response.UserResponse{
				ID:    uuid.New().String(),
				Name:  req.Name,
				Email: req.Email,
				Role:  entity.UserRole(req.Role),
			}, nil
		},
	}, zap.NewNop())
	router := userRouter(handler)

	body := `{"name":"Alexandra Josephine Whitfield","email":"alexandra@example.com","password":"Sup3rSecret!","role":"store_owner"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUserGetByIDNotFoundResponse(t *testing.T) {
	handler := NewUserHandler(&stubUserService{
		getByIDFn: func(context.Context, uuid.UUID) (*response.UserResponse, error) {
			return nil, usecase.ErrUserNotFound
		},
	}, zap.NewNop())
	router := userRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserGetByIDBadID(t *testing.T) {
	handler := NewUserHandler(&stubUserService{}, zap.NewNop())
	router := userRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/users/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserDashboard(t *testing.T) {
	handler := NewUserHandler(&stubUserService{
		dashboardStatsFn: func(context.Context) (*response.DashboardResponse, error) {
			return &response.DashboardResponse{
				TotalUsers:   3,
				TotalStores:  2,
				TotalRatings: 7,
			}, nil
		},
	}, zap.NewNop())
	router := userRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/users/dashboard", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 3, data["total_users"])
	assert.EqualValues(t, 2, data["total_stores"])
	assert.EqualValues(t, 7, data["total_ratings"])
}

func TestUserDelete(t *testing.T) {
	userID := uuid.New()
	var gotID uuid.UUID
	handler := NewUserHandler(&stubUserService{
		deleteFn: func(_ context.Context, id uuid.UUID) error {
			gotID = id
			return nil
		},
	}, zap.NewNop())
	router := userRouter(handler)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+userID.String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotID)
}

func TestUserListFilters(t *testing.T) {
	var gotQuery *request.ListUsersQuery
	handler := NewUserHandler(&stubUserService{
		listFn: func(_ context.Context, query *request.ListUsersQuery) ([]response.UserResponse, error) {
			gotQuery = query
			return []response.UserResponse{}, nil
		},
	}, zap.NewNop())
	router := userRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/users/all?name=jon&role=admin&sortBy=email&order=desc", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotQuery)
	assert.Equal(t, "jon", gotQuery.Name)
	assert.Equal(t, "admin", gotQuery.Role)
	assert.Equal(t, "email", gotQuery.SortBy)
	assert.Equal(t, "desc", gotQuery.Order)
}
