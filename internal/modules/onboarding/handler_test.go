package onboarding

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/luiisca/cal.com/internal/database"
	"github.com/luiisca/cal.com/internal/domain"
	"github.com/luiisca/cal.com/internal/repository"
)

type submitResponse struct {
	Success bool           `json:"success"`
	Data    SubmitResponse `json:"data"`
}

type updateResponse struct {
	Success bool                  `json:"success"`
	Data    UpdateProfileResponse `json:"data"`
}

type validationResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T, userID int64) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	userRepo := repository.NewUserRepository(db)
	eventTypeRepo := repository.NewEventTypeRepository(db)
	service := NewService(userRepo, eventTypeRepo, nil)
	handler := NewHandler(service)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	handler.RegisterRoutes(v1)

	return router, db
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func seedUser(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()
	user := &domain.User{Email: "new@example.com", Username: "newbie", Name: "New User"}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), user))
	return user
}

func TestSubmit_EmptyBioBlocked(t *testing.T) {
	router, db := setupRouter(t, 1)
	user := seedUser(t, db)

	resp := performRequest(router, http.MethodPost, "/api/v1/onboarding", SubmitRequest{Bio: ""})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body validationResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "required", body.Error.Details["Bio"])

	// No mutation was issued.
	got, err := repository.NewUserRepository(db).GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Bio)
	assert.False(t, got.CompletedOnboarding)

	count, err := repository.NewEventTypeRepository(db).CountByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSubmit_SeedsDefaultsAndCompletes(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	user := &domain.User{Email: "new@example.com", Username: "newbie", Name: "New User"}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), user))

	gin.SetMode(gin.TestMode)
	service := NewService(repository.NewUserRepository(db), repository.NewEventTypeRepository(db), nil)
	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.Use(func(c *gin.Context) { c.Set("user_id", user.ID) })
	NewHandler(service).RegisterRoutes(v1)

	resp := performRequest(router, http.MethodPost, "/api/v1/onboarding", SubmitRequest{Bio: "I book things."})
	require.Equal(t, http.StatusOK, resp.Code)

	var body submitResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "/", body.Data.RedirectURL)
	assert.True(t, body.Data.User.CompletedOnboarding)
	assert.Equal(t, "I book things.", body.Data.User.Bio)

	types, err := repository.NewEventTypeRepository(db).ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, types, 3)

	bySlug := map[string]domain.EventType{}
	for _, et := range types {
		bySlug[et.Slug] = et
	}
	assert.Equal(t, 15, bySlug["15min"].Length)
	assert.Equal(t, 30, bySlug["30min"].Length)
	assert.True(t, bySlug["secret"].Hidden)

	// A second submit must not reseed.
	resp = performRequest(router, http.MethodPost, "/api/v1/onboarding", SubmitRequest{Bio: "updated"})
	require.Equal(t, http.StatusOK, resp.Code)
	count, err := repository.NewEventTypeRepository(db).CountByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestUpdateProfile_Kinds(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	user := &domain.User{Email: "new@example.com", Username: "newbie"}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), user))

	gin.SetMode(gin.TestMode)
	service := NewService(repository.NewUserRepository(db), repository.NewEventTypeRepository(db), nil)
	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.Use(func(c *gin.Context) { c.Set("user_id", user.ID) })
	NewHandler(service).RegisterRoutes(v1)

	resp := performRequest(router, http.MethodPatch, "/api/v1/me", map[string]any{
		"avatar": "/static/uploads/x.png",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	var body updateResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, KindAvatarSaved, body.Data.Kind)
	assert.Equal(t, "/static/uploads/x.png", body.Data.User.AvatarURL)

	resp = performRequest(router, http.MethodPatch, "/api/v1/me", map[string]any{
		"bio": "hello",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, KindProfileSaved, body.Data.Kind)

	resp = performRequest(router, http.MethodPatch, "/api/v1/me", map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.Code)
}
