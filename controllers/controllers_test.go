package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bhavani-b03/Restaurant-app/config"
	"github.com/bhavani-b03/Restaurant-app/models"
	"github.com/bhavani-b03/Restaurant-app/routes"
	"github.com/bhavani-b03/Restaurant-app/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "controller-test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	return routes.SetupRouter()
}

func createUser(t *testing.T, email string) (*models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword("s3cretpass")
	require.NoError(t, err)
	user := &models.User{Email: email, Password: hash, FullName: "Handler Tester"}
	require.NoError(t, config.DB.Create(user).Error)

	token, err := utils.GenerateJWT(user.ID, user.Email)
	require.NoError(t, err)
	return user, token
}

func createRestaurant(t *testing.T, name string) *models.Restaurant {
	t.Helper()

	restaurant := &models.Restaurant{
		Name:        name,
		City:        "Bangalore",
		Address:     "1 Test Street",
		CostForTwo:  400,
		DietType:    models.DietVeg,
		OpeningTime: "09:00",
		ClosingTime: "22:00",
	}
	require.NoError(t, config.DB.Create(restaurant).Error)
	return restaurant
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestToggleBookmarkRequiresLogin(t *testing.T) {
	router := setupRouter(t)
	restaurant := createRestaurant(t, "Members Only")

	w := doJSON(router, http.MethodPost, "/bookmarks/toggle", "",
		gin.H{"restaurant_id": restaurant.ID})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Rejected request must not create a row.
	var count int64
	require.NoError(t, config.DB.Model(&models.Bookmark{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestToggleBookmarkOnThenOff(t *testing.T) {
	router := setupRouter(t)
	_, token := createUser(t, "bookmarker@example.com")
	restaurant := createRestaurant(t, "Burger King")

	w := doJSON(router, http.MethodPost, "/bookmarks/toggle", token,
		gin.H{"restaurant_id": restaurant.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookmarked": true}`, w.Body.String())

	w = doJSON(router, http.MethodPost, "/bookmarks/toggle", token,
		gin.H{"restaurant_id": restaurant.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookmarked": false}`, w.Body.String())
}

func TestToggleVisitedOnThenOff(t *testing.T) {
	router := setupRouter(t)
	_, token := createUser(t, "visitor@example.com")
	restaurant := createRestaurant(t, "Dosa Den")

	w := doJSON(router, http.MethodPost, "/visited/toggle", token,
		gin.H{"restaurant_id": restaurant.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"visited": true}`, w.Body.String())

	w = doJSON(router, http.MethodPost, "/visited/toggle", token,
		gin.H{"restaurant_id": restaurant.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"visited": false}`, w.Body.String())
}

func TestToggleBookmarkUnknownRestaurant(t *testing.T) {
	router := setupRouter(t)
	_, token := createUser(t, "lost@example.com")

	w := doJSON(router, http.MethodPost, "/bookmarks/toggle", token,
		gin.H{"restaurant_id": 987654})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRestaurantsRejectsMalformedFilter(t *testing.T) {
	router := setupRouter(t)
	createRestaurant(t, "Filter Me")

	w := doJSON(router, http.MethodGet, "/restaurants?cost_for_two_min=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/restaurants?rating=high", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRestaurantsReturnsPage(t *testing.T) {
	router := setupRouter(t)
	createRestaurant(t, "Listed One")
	createRestaurant(t, "Listed Two")

	w := doJSON(router, http.MethodGet, "/restaurants", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.EqualValues(t, 2, body["total_count"])
	assert.EqualValues(t, 10, body["page_size"])
	assert.Len(t, body["restaurants"], 2)
}

func TestLegacySortParameterPrecedence(t *testing.T) {
	router := setupRouter(t)
	cheapHighRated := createRestaurant(t, "Cheap And Loved")
	cheapHighRated.CostForTwo = 100
	cheapHighRated.AverageRating = 4.9
	require.NoError(t, config.DB.Save(cheapHighRated).Error)

	priceyLowRated := createRestaurant(t, "Pricey And Panned")
	priceyLowRated.CostForTwo = 900
	priceyLowRated.AverageRating = 2.1
	require.NoError(t, config.DB.Save(priceyLowRated).Error)

	// With both legacy params, sort_by (price) wins over sort_by_rating.
	w := doJSON(router, http.MethodGet,
		"/restaurants?sort_by=price_high&sort_by_rating=rating_high", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	rows := body["restaurants"].([]any)
	first := rows[0].(map[string]any)
	assert.Equal(t, "Pricey And Panned", first["name"])
}

func TestGetRestaurantDetailAndNotFound(t *testing.T) {
	router := setupRouter(t)
	restaurant := createRestaurant(t, "Detail House")

	w := doJSON(router, http.MethodGet, fmt.Sprintf("/restaurants/%d", restaurant.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Detail House", body["name"])
	assert.Len(t, body["rating_stats"], 5)

	w = doJSON(router, http.MethodGet, "/restaurants/424242", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodGet, "/restaurants/not-a-number", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddReviewValidatesRating(t *testing.T) {
	router := setupRouter(t)
	_, token := createUser(t, "rater@example.com")
	restaurant := createRestaurant(t, "Rated")

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/restaurants/%d/reviews", restaurant.ID),
		token, gin.H{"rating": 6, "comment": "too good"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, config.DB.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)

	w = doJSON(router, http.MethodPost, fmt.Sprintf("/restaurants/%d/reviews", restaurant.ID),
		token, gin.H{"rating": 4, "comment": "Nice"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 4.0, body["average_rating"])
	assert.EqualValues(t, 1, body["review_count"])
}

func TestDeleteReviewForbiddenForNonOwner(t *testing.T) {
	router := setupRouter(t)
	_, authorToken := createUser(t, "author@example.com")
	_, otherToken := createUser(t, "other@example.com")
	restaurant := createRestaurant(t, "Contested")

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/restaurants/%d/reviews", restaurant.ID),
		authorToken, gin.H{"rating": 4, "comment": "Nice"})
	require.Equal(t, http.StatusOK, w.Code)

	var review models.Review
	require.NoError(t, config.DB.First(&review).Error)

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/reviews/%d", review.ID), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Review still present.
	var count int64
	require.NoError(t, config.DB.Model(&models.Review{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/reviews/%d", review.ID), authorToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, http.MethodPost, "/auth/register", "",
		gin.H{"email": "flow@example.com", "password": "s3cretpass", "full_name": "Flow Tester"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate registration conflicts.
	w = doJSON(router, http.MethodPost, "/auth/register", "",
		gin.H{"email": "flow@example.com", "password": "s3cretpass", "full_name": "Again"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/login", "",
		gin.H{"email": "flow@example.com", "password": "s3cretpass"})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)

	w = doJSON(router, http.MethodGet, "/user/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "flow@example.com", user["email"])
	_, leaked := user["Password"]
	assert.False(t, leaked)

	w = doJSON(router, http.MethodPost, "/auth/login", "",
		gin.H{"email": "flow@example.com", "password": "wrongpass1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListRestaurantsAnnotatesForAuthenticatedCaller(t *testing.T) {
	router := setupRouter(t)
	_, token := createUser(t, "annotated@example.com")
	restaurant := createRestaurant(t, "Flagged")

	w := doJSON(router, http.MethodPost, "/bookmarks/toggle", token,
		gin.H{"restaurant_id": restaurant.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/restaurants", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decode(t, w)["restaurants"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, true, row["is_bookmarked"])
	assert.Equal(t, false, row["is_visited"])

	// Anonymous caller sees both flags false.
	w = doJSON(router, http.MethodGet, "/restaurants", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows = decode(t, w)["restaurants"].([]any)
	row = rows[0].(map[string]any)
	assert.Equal(t, false, row["is_bookmarked"])
	assert.Equal(t, false, row["is_visited"])
}
