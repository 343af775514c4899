package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"real-estate-listings/internal/models"
	"real-estate-listings/internal/repository"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Property{}, &models.PropertyImage{}, &models.Favorite{}))

	repo := repository.NewGormPropertyRepository(db)
	propertyHandler := NewPropertyHandler(repo, 12)
	favoriteHandler := NewFavoriteHandler(repo)

	r := gin.New()
	r.GET("/api/properties", propertyHandler.List)
	r.GET("/api/properties/:id", propertyHandler.Get)
	r.POST("/api/properties", propertyHandler.Create)
	r.DELETE("/api/properties/:id", propertyHandler.Delete)
	r.POST("/api/favorites", favoriteHandler.Add)
	r.GET("/api/favorites/:user_email", favoriteHandler.ListByUser)

	return r, db
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProperty(t *testing.T, db *gorm.DB, title string, price int) *models.Property {
	p := &models.Property{
		Title:        title,
		Address:      "1 Test St",
		City:         "Austin",
		State:        "TX",
		Zipcode:      "78701",
		Price:        price,
		Bedrooms:     3,
		Bathrooms:    2,
		PropertyType: "house",
		ListingType:  "sale",
		Status:       models.PropertyStatusActive,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestListProperties_Envelope(t *testing.T) {
	r, db := setupRouter(t)
	seedProperty(t, db, "Home A", 300000)
	seedProperty(t, db, "Home B", 400000)

	w := doRequest(r, http.MethodGet, "/api/properties", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items   []map[string]interface{} `json:"items"`
		Page    int                      `json:"page"`
		Pages   int                      `json:"pages"`
		Total   int64                    `json:"total"`
		PerPage int                      `json:"per_page"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Items, 2)
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 1, body.Pages)
	assert.Equal(t, int64(2), body.Total)
	assert.Equal(t, 12, body.PerPage)

	// List view carries the cover URL but not the image array
	_, hasImages := body.Items[0]["images"]
	assert.False(t, hasImages)
	_, hasCover := body.Items[0]["cover_image_url"]
	assert.True(t, hasCover)
}

func TestListProperties_MalformedPagingFallsBackToDefaults(t *testing.T) {
	r, db := setupRouter(t)
	seedProperty(t, db, "Home A", 300000)

	w := doRequest(r, http.MethodGet, "/api/properties?page=abc&per_page=xyz&min_price=oops", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Page    int `json:"page"`
		PerPage int `json:"per_page"`
		Total   int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 12, body.PerPage)
	assert.Equal(t, 1, body.Total)
}

func TestListProperties_FiltersApplied(t *testing.T) {
	r, db := setupRouter(t)
	seedProperty(t, db, "Cheap Home", 200000)
	seedProperty(t, db, "Pricey Home", 800000)

	w := doRequest(r, http.MethodGet, "/api/properties?min_price=500000", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items []struct {
			Title string `json:"title"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Pricey Home", body.Items[0].Title)
}

func TestGetProperty_NotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodGet, "/api/properties/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Property not found", body["error"])
}

func TestGetProperty_DetailIncludesImages(t *testing.T) {
	r, db := setupRouter(t)
	p := seedProperty(t, db, "With Images", 300000)
	require.NoError(t, db.Create(&models.PropertyImage{PropertyID: p.ID, URL: "https://img.example/a.jpg", IsPrimary: true}).Error)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/properties/%d", p.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ID     uint    `json:"id"`
		Cover  *string `json:"cover_image_url"`
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, p.ID, body.ID)
	require.NotNil(t, body.Cover)
	assert.Equal(t, "https://img.example/a.jpg", *body.Cover)
	require.Len(t, body.Images, 1)
}

func TestCreateProperty(t *testing.T) {
	r, db := setupRouter(t)

	payload := map[string]interface{}{
		"title":         "New Listing",
		"price":         425000,
		"address":       "456 Elm Street",
		"city":          "Boston",
		"state":         "MA",
		"zip_code":      "02101",
		"bedrooms":      4,
		"bathrooms":     2.5,
		"square_feet":   2200,
		"property_type": "house",
		"listing_type":  "sale",
		"images": []map[string]interface{}{
			{"url": "https://img.example/front.jpg", "is_primary": true},
			{"url": "https://img.example/back.jpg"},
		},
	}

	w := doRequest(r, http.MethodPost, "/api/properties", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotZero(t, body.ID)
	assert.Equal(t, "Property created successfully", body.Message)

	var imageCount int64
	db.Model(&models.PropertyImage{}).Where("property_id = ?", body.ID).Count(&imageCount)
	assert.Equal(t, int64(2), imageCount)
}

func TestCreateProperty_MissingRequiredField(t *testing.T) {
	r, _ := setupRouter(t)

	payload := map[string]interface{}{
		// title missing
		"price":         425000,
		"address":       "456 Elm Street",
		"city":          "Boston",
		"state":         "MA",
		"zip_code":      "02101",
		"bedrooms":      4,
		"bathrooms":     2.5,
		"square_feet":   2200,
		"property_type": "house",
		"listing_type":  "sale",
	}

	w := doRequest(r, http.MethodPost, "/api/properties", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProperty_NegativePriceRejected(t *testing.T) {
	r, _ := setupRouter(t)

	payload := map[string]interface{}{
		"title":         "Bad Listing",
		"price":         -5,
		"address":       "456 Elm Street",
		"city":          "Boston",
		"state":         "MA",
		"zip_code":      "02101",
		"bedrooms":      4,
		"bathrooms":     2.5,
		"square_feet":   2200,
		"property_type": "house",
		"listing_type":  "sale",
	}

	w := doRequest(r, http.MethodPost, "/api/properties", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddFavorite_DuplicateReturns400(t *testing.T) {
	r, db := setupRouter(t)
	p := seedProperty(t, db, "Favorited", 300000)

	payload := map[string]interface{}{
		"property_id": p.ID,
		"user_email":  "x@example.com",
	}

	w := doRequest(r, http.MethodPost, "/api/favorites", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodPost, "/api/favorites", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Property already in favorites", body["error"])

	var count int64
	db.Model(&models.Favorite{}).Where("property_id = ?", p.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddFavorite_MissingFields(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/favorites", map[string]interface{}{"user_email": "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListFavorites(t *testing.T) {
	r, db := setupRouter(t)
	p1 := seedProperty(t, db, "First Favorite", 300000)
	p2 := seedProperty(t, db, "Second Favorite", 350000)

	for _, p := range []*models.Property{p1, p2} {
		w := doRequest(r, http.MethodPost, "/api/favorites", map[string]interface{}{
			"property_id": p.ID,
			"user_email":  "x@example.com",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(r, http.MethodGet, "/api/favorites/x@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body []struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
}

func TestDeleteProperty(t *testing.T) {
	r, db := setupRouter(t)
	p := seedProperty(t, db, "Doomed", 300000)

	w := doRequest(r, http.MethodDelete, fmt.Sprintf("/api/properties/%d", p.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/properties/%d", p.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodDelete, fmt.Sprintf("/api/properties/%d", p.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
