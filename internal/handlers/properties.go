package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"real-estate-listings/internal/models"
	"real-estate-listings/internal/repository"
	"real-estate-listings/internal/search"
)

// PropertyHandler handles property listing requests
type PropertyHandler struct {
	repo           repository.PropertyRepository
	defaultPerPage int
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(repo repository.PropertyRepository, defaultPerPage int) *PropertyHandler {
	if defaultPerPage < 1 {
		defaultPerPage = search.DefaultPerPage
	}
	return &PropertyHandler{repo: repo, defaultPerPage: defaultPerPage}
}

// List handles GET /api/properties
func (h *PropertyHandler) List(c *gin.Context) {
	criteria := h.parseCriteria(c)

	result, err := h.repo.Search(criteria)
	if err != nil {
		log.Printf("Property search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch properties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    models.NewPropertyResponses(result.Items),
		"page":     result.Page,
		"pages":    result.Pages,
		"total":    result.Total,
		"per_page": result.PerPage,
	})
}

// Get handles GET /api/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	property, err := h.repo.FindByID(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if err != nil {
		log.Printf("Property lookup failed for id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property"})
		return
	}

	c.JSON(http.StatusOK, models.NewPropertyResponse(property, true))
}

type createPropertyRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Price        *int     `json:"price" binding:"required"`
	Address      string   `json:"address" binding:"required"`
	City         string   `json:"city" binding:"required"`
	State        string   `json:"state" binding:"required"`
	Zipcode      string   `json:"zip_code" binding:"required"`
	Bedrooms     *int     `json:"bedrooms" binding:"required"`
	Bathrooms    *float64 `json:"bathrooms" binding:"required"`
	SquareFeet   *int     `json:"square_feet" binding:"required"`
	LotSize      *int     `json:"lot_size"`
	YearBuilt    *int     `json:"year_built"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	PropertyType string   `json:"property_type" binding:"required"`
	ListingType  string   `json:"listing_type" binding:"required"`

	Images []struct {
		URL       string `json:"url" binding:"required"`
		IsPrimary bool   `json:"is_primary"`
	} `json:"images"`
}

// Create handles POST /api/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
		return
	}
	if *req.Bedrooms < 0 || *req.Bathrooms < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bedrooms and bathrooms must be non-negative"})
		return
	}

	property := models.Property{
		Title:        req.Title,
		Description:  req.Description,
		Price:        *req.Price,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zipcode:      req.Zipcode,
		Bedrooms:     *req.Bedrooms,
		Bathrooms:    *req.Bathrooms,
		SquareFeet:   req.SquareFeet,
		LotSize:      req.LotSize,
		YearBuilt:    req.YearBuilt,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		PropertyType: req.PropertyType,
		ListingType:  req.ListingType,
		Status:       models.PropertyStatusActive,
	}
	for _, img := range req.Images {
		property.Images = append(property.Images, models.PropertyImage{
			URL:       img.URL,
			IsPrimary: img.IsPrimary,
		})
	}

	if err := h.repo.Insert(&property); err != nil {
		log.Printf("Property insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      property.ID,
		"message": "Property created successfully",
	})
}

// Delete handles DELETE /api/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	err = h.repo.DeleteByID(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if err != nil {
		log.Printf("Property delete failed for id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}

// parseCriteria builds search criteria from query parameters. Numeric
// parameters that fail to parse fall back to their defaults instead of
// producing an error.
func (h *PropertyHandler) parseCriteria(c *gin.Context) search.Criteria {
	criteria := search.Criteria{
		Query:        c.Query("q"),
		City:         c.Query("city"),
		State:        c.Query("state"),
		Zipcode:      c.Query("zipcode"),
		PropertyType: c.Query("type"),
		Sort:         c.DefaultQuery("sort", search.SortNewest),
		Page:         1,
		PerPage:      h.defaultPerPage,
	}

	// Price range
	if minPriceStr := c.Query("min_price"); minPriceStr != "" {
		if minPrice, parseErr := strconv.Atoi(minPriceStr); parseErr == nil {
			criteria.MinPrice = &minPrice
		}
	}
	if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
		if maxPrice, parseErr := strconv.Atoi(maxPriceStr); parseErr == nil {
			criteria.MaxPrice = &maxPrice
		}
	}

	// Bedroom range
	if minBedStr := c.Query("min_bed"); minBedStr != "" {
		if minBed, parseErr := strconv.Atoi(minBedStr); parseErr == nil {
			criteria.MinBedrooms = &minBed
		}
	}
	if maxBedStr := c.Query("max_bed"); maxBedStr != "" {
		if maxBed, parseErr := strconv.Atoi(maxBedStr); parseErr == nil {
			criteria.MaxBedrooms = &maxBed
		}
	}

	// Bathroom range
	if minBathStr := c.Query("min_bath"); minBathStr != "" {
		if minBath, parseErr := strconv.ParseFloat(minBathStr, 64); parseErr == nil {
			criteria.MinBathrooms = &minBath
		}
	}
	if maxBathStr := c.Query("max_bath"); maxBathStr != "" {
		if maxBath, parseErr := strconv.ParseFloat(maxBathStr, 64); parseErr == nil {
			criteria.MaxBathrooms = &maxBath
		}
	}

	// Pagination
	if pageStr := c.Query("page"); pageStr != "" {
		if page, parseErr := strconv.Atoi(pageStr); parseErr == nil && page > 0 {
			criteria.Page = page
		}
	}
	if perPageStr := c.Query("per_page"); perPageStr != "" {
		if perPage, parseErr := strconv.Atoi(perPageStr); parseErr == nil && perPage > 0 {
			criteria.PerPage = perPage
		}
	}

	return criteria
}
