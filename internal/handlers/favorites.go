package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"real-estate-listings/internal/models"
	"real-estate-listings/internal/repository"
)

// FavoriteHandler handles per-user favorite requests
type FavoriteHandler struct {
	repo repository.PropertyRepository
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(repo repository.PropertyRepository) *FavoriteHandler {
	return &FavoriteHandler{repo: repo}
}

// Add handles POST /api/favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req struct {
		PropertyID uint   `json:"property_id" binding:"required"`
		UserEmail  string `json:"user_email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.repo.AddFavorite(req.PropertyID, req.UserEmail)
	if errors.Is(err, repository.ErrDuplicateFavorite) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property already in favorites"})
		return
	}
	if err != nil {
		log.Printf("Favorite insert failed for property_id=%d: %v", req.PropertyID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Property added to favorites"})
}

// ListByUser handles GET /api/favorites/:user_email
func (h *FavoriteHandler) ListByUser(c *gin.Context) {
	userEmail := c.Param("user_email")

	properties, err := h.repo.FavoritesByUser(userEmail)
	if err != nil {
		log.Printf("Favorites lookup failed for user=%s: %v", userEmail, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, models.NewPropertyResponses(properties))
}
