package repository

import (
	"errors"

	"gorm.io/gorm"

	"real-estate-listings/internal/models"
	"real-estate-listings/internal/search"
)

var (
	// ErrNotFound is returned when a property does not exist.
	ErrNotFound = errors.New("property not found")
	// ErrDuplicateFavorite is returned when the (property, user) pair is
	// already favorited.
	ErrDuplicateFavorite = errors.New("property already in favorites")
)

// PropertyRepository is the narrow store contract used by the handlers.
// Any backend implementing filtered/sorted/paginated reads, single-row
// reads and inserts, and cascade delete can satisfy it.
type PropertyRepository interface {
	FindByID(id uint) (*models.Property, error)
	Search(criteria search.Criteria) (*search.Result, error)
	Insert(p *models.Property) error
	DeleteByID(id uint) error

	AddFavorite(propertyID uint, userEmail string) error
	FavoritesByUser(userEmail string) ([]models.Property, error)
}

// GormPropertyRepository implements PropertyRepository on a gorm handle.
// The handle is injected explicitly; the repository holds no other state.
type GormPropertyRepository struct {
	db *gorm.DB
}

func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByID retrieves a property with its ordered image list.
func (r *GormPropertyRepository) FindByID(id uint) (*models.Property, error) {
	var property models.Property
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&property, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Search executes one filtered, sorted, paginated read and returns the page
// plus its metadata. A page past the end yields an empty item list with the
// same total and page count, not an error.
func (r *GormPropertyRepository) Search(criteria search.Criteria) (*search.Result, error) {
	criteria.Normalize()

	// Session makes the composed query reusable for both the count and the
	// windowed read.
	query := search.Apply(r.db, criteria).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var properties []models.Property
	err := search.Order(query, criteria.Sort).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Limit(criteria.PerPage).
		Offset(criteria.Offset()).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}

	return &search.Result{
		Items:   properties,
		Page:    criteria.Page,
		Pages:   search.PageCount(total, criteria.PerPage),
		Total:   total,
		PerPage: criteria.PerPage,
	}, nil
}

// Insert creates a property (and any attached images) in one statement.
func (r *GormPropertyRepository) Insert(p *models.Property) error {
	if p.Status == "" {
		p.Status = models.PropertyStatusActive
	}
	return r.db.Create(p).Error
}

// DeleteByID removes a property. Dependent images and favorites go with it
// via the cascade constraints.
func (r *GormPropertyRepository) DeleteByID(id uint) error {
	result := r.db.Delete(&models.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddFavorite inserts a favorite row, relying on the store's composite
// unique index to reject duplicates.
func (r *GormPropertyRepository) AddFavorite(propertyID uint, userEmail string) error {
	favorite := models.Favorite{
		PropertyID: propertyID,
		UserEmail:  userEmail,
	}
	err := r.db.Create(&favorite).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateFavorite
	}
	return err
}

// FavoritesByUser returns the user's favorited properties ordered by when
// they were favorited, newest first.
func (r *GormPropertyRepository) FavoritesByUser(userEmail string) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.Model(&models.Property{}).
		Joins("INNER JOIN favorites ON favorites.property_id = properties.id").
		Where("favorites.user_email = ?", userEmail).
		Order("favorites.created_at DESC, favorites.id DESC").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Find(&properties).Error
	return properties, err
}
