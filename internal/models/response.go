package models

import "time"

// PropertyResponse is the external JSON representation of a property.
// Price and bathrooms are emitted as floats, timestamps as ISO-8601 strings
// (null when absent). CoverImageURL is derived from the image set; the full
// image list is only populated for detail views to keep list payloads small.
type PropertyResponse struct {
	ID           uint                     `json:"id"`
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	Address      string                   `json:"address"`
	City         string                   `json:"city"`
	State        string                   `json:"state"`
	Zipcode      string                   `json:"zip_code"`
	Price        float64                  `json:"price"`
	Bedrooms     int                      `json:"bedrooms"`
	Bathrooms    float64                  `json:"bathrooms"`
	PropertyType string                   `json:"property_type"`
	ListingType  string                   `json:"listing_type"`
	SquareFeet   *int                     `json:"square_feet"`
	LotSize      *int                     `json:"lot_size"`
	YearBuilt    *int                     `json:"year_built"`
	Latitude     *float64                 `json:"latitude"`
	Longitude    *float64                 `json:"longitude"`
	Status       PropertyStatus           `json:"status"`
	CreatedAt    *string                  `json:"created_at"`
	UpdatedAt    *string                  `json:"updated_at"`
	CoverImage   *string                  `json:"cover_image_url"`
	Images       []PropertyImageResponse  `json:"images,omitempty"`
}

// PropertyImageResponse is the external representation of a single image.
type PropertyImageResponse struct {
	ID         uint    `json:"id"`
	PropertyID uint    `json:"property_id"`
	URL        string  `json:"url"`
	IsPrimary  bool    `json:"is_primary"`
	CreatedAt  *string `json:"created_at"`
}

// NewPropertyResponse shapes a property record for the API. When
// includeImages is true the full ordered image list is attached; otherwise
// only the derived cover image URL is included.
func NewPropertyResponse(p *Property, includeImages bool) PropertyResponse {
	resp := PropertyResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Address:      p.Address,
		City:         p.City,
		State:        p.State,
		Zipcode:      p.Zipcode,
		Price:        float64(p.Price),
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		PropertyType: p.PropertyType,
		ListingType:  p.ListingType,
		SquareFeet:   p.SquareFeet,
		LotSize:      p.LotSize,
		YearBuilt:    p.YearBuilt,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Status:       p.Status,
		CreatedAt:    isoTime(p.CreatedAt),
		UpdatedAt:    isoTime(p.UpdatedAt),
	}

	if cover := p.CoverImage(); cover != nil {
		url := cover.URL
		resp.CoverImage = &url
	}

	if includeImages {
		resp.Images = make([]PropertyImageResponse, 0, len(p.Images))
		for i := range p.Images {
			resp.Images = append(resp.Images, NewPropertyImageResponse(&p.Images[i]))
		}
	}

	return resp
}

// NewPropertyResponses shapes a slice of properties for list views.
func NewPropertyResponses(properties []Property) []PropertyResponse {
	responses := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		responses = append(responses, NewPropertyResponse(&properties[i], false))
	}
	return responses
}

// NewPropertyImageResponse shapes a single image record.
func NewPropertyImageResponse(img *PropertyImage) PropertyImageResponse {
	return PropertyImageResponse{
		ID:         img.ID,
		PropertyID: img.PropertyID,
		URL:        img.URL,
		IsPrimary:  img.IsPrimary,
		CreatedAt:  isoTime(img.CreatedAt),
	}
}

func isoTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
