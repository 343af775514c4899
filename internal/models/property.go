package models

import "time"

type Property struct {
	// 基本情報
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// 所在地
	Address   string   `gorm:"type:varchar(255);not null" json:"address"`
	City      string   `gorm:"type:varchar(100);not null;index:idx_properties_city_state" json:"city"`
	State     string   `gorm:"type:varchar(50);not null;index:idx_properties_city_state" json:"state"`
	Zipcode   string   `gorm:"column:zip_code;type:varchar(20);not null" json:"zip_code"`
	Latitude  *float64 `gorm:"type:decimal(9,6)" json:"latitude,omitempty"`
	Longitude *float64 `gorm:"type:decimal(9,6)" json:"longitude,omitempty"`

	// フィルタ用属性
	PropertyType string  `gorm:"type:varchar(50);not null;index" json:"property_type"`
	ListingType  string  `gorm:"type:varchar(20);not null;default:'sale'" json:"listing_type"`
	Price        int     `gorm:"not null;index" json:"price"`
	Bedrooms     int     `gorm:"not null;default:0" json:"bedrooms"`
	Bathrooms    float64 `gorm:"type:decimal(3,1);not null;default:0" json:"bathrooms"`
	SquareFeet   *int    `gorm:"type:int" json:"square_feet,omitempty"`
	LotSize      *int    `gorm:"type:int" json:"lot_size,omitempty"`
	YearBuilt    *int    `gorm:"type:int" json:"year_built,omitempty"`

	// ステータス管理
	Status PropertyStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`

	// タイムスタンプ
	CreatedAt time.Time `gorm:"not null;autoCreateTime;index:idx_properties_created_at,sort:desc" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	// 関連（物件削除時にカスケード削除）
	Images    []PropertyImage `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Favorites []Favorite      `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
}

// PropertyStatus は物件のステータス
type PropertyStatus string

const (
	PropertyStatusActive  PropertyStatus = "active"
	PropertyStatusForSale PropertyStatus = "for_sale"
	PropertyStatusPending PropertyStatus = "pending"
	PropertyStatusSold    PropertyStatus = "sold"
)

// ListableStatuses are the statuses visible on public listing endpoints.
var ListableStatuses = []PropertyStatus{PropertyStatusActive, PropertyStatusForSale}

// TableName はテーブル名を明示的に指定
func (Property) TableName() string {
	return "properties"
}

// IsListable は物件が公開リストに表示可能かどうか
func (p *Property) IsListable() bool {
	return p.Status == PropertyStatusActive || p.Status == PropertyStatusForSale
}

// CoverImage returns the image flagged as primary, falling back to the
// first image in insertion order. Returns nil when the property has no images.
func (p *Property) CoverImage() *PropertyImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}
