package models

import "time"

// PropertyImage represents an image owned by a property. Images are ordered
// by insertion (ascending ID) and at most one per property should carry the
// primary flag; the flag is not enforced by the schema.
type PropertyImage struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"property_id"`
	URL        string    `gorm:"type:varchar(512);not null" json:"url"`
	IsPrimary  bool      `gorm:"not null;default:false" json:"is_primary"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for PropertyImage
func (PropertyImage) TableName() string {
	return "property_images"
}
