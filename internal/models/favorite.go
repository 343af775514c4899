package models

import "time"

// Favorite links a user (identified by email) to a property. The composite
// unique index guarantees at most one row per (property_id, user_email) pair;
// rows are removed together with their property via the cascade constraint.
type Favorite struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID uint      `gorm:"not null;uniqueIndex:idx_favorites_property_user" json:"property_id"`
	UserEmail  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_favorites_property_user;index" json:"user_email"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// TableName はテーブル名を明示的に指定
func (Favorite) TableName() string {
	return "favorites"
}
