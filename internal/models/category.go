package models

import "time"

// Category classifies complaints (jalan rusak, sampah, penerangan, ...).
// Read-only reference data as far as the lifecycle is concerned.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:text;not null;uniqueIndex" json:"nama_kategori"`

	CreatedAt time.Time `json:"created_at"`
}
