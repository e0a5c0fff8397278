package database

import "time"

// Blob is a raw asset stored in the database, addressed by its asset path.
type Blob struct {
	ID        uint      `gorm:"primaryKey"`
	Path      string    `gorm:"size:512;uniqueIndex"`
	Data      []byte    `gorm:"type:longblob"`
	UpdatedAt time.Time
}

// TableName pins the table name independent of GORM's pluralisation rules.
func (Blob) TableName() string {
	return "asset_blobs"
}
