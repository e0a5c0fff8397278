package source

import (
	"context"
	"errors"
	"fmt"

	"asset-loader/core/database"

	"gorm.io/gorm"
)

// Database reads assets from the asset_blobs table.
type Database struct {
	db *gorm.DB
}

// NewDatabase creates a source backed by db.
func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

// Load returns the blob stored for path.
func (d *Database) Load(ctx context.Context, path string) ([]byte, error) {
	var blob database.Blob
	err := d.db.WithContext(ctx).Where("path = ?", path).Take(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query blob %s: %w", path, err)
	}
	return blob.Data, nil
}

// Modified returns the blob's update time in unix nanoseconds.
func (d *Database) Modified(ctx context.Context, path string) (int64, error) {
	var blob database.Blob
	err := d.db.WithContext(ctx).Select("updated_at").Where("path = ?", path).Take(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return 0, fmt.Errorf("failed to query blob %s: %w", path, err)
	}
	return blob.UpdatedAt.UnixNano(), nil
}
