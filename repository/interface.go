package repository

import (
	"context"
	"errors"

	"armario-probador/models"
)

// ErrWardrobeItemNotFound is returned by GetByCode when no active item has the code
var ErrWardrobeItemNotFound = errors.New("wardrobe item not found")

// WardrobeReader is the read side of the catalog. Both the database and the
// local directory implement it.
type WardrobeReader interface {
	// ListActive returns active items ordered by layer priority and code.
	// An empty layer returns every layer.
	ListActive(ctx context.Context, layer string) ([]models.WardrobeItem, error)
	GetByCode(ctx context.Context, code string) (*models.WardrobeItem, error)
}

// WardrobeRepositoryInterface defines the contract for the wardrobe_items table
type WardrobeRepositoryInterface interface {
	WardrobeReader
	EnsureSchema(ctx context.Context) error
	ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error)
	Insert(ctx context.Context, item *models.WardrobeItemDB) (bool, error)
}
