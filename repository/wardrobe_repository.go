package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"armario-probador/db"
	"armario-probador/dressup"
	"armario-probador/models"
)

const wardrobeSchema = `
CREATE TABLE IF NOT EXISTS wardrobe_items (
	id            SERIAL PRIMARY KEY,
	code          TEXT NOT NULL UNIQUE,
	name          TEXT,
	layer         TEXT NOT NULL,
	drive_file_id TEXT UNIQUE,
	file_name     TEXT,
	image_url     TEXT,
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// WardrobeRepository handles database operations for wardrobe items
// Implements WardrobeRepositoryInterface
type WardrobeRepository struct{}

// NewWardrobeRepository creates a new WardrobeRepository
func NewWardrobeRepository() *WardrobeRepository {
	return &WardrobeRepository{}
}

// Ensure WardrobeRepository implements WardrobeRepositoryInterface
var _ WardrobeRepositoryInterface = (*WardrobeRepository)(nil)

// EnsureSchema creates the wardrobe_items table if it does not exist
func (r *WardrobeRepository) EnsureSchema(ctx context.Context) error {
	if _, err := db.DB.ExecContext(ctx, wardrobeSchema); err != nil {
		return fmt.Errorf("failed to create wardrobe_items table: %w", err)
	}
	log.Printf("✓ wardrobe_items table ready")
	return nil
}

// ExistsByDriveFileID checks if a wardrobe item exists by drive_file_id
func (r *WardrobeRepository) ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM wardrobe_items WHERE drive_file_id = $1)`
	if err := db.DB.QueryRowContext(ctx, query, driveFileID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

// Insert inserts a new wardrobe item. It returns false when a row with the
// same code or drive_file_id already existed.
func (r *WardrobeRepository) Insert(ctx context.Context, item *models.WardrobeItemDB) (bool, error) {
	query := `
		INSERT INTO wardrobe_items (
			code, name, layer, drive_file_id, file_name, image_url, is_active
		) VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, TRUE)
		ON CONFLICT DO NOTHING
	`

	result, err := db.DB.ExecContext(ctx, query,
		item.Code,
		item.Name,
		item.Layer,
		item.DriveFileID,
		item.FileName,
		item.ImageURL,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert wardrobe item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("⚠️  Warning: Could not get rows affected: %v", err)
		return true, nil
	}
	if rowsAffected == 0 {
		log.Printf("⚠️  Database: No rows inserted (likely due to ON CONFLICT) for code: %s", item.Code)
	}
	return rowsAffected > 0, nil
}

// ListActive returns active wardrobe items, optionally filtered by layer
func (r *WardrobeRepository) ListActive(ctx context.Context, layer string) ([]models.WardrobeItem, error) {
	query := `
		SELECT id, code, COALESCE(name, ''), layer, COALESCE(drive_file_id, ''),
			COALESCE(file_name, ''), COALESCE(image_url, ''), is_active, created_at
		FROM wardrobe_items
		WHERE is_active = TRUE`
	var args []interface{}
	if layer = strings.TrimSpace(layer); layer != "" {
		query += ` AND layer = $1`
		args = append(args, string(dressup.ParseLayer(layer)))
	}
	query += ` ORDER BY code`

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wardrobe items: %w", err)
	}
	defer rows.Close()

	var items []models.WardrobeItem
	for rows.Next() {
		var item models.WardrobeItem
		if err := scanWardrobeItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wardrobe items: %w", err)
	}

	SortWardrobeItems(items)
	return items, nil
}

// GetByCode retrieves an active wardrobe item by its code
func (r *WardrobeRepository) GetByCode(ctx context.Context, code string) (*models.WardrobeItem, error) {
	query := `
		SELECT id, code, COALESCE(name, ''), layer, COALESCE(drive_file_id, ''),
			COALESCE(file_name, ''), COALESCE(image_url, ''), is_active, created_at
		FROM wardrobe_items
		WHERE code = $1 AND is_active = TRUE`

	var item models.WardrobeItem
	err := scanWardrobeItem(db.DB.QueryRowContext(ctx, query, strings.ToUpper(code)), &item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrWardrobeItemNotFound, code)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWardrobeItem(row rowScanner, item *models.WardrobeItem) error {
	err := row.Scan(
		&item.ID,
		&item.Code,
		&item.Name,
		&item.Layer,
		&item.DriveFileID,
		&item.FileName,
		&item.ImageURL,
		&item.IsActive,
		&item.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to scan wardrobe item: %w", err)
	}
	return nil
}
