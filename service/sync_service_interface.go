package service

import (
	"context"

	"armario-probador/models"
)

// SyncServiceInterface defines the contract for synchronization operations
type SyncServiceInterface interface {
	// SyncWardrobe copies new garments from a Drive folder into the catalog table:
	// inserted = new rows created, skipped = already existed (by drive_file_id or code), total = total assets seen in Drive.
	SyncWardrobe(ctx context.Context, folderID string) (assets []models.WardrobeAsset, inserted int, skipped int, total int, err error)
}
