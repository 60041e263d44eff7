package service

import (
	"context"
	"fmt"
	"log"

	"armario-probador/models"
	"armario-probador/repository"
	"armario-probador/utils"
)

// SyncService handles synchronization between Google Drive and PostgreSQL
// Implements SyncServiceInterface
type SyncService struct {
	driveService DriveServiceInterface
	repository   repository.WardrobeRepositoryInterface
}

// NewSyncService creates a new SyncService
func NewSyncService(driveService DriveServiceInterface, repo repository.WardrobeRepositoryInterface) *SyncService {
	return &SyncService{
		driveService: driveService,
		repository:   repo,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncWardrobe synchronizes garments from Google Drive to PostgreSQL and returns stats.
// Per-file failures are logged and skipped; only listing failures abort the sync.
func (s *SyncService) SyncWardrobe(ctx context.Context, folderID string) (assets []models.WardrobeAsset, inserted int, skipped int, total int, err error) {
	log.Printf("🔄 Starting wardrobe synchronization for folder: %s", folderID)

	driveAssets, err := s.driveService.ListWardrobeAssets(ctx, folderID)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("failed to list wardrobe assets from Drive: %w", err)
	}
	total = len(driveAssets)

	for _, asset := range driveAssets {
		if err := ctx.Err(); err != nil {
			return driveAssets, inserted, skipped, total, err
		}

		exists, err := s.repository.ExistsByDriveFileID(ctx, asset.DriveFileID)
		if err != nil {
			log.Printf("❌ Error checking existence for drive_file_id: %s: %v", asset.DriveFileID, err)
			continue
		}
		if exists {
			log.Printf("⏭️  Skipping drive_file_id: %s (already exists in database)", asset.DriveFileID)
			skipped++
			continue
		}

		dbItem := &models.WardrobeItemDB{
			Code:        asset.Code,
			Name:        asset.Name,
			Layer:       asset.Layer,
			DriveFileID: asset.DriveFileID,
			FileName:    asset.FileName,
			ImageURL:    utils.BuildItemImageRef(asset.Code, utils.SizeMedium),
		}

		ok, err := s.repository.Insert(ctx, dbItem)
		if err != nil {
			log.Printf("❌ Error inserting drive_file_id %s into database: %v", asset.DriveFileID, err)
			continue
		}
		if !ok {
			skipped++
			continue
		}

		log.Printf("✅ Added %s (%s) from drive_file_id: %s", asset.Code, asset.Layer, asset.DriveFileID)
		inserted++
	}

	log.Printf("🎉 Wardrobe synchronization completed: %d inserted, %d skipped, %d total", inserted, skipped, total)
	return driveAssets, inserted, skipped, total, nil
}
