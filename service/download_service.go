package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"armario-probador/models"
)

// DownloadService downloads garments from Google Drive into the catalog
// directory, so the app can run from disk without Drive or a database.
// Implements DownloadServiceInterface
type DownloadService struct {
	driveService DriveServiceInterface
	dir          string
}

// NewDownloadService creates a new DownloadService writing into dir
func NewDownloadService(driveService DriveServiceInterface, dir string) *DownloadService {
	return &DownloadService{
		driveService: driveService,
		dir:          dir,
	}
}

// Ensure DownloadService implements DownloadServiceInterface
var _ DownloadServiceInterface = (*DownloadService)(nil)

// MirrorWardrobe downloads every garment in the folder that is not on disk
// yet, optimizes it to medium size and saves it as LAYER-CODE-NAME.png.
// Per-file failures are collected in Errors.
func (ds *DownloadService) MirrorWardrobe(ctx context.Context, folderID string) (*models.WardrobeDownloadResult, error) {
	log.Printf("📥 Starting download process for folder: %s into %s", folderID, ds.dir)

	if err := os.MkdirAll(ds.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	assets, err := ds.driveService.ListWardrobeAssets(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wardrobe assets from Drive: %w", err)
	}

	result := &models.WardrobeDownloadResult{
		FolderID: folderID,
		Dir:      ds.dir,
		Total:    len(assets),
	}
	usedFileNames := make(map[string]bool)

	for _, asset := range assets {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fileName := MirrorFileName(asset)
		filePath := filepath.Join(ds.dir, fileName)

		if _, err := os.Stat(filePath); err == nil {
			log.Printf("⏭️  Skipping %s (already exists on disk)", fileName)
			result.Skipped++
			continue
		}
		if usedFileNames[fileName] {
			log.Printf("⏭️  Skipping %s (duplicate filename in this session)", fileName)
			result.Skipped++
			continue
		}
		usedFileNames[fileName] = true

		imageData, err := ds.driveService.DownloadImage(ctx, asset.DriveFileID)
		if err != nil {
			ds.fail(result, "Failed to download image %s (%s): %v", fileName, asset.DriveFileID, err)
			continue
		}

		optimizedData, err := OptimizeImage(imageData, "medium")
		if err != nil {
			ds.fail(result, "Failed to optimize image %s (%s): %v", fileName, asset.DriveFileID, err)
			continue
		}

		if err := os.WriteFile(filePath, optimizedData, 0644); err != nil {
			ds.fail(result, "Failed to save image %s: %v", fileName, err)
			continue
		}

		log.Printf("✓ Successfully downloaded and saved: %s", filePath)
		result.Downloaded++
	}

	log.Printf("🎉 Download completed: %d downloaded, %d skipped, %d failed out of %d total images",
		result.Downloaded, result.Skipped, len(result.Errors), result.Total)
	return result, nil
}

func (ds *DownloadService) fail(result *models.WardrobeDownloadResult, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("❌ %s", msg)
	result.Errors = append(result.Errors, msg)
}

// MirrorFileName returns the on-disk name for a Drive asset. It always ends in
// .png because mirrored files are re-encoded.
func MirrorFileName(asset models.WardrobeAsset) string {
	name := strings.ReplaceAll(strings.TrimSpace(asset.Name), " ", "_")
	name = strings.ReplaceAll(name, "/", "_")
	if name == "" || name == asset.Code {
		return fmt.Sprintf("%s-%s.png", asset.Layer, asset.Code)
	}
	return fmt.Sprintf("%s-%s-%s.png", asset.Layer, asset.Code, name)
}
