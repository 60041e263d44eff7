package service

import (
	"context"

	"armario-probador/models"
)

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListWardrobeAssets(ctx context.Context, folderID string) ([]models.WardrobeAsset, error)
	DownloadImage(ctx context.Context, fileID string) ([]byte, error)
}
