package service

import (
	"context"

	"armario-probador/models"
)

// DownloadServiceInterface defines the contract for mirroring Drive garments
// into the local catalog directory
type DownloadServiceInterface interface {
	MirrorWardrobe(ctx context.Context, folderID string) (*models.WardrobeDownloadResult, error)
}
