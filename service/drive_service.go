package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"armario-probador/models"
	"armario-probador/utils"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// maxDriveImageBytes bounds a single garment download
const maxDriveImageBytes = 32 << 20

var imageMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// DriveService handles Google Drive API operations
// Implements DriveServiceInterface
type DriveService struct {
	client *drive.Service
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath string) (*DriveService, error) {
	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// ListWardrobeAssets lists all garment images in a Google Drive folder and
// parses their file names. Files that do not follow the naming pattern are
// skipped with a warning.
func (ds *DriveService) ListWardrobeAssets(ctx context.Context, folderID string) ([]models.WardrobeAsset, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", strings.ReplaceAll(folderID, "'", `\'`))

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Context(ctx).
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	var assets []models.WardrobeAsset
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}

		parsed, err := utils.ParseWardrobeFileName(file.Name)
		if err != nil {
			log.Printf("⚠️  Warning: failed to parse filename %s: %v", file.Name, err)
			continue
		}

		parsed.DriveFileID = file.Id
		parsed.ImageURL = fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id)
		assets = append(assets, *parsed)
	}

	log.Printf("📦 Found %d wardrobe images in folder %s (%d files)", len(assets), folderID, len(allFiles))
	return assets, nil
}

// DownloadImage downloads the raw bytes of a Drive file
func (ds *DriveService) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDriveImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	return data, nil
}
