package models

import "time"

// WardrobeAsset represents a garment image found in Google Drive or in the
// local catalog directory, parsed from its file name
type WardrobeAsset struct {
	DriveFileID string `json:"driveFileId,omitempty"`
	FileName    string `json:"fileName"`
	FilePath    string `json:"filePath,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Layer       string `json:"layer"`
	Code        string `json:"code"`
	Name        string `json:"name"`
}

// WardrobeItem represents a garment available in the dress-up catalog
type WardrobeItem struct {
	ID          int       `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Layer       string    `json:"layer"`
	DriveFileID string    `json:"driveFileId,omitempty"`
	FileName    string    `json:"fileName"`
	FilePath    string    `json:"-"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WardrobeItemDB represents a wardrobe item for insert operations
type WardrobeItemDB struct {
	Code        string
	Name        string
	Layer       string
	DriveFileID string
	FileName    string
	ImageURL    string
}

// WardrobeSyncResult is the response of GET /admin/wardrobe/sync
type WardrobeSyncResult struct {
	FolderID string          `json:"folderId"`
	Inserted int             `json:"inserted"`
	Skipped  int             `json:"skipped"`
	Total    int             `json:"total"`
	Assets   []WardrobeAsset `json:"assets"`
}

// WardrobeDownloadResult is the response of GET /admin/wardrobe/download
type WardrobeDownloadResult struct {
	FolderID   string   `json:"folderId"`
	Dir        string   `json:"dir"`
	Total      int      `json:"total"`
	Downloaded int      `json:"downloaded"`
	Skipped    int      `json:"skipped"`
	Errors     []string `json:"errors,omitempty"`
}
