package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"armario-probador/models"
	"armario-probador/service"
)

// WardrobeController handles the admin endpoints that pull garments from Drive
type WardrobeController struct {
	syncService     service.SyncServiceInterface
	downloadService service.DownloadServiceInterface
	defaultFolderID string
}

// NewWardrobeController creates a new WardrobeController. Either service may
// be nil when its backend is not configured.
func NewWardrobeController(
	syncService service.SyncServiceInterface,
	downloadService service.DownloadServiceInterface,
	defaultFolderID string,
) *WardrobeController {
	return &WardrobeController{
		syncService:     syncService,
		downloadService: downloadService,
		defaultFolderID: defaultFolderID,
	}
}

func (c *WardrobeController) folderID(r *http.Request) string {
	if id := r.URL.Query().Get("folderId"); id != "" {
		return id
	}
	return c.defaultFolderID
}

// Sync handles GET /admin/wardrobe/sync?folderId=
// Fetches garments from Google Drive and inserts the new ones into the database
func (c *WardrobeController) Sync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.syncService == nil {
		http.Error(w, "Sync requires Google Drive credentials and a database", http.StatusServiceUnavailable)
		return
	}
	folderID := c.folderID(r)
	if folderID == "" {
		http.Error(w, "folderId parameter is required", http.StatusBadRequest)
		return
	}

	assets, inserted, skipped, total, err := c.syncService.SyncWardrobe(r.Context(), folderID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to sync wardrobe: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, models.WardrobeSyncResult{
		FolderID: folderID,
		Inserted: inserted,
		Skipped:  skipped,
		Total:    total,
		Assets:   assets,
	})
}

// Download handles POST /admin/wardrobe/download?folderId=
// Mirrors the Drive folder into the local catalog directory
func (c *WardrobeController) Download(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.downloadService == nil {
		http.Error(w, "Download requires Google Drive credentials", http.StatusServiceUnavailable)
		return
	}
	folderID := c.folderID(r)
	if folderID == "" {
		http.Error(w, "folderId parameter is required", http.StatusBadRequest)
		return
	}

	log.Printf("📥 Download request received for folder: %s", folderID)
	result, err := c.downloadService.MirrorWardrobe(r.Context(), folderID)
	if err != nil {
		log.Printf("❌ Download failed: %v", err)
		http.Error(w, fmt.Sprintf("Failed to download images: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, result)
	log.Printf("✅ Download request completed: %d/%d images downloaded", result.Downloaded, result.Total)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}
