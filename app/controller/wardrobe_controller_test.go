package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"armario-probador/models"
)

func TestWardrobeSync(t *testing.T) {
	sync := &fakeSync{}
	c := NewWardrobeController(sync, nil, "default-folder")

	rec := httptest.NewRecorder()
	c.Sync(rec, httptest.NewRequest(http.MethodGet, "/admin/wardrobe/sync?folderId=abc", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Sync() status = %d, body %s", rec.Code, rec.Body)
	}
	var res models.WardrobeSyncResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if sync.folder != "abc" || res.Inserted != 1 || res.Skipped != 2 || res.Total != 3 {
		t.Errorf("Sync() = %+v, folder %s", res, sync.folder)
	}

	rec = httptest.NewRecorder()
	c.Sync(rec, httptest.NewRequest(http.MethodGet, "/admin/wardrobe/sync", nil))
	if sync.folder != "default-folder" {
		t.Errorf("Sync() without folderId used %q, want the default", sync.folder)
	}
}

func TestWardrobeNotConfigured(t *testing.T) {
	c := NewWardrobeController(nil, nil, "")

	rec := httptest.NewRecorder()
	c.Sync(rec, httptest.NewRequest(http.MethodGet, "/admin/wardrobe/sync", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Sync() status = %d, want 503", rec.Code)
	}

	rec = httptest.NewRecorder()
	c.Download(rec, httptest.NewRequest(http.MethodPost, "/admin/wardrobe/download", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Download() status = %d, want 503", rec.Code)
	}
}

func TestWardrobeDownload(t *testing.T) {
	c := NewWardrobeController(nil, fakeDownload{}, "")

	rec := httptest.NewRecorder()
	c.Download(rec, httptest.NewRequest(http.MethodPost, "/admin/wardrobe/download", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Download() without folder status = %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	c.Download(rec, httptest.NewRequest(http.MethodPost, "/admin/wardrobe/download?folderId=f", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Download() status = %d", rec.Code)
	}
	var res models.WardrobeDownloadResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.FolderID != "f" || res.Downloaded != 2 {
		t.Errorf("Download() = %+v", res)
	}
}
