package service

import (
	"context"
	"errors"
	"testing"

	"armario-probador/models"
)

func TestSyncWardrobe(t *testing.T) {
	drive := &fakeDrive{assets: []models.WardrobeAsset{
		{DriveFileID: "d1", FileName: "top-T1.png", Layer: "top", Code: "T1", Name: "T1"},
		{DriveFileID: "d2", FileName: "shoe-S1.png", Layer: "shoe", Code: "S1", Name: "S1"},
		{DriveFileID: "d3", FileName: "bottom-B1.png", Layer: "bottom", Code: "B1", Name: "B1"},
		{DriveFileID: "d4", FileName: "tops-T1.png", Layer: "top", Code: "T1", Name: "T1"},
	}}
	repo := &fakeWardrobeRepo{
		existing:  map[string]bool{"d2": true},
		failExist: map[string]bool{"d3": true},
	}

	assets, inserted, skipped, total, err := NewSyncService(drive, repo).SyncWardrobe(context.Background(), "folder")
	if err != nil {
		t.Fatalf("SyncWardrobe() error = %v", err)
	}
	if len(assets) != 4 || total != 4 {
		t.Errorf("SyncWardrobe() assets = %d, total = %d, want 4, 4", len(assets), total)
	}
	if inserted != 1 {
		t.Errorf("inserted = %d, want 1", inserted)
	}
	// d2 exists, d4 conflicts on code; d3 errored and is neither
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].ImageURL != "/dressup/items/T1/image?size=medium" {
		t.Errorf("inserted rows = %+v", repo.inserted)
	}
}

func TestSyncWardrobeListError(t *testing.T) {
	want := errors.New("drive down")
	drive := &fakeDrive{listErr: want}

	_, _, _, _, err := NewSyncService(drive, &fakeWardrobeRepo{}).SyncWardrobe(context.Background(), "folder")
	if !errors.Is(err, want) {
		t.Errorf("SyncWardrobe() error = %v, want %v", err, want)
	}
}
