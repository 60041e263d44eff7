package service

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"armario-probador/models"
	"armario-probador/repository"
)

func TestImageServiceDriveSourceIsCached(t *testing.T) {
	drive := &fakeDrive{files: map[string][]byte{"d1": makePNG(t, 1000, 1000, color.Black)}}
	repo := &fakeWardrobeRepo{items: map[string]models.WardrobeItem{
		"T1": {Code: "T1", Layer: "top", DriveFileID: "d1"},
	}}
	svc := NewImageService(repo, drive, NewImageCache(t.TempDir()))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.GetImage(context.Background(), "T1", "thumb"); err != nil {
				t.Errorf("GetImage() error = %v", err)
			}
		}()
	}
	wg.Wait()

	data, err := svc.GetImage(context.Background(), "T1", "thumb")
	if err != nil {
		t.Fatalf("GetImage() error = %v", err)
	}
	if b := decodePNG(t, data).Bounds(); b.Dx() != 300 {
		t.Errorf("GetImage(thumb) width = %d, want 300", b.Dx())
	}
	if drive.downloads > 4 || drive.downloads < 1 {
		t.Errorf("downloads = %d, want between 1 and 4", drive.downloads)
	}

	before := drive.downloads
	if _, err := svc.GetImage(context.Background(), "T1", "thumb"); err != nil {
		t.Fatal(err)
	}
	if drive.downloads != before {
		t.Errorf("cached GetImage() downloaded again")
	}
}

func TestImageServiceLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shoe-S1.png")
	if err := os.WriteFile(path, makePNG(t, 10, 10, color.White), 0644); err != nil {
		t.Fatal(err)
	}
	svc := NewImageService(repository.NewDirRepository(dir), nil, NewImageCache(t.TempDir()))

	img, err := svc.LoadLayerImage(context.Background(), "/dressup/items/S1/image?size=medium")
	if err != nil {
		t.Fatalf("LoadLayerImage() error = %v", err)
	}
	if img.Bounds().Dx() != 10 {
		t.Errorf("LoadLayerImage() width = %d, want 10", img.Bounds().Dx())
	}
}

func TestImageServiceErrors(t *testing.T) {
	repo := &fakeWardrobeRepo{items: map[string]models.WardrobeItem{
		"X1": {Code: "X1", Layer: "top"},
	}}
	svc := NewImageService(repo, nil, NewImageCache(t.TempDir()))

	if _, err := svc.GetImage(context.Background(), "X1", "medium"); !errors.Is(err, ErrImageSourceUnavailable) {
		t.Errorf("GetImage(no source) error = %v, want ErrImageSourceUnavailable", err)
	}
	if _, err := svc.GetImage(context.Background(), "nope", "medium"); !errors.Is(err, repository.ErrWardrobeItemNotFound) {
		t.Errorf("GetImage(unknown) error = %v, want ErrWardrobeItemNotFound", err)
	}
	if _, err := svc.LoadLayerImage(context.Background(), "/static/model.png"); err == nil {
		t.Error("LoadLayerImage(non item ref) should fail")
	}
}

// blockingDrive holds every download until release is closed. It fails only
// when the context it was handed is cancelled.
type blockingDrive struct {
	data    []byte
	started chan struct{}
	release chan struct{}
}

func (d *blockingDrive) ListWardrobeAssets(ctx context.Context, folderID string) ([]models.WardrobeAsset, error) {
	return nil, nil
}

func (d *blockingDrive) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	d.started <- struct{}{}
	select {
	case <-d.release:
		return d.data, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestImageServiceSharedFetchSurvivesCallerCancel(t *testing.T) {
	drive := &blockingDrive{
		data:    makePNG(t, 20, 20, color.Black),
		started: make(chan struct{}, 4),
		release: make(chan struct{}),
	}
	repo := &fakeWardrobeRepo{items: map[string]models.WardrobeItem{
		"T1": {Code: "T1", Layer: "top", DriveFileID: "d1"},
	}}
	svc := NewImageService(repo, drive, NewImageCache(t.TempDir()))

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.GetImage(first, "T1", "medium")
		firstErr <- err
	}()
	<-drive.started

	type result struct {
		data []byte
		err  error
	}
	second := make(chan result, 1)
	go func() {
		data, err := svc.GetImage(context.Background(), "T1", "medium")
		second <- result{data, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	select {
	case err := <-firstErr:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("cancelled GetImage() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled GetImage() kept waiting for the fetch")
	}

	close(drive.release)
	select {
	case r := <-second:
		if r.err != nil {
			t.Fatalf("second GetImage() error = %v, want the shared result", r.err)
		}
		if b := decodePNG(t, r.data).Bounds(); b.Dx() != 20 {
			t.Errorf("second GetImage() width = %d, want 20", b.Dx())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("second GetImage() did not return")
	}
}

func TestImageServiceCodeIsCaseInsensitive(t *testing.T) {
	drive := &fakeDrive{files: map[string][]byte{"d1": makePNG(t, 10, 10, color.White)}}
	repo := &fakeWardrobeRepo{items: map[string]models.WardrobeItem{
		"T1": {Code: "T1", Layer: "top", DriveFileID: "d1"},
	}}
	svc := NewImageService(repo, drive, NewImageCache(t.TempDir()))

	for _, code := range []string{"T1", "t1", " t1 "} {
		if _, err := svc.GetImage(context.Background(), code, "thumb"); err != nil {
			t.Fatalf("GetImage(%q) error = %v", code, err)
		}
	}
	if drive.downloads != 1 {
		t.Errorf("downloads = %d, want 1 (one cache entry per item)", drive.downloads)
	}
}
