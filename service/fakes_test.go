package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"armario-probador/models"
	"armario-probador/repository"
)

type fakeDrive struct {
	mu        sync.Mutex
	assets    []models.WardrobeAsset
	files     map[string][]byte
	listErr   error
	downloads int
}

func (f *fakeDrive) ListWardrobeAssets(ctx context.Context, folderID string) ([]models.WardrobeAsset, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.assets, nil
}

func (f *fakeDrive) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.downloads++
	data, ok := f.files[fileID]
	if !ok {
		return nil, fmt.Errorf("file %s not found", fileID)
	}
	return data, nil
}

type fakeWardrobeRepo struct {
	existing  map[string]bool
	failExist map[string]bool
	items     map[string]models.WardrobeItem
	inserted  []models.WardrobeItemDB
}

func (f *fakeWardrobeRepo) EnsureSchema(ctx context.Context) error { return nil }

func (f *fakeWardrobeRepo) ExistsByDriveFileID(ctx context.Context, id string) (bool, error) {
	if f.failExist[id] {
		return false, errors.New("boom")
	}
	return f.existing[id], nil
}

func (f *fakeWardrobeRepo) Insert(ctx context.Context, item *models.WardrobeItemDB) (bool, error) {
	for _, in := range f.inserted {
		if in.Code == item.Code {
			return false, nil
		}
	}
	f.inserted = append(f.inserted, *item)
	return true, nil
}

func (f *fakeWardrobeRepo) ListActive(ctx context.Context, layer string) ([]models.WardrobeItem, error) {
	var out []models.WardrobeItem
	for _, it := range f.items {
		if layer == "" || it.Layer == layer {
			out = append(out, it)
		}
	}
	repository.SortWardrobeItems(out)
	return out, nil
}

func (f *fakeWardrobeRepo) GetByCode(ctx context.Context, code string) (*models.WardrobeItem, error) {
	it, ok := f.items[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrWardrobeItemNotFound, code)
	}
	return &it, nil
}

var _ repository.WardrobeRepositoryInterface = (*fakeWardrobeRepo)(nil)

// makePNG returns a w×h PNG filled with c.
func makePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	return img
}
