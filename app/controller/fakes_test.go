package controller

import (
	"context"
	"fmt"
	"image"

	"armario-probador/models"
	"armario-probador/repository"
)

type fakeReader struct {
	items []models.WardrobeItem
	err   error
}

func (f *fakeReader) ListActive(ctx context.Context, layer string) ([]models.WardrobeItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.WardrobeItem
	for _, it := range f.items {
		if layer == "" || it.Layer == layer {
			out = append(out, it)
		}
	}
	repository.SortWardrobeItems(out)
	return out, nil
}

func (f *fakeReader) GetByCode(ctx context.Context, code string) (*models.WardrobeItem, error) {
	for _, it := range f.items {
		if it.Code == code {
			return &it, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", repository.ErrWardrobeItemNotFound, code)
}

type fakeImages struct {
	data map[string][]byte
}

func (f *fakeImages) GetImage(ctx context.Context, code, size string) ([]byte, error) {
	d, ok := f.data[code+"|"+size]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrWardrobeItemNotFound, code)
	}
	return d, nil
}

func (f *fakeImages) LoadLayerImage(ctx context.Context, ref string) (image.Image, error) {
	return nil, fmt.Errorf("not used")
}

type fakeSync struct {
	folder string
}

func (f *fakeSync) SyncWardrobe(ctx context.Context, folderID string) ([]models.WardrobeAsset, int, int, int, error) {
	f.folder = folderID
	return []models.WardrobeAsset{{Code: "T1", Layer: "top"}}, 1, 2, 3, nil
}

type fakeDownload struct{}

func (fakeDownload) MirrorWardrobe(ctx context.Context, folderID string) (*models.WardrobeDownloadResult, error) {
	return &models.WardrobeDownloadResult{FolderID: folderID, Total: 2, Downloaded: 2}, nil
}

var wardrobe = []models.WardrobeItem{
	{Code: "T1", Name: "blusa", Layer: "top"},
	{Code: "S1", Name: "tenis", Layer: "shoe"},
	{Code: "T2", Name: "camiseta", Layer: "top"},
}
