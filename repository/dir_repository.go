package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"armario-probador/dressup"
	"armario-probador/models"
	"armario-probador/utils"
)

// DirRepository reads the catalog from a directory of garment images named
// LAYER-CODE[-NAME].png. It is used when no database is configured.
// Implements WardrobeReader
type DirRepository struct {
	dir string
}

// NewDirRepository creates a DirRepository over dir
func NewDirRepository(dir string) *DirRepository {
	return &DirRepository{dir: dir}
}

// Ensure DirRepository implements WardrobeReader
var _ WardrobeReader = (*DirRepository)(nil)

// Dir returns the catalog directory
func (r *DirRepository) Dir() string { return r.dir }

// ListActive scans the directory. Files that do not match the naming pattern
// are skipped with a warning. When two files share a code the first one in
// name order wins.
func (r *DirRepository) ListActive(ctx context.Context, layer string) ([]models.WardrobeItem, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	want := string(dressup.ParseLayer(layer))
	seen := make(map[string]bool)
	var items []models.WardrobeItem
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}

		asset, err := utils.ParseWardrobeFileName(entry.Name())
		if err != nil {
			log.Printf("⚠️  Skipping %s: %v", entry.Name(), err)
			continue
		}
		if seen[asset.Code] {
			log.Printf("⚠️  Skipping %s: duplicate code %s", entry.Name(), asset.Code)
			continue
		}
		seen[asset.Code] = true

		if want != "" && asset.Layer != want {
			continue
		}

		item := models.WardrobeItem{
			Code:     asset.Code,
			Name:     asset.Name,
			Layer:    asset.Layer,
			FileName: asset.FileName,
			FilePath: filepath.Join(r.dir, entry.Name()),
			IsActive: true,
		}
		if info, err := entry.Info(); err == nil {
			item.CreatedAt = info.ModTime()
		}
		items = append(items, item)
	}

	SortWardrobeItems(items)
	for i := range items {
		items[i].ID = i + 1
	}
	return items, nil
}

// GetByCode returns the item with the given code
func (r *DirRepository) GetByCode(ctx context.Context, code string) (*models.WardrobeItem, error) {
	items, err := r.ListActive(ctx, "")
	if err != nil {
		return nil, err
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	for i := range items {
		if items[i].Code == code {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrWardrobeItemNotFound, code)
}

// SortWardrobeItems orders items back to front by layer priority, then by code
func SortWardrobeItems(items []models.WardrobeItem) {
	sort.SliceStable(items, func(i, j int) bool {
		pi := dressup.PriorityOf(dressup.LayerCategory(items[i].Layer))
		pj := dressup.PriorityOf(dressup.LayerCategory(items[j].Layer))
		if pi != pj {
			return pi < pj
		}
		if items[i].Layer != items[j].Layer {
			return items[i].Layer < items[j].Layer
		}
		return items[i].Code < items[j].Code
	})
}
