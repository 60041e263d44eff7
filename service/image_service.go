package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"armario-probador/repository"
	"armario-probador/utils"
)

// fetchTimeout bounds a shared fetch, which outlives the request that
// started it
const fetchTimeout = 30 * time.Second

// ErrImageSourceUnavailable is returned when an item has neither a Drive file
// nor a local file to read from
var ErrImageSourceUnavailable = errors.New("no image source for item")

// ImageServiceInterface defines the contract for serving garment images
type ImageServiceInterface interface {
	GetImage(ctx context.Context, code string, size string) ([]byte, error)
	LoadLayerImage(ctx context.Context, sourceRef string) (image.Image, error)
}

// ImageService serves optimized garment images: cache first, then the item's
// source (Drive or local file), optimized and written back to the cache.
// Implements ImageServiceInterface
type ImageService struct {
	reader       repository.WardrobeReader
	driveService DriveServiceInterface
	cache        *ImageCache
	group        singleflight.Group
}

// NewImageService creates a new ImageService. driveService may be nil when
// only local files are served.
func NewImageService(reader repository.WardrobeReader, driveService DriveServiceInterface, cache *ImageCache) *ImageService {
	return &ImageService{
		reader:       reader,
		driveService: driveService,
		cache:        cache,
	}
}

// Ensure ImageService implements ImageServiceInterface
var _ ImageServiceInterface = (*ImageService)(nil)

// GetImage returns the optimized PNG for an item code. Concurrent requests for
// the same code and size share one fetch; a caller that goes away stops
// waiting without failing the others.
func (s *ImageService) GetImage(ctx context.Context, code string, size string) ([]byte, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	size = utils.NormalizeImageSize(size)

	if data, ok, err := s.cache.Read(code, size); err != nil {
		log.Printf("⚠️  Warning: %v", err)
	} else if ok {
		return data, nil
	}

	ch := s.group.DoChan(code+"|"+size, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		return s.fetch(fetchCtx, code, size)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (s *ImageService) fetch(ctx context.Context, code, size string) ([]byte, error) {
	item, err := s.reader.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get wardrobe item: %w", err)
	}

	var raw []byte
	switch {
	case item.DriveFileID != "" && s.driveService != nil:
		log.Printf("📥 Downloading %s from Drive (%s)", item.Code, item.DriveFileID)
		raw, err = s.driveService.DownloadImage(ctx, item.DriveFileID)
	case item.FilePath != "":
		raw, err = os.ReadFile(item.FilePath)
	default:
		return nil, fmt.Errorf("%w: %s", ErrImageSourceUnavailable, item.Code)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read image for %s: %w", item.Code, err)
	}

	optimized, err := OptimizeImage(raw, size)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize image for %s: %w", item.Code, err)
	}

	if err := s.cache.Write(item.Code, size, optimized); err != nil {
		log.Printf("⚠️  Warning: failed to cache %s: %v", item.Code, err)
	}
	return optimized, nil
}

// LoadLayerImage resolves an item image ref (as placed on the model) to a
// decoded image
func (s *ImageService) LoadLayerImage(ctx context.Context, sourceRef string) (image.Image, error) {
	code, size, err := utils.ParseItemImageRef(sourceRef)
	if err != nil {
		return nil, err
	}
	data, err := s.GetImage(ctx, code, size)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode layer image: %w", err)
	}
	return img, nil
}
