package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"github.com/disintegration/imaging"

	"armario-probador/utils"
)

const (
	// DefaultCacheDir is used when IMAGE_CACHE_DIR is not set
	DefaultCacheDir = "cache/images"
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

var unsafeCacheChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// ImageCache stores optimized garment images on disk. Entries are immutable;
// writes go to a temp file that is renamed into place, so concurrent readers
// never see a partial file.
type ImageCache struct {
	dir string
}

// NewImageCache creates an ImageCache rooted at dir
func NewImageCache(dir string) *ImageCache {
	if dir == "" {
		dir = DefaultCacheDir
	}
	return &ImageCache{dir: dir}
}

// EnsureDir ensures the cache directory exists, creates it if it doesn't
func (c *ImageCache) EnsureDir() error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// Path returns the cache file path for a given item code and size
func (c *ImageCache) Path(code, size string) string {
	filename := fmt.Sprintf("wardrobe_%s_%s.png", unsafeCacheChars.ReplaceAllString(code, "_"), utils.NormalizeImageSize(size))
	return filepath.Join(c.dir, filename)
}

// Read returns the cached image, or ok=false when it is not cached
func (c *ImageCache) Read(code, size string) (data []byte, ok bool, err error) {
	data, err = os.ReadFile(c.Path(code, size))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read from cache: %w", err)
	}
	return data, true, nil
}

// Write saves an image to the cache
func (c *ImageCache) Write(code, size string, imageData []byte) error {
	if err := c.EnsureDir(); err != nil {
		return err
	}
	cachePath := c.Path(code, size)

	tmp, err := os.CreateTemp(c.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create cache temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(imageData); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Rename(tmpName, cachePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move image into cache: %w", err)
	}

	log.Printf("✓ Image cached: %s", cachePath)
	return nil
}

// maxDimension returns the bounding box for a size name
func maxDimension(size string) int {
	if utils.NormalizeImageSize(size) == utils.SizeThumb {
		return maxSizeThumb
	}
	return maxSizeMedium
}

// OptimizeImage decodes a garment image, fits it into the size's bounding box
// and re-encodes it as PNG. Garments are cut-outs layered over the model, so
// the alpha channel has to survive.
// size: "thumb" or "medium"
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	maxDim := maxDimension(size)
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resizedImg image.Image = img
	if width > maxDim || height > maxDim {
		// imaging.Fit keeps the aspect ratio
		log.Printf("🔄 Resizing %s image: %dx%d -> fit %d", format, width, height, maxDim)
		resizedImg = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	if err := encoder.Encode(&buf, resizedImg); err != nil {
		return nil, fmt.Errorf("failed to encode to PNG: %w", err)
	}

	return buf.Bytes(), nil
}
