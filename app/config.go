package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"armario-probador/dressup"
	"armario-probador/service"
)

// Rasterizer names accepted by EXPORT_RASTERIZER
const (
	RasterizerChrome    = "chrome"
	RasterizerComposite = "composite"
	RasterizerNone      = "none"
)

// Config holds the settings read from the environment
type Config struct {
	Port            string
	BaseURL         string
	CatalogDir      string
	CredentialsPath string
	DriveFolderID   string
	ImageCacheDir   string
	Rasterizer      string
	ChromePath      string
	StaticDir       string
	ModelImage      string // file name inside StaticDir
	DragThresholdPx float64
}

// LoadConfig reads the configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		CatalogDir:      getEnv("CATALOG_DIR", "catalog"),
		CredentialsPath: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		DriveFolderID:   os.Getenv("DRIVE_FOLDER_ID"),
		ImageCacheDir:   getEnv("IMAGE_CACHE_DIR", service.DefaultCacheDir),
		Rasterizer:      strings.ToLower(getEnv("EXPORT_RASTERIZER", RasterizerChrome)),
		ChromePath:      os.Getenv("CHROME_PATH"),
		StaticDir:       getEnv("STATIC_DIR", "static"),
		ModelImage:      getEnv("MODEL_IMAGE", "model.png"),
		DragThresholdPx: dressup.DefaultDragThresholdPx,
	}

	// Remove leading colon if present (PORT from Render doesn't include it)
	cfg.Port = strings.TrimPrefix(cfg.Port, ":")
	cfg.BaseURL = strings.TrimRight(getEnv("BASE_URL", "http://localhost:"+cfg.Port), "/")

	switch cfg.Rasterizer {
	case RasterizerChrome, RasterizerComposite, RasterizerNone:
	default:
		return nil, fmt.Errorf("invalid EXPORT_RASTERIZER %q: expected chrome, composite or none", cfg.Rasterizer)
	}

	if v := os.Getenv("DRAG_THRESHOLD_PX"); v != "" {
		px, err := strconv.ParseFloat(v, 64)
		if err != nil || px <= 0 {
			return nil, fmt.Errorf("invalid DRAG_THRESHOLD_PX %q: expected a positive number", v)
		}
		cfg.DragThresholdPx = px
	}

	return cfg, nil
}

// ModelImagePath returns the silhouette file path, or "" when it does not exist
func (c *Config) ModelImagePath() string {
	if c.ModelImage == "" {
		return ""
	}
	path := filepath.Join(c.StaticDir, c.ModelImage)
	if _, err := os.Stat(path); err != nil {
		log.Printf("⚠️  Model image not found at %s, using a blank model", path)
		return ""
	}
	return path
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
