package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"armario-probador/app/controller"
	"armario-probador/app/router"
	"armario-probador/db"
	"armario-probador/dressup"
	"armario-probador/repository"
	"armario-probador/service"
)

// Initialize wires repositories, services and controllers and returns the
// HTTP handler
func Initialize(ctx context.Context, cfg *Config) (http.Handler, error) {
	// Catalog: database when configured, otherwise the local directory
	var reader repository.WardrobeReader
	var wardrobeRepo repository.WardrobeRepositoryInterface
	if err := db.InitDB(ctx); err != nil {
		if !errors.Is(err, db.ErrNotConfigured) {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Printf("⚠️  No database configured, serving the catalog from %s", cfg.CatalogDir)
		reader = repository.NewDirRepository(cfg.CatalogDir)
	} else {
		repo := repository.NewWardrobeRepository()
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		reader, wardrobeRepo = repo, repo
	}

	// Google Drive is optional
	var driveService service.DriveServiceInterface
	if cfg.CredentialsPath != "" {
		ds, err := service.NewDriveService(ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		driveService = ds
		log.Printf("✓ Google Drive client ready")
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS is not set, Drive sync is disabled")
	}

	imageCache := service.NewImageCache(cfg.ImageCacheDir)
	if err := imageCache.EnsureDir(); err != nil {
		return nil, err
	}
	imageService := service.NewImageService(reader, driveService, imageCache)

	exportService := service.NewExportService(newRasterizer(cfg, imageService))

	var syncService service.SyncServiceInterface
	var downloadService service.DownloadServiceInterface
	if driveService != nil {
		if wardrobeRepo != nil {
			syncService = service.NewSyncService(driveService, wardrobeRepo)
		}
		downloadService = service.NewDownloadService(driveService, cfg.CatalogDir)
	}

	controllers := &router.Controllers{
		Dressup:  controller.NewDressupController(reader, exportService, cfg.ModelImagePath(), cfg.DragThresholdPx),
		Image:    controller.NewImageController(imageService),
		Export:   controller.NewExportController(exportService),
		Wardrobe: controller.NewWardrobeController(syncService, downloadService, cfg.DriveFolderID),
	}

	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers, cfg.StaticDir)
	return mux, nil
}

// newRasterizer picks the export backend. Chrome falls back to the composite
// rasterizer when no browser is installed.
func newRasterizer(cfg *Config, loader service.LayerImageLoader) dressup.Rasterizer {
	switch cfg.Rasterizer {
	case RasterizerNone:
		log.Printf("⚠️  Export disabled (EXPORT_RASTERIZER=none)")
		return nil
	case RasterizerChrome:
		chrome := service.NewChromeRasterizer(cfg.ChromePath, cfg.BaseURL)
		if chrome.Available() {
			log.Printf("✓ Export uses headless Chrome")
			return chrome
		}
		log.Printf("⚠️  Chrome not found, export falls back to the composite rasterizer")
	}
	log.Printf("✓ Export uses the composite rasterizer")
	return service.NewCompositeRasterizer(loader, cfg.ModelImagePath())
}
