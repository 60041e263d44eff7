package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"armario-probador/repository"
	"armario-probador/service"
	"armario-probador/utils"
)

// ImageController serves optimized garment images
type ImageController struct {
	imageService service.ImageServiceInterface
}

// NewImageController creates a new ImageController
func NewImageController(imageService service.ImageServiceInterface) *ImageController {
	return &ImageController{imageService: imageService}
}

// GetItemImage handles GET /dressup/items/{code}/image?size=thumb|medium
func (c *ImageController) GetItemImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code, size, err := utils.ParseItemImageRef(r.URL.RequestURI())
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	data, err := c.imageService.GetImage(r.Context(), code, size)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrWardrobeItemNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, fmt.Sprintf("Failed to get image: %v", err), status)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("ETag", fmt.Sprintf(`"%s-%s"`, strings.ToLower(code), size))
	w.Write(data)
}
