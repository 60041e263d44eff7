package utils

import (
	"fmt"
	"regexp"
	"strings"

	"armario-probador/models"
)

var (
	wardrobeExtRegex  = regexp.MustCompile(`(?i)\.(png|jpg|jpeg)$`)
	wardrobeCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// ParseWardrobeFileName parses a garment file name following the pattern:
// LAYER-CODE[-NAME].PNG
// Examples: TOP-T001-blusa_roja.png, zapatos-Z07.jpg
// LAYER may be a category name or one of the garment words MapGarmentToLayer knows.
// Underscores in NAME become spaces; when NAME is missing the code is used.
func ParseWardrobeFileName(filename string) (*models.WardrobeAsset, error) {
	base := strings.TrimSpace(filename)
	if !wardrobeExtRegex.MatchString(base) {
		return nil, fmt.Errorf("invalid file extension: expected .png, .jpg or .jpeg, got %s", filename)
	}
	nameWithoutExt := wardrobeExtRegex.ReplaceAllString(base, "")

	parts := strings.SplitN(nameWithoutExt, "-", 3)
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid filename format: expected LAYER-CODE[-NAME], got %s", filename)
	}

	layer, ok := MapGarmentToLayer(parts[0])
	if !ok {
		return nil, fmt.Errorf("unknown layer %q in %s", parts[0], filename)
	}

	code := strings.ToUpper(strings.TrimSpace(parts[1]))
	if !wardrobeCodeRegex.MatchString(code) {
		return nil, fmt.Errorf("invalid code %q in %s", parts[1], filename)
	}

	name := code
	if len(parts) == 3 {
		if n := strings.TrimSpace(strings.ReplaceAll(parts[2], "_", " ")); n != "" {
			name = n
		}
	}

	return &models.WardrobeAsset{
		FileName: filename,
		Layer:    layer,
		Code:     code,
		Name:     name,
	}, nil
}
