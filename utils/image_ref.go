package utils

import (
	"fmt"
	"net/url"
	"strings"
)

const itemImagePrefix = "/dressup/items/"

// Image sizes served by the item image endpoint
const (
	SizeThumb  = "thumb"
	SizeMedium = "medium"
)

// BuildItemImageRef returns the image endpoint path for an item code and size
func BuildItemImageRef(code, size string) string {
	return fmt.Sprintf("%s%s/image?size=%s", itemImagePrefix, url.PathEscape(code), size)
}

// ParseItemImageRef extracts the item code and size from an image reference
// built by BuildItemImageRef. Absolute URLs are accepted; only the path and
// query are looked at. size defaults to medium.
func ParseItemImageRef(ref string) (code string, size string, err error) {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse image ref: %w", err)
	}
	if !strings.HasPrefix(u.Path, itemImagePrefix) || !strings.HasSuffix(u.Path, "/image") {
		return "", "", fmt.Errorf("not an item image ref: %s", ref)
	}
	code = strings.TrimSuffix(strings.TrimPrefix(u.Path, itemImagePrefix), "/image")
	if code == "" || code == "." || code == ".." || strings.Contains(code, "/") {
		return "", "", fmt.Errorf("invalid item code in image ref: %s", ref)
	}
	size = NormalizeImageSize(u.Query().Get("size"))
	return code, size, nil
}

// NormalizeImageSize maps anything other than thumb to medium
func NormalizeImageSize(size string) string {
	if strings.EqualFold(strings.TrimSpace(size), SizeThumb) {
		return SizeThumb
	}
	return SizeMedium
}
