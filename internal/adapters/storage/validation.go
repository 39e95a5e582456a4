package storage

import (
	"fmt"
	"strings"
)

// allowedImageContentTypes defines the MIME types the vision pipeline
// accepts. Anything else is rejected before the body is downloaded.
var allowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/heic": true,
	"image/heif": true,
}

// ValidateImageContentType checks that the content type is a supported
// image type, ignoring parameters like charset.
func ValidateImageContentType(contentType string) error {
	normalized := strings.Split(contentType, ";")[0]
	normalized = strings.TrimSpace(strings.ToLower(normalized))

	if !allowedImageContentTypes[normalized] {
		return fmt.Errorf("content type %q is not a supported image type", contentType)
	}
	return nil
}
