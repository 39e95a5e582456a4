package service

import (
	"bytes"

	"github.com/rwcarlsen/goexif/exif"
)

// logExifDiagnostics logs camera metadata from the uploaded image when
// present. Purely diagnostic: decode failures are expected (screenshots,
// stripped uploads) and ignored.
func (s *Service) logExifDiagnostics(fileKey string, data []byte) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return
	}

	attrs := []interface{}{"fileKey", fileKey}
	if tag, err := x.Get(exif.Model); err == nil {
		if model, err := tag.StringVal(); err == nil {
			attrs = append(attrs, "cameraModel", model)
		}
	}
	if taken, err := x.DateTime(); err == nil {
		attrs = append(attrs, "takenAt", taken)
	}

	s.log.Debug("scan image metadata", attrs...)
}
