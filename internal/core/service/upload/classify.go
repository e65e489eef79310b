package upload

import (
	"paste-upload/internal/core/domain"
	"path/filepath"
	"strings"
)

// ImageExtensions is the fixed set of extensions embedded as images.
// This is deterministic and does NOT rely on OS mime databases (Docker-safe).
var ImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
	"svg":  {},
	"avif": {},
	"ico":  {},
}

// Classify buckets a file name by its lowercase extension. A name without an
// extension, or with an unrecognized one, is CategoryOther.
func Classify(name string) domain.Category {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))

	if _, ok := ImageExtensions[ext]; ok {
		return domain.CategoryImage
	}
	if ext == "pdf" {
		return domain.CategoryPdf
	}
	return domain.CategoryOther
}
