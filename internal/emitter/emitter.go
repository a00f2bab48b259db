// Package emitter writes assembled implementation sources to a directory
// tree derived from the generated class's package.
package emitter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/implgen/internal/models"
)

// DefaultSourceExtension is used when no override is configured.
const DefaultSourceExtension = ".java"

// Emitter resolves output paths and writes fully assembled, escaped source
// text. It is handed text only after assembly and escaping succeed, so a
// failure here never leaves partial output behind.
type Emitter struct {
	extension string
}

// New creates an emitter writing files with the given source extension.
// An empty extension selects the default.
func New(extension string) *Emitter {
	if extension == "" {
		extension = DefaultSourceExtension
	}
	return &Emitter{extension: extension}
}

// OutputPath resolves the file path for a generated class under root:
// package segments become directories using the platform separator.
func (e *Emitter) OutputPath(root string, class *models.GeneratedClass) string {
	pkgPath := strings.ReplaceAll(class.Package, ".", string(filepath.Separator))
	return filepath.Join(root, pkgPath, class.ClassName+e.extension)
}

// Write creates all missing parent directories and writes the source text.
// A failed write removes whatever the filesystem left behind.
func (e *Emitter) Write(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &models.ImplError{
			Type:    models.ErrorTypeIOFailure,
			Message: "cannot create output directory " + filepath.Dir(path),
			Cause:   err,
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		os.Remove(path)
		return &models.ImplError{
			Type:    models.ErrorTypeIOFailure,
			Message: "cannot write output file " + path,
			Cause:   err,
		}
	}
	return nil
}
