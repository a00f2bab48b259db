package toolchain

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/toyz/implgen/internal/models"
	"github.com/toyz/implgen/internal/utils"
)

// NewScratchDir creates a temporary build directory adjacent to the target
// archive path, so compile output lands on the same filesystem as the jar.
func NewScratchDir(jarPath string) (string, error) {
	parent, err := filepath.Abs(filepath.Dir(jarPath))
	if err != nil {
		return "", &models.ImplError{
			Type:    models.ErrorTypeIOFailure,
			Message: "cannot resolve archive parent for " + jarPath,
			Cause:   err,
		}
	}
	dir := filepath.Join(parent, "implgen-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &models.ImplError{
			Type:    models.ErrorTypeIOFailure,
			Message: "cannot create scratch directory " + dir,
			Cause:   err,
		}
	}
	return dir, nil
}

// RemoveScratchDir recursively removes a scratch directory. Removal failure
// is downgraded to a warning: by the time cleanup runs the primary
// operation has already succeeded or failed on its own terms.
func RemoveScratchDir(dir string, diagnostics *utils.DiagnosticSystem) {
	if err := os.RemoveAll(dir); err != nil && diagnostics != nil {
		diagnostics.Warn("Failed to remove scratch directory %s: %v", dir, err)
	}
}
