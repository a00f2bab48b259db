package toolchain

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/toyz/implgen/internal/models"
)

// manifestContent is the minimal jar manifest: version attribute plus the
// terminating blank line the format requires.
const manifestContent = "Manifest-Version: 1.0\r\n\r\n"

// WriteJar packages the compiled class for the generated type into a minimal
// jar: one manifest entry and one class entry, streamed from classesRoot.
func WriteJar(jarPath, classesRoot string, class *models.GeneratedClass) error {
	out, err := os.Create(jarPath)
	if err != nil {
		return &models.ImplError{
			Type:    models.ErrorTypeIOFailure,
			Message: "cannot create archive " + jarPath,
			Cause:   err,
		}
	}
	defer out.Close()

	archive := zip.NewWriter(out)
	if err := writeJarEntries(archive, classesRoot, class); err != nil {
		archive.Close()
		os.Remove(jarPath)
		return err
	}
	if err := archive.Close(); err != nil {
		os.Remove(jarPath)
		return &models.ImplError{
			Type:    models.ErrorTypeIOFailure,
			Message: "cannot finalize archive " + jarPath,
			Cause:   err,
		}
	}
	return nil
}

func writeJarEntries(archive *zip.Writer, classesRoot string, class *models.GeneratedClass) error {
	manifest, err := archive.Create("META-INF/MANIFEST.MF")
	if err != nil {
		return wrapArchiveError("manifest", err)
	}
	if _, err := io.WriteString(manifest, manifestContent); err != nil {
		return wrapArchiveError("manifest", err)
	}

	entryName := ClassEntryName(class)
	classFile := filepath.Join(classesRoot, filepath.FromSlash(entryName))
	in, err := os.Open(classFile)
	if err != nil {
		return &models.ImplError{
			Type:    models.ErrorTypeIOFailure,
			Message: "cannot read compiled class " + classFile,
			Cause:   err,
		}
	}
	defer in.Close()

	entry, err := archive.Create(entryName)
	if err != nil {
		return wrapArchiveError(entryName, err)
	}
	if _, err := io.Copy(entry, in); err != nil {
		return wrapArchiveError(entryName, err)
	}
	return nil
}

// ClassEntryName returns the archive entry name of the compiled class:
// package segments joined with '/' regardless of platform.
func ClassEntryName(class *models.GeneratedClass) string {
	pkgPath := strings.ReplaceAll(class.Package, ".", "/")
	return path.Join(pkgPath, class.ClassName+".class")
}

func wrapArchiveError(entry string, err error) error {
	return &models.ImplError{
		Type:    models.ErrorTypeIOFailure,
		Message: "cannot write archive entry " + entry,
		Cause:   err,
	}
}
