package descriptor

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/implgen/internal/models"
)

// StubExtension is the file extension the loader picks up when given a
// directory instead of an explicit file.
const StubExtension = ".stub"

// Loader parses descriptor stub files and links them into a registry. Types
// may reference each other across files in any order; linking happens only
// after every stub has been parsed.
type Loader struct {
	registry *Registry
	pending  []pendingType
}

type pendingType struct {
	file string
	pkg  string
	stub *TypeStub
	typ  *models.TypeDescriptor
}

// NewLoader creates a loader that populates the given registry.
func NewLoader(registry *Registry) *Loader {
	return &Loader{registry: registry}
}

// Load reads the given stub files or directories, parses every stub and
// links all descriptors. It must be called once with the complete set of
// paths; descriptors are immutable after linking.
func (l *Loader) Load(paths []string) error {
	files, err := l.expandPaths(paths)
	if err != nil {
		return err
	}
	for _, file := range files {
		if err := l.parseFile(file); err != nil {
			return err
		}
	}
	return l.link()
}

// LoadSource parses and links stub text directly, for callers that already
// hold descriptor text in memory.
func (l *Loader) LoadSource(filename, source string) error {
	if err := l.parseSource(filename, source); err != nil {
		return err
	}
	return l.link()
}

// expandPaths turns a mix of files and directories into a deterministic
// list of stub files.
func (l *Loader) expandPaths(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &models.ImplError{
				Type:    models.ErrorTypeIOFailure,
				Message: "cannot read stub path " + path,
				Cause:   err,
			}
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, &models.ImplError{
				Type:    models.ErrorTypeIOFailure,
				Message: "cannot list stub directory " + path,
				Cause:   err,
			}
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), StubExtension) {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func (l *Loader) parseFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return &models.ImplError{
			Type:    models.ErrorTypeIOFailure,
			Message: "cannot read stub file " + path,
			Cause:   err,
		}
	}
	return l.parseSource(path, string(source))
}

// parseSource parses one stub file and registers a shell descriptor for each
// declared type so later files can reference it. Member linking is deferred
// until link.
func (l *Loader) parseSource(filename, source string) error {
	file, err := ParseStub(filename, source)
	if err != nil {
		return &models.ImplError{
			Type:    models.ErrorTypeDescriptorSyntax,
			Message: err.Error(),
			Cause:   err,
			Context: map[string]interface{}{"file": filename},
		}
	}

	for _, stub := range file.Types {
		mods, err := parseModifierList(filename, stub.Modifiers)
		if err != nil {
			return err
		}
		kind := models.KindClass
		if stub.Kind == "interface" {
			kind = models.KindInterface
			mods |= models.ModInterface | models.ModAbstract
		}

		typ := &models.TypeDescriptor{
			Kind:    kind,
			Mods:    mods,
			Name:    stub.Name,
			Package: file.Package,
		}
		if l.registry.Has(typ.CanonicalName()) {
			return &models.ImplError{
				Type:    models.ErrorTypeDescriptorSyntax,
				Token:   typ.CanonicalName(),
				Message: "type is declared more than once",
				Context: map[string]interface{}{"file": filename},
			}
		}
		l.registry.put(typ)
		l.pending = append(l.pending, pendingType{
			file: filename,
			pkg:  file.Package,
			stub: stub,
			typ:  typ,
		})
	}
	return nil
}

func parseModifierList(filename string, words []string) (models.Modifiers, error) {
	var mods models.Modifiers
	for _, word := range words {
		bit := models.ParseModifier(word)
		if bit == 0 {
			return 0, &models.ImplError{
				Type:    models.ErrorTypeDescriptorSyntax,
				Message: "unknown modifier " + word,
				Context: map[string]interface{}{"file": filename},
			}
		}
		mods |= bit
	}
	return mods, nil
}
