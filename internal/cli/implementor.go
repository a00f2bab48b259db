package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/toyz/implgen/internal/descriptor"
	"github.com/toyz/implgen/internal/emitter"
	"github.com/toyz/implgen/internal/models"
	"github.com/toyz/implgen/internal/synth"
	"github.com/toyz/implgen/internal/toolchain"
	"github.com/toyz/implgen/internal/utils"
)

// Implementor coordinates the whole implementation flow: resolving the
// requested token against loaded descriptors, running the synthesis core,
// emitting the escaped source, and optionally compiling and packaging it.
type Implementor struct {
	registry    *descriptor.Registry
	emitter     *emitter.Emitter
	compiler    *toolchain.Compiler
	config      *Config
	diagnostics *utils.DiagnosticSystem
	summary     GenerationSummary
}

// GenerationSummary collects statistics over one or more implementation
// requests.
type GenerationSummary struct {
	TypesImplemented   int
	MembersSynthesized int
	GeneratedFiles     []string
}

// NewImplementor creates an implementor from a config and diagnostic system.
func NewImplementor(config *Config, diagnostics *utils.DiagnosticSystem) *Implementor {
	return &Implementor{
		registry:    descriptor.NewRegistry(),
		emitter:     emitter.New(config.SourceExtension),
		compiler:    toolchain.NewCompiler(config.Compiler.Binary, config.Compiler.Flags),
		config:      config,
		diagnostics: diagnostics,
		summary:     GenerationSummary{GeneratedFiles: make([]string, 0)},
	}
}

// Registry exposes the descriptor registry, mainly for tests and for the
// CLI's type-name validation before the core runs.
func (im *Implementor) Registry() *descriptor.Registry {
	return im.registry
}

// Summary returns the accumulated generation summary.
func (im *Implementor) Summary() GenerationSummary {
	return im.summary
}

// LoadStubs parses and links the descriptor stub files the requested types
// are resolved against.
func (im *Implementor) LoadStubs(paths []string) error {
	im.diagnostics.StartProgress("Loading descriptor stubs")
	loader := descriptor.NewLoader(im.registry)
	if err := loader.Load(paths); err != nil {
		im.diagnostics.EndProgress(false, "")
		return err
	}
	im.diagnostics.EndProgress(true, "")
	im.diagnostics.Debug("Registry holds %d descriptors", im.registry.Len())
	return nil
}

// Implement synthesizes an implementation of the named type and writes the
// escaped source under root. Validation runs before any filesystem work, so
// unsupported tokens fail without touching the output tree.
func (im *Implementor) Implement(typeName, root string) (*models.GeneratedClass, error) {
	token, err := im.registry.Resolve(typeName)
	if err != nil {
		return nil, err
	}

	im.diagnostics.Verbose("Implementing %s", token.CanonicalName())
	class, err := synth.Assemble(token)
	if err != nil {
		return nil, err
	}

	class.FilePath = im.emitter.OutputPath(root, class)
	if err := im.emitter.Write(class.FilePath, synth.Escape(class.Content)); err != nil {
		return nil, err
	}

	im.summary.TypesImplemented++
	im.summary.MembersSynthesized += class.Constructors + class.Methods
	im.summary.GeneratedFiles = append(im.summary.GeneratedFiles, class.FilePath)
	im.diagnostics.Verbose("Wrote %s (%d constructors, %d methods)",
		class.FilePath, class.Constructors, class.Methods)
	return class, nil
}

// ImplementJar synthesizes, compiles and packages an implementation of the
// named type into a jar at jarPath. The compile happens in a scratch
// directory next to the jar, which is removed even when a stage fails;
// removal failure itself is only a warning.
func (im *Implementor) ImplementJar(ctx context.Context, typeName, jarPath string) error {
	if err := os.MkdirAll(filepath.Dir(jarPath), 0755); err != nil {
		return &models.ImplError{
			Type:    models.ErrorTypeIOFailure,
			Message: "cannot create archive directory for " + jarPath,
			Cause:   err,
		}
	}

	scratch, err := toolchain.NewScratchDir(jarPath)
	if err != nil {
		return err
	}
	defer toolchain.RemoveScratchDir(scratch, im.diagnostics)

	class, err := im.Implement(typeName, scratch)
	if err != nil {
		return err
	}

	im.diagnostics.StartProgress("Compiling " + class.ClassName)
	classpath := append([]string{scratch}, im.config.Compiler.Classpath...)
	if err := im.compiler.Compile(ctx, class.FilePath, classpath); err != nil {
		im.diagnostics.EndProgress(false, "")
		return err
	}
	im.diagnostics.EndProgress(true, "")

	im.diagnostics.StartProgress("Packaging " + filepath.Base(jarPath))
	if err := toolchain.WriteJar(jarPath, scratch, class); err != nil {
		im.diagnostics.EndProgress(false, "")
		return err
	}
	im.diagnostics.EndProgress(true, "")
	im.summary.GeneratedFiles = append(im.summary.GeneratedFiles, jarPath)
	return nil
}
