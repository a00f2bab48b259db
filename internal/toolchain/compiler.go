// Package toolchain wraps the external collaborators of the synthesis core:
// the Java compiler, the jar container writer and the scratch directory used
// by the compile-then-package flow.
package toolchain

import (
	"context"
	"os/exec"
	"strings"

	"github.com/toyz/implgen/internal/models"
)

// DefaultCompilerBinary is the compiler invoked when none is configured.
const DefaultCompilerBinary = "javac"

// Compiler invokes an external Java compiler on generated sources. Success
// is a zero exit status; anything else is surfaced as CompilationFailed
// with the compiler's own output attached.
type Compiler struct {
	binary string
	flags  []string
}

// NewCompiler creates a compiler wrapper. An empty binary selects the
// default javac from PATH.
func NewCompiler(binary string, flags []string) *Compiler {
	if binary == "" {
		binary = DefaultCompilerBinary
	}
	return &Compiler{binary: binary, flags: flags}
}

// Compile compiles sourcePath with a classpath made of the given entries.
// The output root must be among the entries so super-type references in the
// generated source resolve against their origin.
func (c *Compiler) Compile(ctx context.Context, sourcePath string, classpath []string) error {
	args := make([]string, 0, len(c.flags)+4)
	args = append(args, c.flags...)
	if len(classpath) > 0 {
		args = append(args, "-cp", strings.Join(classpath, string(classpathSeparator)))
	}
	args = append(args, sourcePath)

	cmd := exec.CommandContext(ctx, c.binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &models.ImplError{
			Type:    models.ErrorTypeCompilationFailed,
			Message: "compiler reported failure for " + sourcePath,
			Cause:   err,
			Context: map[string]interface{}{
				"compiler": c.binary,
				"output":   strings.TrimSpace(string(output)),
			},
			Suggestions: []string{
				"Check that " + c.binary + " is installed and on PATH",
				"Check the classpath covers every referenced type",
			},
		}
	}
	return nil
}
