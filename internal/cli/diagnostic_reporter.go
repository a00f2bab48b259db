package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/toyz/implgen/internal/models"
)

// DiagnosticReporter provides user-friendly error reporting for the CLI.
type DiagnosticReporter struct {
	verbose bool
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{verbose: verbose}
}

// ReportError prints an error with classification, suggestions, and, in
// verbose mode, the collected context.
func (r *DiagnosticReporter) ReportError(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(os.Stderr, "ERROR: ")

	var implErr *models.ImplError
	if errors.As(err, &implErr) {
		r.reportImplError(implErr)
		return
	}
	fmt.Fprintf(os.Stderr, "%v\n", err)
}

func (r *DiagnosticReporter) reportImplError(err *models.ImplError) {
	fmt.Fprintf(os.Stderr, "%s\n", err.Error())

	if len(err.Suggestions) > 0 {
		fmt.Fprintf(os.Stderr, "\nSuggestions:\n")
		for _, suggestion := range err.Suggestions {
			fmt.Fprintf(os.Stderr, "  - %s\n", suggestion)
		}
	}

	if r.verbose {
		if err.Cause != nil {
			fmt.Fprintf(os.Stderr, "\nCause: %v\n", err.Cause)
		}
		if len(err.Context) > 0 {
			fmt.Fprintf(os.Stderr, "\nContext:\n")
			for key, value := range err.Context {
				fmt.Fprintf(os.Stderr, "  %s: %v\n", key, value)
			}
		}
	}
}
