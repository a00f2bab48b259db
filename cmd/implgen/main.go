package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/implgen/internal/cli"
	"github.com/toyz/implgen/internal/utils"
)

func main() {
	var (
		jarFlag     = flag.Bool("jar", false, "Compile the implementation and package it into a jar instead of writing source")
		stubsFlag   = flag.String("stubs", "", "Comma-separated descriptor stub files or directories to load")
		cpFlag      = flag.String("classpath", "", "Additional classpath entries for compilation, separated by the platform separator")
		configFlag  = flag.String("config", "", "Path to an implgen.toml config file (defaults to ./implgen.toml when present)")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <type-name> <output-dir>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s -jar [options] <type-name> <jar-path>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Implgen Implementation Generator\n")
		fmt.Fprintf(os.Stderr, "Synthesizes a compilable default implementation of a class or interface\n")
		fmt.Fprintf(os.Stderr, "described by descriptor stub files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -stubs ./stubs java.lang.Runnable ./out           # Write RunnableImpl.java under ./out\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -jar -stubs api.stub com.example.Service svc.jar  # Generate, compile and package\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if err := validateArgs(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}
	typeName, outputPath := args[0], args[1]

	var diagnostics *utils.DiagnosticSystem
	switch {
	case *quietFlag:
		diagnostics = utils.NewQuietDiagnostics()
	case *verboseFlag:
		diagnostics = utils.NewVerboseDiagnostics()
	default:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	reporter := cli.NewDiagnosticReporter(*verboseFlag)

	diagnostics.Section("Implgen Implementation Generator")

	configPath := *configFlag
	probe := configPath == ""
	if probe {
		configPath = cli.DefaultConfigFile
	}
	config, err := cli.LoadConfig(configPath, probe)
	if err != nil {
		reporter.ReportError(err)
		os.Exit(1)
	}
	config.Verbose = *verboseFlag
	if !probe {
		diagnostics.Info("Loaded configuration from %s", configPath)
	}

	if *stubsFlag != "" {
		for _, path := range strings.Split(*stubsFlag, ",") {
			if path = strings.TrimSpace(path); path != "" {
				config.Stubs = append(config.Stubs, path)
			}
		}
	}

	if *cpFlag != "" {
		config.Compiler.Classpath = append(config.Compiler.Classpath, filepath.SplitList(*cpFlag)...)
	}

	implementor := cli.NewImplementor(config, diagnostics)
	if len(config.Stubs) > 0 {
		if err := implementor.LoadStubs(config.Stubs); err != nil {
			reporter.ReportError(err)
			os.Exit(1)
		}
	}
	if !implementor.Registry().Has(typeName) {
		fmt.Fprintf(os.Stderr, "Error: type %s is not declared in the loaded stubs\n", typeName)
		os.Exit(1)
	}

	if *jarFlag {
		diagnostics.Subsection("Generate, Compile and Package")
		err = implementor.ImplementJar(context.Background(), typeName, outputPath)
	} else {
		diagnostics.Subsection("Source Generation")
		_, err = implementor.Implement(typeName, outputPath)
	}
	if err != nil {
		reporter.ReportError(err)
		os.Exit(1)
	}

	summary := implementor.Summary()
	stats := map[string]interface{}{
		"Types implemented":   summary.TypesImplemented,
		"Members synthesized": summary.MembersSynthesized,
		"Files written":       len(summary.GeneratedFiles),
	}
	diagnostics.Summary("Generation Complete!", stats)

	if *verboseFlag {
		diagnostics.Subsection("Generated Files")
		diagnostics.Indent()
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
		diagnostics.Unindent()
	}
	diagnostics.Success("Implementation ready to use!")
}

// validateArgs checks the positional invocation shape before any work runs.
func validateArgs(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected <type-name> and <output-path> arguments, got %d", len(args))
	}
	for _, arg := range args {
		if strings.TrimSpace(arg) == "" {
			return fmt.Errorf("expected non-empty arguments")
		}
	}
	return nil
}
