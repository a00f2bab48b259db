package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/toyz/implgen/internal/utils"
)

// Config holds the configuration for the implementation generator. Every
// field has a working default; an optional implgen.toml can override them.
type Config struct {
	// Stubs lists descriptor stub files or directories to load.
	Stubs []string `toml:"stubs"`

	// SourceExtension overrides the generated source file extension.
	SourceExtension string `toml:"source_extension"`

	// Compiler configures the external compiler invocation.
	Compiler CompilerConfig `toml:"compiler"`

	// Verbose enables detailed logging and error reporting.
	Verbose bool `toml:"-"`
}

// CompilerConfig configures the external compiler collaborator.
type CompilerConfig struct {
	// Binary is the compiler executable, defaulting to javac on PATH.
	Binary string `toml:"binary"`

	// Flags are extra arguments passed before the source file.
	Flags []string `toml:"flags"`

	// Classpath lists additional classpath entries for compilation.
	Classpath []string `toml:"classpath"`
}

// DefaultConfigFile is the config file probed when none is named.
const DefaultConfigFile = "implgen.toml"

// LoadConfig reads a TOML config file. A missing explicit path is an error;
// pass probe=true to silently fall back to defaults when the default file
// does not exist.
func LoadConfig(path string, probe bool) (*Config, error) {
	config := &Config{}
	if _, err := os.Stat(path); err != nil {
		if probe && os.IsNotExist(err) {
			return config, nil
		}
		return nil, utils.WrapLoadError("config file "+path, err)
	}
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, utils.WrapParseError("config file "+path, err)
	}
	return config, nil
}
