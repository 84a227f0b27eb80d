// Configuration for the analog CLI.
//
// All fields are optional - a missing config file yields the default
// config. The config mostly exists to redirect external tool paths
// (useful on systems where the tools live outside the default PATH)
// and to hold the sandbox policy.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Velocidex/yaml/v2"
	errors "github.com/go-errors/errors"
)

type LoggingConfig struct {
	// One of debug, info, warn, error.
	Level string `yaml:"level,omitempty" json:"level,omitempty"`

	// If set, all components also log to this file.
	OutputDirectory string `yaml:"output_directory,omitempty" json:"output_directory,omitempty"`

	// Separate audit log for state changing operations.
	SeparateAuditLog bool `yaml:"separate_audit_log,omitempty" json:"separate_audit_log,omitempty"`
}

type OutputConfig struct {
	// One of table, json, jsonl, csv. Empty means choose based on
	// whether stdout is a terminal.
	Format  string `yaml:"format,omitempty" json:"format,omitempty"`
	NoColor bool   `yaml:"no_color,omitempty" json:"no_color,omitempty"`
}

type SandboxConfig struct {
	// Path prefixes the confined process may read from.
	ReadPaths []string `yaml:"read_paths,omitempty" json:"read_paths,omitempty"`

	// Path prefixes the confined process may write to.
	WritePaths []string `yaml:"write_paths,omitempty" json:"write_paths,omitempty"`

	AllowNetwork bool `yaml:"allow_network,omitempty" json:"allow_network,omitempty"`
}

type Config struct {
	Logging *LoggingConfig `yaml:"Logging,omitempty" json:"Logging,omitempty"`
	Output  *OutputConfig  `yaml:"Output,omitempty" json:"Output,omitempty"`
	Sandbox *SandboxConfig `yaml:"Sandbox,omitempty" json:"Sandbox,omitempty"`

	// Overrides for external tool paths, keyed by tool name
	// (e.g. lsof: /usr/local/bin/lsof).
	Tools map[string]string `yaml:"Tools,omitempty" json:"Tools,omitempty"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Logging: &LoggingConfig{
			Level: "info",
		},
		Output: &OutputConfig{},
		Sandbox: &SandboxConfig{
			ReadPaths: []string{"/usr", "/bin", "/sbin", "/System",
				"/Library", "/dev/null", "/dev/urandom",
				"/private/etc", "/private/tmp"},
			WritePaths: []string{"/private/tmp"},
		},
		Tools: map[string]string{},
	}
}

// ToolPath resolves the binary to invoke for an external tool,
// honoring any override from the config file.
func (self *Config) ToolPath(name string) string {
	if self != nil && self.Tools != nil {
		path, pres := self.Tools[name]
		if pres && path != "" {
			return path
		}
	}
	return name
}

func LoadConfig(filename string) (*Config, error) {
	result := GetDefaultConfig()

	if filename == "" {
		return result, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, errors.Wrap(err, 0)
	}

	err = yaml.UnmarshalStrict(data, result)
	if err != nil {
		return nil, fmt.Errorf("unable to parse config %s: %w",
			filename, err)
	}

	err = Validate(result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func Validate(config_obj *Config) error {
	if config_obj.Logging != nil {
		switch config_obj.Logging.Level {
		case "", "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid logging level %q",
				config_obj.Logging.Level)
		}
	}

	if config_obj.Output != nil {
		switch config_obj.Output.Format {
		case "", "table", "json", "jsonl", "csv":
		default:
			return fmt.Errorf("invalid output format %q",
				config_obj.Output.Format)
		}
	}

	if config_obj.Sandbox != nil {
		for _, p := range append(config_obj.Sandbox.ReadPaths,
			config_obj.Sandbox.WritePaths...) {
			if !filepath.IsAbs(p) {
				return fmt.Errorf(
					"sandbox policy paths must be absolute: %q", p)
			}
		}
	}

	return nil
}
