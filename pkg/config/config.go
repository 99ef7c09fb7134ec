package config

import (
	"sort"
	"time"

	"github.com/arthur-debert/buildscripts/pkg/errors"
	"github.com/arthur-debert/buildscripts/pkg/types"
)

// Config is the loaded scripts configuration
type Config struct {
	// Scripts maps script names to the repository they build from
	Scripts map[string]types.ScriptDescriptor `koanf:"scripts"`

	// SourceRoot is the directory bundled scripts check sources out under
	SourceRoot string `koanf:"source_root"`

	// PullIfExists makes scripts update an existing checkout instead of reusing it
	PullIfExists bool `koanf:"pull_if_exists"`

	// Shell runs commands; empty selects bash, or sh when bash is missing
	Shell string `koanf:"shell"`

	// CommandTimeout bounds each command; zero means no limit
	CommandTimeout time.Duration `koanf:"command_timeout"`

	// Path is the file the configuration was read from
	Path string `koanf:"-"`
}

// Descriptor returns the repository configuration for a script
func (c *Config) Descriptor(name string) (types.ScriptDescriptor, error) {
	d, ok := c.Scripts[name]
	if !ok {
		return types.ScriptDescriptor{}, errors.Newf(errors.ErrConfigMissing,
			"Script configuration not found: %s", name).
			WithDetail("script", name).
			WithDetail("available", c.ScriptNames())
	}
	return d, nil
}

// ScriptNames returns the configured script names in lexicographic order
func (c *Config) ScriptNames() []string {
	names := make([]string, 0, len(c.Scripts))
	for name := range c.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) validate() error {
	for name, d := range c.Scripts {
		if d.RepositoryURL == "" {
			return errors.Newf(errors.ErrInvalidInput, "script %q has no repo", name)
		}
	}
	if c.CommandTimeout < 0 {
		return errors.Newf(errors.ErrInvalidInput, "command_timeout must not be negative, got %s", c.CommandTimeout)
	}
	return nil
}
