package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/buildscripts/pkg/errors"
	"github.com/arthur-debert/buildscripts/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// FileName is the scripts configuration file name
	FileName = "build_scripts_gitrepo.yml"

	// SystemPath is the first location searched for the configuration
	SystemPath = "/app/" + FileName

	// EnvPrefix prefixes environment overrides, e.g. BUILDSCRIPTS_SOURCE_ROOT
	EnvPrefix = "BUILDSCRIPTS_"

	// EnvConfigPath names a single configuration file, replacing the search list
	EnvConfigPath = EnvPrefix + "CONFIG"
)

// DefaultPaths returns the configuration candidates in search order
func DefaultPaths() []string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return []string{p}
	}
	return []string{SystemPath, FileName}
}

// Load reads the first candidate that loads cleanly. A missing or broken
// candidate falls through to the next one; when every candidate fails the
// returned error has code ErrConfigLoad.
func Load(paths ...string) (*Config, error) {
	logger := logging.GetLogger("config")
	if len(paths) == 0 {
		paths = DefaultPaths()
	}

	var errs []error
	for _, path := range paths {
		cfg, err := LoadFile(path)
		if err == nil {
			logger.Debug().
				Str("path", path).
				Strs("scripts", cfg.ScriptNames()).
				Msg("Loaded script configuration")
			return cfg, nil
		}
		logger.Debug().Err(err).Str("path", path).Msg("Configuration candidate rejected")
		errs = append(errs, err)
	}

	return nil, errors.Wrapf(stderrors.Join(errs...), errors.ErrConfigLoad,
		"failed to load script configuration from %s", strings.Join(paths, ", "))
}

// LoadFile reads one configuration file layered over the embedded defaults
// and the environment.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	cfg.SourceRoot = expandPath(cfg.SourceRoot)
	cfg.Path = path
	return &cfg, nil
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Parser()
	}
	return yaml.Parser()
}

// envKey maps BUILDSCRIPTS_SOURCE_ROOT to source_root. The config path
// variable and script entries cannot be set this way.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if key == "config" || strings.HasPrefix(key, "scripts") {
		return ""
	}
	return key
}
