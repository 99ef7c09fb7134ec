// Package config loads the scripts configuration: the repository each build
// script checks out and the settings that shape how scripts run.
//
// Configuration is layered with koanf. Embedded defaults come first, then
// the first readable candidate file (YAML, or TOML by extension), then
// BUILDSCRIPTS_* environment variables for the top-level settings.
package config
