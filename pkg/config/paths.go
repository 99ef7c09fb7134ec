package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPath expands a leading ~ and environment variables in path
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return os.ExpandEnv(path)
}
