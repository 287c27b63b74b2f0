package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDir returns the per-user configuration directory for appName, falling
// back to the conventional location under the home directory.
func ConfigDir(appName string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("get config dir: %w", homeErr)
		}
		base = fallbackConfigDir(homeDir)
	}
	return filepath.Join(base, appName), nil
}

// CacheDir returns the per-user cache directory for appName. The temp
// directory is used when no cache location is known.
func CacheDir(appName string) string {
	base, err := os.UserCacheDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, appName)
}
