package history

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultPath returns the platform-default location of Chrome's History
// database for the current user.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Local", "Google", "Chrome", "User Data", "Default", "History"), nil
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Default", "History"), nil
	case "linux":
		return filepath.Join(home, ".config", "google-chrome", "Default", "History"), nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
