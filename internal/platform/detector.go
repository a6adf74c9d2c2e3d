// Package platform locates the toolkit installation on the host.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// binDir is the directory the localdev binary is installed into, under the toolkit root.
const binDir = "bin"

// DetectRoot returns the toolkit root directory.
// When the running binary lives in <root>/bin the root is its parent;
// otherwise the current working directory is used.
func DetectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	exe, err := os.Executable()
	if err != nil {
		return cwd, nil
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return rootFor(exe, cwd), nil
}

// rootFor picks the toolkit root for an executable path
func rootFor(exe, cwd string) string {
	dir := filepath.Dir(exe)
	if filepath.Base(dir) == binDir {
		return filepath.Dir(dir)
	}
	return cwd
}

// pathExists checks if a path exists on the filesystem.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Platform returns a string describing the current platform.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}

// Supported reports whether symlink-based site enabling works on this platform.
func Supported() error {
	switch runtime.GOOS {
	case "darwin", "linux", "freebsd":
		if !pathExists("/") {
			return fmt.Errorf("root filesystem not found")
		}
		return nil
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
