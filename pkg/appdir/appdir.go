// Package appdir locates the per-user directory where bstr-go keeps its
// configuration and log database.
package appdir

import (
	"fmt"
	"os"
	"path/filepath"
)

const dirName = ".bstr-go"

var appDirCache string

// AppDir returns ~/.bstr-go. It does not create the directory.
func AppDir() (string, error) {
	if appDirCache == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("appdir: %w", err)
		}
		appDirCache = filepath.Join(home, dirName)
	}
	return appDirCache, nil
}

// Resolve returns name unchanged when it is absolute, or joined to AppDir
// otherwise. The application directory is created when needed.
func Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("appdir: create %s: %w", dir, err)
	}
	return filepath.Join(dir, name), nil
}
