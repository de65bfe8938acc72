package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Temporary extensions the engine leaves while it is still writing
var (
	SkippedExtensions = []string{".part", ".ytdl", ".temp"}
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ListArtifacts returns the files in dir whose names start with prefix, sorted by name
func ListArtifacts(dir, prefix string) ([]string, error) {
	if prefix == "" {
		return nil, fmt.Errorf("artifact prefix is empty")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), prefix) {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// FindArtifact locates the finished file for prefix with extension ext.
// An exact "<prefix>.<ext>" name wins over intermediate names such as
// "<prefix>.f137.<ext>".
func FindArtifact(dir, prefix, ext string) (string, error) {
	candidates, err := ListArtifacts(dir, prefix)
	if err != nil {
		return "", err
	}

	exact := filepath.Join(dir, prefix+"."+ext)
	var fallback string
	for _, candidate := range candidates {
		if isTemporaryFile(candidate) || filepath.Ext(candidate) != "."+ext {
			continue
		}
		if candidate == exact {
			return candidate, nil
		}
		if fallback == "" {
			fallback = candidate
		}
	}

	if fallback == "" {
		return "", fmt.Errorf("file not found: %s", exact)
	}
	return fallback, nil
}

// RemoveArtifacts deletes every file in dir that starts with prefix.
// It keeps going after a failed removal and returns the removed paths
// together with the joined errors.
func RemoveArtifacts(dir, prefix string) ([]string, error) {
	candidates, err := ListArtifacts(dir, prefix)
	if err != nil {
		return nil, err
	}

	var removed []string
	var errs []error
	for _, candidate := range candidates {
		if err := os.Remove(candidate); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
			continue
		}
		removed = append(removed, candidate)
	}
	return removed, errors.Join(errs...)
}

// ExecutableDirWith returns the directory of the running executable when it
// also holds the given tool (e.g. a bundled ffmpeg), or "" otherwise
func ExecutableDirWith(tool string) string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	dir := filepath.Dir(exe)

	name := tool
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	info, err := os.Stat(filepath.Join(dir, name))
	if err != nil || info.IsDir() {
		return ""
	}
	return dir
}

// ToolAvailable reports whether tool can be found in PATH
func ToolAvailable(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}

// isTemporaryFile checks if a filename belongs to an unfinished download
func isTemporaryFile(filename string) bool {
	for _, ext := range SkippedExtensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
