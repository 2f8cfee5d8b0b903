package platform

import (
	"fmt"
	"os"
)

// CreateSymlink creates a symbolic link at link pointing to target.
func CreateSymlink(target, link string) error {
	return os.Symlink(target, link)
}

// ReadSymlinkTarget returns the target of a symlink.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", fmt.Errorf("reading symlink %s: %w", path, err)
	}
	return target, nil
}

// IsSymlinkOrDir reports whether path exists as a directory or a symlink,
// without following the link.
func IsSymlinkOrDir(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode()&os.ModeSymlink != 0
}
