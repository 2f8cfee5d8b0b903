package stage

import (
	"os"
	"path/filepath"
)

// ancestorLevels is how far OUT_DIR (target/<profile>/build/<pkg>/out) sits
// below the profile directory.
const ancestorLevels = 3

// ResolveDestination returns the directory staged libraries go into. An
// outDir that already has a deps/ child is used as is; otherwise the
// destination is three levels up.
func ResolveDestination(outDir string) (string, error) {
	if info, err := os.Stat(filepath.Join(outDir, "deps")); err == nil && info.IsDir() {
		return outDir, nil
	}

	dir := filepath.Clean(outDir)
	for i := 0; i < ancestorLevels; i++ {
		parent, ok := parentOf(dir)
		if !ok {
			return "", &OutDirLayoutError{Path: outDir}
		}
		dir = parent
	}
	return dir, nil
}

// parentOf returns the parent of a cleaned path. Roots and the empty
// relative path have none.
func parentOf(dir string) (string, bool) {
	if dir == "." || dir == filepath.VolumeName(dir)+string(filepath.Separator) {
		return "", false
	}
	return filepath.Dir(dir), true
}
