package stage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rtstage/rtstage/internal/platform"
)

// Kind identifies which runtime library a file is.
type Kind string

const (
	// KindStd is the standard library. Staging it is mandatory.
	KindStd Kind = "std"
	// KindTest is the test harness library, staged only in link-test mode.
	KindTest Kind = "test"
)

// libPrefix is the conventional Unix library file name prefix.
const libPrefix = "lib"

// prefix returns the file name prefix of the kind after libPrefix is stripped.
func (k Kind) prefix() string { return string(k) + "-" }

// Pattern returns a glob-like display pattern for the kind, e.g. libstd-*.so
// or std-*.dll.
func Pattern(k Kind, ext platform.Extension) string {
	lib := libPrefix
	if ext == platform.ExtDLL {
		lib = ""
	}
	return lib + k.prefix() + "*." + ext.String()
}

// Match reports which kind a file name belongs to. The extension must equal
// ext; a leading "lib" is ignored. Test libraries only match when linkTest
// is set.
func Match(name string, ext platform.Extension, linkTest bool) (Kind, bool) {
	if filepath.Ext(name) != ext.Dotted() {
		return "", false
	}
	stem := strings.TrimPrefix(name, libPrefix)
	switch {
	case strings.HasPrefix(stem, KindStd.prefix()):
		return KindStd, true
	case linkTest && strings.HasPrefix(stem, KindTest.prefix()):
		return KindTest, true
	}
	return "", false
}

// Candidate is a matching library file in the search directory.
type Candidate struct {
	Kind Kind
	Name string
	Path string
}

// Scan lists the regular files in dir that Match accepts, in directory
// order. Symlinks and directories are skipped.
func Scan(dir string, ext platform.Extension, linkTest bool) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ReadDirError{Dir: dir, Err: err}
	}

	var found []Candidate
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		kind, ok := Match(entry.Name(), ext, linkTest)
		if !ok {
			continue
		}
		found = append(found, Candidate{
			Kind: kind,
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}
	return found, nil
}
