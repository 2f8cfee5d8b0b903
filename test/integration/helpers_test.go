//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rtstage/rtstage/internal/config"
	"github.com/rtstage/rtstage/internal/platform"
	"github.com/rtstage/rtstage/internal/stage"
)

// testEnv holds paths to an isolated toolchain and cargo target tree.
type testEnv struct {
	RustupHome string // RUSTUP_HOME with toolchains/<name>/{lib,bin}
	Profile    string // target/<profile>, where libraries get staged
	OutDir     string // OUT_DIR of the build script
}

// setupTestEnv creates a sandboxed cargo layout and clears every variable
// rtstage reads, so the host environment cannot leak into a run.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	for _, key := range config.Keys {
		t.Setenv(key, "")
	}

	env := &testEnv{
		RustupHome: t.TempDir(),
		Profile:    filepath.Join(t.TempDir(), "target", "debug"),
	}
	env.OutDir = filepath.Join(env.Profile, "build", "app-0f3c", "out")
	if err := os.MkdirAll(env.OutDir, 0755); err != nil {
		t.Fatalf("creating OUT_DIR: %v", err)
	}
	return env
}

// setupToolchain writes a toolchain with the host's standard and test
// libraries plus an unrelated library, and returns its library directory.
func setupToolchain(t *testing.T, env *testEnv, name string) string {
	t.Helper()

	sub := "lib"
	if platform.Host().IsWindows() {
		sub = "bin"
	}
	dir := filepath.Join(env.RustupHome, "toolchains", name, sub)
	for _, lib := range []string{libFile("std"), libFile("test"), libFile("rustc_driver")} {
		writeFile(t, filepath.Join(dir, lib), "contents of "+lib)
	}
	return dir
}

// libFile names a host-native shared library for kind.
func libFile(kind string) string {
	host := platform.Host()
	if host.IsWindows() {
		return kind + "-5ca1ab1e.dll"
	}
	return "lib" + kind + "-5ca1ab1e." + host.Extension().String()
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if nothing loadable sits at path.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if anything sits at path.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertSameContents fails unless a and b read back identically. Symlinks
// are followed, so a linked destination compares against its target.
func assertSameContents(t *testing.T, a, b string) {
	t.Helper()
	want, err := os.ReadFile(a)
	if err != nil {
		t.Errorf("reading %s: %v", a, err)
		return
	}
	got, err := os.ReadFile(b)
	if err != nil {
		t.Errorf("reading %s: %v", b, err)
		return
	}
	if !bytes.Equal(got, want) {
		t.Errorf("%s and %s differ", a, b)
	}
}

// assertStaged checks one staged library: a link must point at the source,
// anything else must be a byte-identical regular file.
func assertStaged(t *testing.T, st stage.Staged) {
	t.Helper()
	if st.Action == stage.ActionLinked {
		target, err := platform.ReadSymlinkTarget(st.Dst)
		if err != nil {
			t.Errorf("linked %s is not a symlink: %v", st.Dst, err)
			return
		}
		if target != st.Src {
			t.Errorf("%s links to %s, want %s", st.Dst, target, st.Src)
		}
	}
	assertSameContents(t, st.Src, st.Dst)
}
