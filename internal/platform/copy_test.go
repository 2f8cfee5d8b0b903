package platform

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCopyFile(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "libstd-abc.so")
	payload := []byte{0x7f, 'E', 'L', 'F', 0, 1, 2, 3}
	if err := os.WriteFile(src, payload, 0755); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(tmp, "out.so")
	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("copied bytes = %v, want %v", got, payload)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(dst)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0755 {
			t.Errorf("permissions = %o, want %o", perm, 0755)
		}
	}
}

func TestCopyFileOverwrites(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")
	if err := os.WriteFile(src, []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("much longer old content"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("dst content = %q, want %q", got, "new")
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	tmp := t.TempDir()
	if err := CopyFile(filepath.Join(tmp, "missing"), filepath.Join(tmp, "dst")); err == nil {
		t.Error("expected error for missing source")
	}
}

func TestSameContents(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a")
	b := filepath.Join(tmp, "b")
	c := filepath.Join(tmp, "c")
	big := bytes.Repeat([]byte("libstd"), 40000)
	if err := os.WriteFile(a, big, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, big, 0644); err != nil {
		t.Fatal(err)
	}
	changed := append([]byte(nil), big...)
	changed[len(changed)-1] = 'X'
	if err := os.WriteFile(c, changed, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		b    string
		want bool
	}{
		{"identical", b, true},
		{"same size different bytes", c, false},
		{"missing", filepath.Join(tmp, "missing"), false},
		{"directory", tmp, false},
	}
	for _, tt := range tests {
		got, err := SameContents(a, tt.b)
		if err != nil {
			t.Fatalf("%s: SameContents: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: SameContents = %v, want %v", tt.name, got, tt.want)
		}
	}
}
