package config

import (
	"errors"
	"reflect"
	"testing"
)

func TestContextRequire(t *testing.T) {
	c := NewContext(map[string]string{
		EnvOutDir: "/out",
		EnvTarget: "",
		"HOME":    "/root",
	})

	got, err := c.Require(EnvOutDir)
	if err != nil || got != "/out" {
		t.Errorf("Require(OUT_DIR) = %q, %v", got, err)
	}

	_, err = c.Require(EnvTarget)
	var missing *MissingEnvError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingEnvError, got %v", err)
	}
	if missing.Key != EnvTarget {
		t.Errorf("Key = %q, want %q", missing.Key, EnvTarget)
	}
	if !errors.Is(err, ErrMissingEnv) {
		t.Error("errors.Is(err, ErrMissingEnv) = false")
	}
	if got := err.Error(); got != "environment variable `TARGET` is unset" {
		t.Errorf("Error() = %q", got)
	}
}

func TestContextIgnoresUnknownKeys(t *testing.T) {
	c := NewContext(map[string]string{"HOME": "/root", EnvRustc: "rustc"})
	if c.Has("HOME") {
		t.Error("unknown key should be dropped")
	}
	if want := []string{EnvRustc}; !reflect.DeepEqual(c.Set(), want) {
		t.Errorf("Set() = %v, want %v", c.Set(), want)
	}
}

func TestContextIsACopy(t *testing.T) {
	values := map[string]string{EnvOutDir: "/a"}
	c := NewContext(values)
	values[EnvOutDir] = "/b"
	if got, _ := c.Lookup(EnvOutDir); got != "/a" {
		t.Errorf("Lookup(OUT_DIR) = %q, want %q", got, "/a")
	}
}
