package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocateConfigFindsUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfgPath := filepath.Join(root, "hashgo.toml")
	if err := os.WriteFile(cfgPath, []byte("algorithm = \"MD5\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := LocateConfig(nested)
	if err != nil {
		t.Fatalf("LocateConfig: %v", err)
	}
	if got != cfgPath {
		t.Errorf("LocateConfig = %q, want %q", got, cfgPath)
	}
}

func TestLocateConfigMissing(t *testing.T) {
	_, err := LocateConfig(t.TempDir())
	if !errors.Is(err, ErrNoConfigFile) {
		t.Errorf("got %v, want ErrNoConfigFile", err)
	}
}

func TestLoadDefaultsFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "algorithm = \"SHA2-512\"\nencoding = \"Base64\"\nsingle_thread = true\n"
	if err := os.WriteFile(filepath.Join(dir, "hashgo.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	d, err := LoadDefaults(dir)
	if err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	if d.Algorithm != "SHA2-512" {
		t.Errorf("Algorithm = %q", d.Algorithm)
	}
	if d.Encoding != "Base64" {
		t.Errorf("Encoding = %q", d.Encoding)
	}
	if !d.SingleThread {
		t.Error("SingleThread should be true")
	}
	if d.NoProgress {
		t.Error("NoProgress should default false")
	}
}

func TestLoadDefaultsNoFile(t *testing.T) {
	d, err := LoadDefaults(t.TempDir())
	if err != nil {
		t.Fatalf("missing config file should not be an error, got: %v", err)
	}
	if d.Algorithm != "" || d.Encoding != "" {
		t.Errorf("expected empty defaults, got %+v", d)
	}
}

func TestLoadDefaultsEnvOverride(t *testing.T) {
	t.Setenv("HASHGO_ALGORITHM", "CRC32")
	d, err := LoadDefaults(t.TempDir())
	if err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	if d.Algorithm != "CRC32" {
		t.Errorf("Algorithm = %q, want env override CRC32", d.Algorithm)
	}
}
