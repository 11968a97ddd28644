package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvMissingFileIsNotAnError(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	if err := loadDotEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("CONIC_TEST_SET=file\nCONIC_TEST_NEW=file\n"), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	t.Setenv("CONIC_TEST_SET", "process")
	t.Setenv("CONIC_TEST_NEW", "")
	os.Unsetenv("CONIC_TEST_NEW")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := os.Getenv("CONIC_TEST_SET"); got != "process" {
		t.Errorf("CONIC_TEST_SET = %q, expected the process value", got)
	}
	if got := os.Getenv("CONIC_TEST_NEW"); got != "file" {
		t.Errorf("CONIC_TEST_NEW = %q, expected the file value", got)
	}
}
