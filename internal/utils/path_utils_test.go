package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetConfigDirWithEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()

	originalHome := os.Getenv("SITEE_CONFIG_HOME")
	os.Setenv("SITEE_CONFIG_HOME", tmpDir)
	defer os.Setenv("SITEE_CONFIG_HOME", originalHome)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir failed: %v", err)
	}
	if dir != tmpDir {
		t.Errorf("Expected env override %q, got %q", tmpDir, dir)
	}
}

func TestGetConfigPathForDisplay(t *testing.T) {
	display := GetConfigPathForDisplay()
	if display == "" {
		t.Fatal("Expected a non-empty display path")
	}
	if !strings.Contains(display, filepath.Join("sitee", "config.yaml")) && !strings.Contains(display, "sitee/config.yaml") {
		t.Errorf("Display path should point at the sitee config file, got %q", display)
	}
}
