package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harukimoto/careplan/internal/types"
)

func TestDefault_Values(t *testing.T) {
	// Defaults select the facility sheet and the flash model.
	cfg := Default()
	if cfg.ServiceType != "facility" {
		t.Errorf("ServiceType = %q", cfg.ServiceType)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q", cfg.Gemini.Model)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir empty")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	// Environment variables win over defaults.
	t.Setenv("CAREPLAN_DATA_DIR", "/tmp/careplan-test")
	t.Setenv("CAREPLAN_SERVICE_TYPE", "home")
	t.Setenv("GEMINI_MODEL", "gemini-experimental")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/careplan-test" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.ServiceType != "home" {
		t.Errorf("ServiceType = %q", cfg.ServiceType)
	}
	if cfg.Gemini.Model != "gemini-experimental" {
		t.Errorf("Model = %q", cfg.Gemini.Model)
	}
}

func TestLoad_FileOverridesDefault_EnvOverridesFile(t *testing.T) {
	// The config file beats defaults, and environment beats the file.
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CAREPLAN_SERVICE_TYPE", "home")

	dir := filepath.Join(home, ".careplan")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	file := "service_type = \"facility\"\n\n[gemini]\nmodel = \"gemini-from-file\"\ntimeout_seconds = 30\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(file), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gemini.Model != "gemini-from-file" {
		t.Errorf("Model = %q, want file value", cfg.Gemini.Model)
	}
	if cfg.Gemini.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.Gemini.TimeoutSeconds)
	}
	if cfg.ServiceType != "home" {
		t.Errorf("ServiceType = %q, env must beat file", cfg.ServiceType)
	}
}

func TestServiceType_MapsToTypes(t *testing.T) {
	// The configured string maps onto the ServiceType constants used
	// throughout the pipeline.
	if got := types.ServiceType(Default().ServiceType); got != types.ServiceFacility {
		t.Errorf("got %v", got)
	}
}
