package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CameraID != 0 {
		t.Errorf("CameraID = %d, want 0", cfg.CameraID)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %s, want :8080", cfg.HTTPAddr)
	}
	if cfg.MotionThreshold != 1.0 {
		t.Errorf("MotionThreshold = %f, want 1.0", cfg.MotionThreshold)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir not defaulted")
	}
	if cfg.PluginDir != filepath.Join(cfg.DataDir, "plugins") {
		t.Errorf("PluginDir = %s, want under DataDir", cfg.PluginDir)
	}
	if cfg.Headless {
		t.Error("Headless = true, want false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("KIDO_CAMERA_ID", "2")
	t.Setenv("KIDO_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("KIDO_DATA_DIR", "/var/lib/kido")
	t.Setenv("KIDO_SENSITIVITY", "3.5")
	t.Setenv("KIDO_HEADLESS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CameraID != 2 {
		t.Errorf("CameraID = %d, want 2", cfg.CameraID)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Errorf("HTTPAddr = %s, want 127.0.0.1:9000", cfg.HTTPAddr)
	}
	if cfg.DataDir != "/var/lib/kido" {
		t.Errorf("DataDir = %s, want /var/lib/kido", cfg.DataDir)
	}
	if cfg.PluginDir != "/var/lib/kido/plugins" {
		t.Errorf("PluginDir = %s, want /var/lib/kido/plugins", cfg.PluginDir)
	}
	if cfg.DBPath() != "/var/lib/kido/kido.db" {
		t.Errorf("DBPath() = %s, want /var/lib/kido/kido.db", cfg.DBPath())
	}
	if cfg.Sensitivity != 3.5 {
		t.Errorf("Sensitivity = %f, want 3.5", cfg.Sensitivity)
	}
	if !cfg.Headless {
		t.Error("Headless = false, want true")
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("KIDO_CAMERA_ID", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded with invalid camera id, want error")
	}
}
