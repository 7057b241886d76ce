package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/kartoza/kartoza-meeting-compositor/internal/models"
	"github.com/kartoza/kartoza-meeting-compositor/internal/render"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultLayout != models.LayoutSideBySide {
		t.Errorf("expected default layout side-by-side, got %s", cfg.DefaultLayout)
	}

	if cfg.BackgroundColor != models.DefaultBackgroundColor {
		t.Errorf("expected default background %q, got %q", models.DefaultBackgroundColor, cfg.BackgroundColor)
	}

	if cfg.EncoderCRF != render.DefaultCRF {
		t.Errorf("expected encoder crf %d, got %d", render.DefaultCRF, cfg.EncoderCRF)
	}

	if cfg.EncoderPreset != render.DefaultPreset {
		t.Errorf("expected encoder preset %q, got %q", render.DefaultPreset, cfg.EncoderPreset)
	}

	if !cfg.Notifications {
		t.Error("expected Notifications to be true by default")
	}
}

func TestGetConfigDir(t *testing.T) {
	dir := GetConfigDir()

	if dir == "" {
		t.Error("expected non-empty config directory")
	}

	if !strings.Contains(dir, "kartoza-meeting-compositor") {
		t.Errorf("expected config dir to contain the app name, got %q", dir)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLayout = models.LayoutDiagonal
	cfg.BackgroundColor = "#1A1A2E"
	cfg.EncoderCRF = 20
	cfg.YouTube.ClientID = "client-id"

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if loaded.DefaultLayout != models.LayoutDiagonal {
		t.Errorf("expected layout diagonal, got %s", loaded.DefaultLayout)
	}
	if loaded.BackgroundColor != "#1A1A2E" {
		t.Errorf("expected background #1A1A2E, got %q", loaded.BackgroundColor)
	}
	if loaded.EncoderCRF != 20 {
		t.Errorf("expected crf 20, got %d", loaded.EncoderCRF)
	}
	if loaded.YouTube.ClientID != "client-id" {
		t.Errorf("expected client id preserved, got %q", loaded.YouTube.ClientID)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	// A partial config file must not zero out unset fields.
	partial := []byte(`{"default_layout": "diagonal"}`)

	cfg := DefaultConfig()
	if err := json.Unmarshal(partial, &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if cfg.DefaultLayout != models.LayoutDiagonal {
		t.Errorf("expected layout diagonal, got %s", cfg.DefaultLayout)
	}
	if cfg.EncoderCRF != render.DefaultCRF {
		t.Errorf("expected crf default preserved, got %d", cfg.EncoderCRF)
	}
}
