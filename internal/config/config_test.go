package config

import (
	"testing"
)

// TestLoadDefaults tests that missing config files fall back to
// defaults.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.AudioFormat != "aacplus" {
		t.Errorf("expected default audio format aacplus, got %q", cfg.AudioFormat)
	}
	if cfg.ArtSize != 500 {
		t.Errorf("expected default art size 500, got %d", cfg.ArtSize)
	}
	if cfg.Email != "" || cfg.Proxy != "" {
		t.Errorf("expected empty account settings, got %+v", cfg)
	}
}

// TestSaveAndLoad tests the config round trip.
func TestSaveAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	saved := &Config{
		Email:       "bob@example.com",
		Proxy:       "socks5://127.0.0.1:9050",
		AudioFormat: "mp3",
		ArtSize:     640,
	}
	if err := saved.Save(); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if *loaded != *saved {
		t.Errorf("loaded config %+v, want %+v", loaded, saved)
	}
}

// TestEnvOverride tests that environment variables win over defaults.
func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PANDORA_AUDIO_FORMAT", "mp3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.AudioFormat != "mp3" {
		t.Errorf("expected env override mp3, got %q", cfg.AudioFormat)
	}
}
