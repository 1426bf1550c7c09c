package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Port != 161 {
		t.Errorf("Port = %d, want 161", cfg.Port)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Timeout)
	}
	if !cfg.ShowProgress {
		t.Error("ShowProgress should default to true")
	}
	if cfg.Community != "" {
		t.Errorf("Community = %q, want empty so the CLI prompts for it", cfg.Community)
	}
}
