package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultStarfieldConfig(t *testing.T) {
	cfg := DefaultStarfieldConfig()

	if cfg.Window.Width != 300 || cfg.Window.Height != 300 {
		t.Errorf("expected 300x300 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.MinWidth != 100 || cfg.Window.MinHeight != 100 {
		t.Errorf("expected 100x100 min size, got %dx%d", cfg.Window.MinWidth, cfg.Window.MinHeight)
	}
	if cfg.Starfield.NumStars != 100 {
		t.Errorf("expected numStars = 100, got %d", cfg.Starfield.NumStars)
	}
	if cfg.Starfield.MaxStreak != 10 {
		t.Errorf("expected maxStreak = 10, got %d", cfg.Starfield.MaxStreak)
	}
	if cfg.Torpedoes.MaxTorps != 5 || cfg.Torpedoes.Step != 5 {
		t.Errorf("expected 5 torpedoes stepping 5px, got %d / %d", cfg.Torpedoes.MaxTorps, cfg.Torpedoes.Step)
	}
	if cfg.TickInterval() != 20*time.Millisecond {
		t.Errorf("expected 20ms tick, got %v", cfg.TickInterval())
	}
	if cfg.TicksPerSecond() != 50 {
		t.Errorf("expected 50 TPS, got %d", cfg.TicksPerSecond())
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled by default")
	}
}

func TestParseStarfieldConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *StarfieldConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
starfield:
  numStars: 250
  seed: 1996
colors:
  warp: orangered
`,
			validate: func(t *testing.T, cfg *StarfieldConfig) {
				if cfg.Starfield.NumStars != 250 {
					t.Errorf("expected numStars = 250, got %d", cfg.Starfield.NumStars)
				}
				if cfg.Starfield.Seed != 1996 {
					t.Errorf("expected seed = 1996, got %d", cfg.Starfield.Seed)
				}
				// 未覆盖的字段保留默认值
				if cfg.Starfield.MaxStreak != 10 {
					t.Errorf("expected default maxStreak = 10, got %d", cfg.Starfield.MaxStreak)
				}
				if cfg.Window.Title != "Space, the Final Frontier ..." {
					t.Errorf("unexpected default title %q", cfg.Window.Title)
				}
				if cfg.Colors.Torpedo != "yellow" {
					t.Errorf("expected default torpedo color yellow, got %q", cfg.Colors.Torpedo)
				}
			},
		},
		{
			name: "min size larger than window",
			yamlContent: `
window:
  width: 200
  height: 200
  minWidth: 250
`,
			wantErr:     true,
			errContains: "exceeds window size",
		},
		{
			name: "zero torpedo pool",
			yamlContent: `
torpedoes:
  maxTorps: 0
`,
			wantErr:     true,
			errContains: "maxTorps must be positive",
		},
		{
			name: "large ratio out of range",
			yamlContent: `
starfield:
  largeRatio: 1.5
`,
			wantErr:     true,
			errContains: "largeRatio",
		},
		{
			name: "unknown color",
			yamlContent: `
colors:
  cruise: notacolor
`,
			wantErr:     true,
			errContains: "colors.cruise",
		},
		{
			name:        "malformed yaml",
			yamlContent: "window: [",
			wantErr:     true,
			errContains: "failed to parse starfield config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseStarfieldConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadStarfieldConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "starfield.yaml")
	if err := os.WriteFile(path, []byte("loop:\n  tickMillis: 40\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadStarfieldConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TicksPerSecond() != 25 {
		t.Errorf("expected 25 TPS for 40ms tick, got %d", cfg.TicksPerSecond())
	}

	if _, err := LoadStarfieldConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	cfg, err = LoadStarfieldConfig("")
	if err != nil {
		t.Fatalf("empty path should fall back to defaults: %v", err)
	}
	if cfg.Starfield.NumStars != 100 {
		t.Errorf("expected default numStars, got %d", cfg.Starfield.NumStars)
	}
}

func TestLookupColor(t *testing.T) {
	c, err := LookupColor(" Red ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("expected pure red, got %v", c)
	}

	_, err = LookupColor("warp-plasma")
	if !errors.Is(err, ErrUnknownColor) {
		t.Errorf("expected ErrUnknownColor, got %v", err)
	}
}

func TestPalette(t *testing.T) {
	p := DefaultStarfieldConfig().Palette()

	if p.Cruise != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("cruise tint should be white, got %v", p.Cruise)
	}
	if p.Warp != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("warp tint should be red, got %v", p.Warp)
	}
	if p.Torpedo != (color.RGBA{R: 0xff, G: 0xff, A: 0xff}) {
		t.Errorf("torpedo tint should be yellow, got %v", p.Torpedo)
	}
	if p.Background != (color.RGBA{A: 0xff}) {
		t.Errorf("background should be black, got %v", p.Background)
	}
}
