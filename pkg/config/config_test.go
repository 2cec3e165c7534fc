package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/badgemaker/pkg/badge"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Quality != 100 {
		t.Errorf("expected quality 100, got %d", cfg.Quality)
	}
	if cfg.OutputSide != "1080" {
		t.Errorf("expected output side 1080, got %s", cfg.OutputSide)
	}
	if cfg.FrameRate != 30 {
		t.Errorf("expected frame rate 30, got %d", cfg.FrameRate)
	}
	if cfg.LimitSize {
		t.Error("expected the size limit to default off")
	}
	if cfg.LimitSizeMB != 5 {
		t.Errorf("expected limit 5 MB, got %d", cfg.LimitSizeMB)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
quality: 80
output_side: "600"
frame_rate: 24
limit_size: true
limit_size_mb: 3
ffmpeg_path: /custom/ffmpeg
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Quality != 80 || cfg.OutputSide != "600" || cfg.FrameRate != 24 {
		t.Errorf("unexpected encoding settings: %+v", cfg)
	}
	if !cfg.LimitSize || cfg.LimitSizeMB != 3 {
		t.Errorf("unexpected limit settings: %+v", cfg)
	}
	if cfg.FFmpegPath != "/custom/ffmpeg" {
		t.Errorf("unexpected ffmpeg path %s", cfg.FFmpegPath)
	}
	// Untouched fields keep their defaults.
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level, got %s", cfg.LogLevel)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestToSettings(t *testing.T) {
	cfg := Defaults()

	settings, err := cfg.ToSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Quality != 100 || settings.OutputSide != 1080 || settings.FrameRate != 30 {
		t.Errorf("unexpected settings: %+v", settings)
	}
	if settings.SizeLimitMB != 0 {
		t.Errorf("expected no size limit when limit_size is off, got %d", settings.SizeLimitMB)
	}

	cfg.LimitSize = true
	settings, err = cfg.ToSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.SizeLimitMB != 5 {
		t.Errorf("expected a 5 MB limit, got %d", settings.SizeLimitMB)
	}
}

func TestToSettings_InvalidSide(t *testing.T) {
	cfg := Defaults()
	cfg.OutputSide = "512"

	_, err := cfg.ToSettings()
	var settingsErr *badge.InvalidSettingsError
	if !errors.As(err, &settingsErr) {
		t.Fatalf("expected InvalidSettingsError, got %v", err)
	}
}

func TestParseOutputSide(t *testing.T) {
	cases := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"original", badge.SideOriginal, true},
		{"", badge.SideOriginal, true},
		{"1080", 1080, true},
		{"800", 800, true},
		{"600", 600, true},
		{"huge", 0, false},
	}

	for _, tc := range cases {
		got, err := ParseOutputSide(tc.in)
		if tc.wantOK {
			if err != nil {
				t.Errorf("ParseOutputSide(%q) returned %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseOutputSide(%q) = %d, want %d", tc.in, got, tc.want)
			}
		} else if err == nil {
			t.Errorf("ParseOutputSide(%q) should fail", tc.in)
		}
	}
}
