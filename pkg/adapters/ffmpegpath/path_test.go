package ffmpegpath

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/badgemaker/pkg/badge"
)

// fakeTool drops an empty file standing in for a tool binary.
func fakeTool(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write fake tool: %v", err)
	}
	return path
}

func TestFind_ExplicitPath(t *testing.T) {
	path := fakeTool(t, t.TempDir(), "ffmpeg")

	got, err := Find("ffmpeg", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != path {
		t.Errorf("expected %s, got %s", path, got)
	}
}

func TestFind_ExplicitPathMissing(t *testing.T) {
	_, err := Find("ffmpeg", filepath.Join(t.TempDir(), "no-such-ffmpeg"))

	var notFound *badge.ToolNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ToolNotFoundError, got %v", err)
	}
	if notFound.Tool != "ffmpeg" {
		t.Errorf("expected the tool name in the error, got %q", notFound.Tool)
	}
}

func TestFind_ExplicitPathIsDirectory(t *testing.T) {
	_, err := Find("ffprobe", t.TempDir())

	var notFound *badge.ToolNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ToolNotFoundError, got %v", err)
	}
}

func TestFind_EnvVar(t *testing.T) {
	path := fakeTool(t, t.TempDir(), "ffprobe")
	t.Setenv("FFPROBE_PATH", path)

	got, err := Find("ffprobe", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != path {
		t.Errorf("expected %s, got %s", path, got)
	}
}

func TestFind_EnvVarMissingFile(t *testing.T) {
	t.Setenv("FFMPEG_PATH", filepath.Join(t.TempDir(), "gone"))

	_, err := Find("ffmpeg", "")
	var notFound *badge.ToolNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ToolNotFoundError, got %v", err)
	}
}

func TestFind_ExplicitBeatsEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := fakeTool(t, dir, "ffmpeg-env")
	explicit := fakeTool(t, dir, "ffmpeg-explicit")
	t.Setenv("FFMPEG_PATH", envPath)

	got, err := Find("ffmpeg", explicit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != explicit {
		t.Errorf("expected the explicit path %s, got %s", explicit, got)
	}
}

func TestCandidateNames(t *testing.T) {
	names := candidateNames("ffmpeg")
	if len(names) != 2 {
		t.Fatalf("expected 2 candidates, got %v", names)
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen["ffmpeg"] || !seen["ffmpeg.exe"] {
		t.Errorf("expected both the bare and .exe names, got %v", names)
	}
}
