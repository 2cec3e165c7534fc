package ffprobeclient

import (
	"errors"
	"testing"

	"github.com/user/badgemaker/pkg/badge"
)

func TestParseStreams(t *testing.T) {
	data := []byte(`{"programs": [], "streams": [{"width": 1920, "height": 1080}]}`)

	info, err := ParseStreams(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Width != 1920 || info.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", info.Width, info.Height)
	}
}

func TestParseStreams_FirstStreamWins(t *testing.T) {
	data := []byte(`{"streams": [{"width": 640, "height": 480}, {"width": 1280, "height": 720}]}`)

	info, err := ParseStreams(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Width != 640 || info.Height != 480 {
		t.Errorf("expected the first stream, got %dx%d", info.Width, info.Height)
	}
}

func TestParseStreams_NoStreams(t *testing.T) {
	data := []byte(`{"streams": []}`)

	_, err := ParseStreams(data)
	var pe *badge.ProbeError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProbeError, got %v", err)
	}
}

func TestParseStreams_MissingDimensions(t *testing.T) {
	data := []byte(`{"streams": [{}]}`)

	_, err := ParseStreams(data)
	var pe *badge.ProbeError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProbeError, got %v", err)
	}
}

func TestParseStreams_InvalidJSON(t *testing.T) {
	_, err := ParseStreams([]byte("not json at all"))
	var pe *badge.ProbeError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProbeError, got %v", err)
	}
	if pe.Unwrap() == nil {
		t.Error("expected the JSON error to be wrapped")
	}
}
