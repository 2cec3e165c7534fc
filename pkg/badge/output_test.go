package badge

import (
	"path/filepath"
	"testing"

	"github.com/user/badgemaker/pkg/mocks"
)

func TestResolveDest(t *testing.T) {
	cases := []struct {
		dir, name string
		want      string
	}{
		{"/save", "clip.webp", filepath.Join("/save", "clip.webp")},
		{"/save", "clip", filepath.Join("/save", "clip.webp")},
		{"/save", "clip.WEBP", filepath.Join("/save", "clip.WEBP")},
		{"/save", "clip.mp4", filepath.Join("/save", "clip.mp4.webp")},
	}

	for _, tc := range cases {
		if got := ResolveDest(tc.dir, tc.name); got != tc.want {
			t.Errorf("ResolveDest(%q, %q) = %q, want %q", tc.dir, tc.name, got, tc.want)
		}
	}
}

func TestDefaultFileName(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"/videos/clip.mp4", "clip.webp"},
		{"/videos/clip.tar.mkv", "clip.tar.webp"},
		{"clip", "clip.webp"},
	}

	for _, tc := range cases {
		if got := DefaultFileName(tc.source); got != tc.want {
			t.Errorf("DefaultFileName(%q) = %q, want %q", tc.source, got, tc.want)
		}
	}
}

func TestCheckOverwrite(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.SetFileSize("/save/clip.webp", 123)

	exists, err := CheckOverwrite(fs, "/save/clip.webp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected existing destination to be reported")
	}

	exists, err = CheckOverwrite(fs, "/save/other.webp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected missing destination to be reported as absent")
	}
}
