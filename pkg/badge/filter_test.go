package badge

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildFilterGraph_FullChain(t *testing.T) {
	// 1920x1080 source, crop the centered 1080 square at x=420, scale to
	// 600, 30 fps.
	crop := CropRegion{X: 420, Y: 0, Side: 1080}

	got, err := BuildFilterGraph(crop, 600, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "crop=1080:1080:420:0," +
		"scale=600:600:flags=lanczos," +
		"fps=30," +
		"format=rgba," +
		"geq=r='r(X,Y)':g='g(X,Y)':b='b(X,Y)':" +
		"a='if(lte((X-W/2)*(X-W/2)+(Y-H/2)*(Y-H/2),(W/2)*(W/2)),255,0)'"
	if got != want {
		t.Errorf("filter graph mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestBuildFilterGraph_OriginalSizeSkipsScale(t *testing.T) {
	crop := CropRegion{X: 0, Y: 0, Side: 480}

	got, err := BuildFilterGraph(crop, SideOriginal, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(got, "scale=") {
		t.Errorf("expected no scale filter for original size, got %s", got)
	}
	if !strings.HasPrefix(got, "crop=480:480:0:0,") {
		t.Errorf("expected crop filter first, got %s", got)
	}
}

func TestBuildFilterGraph_MatchingSideSkipsScale(t *testing.T) {
	crop := CropRegion{X: 10, Y: 20, Side: 600}

	got, err := BuildFilterGraph(crop, 600, 24)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "scale=") {
		t.Errorf("expected no scale filter when output side equals crop side, got %s", got)
	}
}

func TestBuildFilterGraph_ZeroFrameRateSkipsFPS(t *testing.T) {
	got, err := BuildFilterGraph(CropRegion{Side: 100}, 100, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "fps=") {
		t.Errorf("expected no fps filter, got %s", got)
	}
}

func TestBuildFilterGraph_ZeroSide(t *testing.T) {
	_, err := BuildFilterGraph(CropRegion{X: 10, Y: 10, Side: 0}, 600, 30)

	var geomErr *InvalidGeometryError
	if !errors.As(err, &geomErr) {
		t.Fatalf("expected InvalidGeometryError, got %v", err)
	}
}

func TestBuildFilterGraph_MaskAlwaysPresent(t *testing.T) {
	cases := []struct {
		crop CropRegion
		side int
		fps  int
	}{
		{CropRegion{X: 0, Y: 0, Side: 1}, SideOriginal, 15},
		{CropRegion{X: 420, Y: 0, Side: 1080}, 1080, 60},
		{CropRegion{X: 5, Y: 7, Side: 33}, 800, 24},
	}

	for _, tc := range cases {
		got, err := BuildFilterGraph(tc.crop, tc.side, tc.fps)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", tc.crop, err)
		}
		if !strings.Contains(got, "format=rgba,geq=") {
			t.Errorf("expected rgba conversion before the mask, got %s", got)
		}
	}
}
