// Package badge holds the data model and pure logic of badge creation:
// crop geometry, output settings, the ffmpeg filter graph and the
// destination-path rules. Nothing in this package spawns a process.
package badge

// SideOriginal selects the crop's own side length as the output dimension.
const SideOriginal = 0

// OutputSides lists the selectable output dimensions. SideOriginal keeps
// the crop resolution.
var OutputSides = []int{SideOriginal, 1080, 800, 600}

// FrameRates lists the selectable output frame rates.
var FrameRates = []int{60, 30, 24, 15}

// CropRegion is a square region in source-video pixel coordinates.
type CropRegion struct {
	X    int
	Y    int
	Side int
}

// Validate checks the region against the probed source dimensions.
func (c CropRegion) Validate(sourceWidth, sourceHeight int) error {
	if c.Side <= 0 || c.X < 0 || c.Y < 0 ||
		c.X+c.Side > sourceWidth || c.Y+c.Side > sourceHeight {
		return &InvalidGeometryError{Crop: c, SourceWidth: sourceWidth, SourceHeight: sourceHeight}
	}
	return nil
}

// CenteredSquare returns the largest square crop centered in a source of
// the given dimensions. Used as the default when the caller supplies none.
func CenteredSquare(sourceWidth, sourceHeight int) CropRegion {
	side := sourceWidth
	if sourceHeight < side {
		side = sourceHeight
	}
	return CropRegion{
		X:    (sourceWidth - side) / 2,
		Y:    (sourceHeight - side) / 2,
		Side: side,
	}
}

// OutputSettings are the user-facing encode settings. Quality is the only
// field the size-fit search may vary; the rest are fixed for a run.
type OutputSettings struct {
	Quality     int // libwebp -q:v, 1-100
	OutputSide  int // SideOriginal, 1080, 800 or 600
	FrameRate   int // 60, 30, 24 or 15 fps
	SizeLimitMB int // 0 disables the size-constrained search
}

// DefaultSettings returns the default output settings: best quality,
// 1080x1080, 30 fps, no size limit.
func DefaultSettings() OutputSettings {
	return OutputSettings{
		Quality:    100,
		OutputSide: 1080,
		FrameRate:  30,
	}
}

// Validate checks the settings against the selectable ranges.
func (s OutputSettings) Validate() error {
	if s.Quality < 1 || s.Quality > 100 {
		return &InvalidSettingsError{Field: "quality", Value: s.Quality}
	}
	if !containsInt(OutputSides, s.OutputSide) {
		return &InvalidSettingsError{Field: "output side", Value: s.OutputSide}
	}
	if !containsInt(FrameRates, s.FrameRate) {
		return &InvalidSettingsError{Field: "frame rate", Value: s.FrameRate}
	}
	if s.SizeLimitMB < 0 {
		return &InvalidSettingsError{Field: "size limit", Value: s.SizeLimitMB}
	}
	return nil
}

// ResolveOutputSide maps SideOriginal to the crop's side length.
func (s OutputSettings) ResolveOutputSide(crop CropRegion) int {
	if s.OutputSide == SideOriginal {
		return crop.Side
	}
	return s.OutputSide
}

// EncodeJob is the immutable description of one badge-making run.
type EncodeJob struct {
	Crop       CropRegion
	Settings   OutputSettings
	SourcePath string
	DestPath   string
}

// Result describes the committed output of a run.
type Result struct {
	// DestPath is the committed output file.
	DestPath string

	// Quality is the quality the committed attempt was encoded with.
	Quality int

	// ByteSize is the size of the committed file in bytes.
	ByteSize int64

	// Attempts is the number of encoder invocations performed.
	Attempts int

	// LimitSatisfied is false when a size limit was requested but even the
	// floor quality produced a larger file. The floor artifact is still
	// committed; the caller decides how to surface the shortfall.
	LimitSatisfied bool
}

func containsInt(list []int, v int) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}
