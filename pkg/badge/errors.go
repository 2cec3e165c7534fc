package badge

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled is returned when the user cancels a run. The in-flight
	// encoder process is killed and all temp attempts are discarded.
	ErrCancelled = errors.New("badge: job cancelled")

	// ErrBusy is returned when a run is requested while another is active.
	// Jobs are rejected, never queued.
	ErrBusy = errors.New("badge: another job is already running")

	// ErrOverwriteDeclined is returned when the destination exists and the
	// caller did not confirm overwriting it. The encoder is never started.
	ErrOverwriteDeclined = errors.New("badge: destination exists and overwrite was declined")
)

// ToolNotFoundError reports a missing external tool (ffmpeg or ffprobe),
// detected before any processing starts.
type ToolNotFoundError struct {
	Tool string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("badge: %s not found (place it in the ffmpeg_bin directory next to the executable, or install it on PATH)", e.Tool)
}

// ProbeError reports a failed or unparseable ffprobe run. Fatal, no retry.
type ProbeError struct {
	Message string
	Err     error
}

func (e *ProbeError) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("badge: probe failed: %s: %v", e.Message, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("badge: probe failed: %v", e.Err)
	}
	return fmt.Sprintf("badge: probe failed: %s", e.Message)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// InvalidGeometryError reports a crop region that does not fit the source.
type InvalidGeometryError struct {
	Crop         CropRegion
	SourceWidth  int
	SourceHeight int
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("badge: crop %d:%d+%d,%d does not fit source %dx%d",
		e.Crop.Side, e.Crop.Side, e.Crop.X, e.Crop.Y, e.SourceWidth, e.SourceHeight)
}

// InvalidSettingsError reports an output setting outside its selectable range.
type InvalidSettingsError struct {
	Field string
	Value int
}

func (e *InvalidSettingsError) Error() string {
	return fmt.Sprintf("badge: invalid %s: %d", e.Field, e.Value)
}

// EncodeError reports a non-zero encoder exit. Within the size-fit search
// this aborts the whole run; an encode failure is a tool or configuration
// problem, not a size problem.
type EncodeError struct {
	ExitCode   int
	StderrTail string
}

func (e *EncodeError) Error() string {
	if e.StderrTail == "" {
		return fmt.Sprintf("badge: ffmpeg exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("badge: ffmpeg exited with code %d: %s", e.ExitCode, e.StderrTail)
}
