package ports

import "context"

// EncodeRequest carries the parameters of one external encoder invocation.
type EncodeRequest struct {
	// SourcePath is the input video file.
	SourcePath string

	// FilterGraph is the full -vf expression (crop, scale, fps, circular
	// alpha mask), built by the badge package.
	FilterGraph string

	// Quality is the encoder-native quality value (libwebp -q:v, 1-100).
	Quality int

	// DestPath is where the encoder writes its output. The file must be
	// treated as invalid until Encode returns nil.
	DestPath string
}

// EncodeRunner abstracts the external encoder process.
type EncodeRunner interface {
	// Encode spawns exactly one encoder process and blocks until it exits
	// or ctx is cancelled. On cancellation the child process is killed and
	// badge.ErrCancelled is returned; a killed process never reports
	// success. A non-zero exit is reported as a badge.EncodeError carrying
	// the exit code and a stderr excerpt.
	Encode(ctx context.Context, req EncodeRequest) error
}
