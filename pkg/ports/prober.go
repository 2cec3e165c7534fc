package ports

import "context"

// VideoInfo holds the probed properties of a source video's primary stream.
type VideoInfo struct {
	Width  int
	Height int
}

// VideoProber abstracts source-video inspection (ffprobe).
// A probe failure is fatal to the job; implementations never retry.
type VideoProber interface {
	// Probe reports the width and height of the first video stream.
	Probe(ctx context.Context, sourcePath string) (VideoInfo, error)
}
