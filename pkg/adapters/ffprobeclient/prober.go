// Package ffprobeclient implements ports.VideoProber with one ffprobe call.
package ffprobeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/user/badgemaker/pkg/badge"
	"github.com/user/badgemaker/pkg/ports"
)

// Prober queries ffprobe for the source's primary video stream dimensions.
type Prober struct {
	ffprobePath string
}

// New creates a Prober using the given ffprobe binary.
func New(ffprobePath string) *Prober {
	return &Prober{ffprobePath: ffprobePath}
}

// Probe runs a single machine-parseable ffprobe call:
//
//	ffprobe -v error -select_streams v:0 -show_entries stream=width,height -of json SRC
//
// Failures are fatal badge.ProbeError values; there are no retries.
func (p *Prober) Probe(ctx context.Context, sourcePath string) (ports.VideoInfo, error) {
	cmd := exec.CommandContext(ctx, p.ffprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "json",
		sourcePath,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return ports.VideoInfo{}, &badge.ProbeError{
			Message: strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}

	return ParseStreams(stdout.Bytes())
}

// --- ffprobe JSON wire types ---

type probeOutput struct {
	Streams []probeStream `json:"streams"`
}

type probeStream struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ParseStreams converts raw ffprobe JSON output into a VideoInfo.
// Exported for testing without a real ffprobe binary.
func ParseStreams(data []byte) (ports.VideoInfo, error) {
	var raw probeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return ports.VideoInfo{}, &badge.ProbeError{Message: "unparseable ffprobe output", Err: err}
	}
	if len(raw.Streams) == 0 {
		return ports.VideoInfo{}, &badge.ProbeError{Message: "no video stream found"}
	}
	s := raw.Streams[0]
	if s.Width <= 0 || s.Height <= 0 {
		return ports.VideoInfo{}, &badge.ProbeError{Message: "video stream has no dimensions"}
	}
	return ports.VideoInfo{Width: s.Width, Height: s.Height}, nil
}

// Ensure Prober implements ports.VideoProber
var _ ports.VideoProber = (*Prober)(nil)
