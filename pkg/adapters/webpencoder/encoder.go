// Package webpencoder implements ports.EncodeRunner by driving an external
// ffmpeg process with the libwebp encoder.
package webpencoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/user/badgemaker/pkg/badge"
	"github.com/user/badgemaker/pkg/ports"
)

// stderrTailBytes bounds the stderr excerpt carried by an EncodeError.
const stderrTailBytes = 2048

// Encoder spawns one ffmpeg process per Encode call.
type Encoder struct {
	ffmpegPath string
}

// New creates an Encoder using the given ffmpeg binary.
func New(ffmpegPath string) *Encoder {
	return &Encoder{ffmpegPath: ffmpegPath}
}

// BuildArgs assembles the full ffmpeg argument list for one attempt: the
// request's filter graph plus the animated-WebP codec options (lossy
// libwebp at the requested quality, alpha-capable yuva420p, loop forever,
// no audio). Exported so tests can assert the command surface without
// spawning ffmpeg.
func BuildArgs(req ports.EncodeRequest) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", req.SourcePath,
		"-vf", req.FilterGraph,
		"-an",
		"-vsync", "0",
		"-c:v", "libwebp",
		"-lossless", "0",
		"-q:v", strconv.Itoa(req.Quality),
		"-preset", "icon",
		"-compression_level", "6",
		"-loop", "0",
		"-pix_fmt", "yuva420p",
		req.DestPath,
	}
}

// Encode runs ffmpeg and blocks until it exits or ctx is cancelled. On
// cancellation the child process is killed and badge.ErrCancelled returned;
// the caller treats the (possibly partial) DestPath file as invalid on any
// non-nil return.
func (e *Encoder) Encode(ctx context.Context, req ports.EncodeRequest) error {
	cmd := exec.Command(e.ffmpegPath, BuildArgs(req)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		// A killed process must never be reported as success.
		_ = cmd.Process.Kill()
		<-done
		return badge.ErrCancelled
	case err := <-done:
		if err != nil {
			return &badge.EncodeError{
				ExitCode:   exitCode(err),
				StderrTail: stderrTail(stderr.String()),
			}
		}
	}
	return nil
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTailBytes {
		s = s[len(s)-stderrTailBytes:]
	}
	return s
}

// Ensure Encoder implements ports.EncodeRunner
var _ ports.EncodeRunner = (*Encoder)(nil)
