// Package mocks provides hand-rolled test doubles for the ports interfaces
// so the core can be tested without ffmpeg or ffprobe installed.
package mocks

import (
	"context"

	"github.com/user/badgemaker/pkg/ports"
)

// VideoProber is a mock implementation of ports.VideoProber.
type VideoProber struct {
	ProbeFunc func(ctx context.Context, sourcePath string) (ports.VideoInfo, error)

	// Recorded calls for verification
	ProbeCalls []string
}

func (m *VideoProber) Probe(ctx context.Context, sourcePath string) (ports.VideoInfo, error) {
	m.ProbeCalls = append(m.ProbeCalls, sourcePath)
	if m.ProbeFunc != nil {
		return m.ProbeFunc(ctx, sourcePath)
	}
	return ports.VideoInfo{Width: 1920, Height: 1080}, nil
}

var _ ports.VideoProber = (*VideoProber)(nil)
