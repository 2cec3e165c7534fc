package mocks

import (
	"context"

	"github.com/user/badgemaker/pkg/ports"
)

// EncodeRunner is a mock implementation of ports.EncodeRunner.
type EncodeRunner struct {
	EncodeFunc func(ctx context.Context, req ports.EncodeRequest) error

	// Recorded calls for verification
	EncodeCalls []ports.EncodeRequest
}

func (m *EncodeRunner) Encode(ctx context.Context, req ports.EncodeRequest) error {
	m.EncodeCalls = append(m.EncodeCalls, req)
	if m.EncodeFunc != nil {
		return m.EncodeFunc(ctx, req)
	}
	return nil
}

// Qualities returns the quality of each recorded call, in order.
func (m *EncodeRunner) Qualities() []int {
	qs := make([]int, len(m.EncodeCalls))
	for i, call := range m.EncodeCalls {
		qs[i] = call.Quality
	}
	return qs
}

var _ ports.EncodeRunner = (*EncodeRunner)(nil)
