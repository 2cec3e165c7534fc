// Package orchestrator coordinates a badge-making run: probe, geometry
// validation, destination gating and the size-fit encode loop.
package orchestrator

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/user/badgemaker/pkg/badge"
	"github.com/user/badgemaker/pkg/ports"
	"github.com/user/badgemaker/pkg/sizefit"
)

// ConfirmOverwriteFunc is supplied by the interactive surface. It is called
// at most once per run, only when the destination already exists; returning
// false stops the run before any encoder invocation.
type ConfirmOverwriteFunc func(destPath string) bool

// Controller runs badge jobs. At most one job may be active at a time;
// concurrent Run calls are rejected with badge.ErrBusy, never queued.
type Controller struct {
	prober ports.VideoProber
	fit    *sizefit.Controller
	fs     ports.FileSystem
	logger ports.Logger
	handle runHandle
}

// New creates a Controller around the external-tool adapters.
func New(prober ports.VideoProber, runner ports.EncodeRunner, fs ports.FileSystem, logger ports.Logger) *Controller {
	return &Controller{
		prober: prober,
		fit:    sizefit.New(runner, fs, logger),
		fs:     fs,
		logger: logger,
	}
}

// Busy reports whether a run is currently active.
func (c *Controller) Busy() bool {
	return c.handle.active.Load()
}

// Run executes one job to completion, failure or cancellation.
//
// Flow: acquire the run handle → probe source dimensions → validate crop and
// settings → gate the destination (overwrite confirmation) → size-fit loop.
// All fatal errors leave DestPath untouched.
func (c *Controller) Run(ctx context.Context, job badge.EncodeJob, confirm ConfirmOverwriteFunc) (badge.Result, error) {
	if !c.handle.acquire() {
		return badge.Result{}, badge.ErrBusy
	}
	defer c.handle.release()

	c.logger.Info("Probing %s", job.SourcePath)
	info, err := c.prober.Probe(ctx, job.SourcePath)
	if err != nil {
		c.logger.Error("Failed to probe source: %s", err)
		return badge.Result{}, err
	}
	c.logger.Debug("Source is %dx%d", info.Width, info.Height)

	if err := job.Settings.Validate(); err != nil {
		return badge.Result{}, err
	}
	if err := job.Crop.Validate(info.Width, info.Height); err != nil {
		c.logger.Error("Invalid crop region: %s", err)
		return badge.Result{}, err
	}

	exists, err := badge.CheckOverwrite(c.fs, job.DestPath)
	if err != nil {
		return badge.Result{}, err
	}
	if exists {
		if confirm == nil || !confirm(job.DestPath) {
			c.logger.Warn("Destination %s exists, not overwriting", job.DestPath)
			return badge.Result{}, badge.ErrOverwriteDeclined
		}
		c.logger.Debug("Overwrite of %s confirmed", job.DestPath)
	}

	c.logger.Info("Making badge (quality %d, %dpx, %d fps)",
		job.Settings.Quality, job.Settings.ResolveOutputSide(job.Crop), job.Settings.FrameRate)
	result, err := c.fit.Run(ctx, job)
	if err != nil {
		if errors.Is(err, badge.ErrCancelled) {
			c.logger.Warn("Job cancelled")
		} else {
			c.logger.Error("Encoding failed: %s", err)
		}
		return badge.Result{}, err
	}

	if !result.LimitSatisfied {
		c.logger.Warn("Size limit %d MB not reachable; wrote floor-quality output (%d bytes). Consider a smaller size or frame rate",
			job.Settings.SizeLimitMB, result.ByteSize)
	}
	c.logger.Info("Badge written to %s (quality %d, %d bytes, %d attempts)",
		result.DestPath, result.Quality, result.ByteSize, result.Attempts)
	return result, nil
}

// runHandle is the process-wide token for the single in-flight job. The
// concurrency policy is reject-if-busy: serialization happens here, not with
// locks inside the loop.
type runHandle struct {
	active atomic.Bool
}

func (h *runHandle) acquire() bool {
	return h.active.CompareAndSwap(false, true)
}

func (h *runHandle) release() {
	h.active.Store(false)
}
