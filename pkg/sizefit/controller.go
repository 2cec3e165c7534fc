// Package sizefit implements the size-constrained transcoding loop: repeated
// encoder invocations at varying quality until the output fits a byte budget
// or the quality floor is reached.
package sizefit

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/user/badgemaker/pkg/badge"
	"github.com/user/badgemaker/pkg/ports"
)

const (
	// FloorQuality is the minimum quality the search will attempt before
	// giving up on the byte budget.
	FloorQuality = 1

	// maxSearchAttempts caps the interior binary-search encodes. The two
	// probe encodes (requested quality, floor quality) are not counted.
	maxSearchAttempts = 12

	// Budgets are binary megabytes: sizeLimitMB * 1,048,576 bytes.
	bytesPerMB = 1 << 20
)

// Controller drives the quality search. Safe to reuse across jobs, but the
// orchestrator serializes runs; no two encoder processes for the same job
// ever run concurrently.
type Controller struct {
	runner ports.EncodeRunner
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a size-fit controller around an encode runner.
func New(runner ports.EncodeRunner, fs ports.FileSystem, logger ports.Logger) *Controller {
	return &Controller{
		runner: runner,
		fs:     fs,
		logger: logger.WithComponent("sizefit"),
	}
}

// Run executes one job. Without a size limit it performs a single encode at
// the configured quality. With a limit it searches:
//
//  1. Encode at the requested quality; if the result fits, done.
//  2. Encode at FloorQuality; if even that is over budget, commit the floor
//     artifact and report LimitSatisfied=false.
//  3. Binary-search the interior qualities, keeping the highest quality
//     whose output fits, bounded by maxSearchAttempts encodes.
//
// Every attempt writes to a hidden temp sibling of DestPath; losing attempts
// are deleted as soon as they are ruled out and only the winner is renamed
// to DestPath. Cancellation kills the in-flight encoder, discards all temps
// and returns badge.ErrCancelled with DestPath untouched.
func (c *Controller) Run(ctx context.Context, job badge.EncodeJob) (badge.Result, error) {
	if err := job.Settings.Validate(); err != nil {
		return badge.Result{}, err
	}
	filter, err := badge.BuildFilterGraph(job.Crop, job.Settings.OutputSide, job.Settings.FrameRate)
	if err != nil {
		return badge.Result{}, err
	}

	r := &run{c: c, job: job, filter: filter, temps: make(map[string]struct{})}
	defer r.cleanup()

	if job.Settings.SizeLimitMB <= 0 {
		att, err := r.encode(ctx, job.Settings.Quality)
		if err != nil {
			return badge.Result{}, err
		}
		return r.commit(att, true)
	}
	return r.search(ctx)
}

// attempt is one produced encode: its quality, temp path and byte size.
type attempt struct {
	quality int
	path    string
	size    int64
}

// run tracks the temp files of a single job so every exit path can discard
// whatever was not committed.
type run struct {
	c        *Controller
	job      badge.EncodeJob
	filter   string
	attempts int
	temps    map[string]struct{}
}

func (r *run) search(ctx context.Context) (badge.Result, error) {
	target := int64(r.job.Settings.SizeLimitMB) * bytesPerMB
	qmax := r.job.Settings.Quality
	if qmax < FloorQuality {
		qmax = FloorQuality
	}

	r.c.logger.Info("Size limit %d MB, trying quality %d", r.job.Settings.SizeLimitMB, qmax)
	att, err := r.encode(ctx, qmax)
	if err != nil {
		return badge.Result{}, err
	}
	if att.size <= target {
		return r.commit(att, true)
	}
	r.discard(att)

	r.c.logger.Info("Over budget, trying floor quality %d", FloorQuality)
	best, err := r.encode(ctx, FloorQuality)
	if err != nil {
		return badge.Result{}, err
	}
	if best.size > target {
		r.c.logger.Warn("Cannot reach %d MB even at floor quality, keeping the floor output (%d bytes)",
			r.job.Settings.SizeLimitMB, best.size)
		return r.commit(best, false)
	}

	// Both endpoints are known: qmax is over budget, the floor fits.
	// Bisect the interior for the highest quality that still fits.
	low, high := FloorQuality+1, qmax-1
	for searched := 0; low <= high && searched < maxSearchAttempts; searched++ {
		q := (low + high) / 2
		r.c.logger.Info("Search attempt %d: quality %d", searched+1, q)
		att, err := r.encode(ctx, q)
		if err != nil {
			return badge.Result{}, err
		}
		if att.size <= target {
			r.discard(best)
			best = att
			low = q + 1
		} else {
			r.discard(att)
			high = q - 1
		}
	}
	return r.commit(best, true)
}

// encode runs one encoder invocation at the given quality into a fresh temp
// path and inspects the produced size.
func (r *run) encode(ctx context.Context, quality int) (attempt, error) {
	// Cancellation is also honored mid-encode by the runner; this check
	// covers the iteration boundary.
	if ctx.Err() != nil {
		return attempt{}, badge.ErrCancelled
	}

	temp := tempAttemptPath(r.job.DestPath)
	r.temps[temp] = struct{}{}
	r.attempts++
	r.c.logger.Debug("Attempt %d: encoding at quality %d", r.attempts, quality)

	err := r.c.runner.Encode(ctx, ports.EncodeRequest{
		SourcePath:  r.job.SourcePath,
		FilterGraph: r.filter,
		Quality:     quality,
		DestPath:    temp,
	})
	if err != nil {
		// The runner may have left a partial file behind.
		r.discardPath(temp)
		return attempt{}, err
	}

	size, err := r.c.fs.FileSize(temp)
	if err != nil {
		r.discardPath(temp)
		return attempt{}, fmt.Errorf("inspect attempt: %w", err)
	}
	r.c.logger.Debug("Attempt %d: quality %d produced %d bytes", r.attempts, quality, size)
	return attempt{quality: quality, path: temp, size: size}, nil
}

// commit renames the winning attempt onto the destination. Nothing is ever
// written at DestPath except this rename.
func (r *run) commit(att attempt, limitSatisfied bool) (badge.Result, error) {
	if err := r.c.fs.Rename(att.path, r.job.DestPath); err != nil {
		return badge.Result{}, fmt.Errorf("commit output: %w", err)
	}
	delete(r.temps, att.path)
	return badge.Result{
		DestPath:       r.job.DestPath,
		Quality:        att.quality,
		ByteSize:       att.size,
		Attempts:       r.attempts,
		LimitSatisfied: limitSatisfied,
	}, nil
}

func (r *run) discard(att attempt) {
	r.discardPath(att.path)
}

func (r *run) discardPath(path string) {
	_ = r.c.fs.Remove(path)
	delete(r.temps, path)
}

// cleanup removes whatever temp attempts survived to the end of the run.
// On success the set is already empty; on failure or cancellation this is
// what guarantees the destination directory is left unchanged.
func (r *run) cleanup() {
	for path := range r.temps {
		_ = r.c.fs.Remove(path)
	}
}

// tempAttemptPath builds a hidden sibling of dest for one attempt, e.g.
// ".clip.tmp_3f2a….webp" next to "clip.webp".
func tempAttemptPath(dest string) string {
	ext := filepath.Ext(dest)
	stem := strings.TrimSuffix(filepath.Base(dest), ext)
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return filepath.Join(filepath.Dir(dest), "."+stem+".tmp_"+token+ext)
}
