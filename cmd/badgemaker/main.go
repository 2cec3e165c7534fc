// Package main provides the CLI entry point for badgemaker.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/badgemaker/pkg/adapters/ffmpegpath"
	"github.com/user/badgemaker/pkg/adapters/ffprobeclient"
	"github.com/user/badgemaker/pkg/adapters/logger"
	"github.com/user/badgemaker/pkg/adapters/osfilesystem"
	"github.com/user/badgemaker/pkg/adapters/webpencoder"
	"github.com/user/badgemaker/pkg/badge"
	"github.com/user/badgemaker/pkg/config"
	"github.com/user/badgemaker/pkg/orchestrator"
	"github.com/user/badgemaker/pkg/ports"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Make    MakeCmd    `cmd:"" help:"Make a circular animated WebP badge from a video crop."`
	Probe   ProbeCmd   `cmd:"" help:"Print the source video dimensions as JSON."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// MakeCmd defines the make subcommand.
type MakeCmd struct {
	// Required argument
	Source string `arg:"" type:"existingfile" help:"Input video file."`

	// Crop region in source pixels (default: the centered largest square)
	CropX    *int `help:"Crop square left offset in source pixels."`
	CropY    *int `help:"Crop square top offset in source pixels."`
	CropSide *int `help:"Crop square side length in source pixels."`

	// Output
	OutputDir  string `short:"d" help:"Save directory (default: the source's directory)."`
	OutputName string `short:"o" help:"Output file name; .webp is appended if missing (default: source stem)."`
	Overwrite  bool   `short:"f" help:"Overwrite the destination if it already exists."`

	// Encoding options (override the settings file)
	Quality   *int    `short:"q" help:"WebP quality 1-100 (default: 100)."`
	Size      *string `short:"s" enum:"original,1080,800,600" help:"Output side length (default: 1080)."`
	FrameRate *int    `short:"r" help:"Output frame rate: 60, 30, 24 or 15 (default: 30)."`
	LimitMB   *int    `short:"m" help:"Target output size in megabytes; enables the quality search."`

	// Tools
	FFmpegPath  string `help:"Path to ffmpeg (falls back to FFMPEG_PATH env, bundled ffmpeg_bin, then PATH)."`
	FFprobePath string `help:"Path to ffprobe (falls back to FFPROBE_PATH env, bundled ffmpeg_bin, then PATH)."`

	// Settings file
	Config string `type:"existingfile" help:"YAML settings file."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// ProbeCmd defines the probe subcommand.
type ProbeCmd struct {
	Source      string `arg:"" type:"existingfile" help:"Input video file."`
	FFprobePath string `help:"Path to ffprobe (falls back to FFPROBE_PATH env, bundled ffmpeg_bin, then PATH)."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("badgemaker"),
		kong.Description("Turn a square video crop into a circular, looping animated WebP badge."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the make command.
func (cmd *MakeCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}
	settings, err := cfg.ToSettings()
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Resolve tools before anything else; a missing tool fails the job
	// before processing starts.
	ffmpegPath, err := ffmpegpath.Find("ffmpeg", cfg.FFmpegPath)
	if err != nil {
		return err
	}
	ffprobePath, err := ffmpegpath.Find("ffprobe", cfg.FFprobePath)
	if err != nil {
		return err
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Interrupted, cancelling...")
		cancel()
	}()

	// Create adapters
	fs := osfilesystem.New()
	prober := ffprobeclient.New(ffprobePath)
	runner := webpencoder.New(ffmpegPath)

	crop, err := cmd.resolveCrop(ctx, prober)
	if err != nil {
		return err
	}

	saveDir := cmd.OutputDir
	if saveDir == "" {
		saveDir = cfg.SaveDir
	}
	if saveDir == "" {
		saveDir = filepath.Dir(cmd.Source)
	}
	if err := fs.MkdirAll(saveDir); err != nil {
		return fmt.Errorf("create save directory: %w", err)
	}
	name := cmd.OutputName
	if name == "" {
		name = cfg.OutputName
	}
	if name == "" {
		name = badge.DefaultFileName(cmd.Source)
	}

	job := badge.EncodeJob{
		Crop:       crop,
		Settings:   settings,
		SourcePath: cmd.Source,
		DestPath:   badge.ResolveDest(saveDir, name),
	}

	ctrl := orchestrator.New(prober, runner, fs, log)
	confirm := func(destPath string) bool { return cmd.Overwrite }

	_, err = ctrl.Run(ctx, job, confirm)
	if errors.Is(err, badge.ErrOverwriteDeclined) {
		return errors.New(l10n.F("%s already exists; pass --overwrite to replace it", job.DestPath))
	}
	return err
}

// buildConfig creates a Config from the settings file and CLI overrides.
func (cmd *MakeCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("load settings file: %w", err)
		}
		cfg = loaded
	}

	if cmd.Quality != nil {
		cfg.Quality = *cmd.Quality
	}
	if cmd.Size != nil {
		cfg.OutputSide = *cmd.Size
	}
	if cmd.FrameRate != nil {
		cfg.FrameRate = *cmd.FrameRate
	}
	if cmd.LimitMB != nil {
		cfg.LimitSize = true
		cfg.LimitSizeMB = *cmd.LimitMB
	}
	if cmd.FFmpegPath != "" {
		cfg.FFmpegPath = cmd.FFmpegPath
	}
	if cmd.FFprobePath != "" {
		cfg.FFprobePath = cmd.FFprobePath
	}
	return cfg, nil
}

// resolveCrop builds the crop region from flags. When any coordinate is
// omitted it starts from the centered largest square, the same initial
// placement an interactive crop box would get.
func (cmd *MakeCmd) resolveCrop(ctx context.Context, prober ports.VideoProber) (badge.CropRegion, error) {
	if cmd.CropX != nil && cmd.CropY != nil && cmd.CropSide != nil {
		return badge.CropRegion{X: *cmd.CropX, Y: *cmd.CropY, Side: *cmd.CropSide}, nil
	}

	info, err := prober.Probe(ctx, cmd.Source)
	if err != nil {
		return badge.CropRegion{}, err
	}
	crop := badge.CenteredSquare(info.Width, info.Height)
	if cmd.CropX != nil {
		crop.X = *cmd.CropX
	}
	if cmd.CropY != nil {
		crop.Y = *cmd.CropY
	}
	if cmd.CropSide != nil {
		crop.Side = *cmd.CropSide
	}
	return crop, nil
}

// Run executes the probe command.
func (cmd *ProbeCmd) Run() error {
	ffprobePath, err := ffmpegpath.Find("ffprobe", cmd.FFprobePath)
	if err != nil {
		return err
	}

	info, err := ffprobeclient.New(ffprobePath).Probe(context.Background(), cmd.Source)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(map[string]int{"width": info.Width, "height": info.Height})
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("badgemaker version %s", version))
	return nil
}
