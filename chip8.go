// Package main implements a CHIP-8 virtual machine with window, terminal and
// headless frontends.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"meszarosd.hu/chip8vm/internal/chip8"
	"meszarosd.hu/chip8vm/internal/config"
	"meszarosd.hu/chip8vm/internal/disasm"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := ParseFlags(os.Args[1:])
	if err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "%s\n\n", usageErr.Error())
			usageErr.ShowUsage(os.Stderr)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(config.Logging{
		Debug: opts.Debug,
		Trace: opts.Trace,
		Quiet: opts.Quiet,
	})
	if !opts.Quiet && !opts.Disasm {
		logger.Info("chip8", log.String("version", buildinfo.Version(version, commit, date)))
	}

	if err := run(ctx, opts, logger); err != nil {
		logger.Error("Execution failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, opts Options, logger *log.Logger) (rerr error) {
	rom, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading file '%s': %w", opts.Input, err)
	}

	if opts.Disasm {
		return disasm.Listing(os.Stdout, rom)
	}

	quirks, err := opts.quirks()
	if err != nil {
		return err
	}
	vm := chip8.New(chip8.Config{
		Quirks: quirks,
		Seed:   opts.Seed,
	})
	if err := vm.LoadROM(rom); err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}
	logger.Debug("Program loaded",
		log.String("file", opts.Input),
		log.Int("size", len(rom)),
		log.String("quirks", opts.Quirks))

	if opts.StatsView {
		launchStatsView(logger)
	}

	var speakers multiSpeaker
	if opts.Wav != "" {
		rec := newWavRecorder(opts.Wav)
		speakers = append(speakers, rec)
		defer func() {
			if err := rec.Close(); err != nil && rerr == nil {
				rerr = err
			}
		}()
	}

	cfg := RunnerConfig{
		CyclesPerFrame: opts.Cycles,
		IgnoreFaults:   opts.IgnoreFaults,
		Trace:          opts.Trace,
		Speaker:        speakers,
	}

	switch opts.Frontend {
	case frontendHeadless:
		clock := newFrameClock()
		cfg.Now = clock.Now
		runner := NewRunner(vm, logger, cfg)
		return RunHeadless(ctx, runner, clock, opts.Frames, os.Stdout)

	case frontendTerminal:
		return RunTerminal(ctx, NewRunner(vm, logger, cfg))

	default:
		b, err := newBeeper()
		if err != nil {
			logger.Warn("Sound disabled", log.Err(err))
		} else {
			cfg.Speaker = append(speakers, b)
		}
		title := fmt.Sprintf("chip8 - %s", filepath.Base(opts.Input))
		return RunDisplay(ctx, NewRunner(vm, logger, cfg), title, opts.Scale)
	}
}
