package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"meszarosd.hu/chip8vm/internal/chip8"
)

const (
	frontendWindow   = "window"
	frontendTerminal = "term"
	frontendHeadless = "headless"
)

// Options contains the program options.
type Options struct {
	Input    string
	Frontend string
	Scale    int
	Cycles   int
	Frames   int
	Seed     int64

	Quirks      string
	ShiftVY     bool
	StrictStack bool
	WrapSprites bool

	Wav          string
	StatsView    bool
	Disasm       bool
	IgnoreFaults bool
	Trace        bool
	Debug        bool
	Quiet        bool
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "invalid arguments"
	}
	return e.msg
}

func (e *UsageError) ShowUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: chip8 [options] <rom file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(w)
		e.flags.PrintDefaults()
	}
	fmt.Fprintln(w)
}

// ParseFlags parses the command line arguments, without the program name.
func ParseFlags(args []string) (Options, error) {
	flags := flag.NewFlagSet("chip8", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts Options
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	rest := flags.Args()
	if len(rest) == 0 {
		return opts, &UsageError{flags: flags, msg: "missing rom file"}
	}
	if len(rest) > 1 {
		return opts, &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("Potential argument %s found after rom file, please pass the rom file as last argument", rest[1]),
		}
	}
	opts.Input = rest[0]

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *Options) {
	flags.StringVar(&opts.Frontend, "frontend", frontendWindow, "user interface to run the program in (window/term/headless)")
	flags.IntVar(&opts.Scale, "scale", 10, "window pixels per display pixel")
	flags.IntVar(&opts.Cycles, "cycles", 10, "instructions executed per 60Hz frame")
	flags.IntVar(&opts.Frames, "frames", 600, "number of frames to run with the headless frontend")
	flags.Int64Var(&opts.Seed, "seed", 0, "seed for the random number instruction, 0 seeds from the clock")
	flags.StringVar(&opts.Quirks, "quirks", "default", "interpreter behaviour preset (default/cosmac)")
	flags.BoolVar(&opts.ShiftVY, "shift-vy", false, "shift instructions copy VY into VX first")
	flags.BoolVar(&opts.StrictStack, "strict-stack", false, "halt on call stack overflow instead of wrapping")
	flags.BoolVar(&opts.WrapSprites, "wrap-sprites", false, "wrap sprites around the display edges instead of clipping")
	flags.StringVar(&opts.Wav, "wav", "", "record the sound output to the given .wav file")
	flags.BoolVar(&opts.StatsView, "statsview", false, "serve runtime statistics at "+statsAddress+statsURL)
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly of the rom file and exit")
	flags.BoolVar(&opts.IgnoreFaults, "ignore-faults", false, "keep showing the last frame after the program faults")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *Options) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	switch opts.Frontend {
	case frontendWindow, frontendTerminal, frontendHeadless:
	default:
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join([]string{frontendWindow, frontendTerminal, frontendHeadless}, ", "))
	}

	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d", opts.Scale)
	}
	if opts.Cycles < 1 {
		return fmt.Errorf("invalid number of cycles per frame %d", opts.Cycles)
	}
	if _, err := opts.quirks(); err != nil {
		return err
	}
	return nil
}

// quirks resolves the preset and applies the individual overrides.
func (o Options) quirks() (chip8.Quirks, error) {
	q, err := chip8.QuirksByName(o.Quirks)
	if err != nil {
		return q, err
	}
	if o.ShiftVY {
		q.ShiftUsesVY = true
	}
	if o.StrictStack {
		q.StrictStack = true
	}
	if o.WrapSprites {
		q.WrapSprites = true
	}
	return q, nil
}
