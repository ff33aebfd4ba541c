package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"meszarosd.hu/chip8vm/internal/chip8"
)

// frameClock is a synthetic clock that advances by one timer period per
// frame, making headless runs independent of the host speed.
type frameClock struct {
	now time.Time
}

func newFrameClock() *frameClock {
	return &frameClock{
		now: time.Unix(0, 0),
	}
}

func (c *frameClock) Now() time.Time {
	return c.now
}

func (c *frameClock) Advance() {
	c.now = c.now.Add(time.Second / chip8.TimerFrequency)
}

// RunHeadless runs the given number of frames without input as fast as
// possible and prints the final display contents. The runner has to use the
// clock for its timer.
func RunHeadless(ctx context.Context, runner *Runner, clock *frameClock, frames int, out io.Writer) error {
	for range frames {
		if err := ctx.Err(); err != nil {
			break
		}
		clock.Advance()
		if err := runner.Frame(); err != nil {
			return err
		}
		if runner.VM().Status() == chip8.Halted {
			break
		}
	}

	if _, err := fmt.Fprint(out, runner.VM().Display.Frame().String()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
