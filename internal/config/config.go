// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// Logging selects the log verbosity from the command line flags.
type Logging struct {
	Debug bool // runner state changes and program details
	Trace bool // every executed instruction, implies Debug
	Quiet bool // errors only
}

// CreateLogger creates a logger for the selected verbosity. Debug and Trace
// take precedence over Quiet.
func CreateLogger(l Logging) *log.Logger {
	return log.NewWithConfig(loggerConfig(l))
}

func loggerConfig(l Logging) log.Config {
	cfg := log.DefaultConfig()
	switch {
	case l.Debug || l.Trace:
		cfg.Level = log.DebugLevel
	case l.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return cfg
}
