package config

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name    string
		logging Logging
		debug   bool
		quiet   bool
	}{
		{"default", Logging{}, false, false},
		{"debug", Logging{Debug: true}, true, false},
		{"trace implies debug", Logging{Trace: true}, true, false},
		{"quiet", Logging{Quiet: true}, false, true},
		{"debug wins over quiet", Logging{Debug: true, Quiet: true}, true, false},
		{"trace wins over quiet", Logging{Trace: true, Quiet: true}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, CreateLogger(tt.logging))

			cfg := loggerConfig(tt.logging)
			assert.Equal(t, tt.debug, cfg.Level == log.DebugLevel)
			assert.Equal(t, tt.quiet, cfg.Level == log.ErrorLevel)
		})
	}
}
