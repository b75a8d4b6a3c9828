package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Level(true))
	assert.Equal(t, slog.LevelWarn, Level(false))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "verbose shows debug records", verbose: true, wantDebug: true},
		{name: "quiet hides debug records", verbose: false, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, tt.verbose)

			logger.Debug("resolved snapshot", "route", "grades")
			logger.Warn("config not loaded", "path", ".routereport.yaml")

			out := buf.String()
			assert.Contains(t, out, "config not loaded")
			assert.Contains(t, out, "path=.routereport.yaml")
			if tt.wantDebug {
				assert.Contains(t, out, "route=grades")
			} else {
				assert.NotContains(t, out, "resolved snapshot")
			}
		})
	}
}
