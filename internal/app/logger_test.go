package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		level, format string
		wantDebug     bool
		wantPrefix    string
	}{
		{level: "debug", format: "text", wantDebug: true, wantPrefix: "time="},
		{level: "info", format: "json", wantPrefix: "{"},
		{level: "bogus", format: "text", wantPrefix: "time="},
	}

	for _, tc := range testCases {
		t.Run(tc.level+"/"+tc.format, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			var buf bytes.Buffer
			logger := newLogger(tc.level, tc.format, &buf)

			// --- Act ---
			logger.Debug("debug line")
			logger.Info("info line")

			// --- Assert ---
			out := buf.String()
			assert.Equal(t, tc.wantDebug, strings.Contains(out, "debug line"))
			assert.Contains(t, out, "info line")
			assert.True(t, strings.HasPrefix(out, tc.wantPrefix), out)
		})
	}
}
