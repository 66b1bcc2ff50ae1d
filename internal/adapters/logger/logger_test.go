package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/humotica/kit/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("registry loaded")
	assert.Contains(t, buf.String(), "registry loaded")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("registry refresh failed")
	assert.Contains(t, buf.String(), "registry refresh failed")
}

func TestLogger_Error(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(errors.New("something broke"))
		assert.Contains(t, buf.String(), "Error: something broke")
	})

	t.Run("nil error logs nothing", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(nil)
		assert.Empty(t, buf.String())
	})

	t.Run("wrapped chain renders a caused-by tree", func(t *testing.T) {
		lg, buf := newTestLogger(t)

		root := errors.New("connection refused")
		wrapped := zerr.Wrap(root, "could not fetch registry document")
		lg.Error(zerr.Wrap(wrapped, "registry update failed"))

		out := buf.String()
		require.Contains(t, out, "Error: registry update failed")
		assert.Contains(t, out, "Caused by:")
		assert.Contains(t, out, "→ could not fetch registry document")
		assert.Contains(t, out, "→ connection refused")
	})
}
