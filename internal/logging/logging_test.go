package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/stringart/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestLogger_SilentByDefault(t *testing.T) {
	logging.Set(nil)
	assert.False(t, logging.Logger().Enabled(context.Background(), slog.LevelError), "default logger must be disabled")
}

func TestSet_RoutesRecords(t *testing.T) {
	var buf bytes.Buffer
	logging.Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer logging.Set(nil)

	logging.For("greedy").Info("run finished", "lines", 3)

	out := buf.String()
	assert.Contains(t, out, "component=greedy")
	assert.Contains(t, out, "lines=3")
}
