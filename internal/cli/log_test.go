package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, LogDebug)

	ctx := withLogger(context.Background(), l)
	assert.Same(t, l, loggerFromContext(ctx))
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, LogDebug))
	p.done("reshaped", "elements", 5)

	out := buf.String()
	assert.Contains(t, out, "reshaped")
	assert.Contains(t, out, "elements=5")
	assert.Contains(t, out, "elapsed=")
}

func TestProgressDone_InfoLevelIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, LogInfo))
	p.done("reshaped")

	assert.Empty(t, buf.String())
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&bytes.Buffer{}, &bytes.Buffer{}, &buf, LogInfo)

	c.Logger.Debug("hidden")
	assert.Empty(t, buf.String())

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
