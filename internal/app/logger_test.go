package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	l.Infof("compositor", "layer %s done", "eyes")
	l.Errorf("app", "save failed: %v", "disk full")

	assert.Equal(t,
		"2026-03-01T12:00:00Z [INFO] compositor: layer eyes done\n"+
			"2026-03-01T12:00:00Z [ERROR] app: save failed: disk full\n",
		buf.String())
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	assert.NotPanics(t, func() {
		l.Infof("x", "%d", 1)
		l.Errorf("x", "%d", 2)
	})
}
