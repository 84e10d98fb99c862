package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "test message arg")
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")
	Info("info message")
	Section("Quiet")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Extract")

	assert.Contains(t, buf.String(), "=== Extract ===")
}

func TestWarn_AlwaysEmitted(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Warn("suppressed enum for %s", "RefMsgType")

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "suppressed enum for RefMsgType")
}

func TestReplace(t *testing.T) {
	defer reset()

	core, observed := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))

	Debug("one")
	Warn("two %d", 2)

	// verbosity changes do not detach the replacement
	SetVerbose(true)
	Info("three")

	entries := observed.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "two 2", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	restore()

	var buf bytes.Buffer
	SetOutput(&buf)
	Warn("after restore")
	assert.Equal(t, 3, observed.Len())
	assert.Contains(t, buf.String(), "after restore")
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
