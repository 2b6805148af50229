//go:build !js
// +build !js

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	for _, level := range []Level{LevelDebug, LevelLog, LevelWarn, LevelError} {
		t.Run(level.String(), func(t *testing.T) {
			assert.Equal(t, level, ParseLevel(level.String()))
			assert.True(t, level.Valid())
		})
	}
	assert.False(t, ParseLevel("verbose").Valid())
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	oldOutput, oldLevel := output, CurrentLevel()
	output = &buf
	defer func() {
		output = oldOutput
		logLevel = oldLevel
	}()
	t.Setenv("DEBUG", "true")

	SetLevel(LevelWarn)
	SetLevel(-1)
	assert.Equal(t, LevelWarn, CurrentLevel(), "invalid levels are ignored")

	assert.Zero(t, Printf("hidden %d", 1))
	assert.Zero(t, buf.Len())

	assert.NotZero(t, Warnf("shown %d", 2))
	assert.Contains(t, buf.String(), "warn: ")
	assert.Contains(t, buf.String(), "log_test.go:")
	assert.Contains(t, buf.String(), "TestLevelFilter() - shown 2")
}
