package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Midhun-Kanadan/pdf-status/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestLogger_Pretty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv(logger.EnvFormat, "")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Info("3 citation files reused")
	l.Warn("skipping conf/broken.bib")
	l.Error(zerr.With(zerr.Wrap(errors.New("no space left on device"), "failed to save snapshot"), "path", "state.json"))
	l.Error(nil)

	assert.Equal(t,
		"3 citation files reused\n"+
			"! skipping conf/broken.bib\n"+
			"✗ Error: failed to save snapshot\n"+
			"       path: state.json\n"+
			"\n"+
			"  Caused by:\n"+
			"    → no space left on device\n",
		buf.String())
}

func TestLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	l.SetJSON(true)

	l.Warn("partition directory missing")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "partition directory missing", record["msg"])
}

func TestLogger_JSONFromEnvironment(t *testing.T) {
	t.Setenv(logger.EnvFormat, "JSON")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_SetOutputNil(t *testing.T) {
	l := logger.New()
	l.SetOutput(nil)
	l.SetJSON(false)
}
