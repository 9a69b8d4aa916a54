package output_test

import (
	"bytes"
	"testing"

	"github.com/Midhun-Kanadan/pdf-status/internal/ui/output"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR should force Ascii profile")

	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}

func TestPlain(t *testing.T) {
	var buf bytes.Buffer
	out := output.Plain(&buf)

	_, _ = out.WriteString(out.String("plain").Foreground(termenv.RGBColor("#FF0000")).String())
	assert.Equal(t, "plain", buf.String())
}
