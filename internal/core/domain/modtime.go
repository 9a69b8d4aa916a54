package domain

import (
	"bytes"
	"math"
	"strconv"
	"time"

	"go.trai.ch/zerr"
)

// ModTime is a file modification time in nanoseconds since the Unix epoch.
type ModTime int64

// ModTimeOf converts a time.Time into a ModTime.
func ModTimeOf(t time.Time) ModTime {
	return ModTime(t.UnixNano())
}

// UnmarshalJSON accepts integer nanoseconds, and also floating point seconds
// as written by snapshots that predate nanosecond timestamps.
func (m *ModTime) UnmarshalJSON(data []byte) error {
	raw := string(bytes.TrimSpace(data))
	if raw == "null" {
		return nil
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*m = ModTime(n)
		return nil
	}

	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return zerr.With(ErrInvalidModTime, "value", raw)
	}
	*m = ModTime(math.Round(seconds * float64(time.Second)))
	return nil
}
