package transform

import (
	"net/url"
	"strconv"
	"time"
)

// The built-in constructors return the Transform interface rather than
// the implementing struct so call sites of the generic bind functions
// can infer both type arguments from the transform alone.

// EpochSeconds converts between a JSON number holding Unix seconds and
// a time.Time in UTC. Sub-second precision is truncated on decode, so
// the round trip is lossy below one second.
func EpochSeconds() Transform[float64, time.Time] {
	return epochSeconds{}
}

type epochSeconds struct{}

func (epochSeconds) Decode(raw float64) (time.Time, bool) {
	return time.Unix(int64(raw), 0).UTC(), true
}

func (epochSeconds) Encode(val time.Time) (float64, bool) {
	if val.IsZero() {
		return 0, false
	}

	return float64(val.Unix()), true
}

// ISO8601 converts between a timestamp string and a time.Time. An
// empty layout means RFC 3339. Empty or unparsable input produces no
// value, as does encoding the zero time.
func ISO8601(layout string) Transform[string, time.Time] {
	if layout == "" {
		layout = time.RFC3339
	}

	return iso8601{layout: layout}
}

type iso8601 struct {
	layout string
}

func (t iso8601) Decode(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	parsed, err := time.Parse(t.layout, raw)
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

func (t iso8601) Encode(val time.Time) (string, bool) {
	if val.IsZero() {
		return "", false
	}

	return val.Format(t.layout), true
}

// AbsoluteURL converts between a string holding an absolute URL and a
// url.URL. Relative or unparsable strings produce no value.
func AbsoluteURL() Transform[string, url.URL] {
	return absoluteURL{}
}

type absoluteURL struct{}

func (absoluteURL) Decode(raw string) (url.URL, bool) {
	parsed, err := url.Parse(raw)
	if err != nil || !parsed.IsAbs() {
		return url.URL{}, false
	}

	return *parsed, true
}

func (absoluteURL) Encode(val url.URL) (string, bool) {
	s := val.String()
	return s, s != ""
}

// StringInt converts between a decimal string ("42") and an int.
func StringInt() Transform[string, int] {
	return stringInt{}
}

type stringInt struct{}

func (stringInt) Decode(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return n, true
}

func (stringInt) Encode(val int) (string, bool) {
	return strconv.Itoa(val), true
}
