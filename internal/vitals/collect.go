package vitals

import (
	"math"
	"strconv"
	"strings"
)

// Source yields the raw text currently entered for a field.
type Source interface {
	Value(f Field) string
}

// MapSource is a Source backed by a map, used by the CLI and tests.
type MapSource map[Field]string

// Value returns the raw text for f, or "" if unset.
func (m MapSource) Value(f Field) string {
	return m[f]
}

// Collect reads every field from src and parses it as a float.
// A field that does not parse is recorded as NaN; rejecting it is
// left to Validate.
func Collect(src Source) Request {
	var req Request
	for _, f := range Fields {
		req.Set(f, parse(src.Value(f)))
	}
	return req
}

func parse(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
