package vitals

import (
	"fmt"
	"math"
)

// ValidationError reports the first field that is not a usable number.
type ValidationError struct {
	Field Field
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Please enter a valid number for %q.", string(e.Field))
}

// Validate checks fields in declaration order and returns a
// *ValidationError naming the first one that is NaN or infinite.
func Validate(req Request) error {
	for _, f := range Fields {
		v := req.Get(f)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Field: f}
		}
	}
	return nil
}
