package predict

import (
	"encoding/json"
	"fmt"
)

// ErrTransport indicates the call could not complete or its body could
// not be read as JSON.
type ErrTransport struct {
	Err error
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("prediction transport error: %v", e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrService indicates the service answered with a non-2xx status.
type ErrService struct {
	StatusCode int
	Message    string
}

func (e *ErrService) Error() string {
	return fmt.Sprintf("prediction service returned %d: %s", e.StatusCode, e.Message)
}

// ErrMalformedResponse indicates a 2xx body that does not match the
// expected response shape.
type ErrMalformedResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed prediction response: %v", e.Err)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.Err }
