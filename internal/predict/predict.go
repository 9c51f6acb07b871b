// Package predict talks to the remote risk-prediction service.
package predict

import (
	"context"

	"github.com/abhisek/heartrisk/internal/vitals"
)

// Predictor is the core abstraction for the prediction service.
// Predict never returns an error: every failure is folded into a Failure
// outcome so callers branch on a single value.
type Predictor interface {
	Predict(ctx context.Context, req vitals.Request) Outcome

	// Endpoint identifies where requests are sent, for logging.
	Endpoint() string
}

// Response is the body of a successful prediction.
type Response struct {
	RiskCategory string   `json:"risk_category"`
	Probability  float64  `json:"probability"`
	Tips         []string `json:"tips"`
}

// Outcome is either Success or Failure.
type Outcome interface {
	outcome()
}

// Success carries a parsed prediction.
type Success struct {
	Response   Response
	StatusCode int
}

// Failure carries the message to show the user. Err holds the typed cause
// (*ErrTransport, *ErrService or *ErrMalformedResponse).
type Failure struct {
	Message    string
	StatusCode int
	Err        error
}

func (Success) outcome() {}
func (Failure) outcome() {}

// Messages shown when the service gives nothing better.
const (
	MsgTransport       = "Could not reach the prediction service"
	MsgServiceFallback = "Prediction failed"
	MsgMalformed       = "Malformed prediction response"
)
