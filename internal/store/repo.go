package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	Outcome string // only events with this outcome kind ("" = all)
}

// Outcome kinds recorded for a prediction call.
const (
	OutcomeSuccess   = "success"
	OutcomeTransport = "transport"
	OutcomeService   = "service"
	OutcomeMalformed = "malformed"
)

// CallEventData captures a single call to the prediction service.
// Clinical inputs and verdicts are deliberately absent.
type CallEventData struct {
	SubmissionID string
	Endpoint     string
	StatusCode   int // 0 when no HTTP response was received
	Outcome      string
	LatencyMs    int64
	ErrorMessage string
}

// CallEvent is a stored CallEventData with its ordering metadata.
type CallEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	CallEventData
}

// OutcomeStats aggregates calls by outcome kind.
type OutcomeStats struct {
	Outcome      string
	Calls        int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to call events.
type EventRepo interface {
	// AppendCallEvent records a prediction service call.
	AppendCallEvent(ctx context.Context, data CallEventData) error

	// QueryCallEvents returns events newest first.
	QueryCallEvents(ctx context.Context, opts QueryOpts) ([]CallEvent, error)

	// CallStats returns per-outcome counts and average latency.
	CallStats(ctx context.Context) ([]OutcomeStats, error)

	// PruneCallEvents deletes events recorded before cutoff and returns
	// how many were removed. A zero cutoff removes everything.
	PruneCallEvents(ctx context.Context, cutoff time.Time) (int64, error)
}
