package predict

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/heartrisk/internal/store"
	"github.com/abhisek/heartrisk/internal/vitals"
)

// LoggingPredictor is a decorator that records every call as an event.
type LoggingPredictor struct {
	inner     Predictor
	eventRepo store.EventRepo
}

// WithLogging wraps a Predictor with event logging.
func WithLogging(p Predictor, repo store.EventRepo) Predictor {
	return &LoggingPredictor{inner: p, eventRepo: repo}
}

func (l *LoggingPredictor) Predict(ctx context.Context, req vitals.Request) Outcome {
	start := time.Now()

	out := l.inner.Predict(ctx, req)

	data := store.CallEventData{
		SubmissionID: SubmissionIDFrom(ctx),
		Endpoint:     l.inner.Endpoint(),
		Outcome:      Kind(out),
		LatencyMs:    time.Since(start).Milliseconds(),
	}
	switch o := out.(type) {
	case Success:
		data.StatusCode = o.StatusCode
	case Failure:
		data.StatusCode = o.StatusCode
		if o.Err != nil {
			data.ErrorMessage = o.Err.Error()
		}
	}

	// Log the event but don't fail the prediction if logging fails.
	if logErr := l.eventRepo.AppendCallEvent(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log prediction call event: %v\n", logErr)
	}

	return out
}

func (l *LoggingPredictor) Endpoint() string {
	return l.inner.Endpoint()
}
