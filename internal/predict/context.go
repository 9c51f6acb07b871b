package predict

import "context"

type contextKey string

const submissionKey contextKey = "submission_id"

// WithSubmissionID attaches a submission ID to the context for event logging.
func WithSubmissionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, submissionKey, id)
}

// SubmissionIDFrom extracts the submission ID from the context.
func SubmissionIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(submissionKey).(string); ok {
		return v
	}
	return "unknown"
}
