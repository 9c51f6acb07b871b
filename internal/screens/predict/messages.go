package predict

import (
	pred "github.com/abhisek/heartrisk/internal/predict"
	"github.com/abhisek/heartrisk/internal/submission"
)

// submitResultMsg is sent when the service call for a submission returns.
type submitResultMsg struct {
	Submission submission.Submission
	Outcome    pred.Outcome
}
