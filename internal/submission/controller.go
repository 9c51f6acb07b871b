// Package submission drives one prediction cycle: collect, validate,
// call the service, then render the outcome.
package submission

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/heartrisk/internal/gauge"
	"github.com/abhisek/heartrisk/internal/predict"
	"github.com/abhisek/heartrisk/internal/result"
	"github.com/abhisek/heartrisk/internal/vitals"
)

// ErrInFlight is returned by Begin while a previous submission is still
// waiting for the service.
var ErrInFlight = errors.New("a prediction is already in progress")

// Phase is the controller's position in the submit cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseRendered
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseRendered:
		return "rendered"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Submission is a validated request that has been admitted for sending.
type Submission struct {
	ID      string
	Request vitals.Request
}

// Controller owns the result state and the gauge. It is not safe for
// concurrent use: Begin and Resolve run on the UI loop, and only Run may
// be called from another goroutine.
type Controller struct {
	predictor predict.Predictor
	gauge     *gauge.Manager

	phase    Phase
	inFlight string
	state    result.State
	last     predict.Outcome
	chartErr error
}

// New creates a Controller.
func New(p predict.Predictor, g *gauge.Manager) *Controller {
	return &Controller{predictor: p, gauge: g}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// State returns the displayed result.
func (c *Controller) State() result.State {
	return c.state
}

// Chart returns the live gauge, or nil if no prediction has succeeded yet.
func (c *Controller) Chart() gauge.Chart {
	return c.gauge.Current()
}

// Err returns why the gauge for the last successful prediction could not
// be drawn, or nil. A failed prediction leaves it unchanged along with the
// gauge itself.
func (c *Controller) Err() error {
	return c.chartErr
}

// LastOutcome returns the most recently resolved outcome, or nil.
func (c *Controller) LastOutcome() predict.Outcome {
	return c.last
}

// Begin collects and validates the form. On a validation error it returns
// *vitals.ValidationError and the phase stays Idle; nothing is sent.
// While a submission is in flight it returns ErrInFlight.
func (c *Controller) Begin(src vitals.Source) (Submission, error) {
	if c.phase == PhaseSubmitting {
		return Submission{}, ErrInFlight
	}

	req := vitals.Collect(src)
	if err := vitals.Validate(req); err != nil {
		return Submission{}, err
	}

	sub := Submission{ID: uuid.New().String(), Request: req}
	c.phase = PhaseSubmitting
	c.inFlight = sub.ID
	return sub, nil
}

// Run performs the service call for sub. It touches no controller state
// and is safe to call off the UI loop.
func (c *Controller) Run(ctx context.Context, sub Submission) predict.Outcome {
	return c.predictor.Predict(predict.WithSubmissionID(ctx, sub.ID), sub.Request)
}

// Resolve renders out for sub and returns the controller to Idle. Success
// replaces the text state and the gauge; failure resets the text state to
// the neutral error view and leaves the gauge as it was. Outcomes for a
// submission that is no longer in flight are dropped.
func (c *Controller) Resolve(sub Submission, out predict.Outcome) {
	if c.phase != PhaseSubmitting || sub.ID != c.inFlight {
		return
	}

	c.phase = PhaseRendered
	c.last = out

	switch o := out.(type) {
	case predict.Success:
		c.state = result.RenderSuccess(o.Response)
		c.chartErr = c.gauge.Update(o.Response.Probability)
	case predict.Failure:
		c.state = result.RenderFailure(o.Message)
	}

	c.inFlight = ""
	c.phase = PhaseIdle
}

// Submit runs a whole cycle synchronously.
func (c *Controller) Submit(ctx context.Context, src vitals.Source) (predict.Outcome, error) {
	sub, err := c.Begin(src)
	if err != nil {
		return nil, err
	}
	out := c.Run(ctx, sub)
	c.Resolve(sub, out)
	return out, nil
}

// Close releases the gauge.
func (c *Controller) Close() {
	c.gauge.Close()
}
