package predict

import (
	"context"
	"errors"
	"sync"

	"github.com/abhisek/heartrisk/internal/vitals"
)

// MockPredictor is a deterministic Predictor for tests and demo mode.
// It returns canned outcomes in FIFO order and records all requests.
type MockPredictor struct {
	mu       sync.Mutex
	outcomes []Outcome
	repeat   bool
	Calls    []vitals.Request
}

// NewMockPredictor creates a MockPredictor with the given canned outcomes.
func NewMockPredictor(outcomes ...Outcome) *MockPredictor {
	return &MockPredictor{outcomes: outcomes}
}

// NewRepeatingMockPredictor returns a MockPredictor that answers every
// call with out.
func NewRepeatingMockPredictor(out Outcome) *MockPredictor {
	return &MockPredictor{outcomes: []Outcome{out}, repeat: true}
}

// Predict returns the next canned outcome, or a transport failure if the
// queue is empty.
func (m *MockPredictor) Predict(_ context.Context, req vitals.Request) Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.outcomes) == 0 {
		return transportFailure(0, errors.New("mock predictor has no canned outcomes"))
	}

	out := m.outcomes[0]
	if !m.repeat {
		m.outcomes = m.outcomes[1:]
	}
	return out
}

// Endpoint returns "mock".
func (m *MockPredictor) Endpoint() string {
	return "mock"
}

// AddOutcome appends a canned outcome to the queue.
func (m *MockPredictor) AddOutcome(out Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, out)
}

// CallCount returns the number of Predict calls made.
func (m *MockPredictor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
