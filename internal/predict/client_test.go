package predict

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/heartrisk/internal/store"
	"github.com/abhisek/heartrisk/internal/vitals"
)

func scenarioRequest() vitals.Request {
	return vitals.Request{
		Age: 45, Gender: 1, Impulse: 80, HighBP: 130,
		LowBP: 85, Glucose: 100, KCM: 2.1, Troponin: 0.02,
	}
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL})
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestPredict_Success(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotCT     string
		gotBody   map[string]any
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotCT = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		respond(http.StatusOK, `{"risk_category":"High","probability":0.82,"tips":["Consult a cardiologist"]}`)(w, r)
	})

	out := c.Predict(context.Background(), scenarioRequest())

	require.IsType(t, Success{}, out)
	s := out.(Success)
	assert.Equal(t, "High", s.Response.RiskCategory)
	assert.Equal(t, 0.82, s.Response.Probability)
	assert.Equal(t, []string{"Consult a cardiologist"}, s.Response.Tips)
	assert.Equal(t, http.StatusOK, s.StatusCode)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, PredictPath, gotPath)
	assert.Equal(t, "application/json", gotCT)

	// Exactly the eight fields, with the collected values.
	require.Len(t, gotBody, len(vitals.Fields))
	for _, f := range vitals.Fields {
		assert.Equal(t, scenarioRequest().Get(f), gotBody[string(f)], "field %s", f)
	}
}

func TestPredict_TipsAbsentIsEmpty(t *testing.T) {
	c := newTestClient(t, respond(http.StatusOK, `{"risk_category":"Low","probability":0.1}`))

	out := c.Predict(context.Background(), scenarioRequest())

	require.IsType(t, Success{}, out)
	tips := out.(Success).Response.Tips
	assert.NotNil(t, tips)
	assert.Empty(t, tips)
}

func TestPredict_ProbabilityOutOfRangePassesThrough(t *testing.T) {
	c := newTestClient(t, respond(http.StatusOK, `{"risk_category":"High","probability":1.4}`))

	out := c.Predict(context.Background(), scenarioRequest())

	require.IsType(t, Success{}, out)
	assert.Equal(t, 1.4, out.(Success).Response.Probability)
}

func TestPredict_ServiceErrorUsesServiceMessage(t *testing.T) {
	c := newTestClient(t, respond(http.StatusInternalServerError, `{"error":"model unavailable"}`))

	out := c.Predict(context.Background(), scenarioRequest())

	require.IsType(t, Failure{}, out)
	f := out.(Failure)
	assert.Equal(t, "model unavailable", f.Message)
	assert.Equal(t, http.StatusInternalServerError, f.StatusCode)

	var svc *ErrService
	require.ErrorAs(t, f.Err, &svc)
	assert.Equal(t, http.StatusInternalServerError, svc.StatusCode)
	assert.Equal(t, store.OutcomeService, Kind(out))
}

func TestPredict_ServiceErrorFallbackMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no error field", `{}`},
		{"empty error field", `{"error":""}`},
		{"non-json body", `<html>Bad Gateway</html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, respond(http.StatusBadGateway, tt.body))

			out := c.Predict(context.Background(), scenarioRequest())

			require.IsType(t, Failure{}, out)
			assert.Equal(t, MsgServiceFallback, out.(Failure).Message)
			assert.Equal(t, store.OutcomeService, Kind(out))
		})
	}
}

func TestPredict_UnparseableSuccessBodyIsTransportError(t *testing.T) {
	c := newTestClient(t, respond(http.StatusOK, `not json`))

	out := c.Predict(context.Background(), scenarioRequest())

	require.IsType(t, Failure{}, out)
	f := out.(Failure)
	assert.Equal(t, MsgTransport, f.Message)
	var tr *ErrTransport
	assert.ErrorAs(t, f.Err, &tr)
	assert.Equal(t, store.OutcomeTransport, Kind(out))
}

func TestPredict_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing probability", `{"risk_category":"High","tips":[]}`},
		{"string probability", `{"risk_category":"High","probability":"0.8"}`},
		{"non-string tip", `{"probability":0.5,"tips":[1,2]}`},
		{"numeric category", `{"probability":0.5,"risk_category":3}`},
		{"array body", `[0.5]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, respond(http.StatusOK, tt.body))

			out := c.Predict(context.Background(), scenarioRequest())

			require.IsType(t, Failure{}, out)
			f := out.(Failure)
			assert.Equal(t, MsgMalformed, f.Message)
			var mal *ErrMalformedResponse
			assert.ErrorAs(t, f.Err, &mal)
			assert.Equal(t, store.OutcomeMalformed, Kind(out))
		})
	}
}

func TestPredict_NullCategoryAndTipsAccepted(t *testing.T) {
	c := newTestClient(t, respond(http.StatusOK, `{"risk_category":null,"probability":0.2,"tips":null}`))

	out := c.Predict(context.Background(), scenarioRequest())

	require.IsType(t, Success{}, out)
	s := out.(Success)
	assert.Equal(t, "", s.Response.RiskCategory)
	assert.Empty(t, s.Response.Tips)
}

func TestPredict_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(Config{BaseURL: url})
	out := c.Predict(context.Background(), scenarioRequest())

	require.IsType(t, Failure{}, out)
	f := out.(Failure)
	assert.Equal(t, MsgTransport, f.Message)
	assert.Equal(t, 0, f.StatusCode)
	var tr *ErrTransport
	assert.True(t, errors.As(f.Err, &tr))
}

func TestPredict_SingleRequestPerCall(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		respond(http.StatusServiceUnavailable, `{"error":"busy"}`)(w, r)
	})

	c.Predict(context.Background(), scenarioRequest())

	assert.Equal(t, 1, calls, "client must not retry")
}

func TestKind_Success(t *testing.T) {
	assert.Equal(t, store.OutcomeSuccess, Kind(Success{}))
}
