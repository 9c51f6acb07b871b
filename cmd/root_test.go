package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/heartrisk/internal/result"
	"github.com/abhisek/heartrisk/internal/store"
)

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addGlobalFlags(c.Flags())
	require.NoError(t, c.Flags().Parse(args))
	return c
}

func TestResolvePredictConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("HEARTRISK_API_URL", "http://env.example:5000")
	t.Setenv("HEARTRISK_TIMEOUT", "3s")

	c := newFlagCmd(t, "--api-url", "https://flag.example", "--timeout", "10s")
	cfg, err := resolvePredictConfig(c)
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestResolvePredictConfig_EnvFallback(t *testing.T) {
	t.Setenv("HEARTRISK_API_URL", "http://env.example:5000")
	t.Setenv("HEARTRISK_TIMEOUT", "3s")

	cfg, err := resolvePredictConfig(newFlagCmd(t))
	require.NoError(t, err)
	assert.Equal(t, "http://env.example:5000/api/predict", cfg.Endpoint())
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestResolvePredictConfig_RejectsBadURL(t *testing.T) {
	t.Setenv("HEARTRISK_API_URL", "")
	t.Setenv("HEARTRISK_TIMEOUT", "")

	_, err := resolvePredictConfig(newFlagCmd(t, "--api-url", "ftp://nope"))
	assert.Error(t, err)
}

func TestPredictCommand_MockRecordsCall(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "calls.db")

	rootCmd.SetArgs(append([]string{"predict", "--mock", "--db", dbPath}, scenarioArgs...))
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	events, err := s.EventRepo().QueryCallEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, store.OutcomeSuccess, events[0].Outcome)
	assert.NotEqual(t, "unknown", events[0].SubmissionID)
}

var scenarioArgs = []string{
	"--age", "54", "--gender", "1", "--impulse", "72", "--highbp", "130",
	"--lowbp", "85", "--glucose", "110", "--kcm", "2.5", "--troponin", "0.01",
}

func TestPredictCommand_FailurePrintsMessageAlone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model unavailable"}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{
		"predict", "--mock=false", "--api-url", srv.URL,
		"--db", filepath.Join(t.TempDir(), "calls.db"),
	}, scenarioArgs...))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model unavailable")

	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines, result.FailureHeadline)
	assert.Contains(t, lines, "model unavailable")
	assert.NotContains(t, out.String(), result.ProbabilityLabel)
}

func TestPrintResult_SuccessCarriesLabel(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, result.State{
		Category:        result.CategoryHigh,
		ResultText:      "Risk: High",
		ProbabilityText: "82.0%",
		Tips:            []string{"See a cardiologist"},
	})

	assert.Equal(t, "Risk: High\n"+result.ProbabilityLabel+"82.0%\n  • See a cardiologist\n", out.String())
}

func TestTruncate_CutsOnRunes(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))
	assert.Equal(t, "défa", truncate("défaillance", 4))
	assert.Equal(t, "心臓", truncate("心臓病モデル", 2))
}

func TestCallsList_OutcomeFilterAppliesBeforeLimit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "calls.db")
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, s.EventRepo().AppendCallEvent(ctx, store.CallEventData{
		SubmissionID: "bad-body", Outcome: store.OutcomeMalformed, ErrorMessage: "réponse illisible",
	}))
	for i := 0; i < 3; i++ {
		require.NoError(t, s.EventRepo().AppendCallEvent(ctx, store.CallEventData{Outcome: store.OutcomeSuccess}))
	}
	require.NoError(t, s.Close())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"calls", "list", "--db", dbPath, "--limit", "1", "--outcome", store.OutcomeMalformed})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		require.NoError(t, callsListCmd.Flags().Set("outcome", ""))
		require.NoError(t, callsListCmd.Flags().Set("limit", "20"))
	})
	require.NoError(t, rootCmd.ExecuteContext(ctx))

	assert.Contains(t, out.String(), "bad-body")
	assert.Contains(t, out.String(), "réponse illisible")
	assert.NotContains(t, out.String(), "No ")
}
