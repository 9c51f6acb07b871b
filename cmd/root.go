package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/heartrisk/internal/predict"
	"github.com/abhisek/heartrisk/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "heartrisk",
	Short: "Heart disease risk prediction client",
	Long:  "HeartRisk collects patient vitals, asks a prediction service for a heart disease risk estimate, and shows the verdict with a probability gauge.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(callsCmd)
	rootCmd.AddCommand(versionCmd)
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.String("db", "", "Path to SQLite database file (overrides HEARTRISK_DB env var)")
	fs.String("api-url", "", "Prediction service base URL (overrides HEARTRISK_API_URL env var)")
	fs.Duration("timeout", 0, "Per-request timeout, e.g. 10s (overrides HEARTRISK_TIMEOUT env var)")
	fs.Bool("mock", false, "Use a canned demo predictor instead of the service")
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then HEARTRISK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolvePredictConfig layers flags over the environment over defaults.
func resolvePredictConfig(cmd *cobra.Command) (predict.Config, error) {
	cfg, err := predict.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.BaseURL = u
	}
	if cmd.Flags().Changed("timeout") {
		d, _ := cmd.Flags().GetDuration("timeout")
		cfg.Timeout = d
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("prediction config: %w", err)
	}
	return cfg, nil
}

// demoOutcome answers every call in --mock mode.
var demoOutcome = predict.Success{
	StatusCode: 200,
	Response: predict.Response{
		RiskCategory: "Moderate",
		Probability:  0.42,
		Tips: []string{
			"Keep blood pressure under regular review",
			"Aim for 150 minutes of moderate exercise a week",
		},
	},
}

// buildPredictor returns the configured predictor wrapped with call-event
// logging, plus the endpoint to display.
func buildPredictor(cmd *cobra.Command, repo store.EventRepo) (predict.Predictor, string, error) {
	if mock, _ := cmd.Flags().GetBool("mock"); mock {
		p := predict.NewRepeatingMockPredictor(demoOutcome)
		return predict.WithLogging(p, repo), "demo (mock)", nil
	}

	cfg, err := resolvePredictConfig(cmd)
	if err != nil {
		return nil, "", err
	}
	client := predict.NewClient(cfg)
	return predict.WithLogging(client, repo), cfg.Endpoint(), nil
}
