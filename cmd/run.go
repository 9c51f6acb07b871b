package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/heartrisk/internal/app"
	"github.com/abhisek/heartrisk/internal/gauge"
	"github.com/abhisek/heartrisk/internal/store"
	"github.com/abhisek/heartrisk/internal/submission"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctrl, endpoint, err := newController(cmd, st)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	return app.Run(app.Options{
		Controller: ctrl,
		Endpoint:   endpoint,
	})
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func newController(cmd *cobra.Command, st *store.Store) (*submission.Controller, string, error) {
	p, endpoint, err := buildPredictor(cmd, st.EventRepo())
	if err != nil {
		return nil, "", err
	}
	charts := gauge.NewManager(gauge.NewTerminalRenderer(), gauge.DefaultSlot)
	return submission.New(p, charts), endpoint, nil
}
