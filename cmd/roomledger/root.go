package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"roomledger/internal/config"
	"roomledger/internal/logging"
	"roomledger/internal/store"
)

// app is the state shared by every subcommand. It is filled in by the root
// command's PersistentPreRunE, after flags are parsed.
type app struct {
	cfg   *config.Config
	store *store.Store
	log   *slog.Logger

	flags struct {
		config   string
		backend  string
		store    string
		rate     int
		currency string
		logLevel string
	}
}

// newRootCmd builds the command tree. The returned func closes the store
// opened during execution and must be called once Execute returns, whether
// or not the command failed.
func newRootCmd() (*cobra.Command, func() error) {
	a := &app{}
	root := &cobra.Command{
		Use:   "roomledger",
		Short: "Track rooms, tenants, rent and light bills",
		Long: `roomledger keeps a small ledger of rented rooms: who holds each room,
its rent, electricity units used and free-form reminders. Bills are rent
plus light units at a flat per-unit rate.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.config, "config", "", "Config file (YAML or JSON; default roomledger.yaml if present)")
	pf.StringVar(&a.flags.backend, "backend", "", "Store backend: json, sqlite or memory")
	pf.StringVar(&a.flags.store, "store", "", "Store file path (default rooms.json, or rooms.db for sqlite)")
	pf.IntVar(&a.flags.rate, "rate", 0, "Flat rate per light unit")
	pf.StringVar(&a.flags.currency, "currency", "", "Currency symbol for amounts")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newRentCmd(a),
		newVacantCmd(a),
		newAddCmd(a),
		newUpdateCmd(a),
		newRemindCmd(a),
		newBillCmd(a),
		newDeleteCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newServeCmd(a),
	)
	return root, a.teardown
}

// setup resolves configuration, applies flag overrides, initializes logging
// and opens the store.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Sources{File: a.flags.config})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Store.Backend = a.flags.backend
	}
	if flags.Changed("store") {
		cfg.Store.Path = a.flags.store
	}
	if flags.Changed("rate") {
		cfg.Billing.FlatRate = a.flags.rate
	}
	if flags.Changed("currency") {
		cfg.Billing.Currency = a.flags.currency
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logging.Init(level, cfg.Log.Format, cmd.ErrOrStderr())
	a.log = logging.New("cli")

	st, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.cfg = cfg
	a.store = st
	a.log.Debug("store opened", "backend", cfg.Store.Backend, "location", st.Location())
	return nil
}

func (a *app) teardown() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	if err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

func (a *app) rate() int        { return a.cfg.Billing.FlatRate }
func (a *app) currency() string { return a.cfg.Billing.Currency }
