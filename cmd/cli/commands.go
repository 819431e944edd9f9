package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/amirasaad/payrecon/infra"
	"github.com/amirasaad/payrecon/infra/initializer"
	"github.com/amirasaad/payrecon/infra/migrations"
	"github.com/amirasaad/payrecon/pkg/app"
	"github.com/amirasaad/payrecon/pkg/config"
	"github.com/amirasaad/payrecon/pkg/domain/events"
	"github.com/amirasaad/payrecon/pkg/service/auth"
	"github.com/amirasaad/payrecon/pkg/service/reconcile"
	"github.com/amirasaad/payrecon/pkg/service/sweep"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func loadApp() (*app.App, func(), error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	deps, cleanup, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return nil, nil, err
	}
	return app.New(deps, cfg), cleanup, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|version] [steps]",
		Short:     "Apply or roll back database migrations",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"up", "down", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			logger := initializer.SetupLogger(cfg.Log)
			db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer func() { _ = sqlDB.Close() }()

			out := cmd.OutOrStdout()
			switch args[0] {
			case "up":
				if err := migrations.Up(sqlDB, logger); err != nil {
					return err
				}
			case "down":
				steps := 1
				if len(args) == 2 {
					if steps, err = strconv.Atoi(args[1]); err != nil || steps < 1 {
						return fmt.Errorf("invalid steps %q", args[1])
					}
				}
				if err := migrations.Down(sqlDB, steps, logger); err != nil {
					return err
				}
			case "version":
			default:
				return fmt.Errorf("unknown migrate action %q", args[0])
			}
			version, dirty, err := migrations.Version(sqlDB)
			if err != nil {
				return err
			}
			printVersion(out, version, dirty)
			return nil
		},
	}
}

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run one reconciliation pass over overdue pending transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cleanup, err := loadApp()
			if err != nil {
				return err
			}
			defer cleanup()
			report, err := a.Sweeper.RunOnce(cmd.Context())
			printReport(cmd.OutOrStdout(), report)
			return err
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <reference>",
		Short: "Verify a reference with its gateway and reconcile it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := loadApp()
			if err != nil {
				return err
			}
			defer cleanup()
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			res, err := a.Reconciler.ReconcileReference(ctx, args[0], events.SourceManual)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), args[0], res)
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token <subject>",
		Short: "Mint an operator bearer token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			token, err := auth.NewWithJWT(cfg.Auth.Jwt, initializer.SetupLogger(cfg.Log)).GenerateToken(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
}

func printVersion(w io.Writer, version uint, dirty bool) {
	state := color.GreenString("clean")
	if dirty {
		state = color.RedString("dirty")
	}
	_, _ = fmt.Fprintf(w, "schema version %d (%s)\n", version, state)
}

func printReport(w io.Writer, r sweep.Report) {
	_, _ = fmt.Fprintf(w, "scanned        %d\n", r.Scanned)
	_, _ = fmt.Fprintf(w, "reconciled     %s\n", color.GreenString("%d", r.Reconciled))
	_, _ = fmt.Fprintf(w, "already        %d\n", r.Already)
	_, _ = fmt.Fprintf(w, "flagged        %s\n", color.YellowString("%d", r.Flagged))
	_, _ = fmt.Fprintf(w, "still pending  %d\n", r.StillPending)
	_, _ = fmt.Fprintf(w, "failed         %s\n", color.RedString("%d", r.Failed))
}

func printResult(w io.Writer, reference string, res *reconcile.Result) {
	var outcome string
	switch res.Outcome {
	case reconcile.OutcomeReconciled, reconcile.OutcomeAlreadyReconciled:
		outcome = color.GreenString(string(res.Outcome))
	case reconcile.OutcomeFlagged:
		outcome = color.YellowString(string(res.Outcome))
	default:
		outcome = color.CyanString(string(res.Outcome))
	}
	_, _ = fmt.Fprintf(w, "%s: %s", reference, outcome)
	if res.Reason != "" {
		_, _ = fmt.Fprintf(w, " (%s)", res.Reason)
	}
	_, _ = fmt.Fprintln(w)
}
