package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"playero-reconciler/core/config"
	"playero-reconciler/core/database"
	"playero-reconciler/core/logger"
	"playero-reconciler/core/server"
	"playero-reconciler/core/utils"
	"playero-reconciler/feature/reconcile"

	"github.com/spf13/cobra"
)

var (
	// Flags for the reconcile command
	reconcileBranch string
	reconcileDate   string
)

// reconcileCmd runs one branch-day reconciliation and prints the result.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile one branch for one date and print the report",
	Long: `Reconcile every warehouse of a branch for a single date.

The report compares the tank-based and totalizer-based closing estimates
against the recorded movements and prints the per-warehouse variances as
JSON on stdout.

Examples:
  # Reconcile branch 3 for March 15th 2024
  reconcile --sucursal 3 --fecha 20240315`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileBranch, "sucursal", "", "Branch id to reconcile (required)")
	reconcileCmd.Flags().StringVar(&reconcileDate, "fecha", "", "Date to reconcile, YYYYMMDD (required)")
	_ = reconcileCmd.MarkFlagRequired("sucursal")
	_ = reconcileCmd.MarkFlagRequired("fecha")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var branchID int
	if _, err := fmt.Sscanf(reconcileBranch, "%d", &branchID); err != nil || branchID <= 0 {
		return fmt.Errorf("invalid --sucursal %q", reconcileBranch)
	}
	date, err := utils.ParseDate(reconcileDate)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	parallel := cfg.Server.ReconcileMode == server.ModeParallel
	svc := reconcile.NewService(db, l, parallel)

	results, err := svc.DailyReport(ctx, branchID, date)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
