package reconcile

import (
	"context"
	"sync"

	"playero-reconciler/feature/reconcile/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Orchestrator resolves a branch's warehouses and drives the per-warehouse
// fan-out: the measurement snapshot and the five movement sums are read
// concurrently, then handed to the calculator once all have returned.
type Orchestrator struct {
	store      *MeasurementStore
	collectors *MovementCollector
	logger     *zap.Logger
	parallel   bool
}

// NewOrchestrator creates an orchestrator over the given connection. With
// parallel set, warehouses are processed concurrently; the six reads within
// one warehouse are concurrent either way.
func NewOrchestrator(db *gorm.DB, logger *zap.Logger, parallel bool) *Orchestrator {
	return &Orchestrator{
		store:      NewMeasurementStore(db),
		collectors: NewMovementCollector(db),
		logger:     logger,
		parallel:   parallel,
	}
}

// ReconcileBranch reconciles every warehouse of the branch for the given
// date, in warehouse-id order. It fails with ErrBranchNotFound or
// ErrNoWarehouses; any per-warehouse failure becomes that warehouse's error
// entry and never aborts its siblings. With no intervening writes, repeated
// calls yield identical sequences.
func (o *Orchestrator) ReconcileBranch(ctx context.Context, branchID, date int) ([]Result, error) {
	branch, err := o.store.Branch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	warehouses, err := o.store.WarehousesByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if len(warehouses) == 0 {
		return nil, ErrNoWarehouses
	}

	results := make([]Result, len(warehouses))

	if o.parallel {
		var wg sync.WaitGroup
		for i, wh := range warehouses {
			if err := ctx.Err(); err != nil {
				wg.Wait()
				return nil, err
			}
			wg.Add(1)
			go func(i int, wh models.Warehouse) {
				defer wg.Done()
				results[i] = o.reconcileWarehouse(ctx, branch.Description, wh, date)
			}(i, wh)
		}
		wg.Wait()
	} else {
		for i, wh := range warehouses {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = o.reconcileWarehouse(ctx, branch.Description, wh, date)
		}
	}

	return results, nil
}

// reconcileWarehouse fans out the warehouse's reads, barriers, and invokes
// the calculator. The group carries no cancelling context on purpose: the
// calculator needs all six inputs, so an in-flight fan-out runs to
// completion and a failed read surfaces as this warehouse's error entry.
func (o *Orchestrator) reconcileWarehouse(ctx context.Context, branchName string, wh models.Warehouse, date int) Result {
	var (
		snap     *Snapshot
		capacity decimal.Decimal
		mov      Movements
		restocks RestockSums
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		snap, err = o.store.Snapshot(ctx, wh.ID, date)
		return err
	})
	g.Go(func() error {
		var err error
		capacity, err = o.store.Capacity(ctx, wh.ID)
		return err
	})
	g.Go(func() error {
		var err error
		mov.Dispatched, err = o.collectors.Dispatches(ctx, wh.ID, date)
		return err
	})
	g.Go(func() error {
		var err error
		restocks, err = o.collectors.Restocks(ctx, wh.ID, date)
		return err
	})
	g.Go(func() error {
		var err error
		mov.TransfersOut, err = o.collectors.TransfersOut(ctx, wh.ID, date)
		return err
	})
	g.Go(func() error {
		var err error
		mov.TransfersIn, err = o.collectors.TransfersIn(ctx, wh.ID, date)
		return err
	})
	g.Go(func() error {
		var err error
		mov.CalibrationDelta, err = o.collectors.Calibrations(ctx, wh.ID, date)
		return err
	})

	if err := g.Wait(); err != nil {
		o.logger.Warn("warehouse reconciliation failed",
			zap.Int("id_bod", wh.ID),
			zap.Int("fecha", date),
			zap.Error(err))
		return Result{
			WarehouseID: wh.ID,
			Warehouse:   wh.Description,
			Branch:      branchName,
			Date:        date,
			Status:      StatusError,
			Error:       err.Error(),
		}
	}

	mov.Restocked = restocks.Liters
	mov.RestockZeta = restocks.Zeta

	info := WarehouseInfo{
		ID:       wh.ID,
		Name:     wh.Description,
		Branch:   branchName,
		Date:     date,
		Capacity: capacity,
	}
	return Calculate(info, snap, mov)
}
