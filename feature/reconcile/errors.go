package reconcile

import "errors"

// Fatal conditions: these abort the whole request. Everything else degrades
// to a flagged per-warehouse result.
var (
	// ErrBranchNotFound is returned when the requested branch does not exist.
	ErrBranchNotFound = errors.New("branch not found")
	// ErrWarehouseNotFound is returned when a warehouse does not exist.
	ErrWarehouseNotFound = errors.New("warehouse not found")
	// ErrNoWarehouses is returned when a branch has no warehouses at all.
	ErrNoWarehouses = errors.New("branch has no warehouses")
)

// Per-warehouse statuses carried in Result.Status.
const (
	// StatusOK means both balance projections were computed.
	StatusOK = "ok"
	// StatusNoBase means neither an opening nor a prior closing exists; all
	// derived figures behave as if the opening reference were exactly zero.
	StatusNoBase = "sin_medicion_base"
	// StatusNoClosing means the day is still open; variances are pending.
	StatusNoClosing = "sin_cierre"
	// StatusError means one of the warehouse's reads failed; only this
	// warehouse's entry is affected, siblings still produce results.
	StatusError = "error"
)
