// Package reconcile implements the fuel reconciliation engine.
//
// For one warehouse-day it pulls six independently recorded data series
// (measurement snapshot plus five movement sums) and derives two independent
// estimates of the closing fuel level: a volumetric one from tank dips and a
// meter-based one from pump totalizers. Each estimate is compared against the
// recorded movements, producing signed variances that drive shrinkage and
// meter-drift alerts.
//
// # Structure
//
//   - MeasurementStore reads opening/closing measurement events with their
//     pump and tank readings, including the fallback to the most recent prior
//     closing when a day has no opening of its own.
//   - MovementCollector sums the five movement series (dispatches, restocks,
//     transfers in/out, calibrations). No rows is a valid zero.
//   - Calculate is the pure balance projection; it performs no I/O.
//   - Orchestrator fans out the reads per warehouse, barriers, and assembles
//     the ordered per-warehouse result list for a branch.
//
// The JSON field names of the Result mirror the legacy caller so the service
// is a drop-in replacement.
package reconcile
