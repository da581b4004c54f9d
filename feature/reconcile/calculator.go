package reconcile

import "github.com/shopspring/decimal"

// WarehouseInfo is the immutable master data of the warehouse under
// reconciliation.
type WarehouseInfo struct {
	ID       int
	Name     string
	Branch   string
	Date     int
	Capacity decimal.Decimal
}

// Calculate is the reconciliation calculator: a pure, deterministic function
// of one measurement snapshot and the five movement sums. It performs no I/O
// and never mutates its inputs.
//
// Derived figures:
//
//	movTax        = Σ(closing pump readings) − Σ(opening reference pump readings), matched pump-by-pump
//	difTaxAntAct  = Σ(current opening readings, 0 if absent) − Σ(prior closing readings)
//	tankVariance  = closingLiters − (openingRefLiters + restock + transfersIn − dispatch − transfersOut)
//	meterVariance = movTax − (dispatch + calibrationDelta + transfersOut + restockZeta)
func Calculate(info WarehouseInfo, snap *Snapshot, mov Movements) Result {
	r := Result{
		WarehouseID:    info.ID,
		Warehouse:      info.Name,
		Branch:         info.Branch,
		Date:           info.Date,
		Capacity:       info.Capacity,
		Status:         StatusOK,
		Movements:      mov,
		PriorClosing:   blockOf(snap.PriorClosing),
		CurrentOpening: blockOf(snap.CurrentOpening),
		CurrentClosing: blockOf(snap.CurrentClosing),
	}

	openRef := snap.OpeningReference()
	noBase := openRef == nil
	if noBase {
		r.Status = StatusNoBase
	}

	openLiters := decimal.Zero
	var openTotals map[int]decimal.Decimal
	if openRef != nil {
		openLiters = openRef.Event.Liters
		openTotals = openRef.PumpTotals()
	}

	// Bare diagnostic: drift between the day's opening and the prior-period
	// closing totalizer sums. Emitted as-is, never reconciled.
	openTax := decimal.Zero
	priorTax := decimal.Zero
	if snap.CurrentOpening != nil {
		openTax = snap.CurrentOpening.MeterTotal()
	}
	if snap.PriorClosing != nil {
		priorTax = snap.PriorClosing.MeterTotal()
	}
	r.OpeningDrift = openTax.Sub(priorTax)
	r.MeterClose.OpeningDrift = r.OpeningDrift

	// Movement facts are always reported, even for a day still open.
	r.MeterClose.Outflows = mov.Dispatched.Add(mov.TransfersOut)
	r.MeterClose.Calibrations = mov.CalibrationDelta
	r.MeterClose.Zeta = mov.RestockZeta
	explained := mov.Dispatched.Add(mov.CalibrationDelta).Add(mov.TransfersOut).Add(mov.RestockZeta)
	r.MeterClose.Explained = explained

	expected := openLiters.
		Add(mov.Restocked).
		Add(mov.TransfersIn).
		Sub(mov.Dispatched).
		Sub(mov.TransfersOut)
	r.TankClose.Expected = expected

	if snap.CurrentClosing == nil {
		// Day still open: both variances are pending, not computed.
		if r.Status == StatusOK {
			r.Status = StatusNoClosing
		}
		r.TankClose.Pending = true
		r.MeterClose.Pending = true
		return r.rounded()
	}

	r.TankClose.Measured = snap.CurrentClosing.Event.Liters
	r.TankClose.Variance = r.TankClose.Measured.Sub(expected)

	r.MeterMovement = meterMovement(openTotals, snap.CurrentClosing.PumpTotals(), noBase)
	r.MeterClose.MeterMovement = r.MeterMovement
	r.MeterClose.Variance = r.MeterMovement.Sub(explained)

	if !mov.Dispatched.IsZero() {
		pct := r.TankClose.Variance.Div(mov.Dispatched).Mul(decimal.NewFromInt(100))
		r.VariancePctOfSales = &pct
	}

	return r.rounded()
}

// meterMovement computes the closing-vs-opening totalizer delta with an
// explicit keyed intersection: only pumps present on both sides contribute.
// A pump commissioned or decommissioned mid-day contributes nothing, it is
// neither an error nor its one-sided value.
//
// When there is no base measurement, the opening reference is a zero-valued
// snapshot: every closing pump matches an implicit zero, so the delta
// degrades to the plain closing totalizer sum.
func meterMovement(openTotals, closeTotals map[int]decimal.Decimal, noBase bool) decimal.Decimal {
	total := decimal.Zero
	for pumpID, closeVal := range closeTotals {
		if noBase {
			total = total.Add(closeVal)
			continue
		}
		openVal, ok := openTotals[pumpID]
		if !ok {
			continue
		}
		total = total.Add(closeVal.Sub(openVal))
	}
	return total
}
