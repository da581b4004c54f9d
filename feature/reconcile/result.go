package reconcile

import "github.com/shopspring/decimal"

func init() {
	// The legacy caller consumes liter figures as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Movements aggregates the five movement sums of one warehouse-day. The
// JSON keys (including the historic "salidasTiket" spelling) mirror the
// legacy payload.
type Movements struct {
	Dispatched       decimal.Decimal `json:"salidasTiket"`
	Restocked        decimal.Decimal `json:"abastecimiento"`
	RestockZeta      decimal.Decimal `json:"diferencia_zeta"`
	TransfersIn      decimal.Decimal `json:"traspasoIngreso"`
	TransfersOut     decimal.Decimal `json:"traspasoSalida"`
	CalibrationDelta decimal.Decimal `json:"taxCalibracion"`
}

// PumpReadingView is one pump's totalizer inside a measurement block.
type PumpReadingView struct {
	PumpID    int             `json:"id_pico"`
	Totalizer decimal.Decimal `json:"taxilitro"`
}

// MeasurementBlock is the audit view of one measurement event.
type MeasurementBlock struct {
	EventID    int               `json:"id_med"`
	Date       int               `json:"fecha"`
	Hora       string            `json:"hora"`
	Liters     decimal.Decimal   `json:"litros"`
	MeterTotal decimal.Decimal   `json:"taxilitro"`
	Pumps      []PumpReadingView `json:"picos"`
}

// TankClose is the volumetric (tank-based) balance projection.
type TankClose struct {
	Expected decimal.Decimal `json:"total_restante_calculado"`
	Measured decimal.Decimal `json:"total_litros_tanque_cierre"`
	Variance decimal.Decimal `json:"diferenciaSegunTanque"`
	// Pending means the day has no closing yet; Measured and Variance are
	// reported as zero placeholders, not computed values.
	Pending bool `json:"pendiente"`
}

// MeterClose is the totalizer-based cross-check.
type MeterClose struct {
	// OpeningDrift is the bare diagnostic delta between the day's opening
	// totalizer sum and the prior closing's. It is never reconciled against
	// any movement.
	OpeningDrift  decimal.Decimal `json:"diferencia"`
	MeterMovement decimal.Decimal `json:"movimientos"`
	Outflows      decimal.Decimal `json:"litros_salidas"`
	Calibrations  decimal.Decimal `json:"calibraciones"`
	Zeta          decimal.Decimal `json:"diferencia_zeta"`
	Explained     decimal.Decimal `json:"total_movimiento_calculado"`
	Variance      decimal.Decimal `json:"diferencia_segun_taxilitro"`
	Pending       bool            `json:"pendiente"`
}

// Result is the full reconciliation of one warehouse-day. Every raw input
// that fed the four derived figures is included so a consumer can audit the
// computation without re-querying.
type Result struct {
	WarehouseID int             `json:"idBod"`
	Warehouse   string          `json:"bodega"`
	Branch      string          `json:"sucursal"`
	Date        int             `json:"fecha"`
	Capacity    decimal.Decimal `json:"capacidadBodega"`
	Status      string          `json:"estado"`
	Error       string          `json:"error,omitempty"`

	PriorClosing   *MeasurementBlock `json:"cierreAnterior"`
	CurrentOpening *MeasurementBlock `json:"inicioActual"`
	CurrentClosing *MeasurementBlock `json:"cierreActual"`

	Movements

	// MeterMovement is the pump-matched totalizer delta between the closing
	// and the opening reference.
	MeterMovement decimal.Decimal `json:"movimientoTaxilitro"`
	// OpeningDrift duplicates MeterClose.OpeningDrift at the top level, as
	// the legacy payload did.
	OpeningDrift decimal.Decimal `json:"diferenciaTax"`
	// VariancePctOfSales is the tank variance as a percentage of the day's
	// dispatched volume; nil when nothing was dispatched (the division is
	// undefined, not zero).
	VariancePctOfSales *decimal.Decimal `json:"porcentaje_sobre_ventas"`

	TankClose  TankClose  `json:"cierre_segun_tanque"`
	MeterClose MeterClose `json:"cierre_segun_taxilitro"`
}

// blockOf builds the audit view of an event snapshot, nil for nil.
func blockOf(snap *EventSnapshot) *MeasurementBlock {
	if snap == nil {
		return nil
	}
	block := &MeasurementBlock{
		EventID:    snap.Event.ID,
		Date:       snap.Event.Date,
		Hora:       snap.Event.Hora,
		Liters:     snap.Event.Liters,
		MeterTotal: snap.MeterTotal(),
		Pumps:      make([]PumpReadingView, 0, len(snap.Pumps)),
	}
	for _, p := range snap.Pumps {
		block.Pumps = append(block.Pumps, PumpReadingView{PumpID: p.PumpID, Totalizer: p.Totalizer})
	}
	return block
}

// rounded returns a presentation copy with every figure rounded to two
// fractional digits. Intermediate sums keep full precision; this is the
// only place precision is dropped.
func (r Result) rounded() Result {
	round := func(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

	r.Capacity = round(r.Capacity)
	r.Dispatched = round(r.Dispatched)
	r.Restocked = round(r.Restocked)
	r.RestockZeta = round(r.RestockZeta)
	r.TransfersIn = round(r.TransfersIn)
	r.TransfersOut = round(r.TransfersOut)
	r.CalibrationDelta = round(r.CalibrationDelta)
	r.MeterMovement = round(r.MeterMovement)
	r.OpeningDrift = round(r.OpeningDrift)

	r.TankClose.Expected = round(r.TankClose.Expected)
	r.TankClose.Measured = round(r.TankClose.Measured)
	r.TankClose.Variance = round(r.TankClose.Variance)

	r.MeterClose.OpeningDrift = round(r.MeterClose.OpeningDrift)
	r.MeterClose.MeterMovement = round(r.MeterClose.MeterMovement)
	r.MeterClose.Outflows = round(r.MeterClose.Outflows)
	r.MeterClose.Calibrations = round(r.MeterClose.Calibrations)
	r.MeterClose.Zeta = round(r.MeterClose.Zeta)
	r.MeterClose.Explained = round(r.MeterClose.Explained)
	r.MeterClose.Variance = round(r.MeterClose.Variance)

	if r.VariancePctOfSales != nil {
		pct := round(*r.VariancePctOfSales)
		r.VariancePctOfSales = &pct
	}

	for _, block := range []*MeasurementBlock{r.PriorClosing, r.CurrentOpening, r.CurrentClosing} {
		if block == nil {
			continue
		}
		block.Liters = round(block.Liters)
		block.MeterTotal = round(block.MeterTotal)
		for i := range block.Pumps {
			block.Pumps[i].Totalizer = round(block.Pumps[i].Totalizer)
		}
	}

	return r
}
