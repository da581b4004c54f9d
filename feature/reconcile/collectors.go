package reconcile

import (
	"context"
	"fmt"

	"playero-reconciler/feature/reconcile/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MovementCollector sums the five movement series recorded for a
// warehouse-day. Each method is an independent read-only aggregate; a day
// with no rows is a valid zero, never an error.
type MovementCollector struct {
	db *gorm.DB
}

// NewMovementCollector creates a collector over the given connection.
func NewMovementCollector(db *gorm.DB) *MovementCollector {
	return &MovementCollector{db: db}
}

// RestockSums carries the two aggregates of the restock series.
type RestockSums struct {
	// Liters is the nominal delivered volume.
	Liters decimal.Decimal
	// Zeta is the delivery crew's totalizer movement that did not match the
	// nominal volume. It explains meter drift, it is not a variance itself.
	Zeta decimal.Decimal
}

// Dispatches sums the liters sold through the warehouse's pumps on the day.
func (c *MovementCollector) Dispatches(ctx context.Context, warehouseID, date int) (decimal.Decimal, error) {
	row := c.db.WithContext(ctx).
		Model(&models.Dispatch{}).
		Where("id_bod = ? AND fecha = ?", warehouseID, date).
		Select("COALESCE(SUM(litros), 0)").
		Row()

	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum dispatches: %w", err)
	}
	return total, nil
}

// Restocks sums the day's external deliveries and their zeta deltas.
func (c *MovementCollector) Restocks(ctx context.Context, warehouseID, date int) (RestockSums, error) {
	row := c.db.WithContext(ctx).
		Model(&models.Restock{}).
		Where("id_bod = ? AND fecha = ?", warehouseID, date).
		Select("COALESCE(SUM(litros_total_repos), 0), COALESCE(SUM(taxilitro_final - taxilitro_inicial), 0)").
		Row()

	var sums RestockSums
	if err := row.Scan(&sums.Liters, &sums.Zeta); err != nil {
		return RestockSums{}, fmt.Errorf("failed to sum restocks: %w", err)
	}
	return sums, nil
}

// TransfersOut sums the meter-based liters of transfers leaving the
// warehouse (this warehouse as origin).
func (c *MovementCollector) TransfersOut(ctx context.Context, warehouseID, date int) (decimal.Decimal, error) {
	row := c.db.WithContext(ctx).
		Model(&models.Transfer{}).
		Where("bod_origen = ? AND fecha = ?", warehouseID, date).
		Select("COALESCE(SUM(taxilitro_final - taxilitro_inicial), 0)").
		Row()

	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum outgoing transfers: %w", err)
	}
	return total, nil
}

// TransfersIn sums the tank-based liters of transfers entering the
// warehouse (this warehouse as destination).
func (c *MovementCollector) TransfersIn(ctx context.Context, warehouseID, date int) (decimal.Decimal, error) {
	row := c.db.WithContext(ctx).
		Model(&models.Transfer{}).
		Where("bod_destino = ? AND fecha = ?", warehouseID, date).
		Select("COALESCE(SUM(litros_tanque_final - litros_tanque_inicial), 0)").
		Row()

	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum incoming transfers: %w", err)
	}
	return total, nil
}

// Calibrations sums the day's deliberate totalizer adjustments
// (after minus before, across all calibrated pumps).
func (c *MovementCollector) Calibrations(ctx context.Context, warehouseID, date int) (decimal.Decimal, error) {
	row := c.db.WithContext(ctx).
		Model(&models.CalibrationDetail{}).
		Joins("JOIN calibracion_pico_cabecera cc ON cc.id = calibracion_pico_detalle.cabecera_id").
		Where("cc.bodega = ? AND cc.fecha_hora = ?", warehouseID, date).
		Select("COALESCE(SUM(calibracion_pico_detalle.taxilitro_final - calibracion_pico_detalle.taxilitro_inicial), 0)").
		Row()

	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum calibrations: %w", err)
	}
	return total, nil
}
