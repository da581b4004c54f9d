package reconcile

import (
	"context"
	"errors"
	"fmt"

	"playero-reconciler/feature/reconcile/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EventSnapshot couples a measurement event with its associated readings.
type EventSnapshot struct {
	Event models.MeasurementEvent
	Pumps []models.PumpReading
	Tanks []models.TankReading
}

// MeterTotal returns the sum of the event's pump totalizers.
func (e *EventSnapshot) MeterTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range e.Pumps {
		total = total.Add(p.Totalizer)
	}
	return total
}

// PumpTotals indexes the event's totalizer values by pump id.
func (e *EventSnapshot) PumpTotals() map[int]decimal.Decimal {
	totals := make(map[int]decimal.Decimal, len(e.Pumps))
	for _, p := range e.Pumps {
		totals[p.PumpID] = p.Totalizer
	}
	return totals
}

// Snapshot is the measurement picture of one warehouse-day: the most recent
// prior closing plus the day's own opening and closing, any of which may be
// absent. Absence is a legitimate state, never an error.
type Snapshot struct {
	PriorClosing   *EventSnapshot
	CurrentOpening *EventSnapshot
	CurrentClosing *EventSnapshot
}

// OpeningReference resolves the baseline the balance projections start from:
// the day's opening if recorded, otherwise the most recent prior closing.
// A nil return means the warehouse-day has no base measurement at all.
func (s *Snapshot) OpeningReference() *EventSnapshot {
	if s.CurrentOpening != nil {
		return s.CurrentOpening
	}
	return s.PriorClosing
}

// MeasurementStore reads warehouses and their measurement events. It is
// strictly read-only; every method is a point-in-time snapshot query.
type MeasurementStore struct {
	db *gorm.DB
}

// NewMeasurementStore creates a measurement store over the given connection.
func NewMeasurementStore(db *gorm.DB) *MeasurementStore {
	return &MeasurementStore{db: db}
}

// Branch fetches a branch by id, returning ErrBranchNotFound if absent.
func (st *MeasurementStore) Branch(ctx context.Context, id int) (*models.Branch, error) {
	var branch models.Branch
	err := st.db.WithContext(ctx).Where("id_sucursal = ?", id).First(&branch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBranchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load branch %d: %w", id, err)
	}
	return &branch, nil
}

// Warehouse fetches a warehouse by id, returning ErrWarehouseNotFound if absent.
func (st *MeasurementStore) Warehouse(ctx context.Context, id int) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	err := st.db.WithContext(ctx).Where("id_bod = ?", id).First(&warehouse).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWarehouseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load warehouse %d: %w", id, err)
	}
	return &warehouse, nil
}

// WarehousesByBranch lists the branch's warehouses ordered by id.
func (st *MeasurementStore) WarehousesByBranch(ctx context.Context, branchID int) ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	err := st.db.WithContext(ctx).
		Where("id_sucursal = ?", branchID).
		Order("id_bod").
		Find(&warehouses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouses of branch %d: %w", branchID, err)
	}
	return warehouses, nil
}

// Capacity returns the warehouse's total tank capacity in liters.
func (st *MeasurementStore) Capacity(ctx context.Context, warehouseID int) (decimal.Decimal, error) {
	row := st.db.WithContext(ctx).
		Model(&models.Tank{}).
		Where("id_bodega = ?", warehouseID).
		Select("COALESCE(SUM(capacidad_litros), 0)").
		Row()

	var capacity decimal.Decimal
	if err := row.Scan(&capacity); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum tank capacity of warehouse %d: %w", warehouseID, err)
	}
	return capacity, nil
}

// Snapshot loads the measurement picture of one warehouse-day. It fails with
// ErrWarehouseNotFound only when the warehouse itself does not exist; missing
// measurement events leave the corresponding snapshot slots nil.
func (st *MeasurementStore) Snapshot(ctx context.Context, warehouseID, date int) (*Snapshot, error) {
	if _, err := st.Warehouse(ctx, warehouseID); err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	var err error

	// Latest closing strictly before the requested day. Duplicates are broken
	// by the maximum id, not the recorded hora: the two can diverge under
	// manual data correction and the id rule matches the upstream system.
	snap.PriorClosing, err = st.findEvent(ctx,
		st.db.Where("id_bod = ? AND tipo = ? AND fecha < ?", warehouseID, models.KindClosing, date).
			Order("fecha DESC").Order("id_med DESC"))
	if err != nil {
		return nil, err
	}

	snap.CurrentOpening, err = st.findEvent(ctx,
		st.db.Where("id_bod = ? AND tipo = ? AND fecha = ?", warehouseID, models.KindOpening, date).
			Order("id_med"))
	if err != nil {
		return nil, err
	}

	snap.CurrentClosing, err = st.findEvent(ctx,
		st.db.Where("id_bod = ? AND tipo = ? AND fecha = ?", warehouseID, models.KindClosing, date).
			Order("id_med DESC"))
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// findEvent runs the prepared event query and hydrates the match with its
// readings. No match returns (nil, nil).
func (st *MeasurementStore) findEvent(ctx context.Context, query *gorm.DB) (*EventSnapshot, error) {
	var event models.MeasurementEvent
	err := query.WithContext(ctx).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load measurement event: %w", err)
	}
	return st.loadReadings(ctx, event)
}

func (st *MeasurementStore) loadReadings(ctx context.Context, event models.MeasurementEvent) (*EventSnapshot, error) {
	snap := &EventSnapshot{Event: event}

	err := st.db.WithContext(ctx).
		Where("id_med = ?", event.ID).
		Order("id_pico").
		Find(&snap.Pumps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load pump readings of event %d: %w", event.ID, err)
	}

	err = st.db.WithContext(ctx).
		Where("id_med = ?", event.ID).
		Order("id_tanque").
		Find(&snap.Tanks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load tank readings of event %d: %w", event.ID, err)
	}

	return snap, nil
}
