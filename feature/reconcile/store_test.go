package reconcile

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func branchRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id_sucursal", "descripcion"})
}

func warehouseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id_bod", "id_sucursal", "descripcion"})
}

func eventRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id_med", "id_suc", "id_bod", "fecha", "hora", "tipo", "litros", "operador", "observacion"})
}

func pumpReadingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id_med", "id_pico", "taxilitro", "foto_taxilitro"})
}

func tankReadingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id_med", "id_tanque", "litros", "temperatura", "foto_tanque"})
}

func TestStoreBranch_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewMeasurementStore(db)

	mock.ExpectQuery("SELECT \\* FROM `sucursal`").WillReturnRows(branchRows())

	_, err := store.Branch(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBranchNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreWarehouse_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewMeasurementStore(db)

	mock.ExpectQuery("SELECT \\* FROM `bodega`").WillReturnRows(warehouseRows())

	_, err := store.Warehouse(context.Background(), 99)
	assert.ErrorIs(t, err, ErrWarehouseNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreWarehousesByBranch_OrderedByID(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewMeasurementStore(db)

	mock.ExpectQuery("SELECT \\* FROM `bodega` WHERE id_sucursal = \\? ORDER BY id_bod").
		WillReturnRows(warehouseRows().
			AddRow(5, 1, "Bodega Norte").
			AddRow(7, 1, "Bodega Sur"))

	warehouses, err := store.WarehousesByBranch(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, warehouses, 2)
	assert.Equal(t, 5, warehouses[0].ID)
	assert.Equal(t, 7, warehouses[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreCapacity_SumsTanks(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewMeasurementStore(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(capacidad_litros\\), 0\\) FROM `tanque`").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("5000.00"))

	capacity, err := store.Capacity(context.Background(), 5)
	require.NoError(t, err)
	assertDec(t, "5000.00", capacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSnapshot_LoadsAllThreeEvents(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewMeasurementStore(db)

	mock.ExpectQuery("SELECT \\* FROM `bodega`").
		WillReturnRows(warehouseRows().AddRow(5, 1, "Bodega Norte"))

	// Prior closing: the most recent closing strictly before the day, ties
	// broken by the maximum id.
	mock.ExpectQuery("SELECT \\* FROM `med_inicio_cierre` WHERE id_bod = \\? AND tipo = \\? AND fecha < \\? ORDER BY fecha DESC,id_med DESC").
		WillReturnRows(eventRows().AddRow(90, 1, 5, 20240314, "20:05", 2, "800.00", "lopez", ""))
	mock.ExpectQuery("SELECT \\* FROM `med_reg_pico`").
		WillReturnRows(pumpReadingRows().AddRow(90, 1, "95.00", ""))
	mock.ExpectQuery("SELECT \\* FROM `med_reg_tanque`").
		WillReturnRows(tankReadingRows())

	mock.ExpectQuery("SELECT \\* FROM `med_inicio_cierre` WHERE id_bod = \\? AND tipo = \\? AND fecha = \\?").
		WillReturnRows(eventRows().AddRow(101, 1, 5, 20240315, "08:00", 1, "1000.00", "lopez", ""))
	mock.ExpectQuery("SELECT \\* FROM `med_reg_pico`").
		WillReturnRows(pumpReadingRows().AddRow(101, 1, "100.00", ""))
	mock.ExpectQuery("SELECT \\* FROM `med_reg_tanque`").
		WillReturnRows(tankReadingRows().AddRow(101, 1, "1000.00", "21.50", ""))

	mock.ExpectQuery("SELECT \\* FROM `med_inicio_cierre` WHERE id_bod = \\? AND tipo = \\? AND fecha = \\?").
		WillReturnRows(eventRows().AddRow(102, 1, 5, 20240315, "20:00", 2, "940.00", "gomez", ""))
	mock.ExpectQuery("SELECT \\* FROM `med_reg_pico`").
		WillReturnRows(pumpReadingRows().AddRow(102, 1, "140.00", ""))
	mock.ExpectQuery("SELECT \\* FROM `med_reg_tanque`").
		WillReturnRows(tankReadingRows())

	snap, err := store.Snapshot(context.Background(), 5, 20240315)
	require.NoError(t, err)

	require.NotNil(t, snap.PriorClosing)
	assert.Equal(t, 90, snap.PriorClosing.Event.ID)
	assertDec(t, "95.00", snap.PriorClosing.MeterTotal())

	require.NotNil(t, snap.CurrentOpening)
	assert.Equal(t, 101, snap.CurrentOpening.Event.ID)
	require.Len(t, snap.CurrentOpening.Tanks, 1)

	require.NotNil(t, snap.CurrentClosing)
	assert.Equal(t, 102, snap.CurrentClosing.Event.ID)

	// The day's own opening wins over the prior closing as baseline.
	assert.Equal(t, snap.CurrentOpening, snap.OpeningReference())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSnapshot_MissingEventsAreNil(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewMeasurementStore(db)

	mock.ExpectQuery("SELECT \\* FROM `bodega`").
		WillReturnRows(warehouseRows().AddRow(5, 1, "Bodega Norte"))
	mock.ExpectQuery("SELECT \\* FROM `med_inicio_cierre`").WillReturnRows(eventRows())
	mock.ExpectQuery("SELECT \\* FROM `med_inicio_cierre`").WillReturnRows(eventRows())
	mock.ExpectQuery("SELECT \\* FROM `med_inicio_cierre`").WillReturnRows(eventRows())

	snap, err := store.Snapshot(context.Background(), 5, 20240315)
	require.NoError(t, err)
	assert.Nil(t, snap.PriorClosing)
	assert.Nil(t, snap.CurrentOpening)
	assert.Nil(t, snap.CurrentClosing)
	assert.Nil(t, snap.OpeningReference())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSnapshot_FallsBackToPriorClosing(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewMeasurementStore(db)

	mock.ExpectQuery("SELECT \\* FROM `bodega`").
		WillReturnRows(warehouseRows().AddRow(5, 1, "Bodega Norte"))
	mock.ExpectQuery("SELECT \\* FROM `med_inicio_cierre`").
		WillReturnRows(eventRows().AddRow(90, 1, 5, 20240314, "20:05", 2, "800.00", "lopez", ""))
	mock.ExpectQuery("SELECT \\* FROM `med_reg_pico`").
		WillReturnRows(pumpReadingRows().AddRow(90, 1, "95.00", ""))
	mock.ExpectQuery("SELECT \\* FROM `med_reg_tanque`").
		WillReturnRows(tankReadingRows())
	mock.ExpectQuery("SELECT \\* FROM `med_inicio_cierre`").WillReturnRows(eventRows())
	mock.ExpectQuery("SELECT \\* FROM `med_inicio_cierre`").WillReturnRows(eventRows())

	snap, err := store.Snapshot(context.Background(), 5, 20240315)
	require.NoError(t, err)
	assert.Nil(t, snap.CurrentOpening)
	require.NotNil(t, snap.OpeningReference())
	assert.Equal(t, 90, snap.OpeningReference().Event.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreSnapshot_UnknownWarehouse(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewMeasurementStore(db)

	mock.ExpectQuery("SELECT \\* FROM `bodega`").WillReturnRows(warehouseRows())

	_, err := store.Snapshot(context.Background(), 99, 20240315)
	assert.ErrorIs(t, err, ErrWarehouseNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
