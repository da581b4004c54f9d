package reconcile

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumRow(values ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"sum"})
	switch len(values) {
	case 1:
		rows.AddRow(values[0])
	case 2:
		rows = sqlmock.NewRows([]string{"sum_a", "sum_b"}).AddRow(values[0], values[1])
	}
	return rows
}

func TestCollectorDispatches(t *testing.T) {
	db, mock := setupMockDB(t)
	collector := NewMovementCollector(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(litros\\), 0\\) FROM `ticket_surtidor` WHERE id_bod = \\? AND fecha = \\?").
		WillReturnRows(sumRow("300.00"))

	total, err := collector.Dispatches(context.Background(), 5, 20240315)
	require.NoError(t, err)
	assertDec(t, "300.00", total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectorDispatches_EmptyDayIsZero(t *testing.T) {
	db, mock := setupMockDB(t)
	collector := NewMovementCollector(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(litros\\), 0\\) FROM `ticket_surtidor`").
		WillReturnRows(sumRow("0"))

	total, err := collector.Dispatches(context.Background(), 5, 20240315)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectorRestocks(t *testing.T) {
	db, mock := setupMockDB(t)
	collector := NewMovementCollector(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(litros_total_repos\\), 0\\), COALESCE\\(SUM\\(taxilitro_final - taxilitro_inicial\\), 0\\) FROM `repos_surtidor`").
		WillReturnRows(sumRow("500.00", "1.25"))

	sums, err := collector.Restocks(context.Background(), 5, 20240315)
	require.NoError(t, err)
	assertDec(t, "500.00", sums.Liters)
	assertDec(t, "1.25", sums.Zeta)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectorTransfersOut_UsesMeterDelta(t *testing.T) {
	db, mock := setupMockDB(t)
	collector := NewMovementCollector(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(taxilitro_final - taxilitro_inicial\\), 0\\) FROM `traspaso` WHERE bod_origen = \\? AND fecha = \\?").
		WillReturnRows(sumRow("120.00"))

	total, err := collector.TransfersOut(context.Background(), 5, 20240315)
	require.NoError(t, err)
	assertDec(t, "120.00", total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectorTransfersIn_UsesTankDelta(t *testing.T) {
	db, mock := setupMockDB(t)
	collector := NewMovementCollector(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(litros_tanque_final - litros_tanque_inicial\\), 0\\) FROM `traspaso` WHERE bod_destino = \\? AND fecha = \\?").
		WillReturnRows(sumRow("118.50"))

	total, err := collector.TransfersIn(context.Background(), 5, 20240315)
	require.NoError(t, err)
	assertDec(t, "118.50", total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectorCalibrations_JoinsHeader(t *testing.T) {
	db, mock := setupMockDB(t)
	collector := NewMovementCollector(db)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(calibracion_pico_detalle.taxilitro_final - calibracion_pico_detalle.taxilitro_inicial\\), 0\\) FROM `calibracion_pico_detalle` JOIN calibracion_pico_cabecera cc ON cc.id = calibracion_pico_detalle.cabecera_id WHERE cc.bodega = \\? AND cc.fecha_hora = \\?").
		WillReturnRows(sumRow("-0.75"))

	total, err := collector.Calibrations(context.Background(), 5, 20240315)
	require.NoError(t, err)
	assertDec(t, "-0.75", total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
