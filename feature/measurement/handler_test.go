package measurement

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"playero-reconciler/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, sqlmock.Sqlmock) {
	app := fiber.New()
	db, sqlMock := setupMockDB(t)
	mockClient := new(mocks.Client)
	logger := zap.NewNop()
	svc := NewService(db, mockClient, "test-bucket", logger)
	handler := NewHandler(svc, logger)
	handler.RegisterRoutes(app)
	return app, mockClient, sqlMock
}

func TestHandleDayDetail_BadParams(t *testing.T) {
	app, _, _ := setupTestApp(t)

	for _, path := range []string{
		"/mediciones/abc/20240315",
		"/mediciones/0/20240315",
		"/mediciones/5/not-a-date",
	} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "path %s", path)
	}
}

func TestHandleDayDetail_WarehouseNotFound(t *testing.T) {
	app, _, sqlMock := setupTestApp(t)

	sqlMock.ExpectQuery("SELECT \\* FROM `bodega`").
		WillReturnRows(sqlmock.NewRows([]string{"id_bod", "id_sucursal", "descripcion"}))

	req := httptest.NewRequest("GET", "/mediciones/99/20240315", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestHandleDayDetail_EmptyDay(t *testing.T) {
	app, _, sqlMock := setupTestApp(t)

	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id_bod", "id_sucursal", "descripcion"}).
			AddRow(5, 1, "Bodega Norte")
	}
	sqlMock.ExpectQuery("SELECT \\* FROM `bodega`").WillReturnRows(rows())
	sqlMock.ExpectQuery("SELECT \\* FROM `bodega`").WillReturnRows(rows())

	events := []string{"id_med", "id_suc", "id_bod", "fecha", "hora", "tipo", "litros", "operador", "observacion"}
	sqlMock.ExpectQuery("SELECT \\* FROM `med_inicio_cierre`").WillReturnRows(sqlmock.NewRows(events))
	sqlMock.ExpectQuery("SELECT \\* FROM `med_inicio_cierre`").WillReturnRows(sqlmock.NewRows(events))
	sqlMock.ExpectQuery("SELECT \\* FROM `med_inicio_cierre`").WillReturnRows(sqlmock.NewRows(events))

	req := httptest.NewRequest("GET", "/mediciones/5/20240315", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(5), body["id_bod"])
	assert.Equal(t, "Bodega Norte", body["bodega"])
	assert.Nil(t, body["medicion_inicial"])
	assert.Nil(t, body["medicion_final"])
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
