package measurement

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"playero-reconciler/core/storage"
	"playero-reconciler/core/utils"
	"playero-reconciler/feature/reconcile"

	"github.com/minio/minio-go/v7"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// photoPrefix is where the field-capture app uploads measurement photos.
const photoPrefix = "shared/"

// Service assembles the measurement detail of one warehouse-day.
type Service struct {
	store  *reconcile.MeasurementStore
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new measurement service.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		store:  reconcile.NewMeasurementStore(db),
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// PumpDetail is one pump reading with its inlined photo evidence.
type PumpDetail struct {
	PumpID    int             `json:"id_pico"`
	Totalizer decimal.Decimal `json:"taxilitro"`
	Photo     string          `json:"foto_taxilitro,omitempty"`
}

// TankDetail is one tank reading with its inlined photo evidence.
type TankDetail struct {
	TankID      int             `json:"id_tanque"`
	Liters      decimal.Decimal `json:"litros"`
	Temperature decimal.Decimal `json:"temperatura"`
	Photo       string          `json:"foto_tanque,omitempty"`
}

// EventDetail is one measurement event with its readings.
type EventDetail struct {
	EventID     int             `json:"id_med"`
	Date        int             `json:"fecha"`
	DateLabel   string          `json:"Fecha1"`
	Hora        string          `json:"hora"`
	Liters      decimal.Decimal `json:"litros"`
	Operator    string          `json:"operador"`
	Observation string          `json:"observacion"`
	Pumps       []PumpDetail    `json:"picos"`
	Tanks       []TankDetail    `json:"tanques"`
}

// DayDetail is the full measurement picture of one warehouse-day.
type DayDetail struct {
	WarehouseID int          `json:"id_bod"`
	Warehouse   string       `json:"bodega"`
	Date        int          `json:"fecha"`
	Opening     *EventDetail `json:"medicion_inicial"`
	Closing     *EventDetail `json:"medicion_final"`
}

// DayDetail returns the warehouse-day's opening and closing measurements.
// Missing events are reported as nulls; only a missing warehouse is an
// error (reconcile.ErrWarehouseNotFound).
func (s *Service) DayDetail(ctx context.Context, warehouseID, date int) (*DayDetail, error) {
	if !utils.ValidDate(date) {
		return nil, fmt.Errorf("invalid date %d, expected YYYYMMDD", date)
	}

	warehouse, err := s.store.Warehouse(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	snap, err := s.store.Snapshot(ctx, warehouseID, date)
	if err != nil {
		return nil, err
	}

	detail := &DayDetail{
		WarehouseID: warehouse.ID,
		Warehouse:   warehouse.Description,
		Date:        date,
	}
	detail.Opening = s.eventDetail(ctx, snap.CurrentOpening)
	detail.Closing = s.eventDetail(ctx, snap.CurrentClosing)
	return detail, nil
}

func (s *Service) eventDetail(ctx context.Context, snap *reconcile.EventSnapshot) *EventDetail {
	if snap == nil {
		return nil
	}

	detail := &EventDetail{
		EventID:     snap.Event.ID,
		Date:        snap.Event.Date,
		DateLabel:   utils.FormatDate(snap.Event.Date),
		Hora:        snap.Event.Hora,
		Liters:      snap.Event.Liters,
		Operator:    snap.Event.Operator,
		Observation: snap.Event.Observation,
		Pumps:       make([]PumpDetail, 0, len(snap.Pumps)),
		Tanks:       make([]TankDetail, 0, len(snap.Tanks)),
	}

	for _, p := range snap.Pumps {
		detail.Pumps = append(detail.Pumps, PumpDetail{
			PumpID:    p.PumpID,
			Totalizer: p.Totalizer,
			Photo:     s.fetchPhoto(ctx, p.PhotoTotalizer),
		})
	}
	for _, t := range snap.Tanks {
		detail.Tanks = append(detail.Tanks, TankDetail{
			TankID:      t.TankID,
			Liters:      t.Liters,
			Temperature: t.Temperature,
			Photo:       s.fetchPhoto(ctx, t.PhotoTank),
		})
	}
	return detail
}

// fetchPhoto loads an attachment from object storage and base64-encodes it.
// A missing or unreadable object degrades to an empty attachment; the photo
// is evidence, not part of the measurement itself.
func (s *Service) fetchPhoto(ctx context.Context, name string) string {
	if name == "" {
		return ""
	}

	obj, err := s.client.GetObject(ctx, s.bucket, photoPrefix+name, minio.GetObjectOptions{})
	if err != nil {
		s.logger.Debug("measurement photo unavailable", zap.String("object", name), zap.Error(err))
		return ""
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		s.logger.Debug("measurement photo unreadable", zap.String("object", name), zap.Error(err))
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}
