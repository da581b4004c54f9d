package models

import "github.com/shopspring/decimal"

// Measurement event kinds as stored in med_inicio_cierre.tipo.
const (
	KindOpening = 1
	KindClosing = 2
)

// Branch is a sucursal, the grouping unit a reconciliation request targets.
type Branch struct {
	ID          int    `gorm:"column:id_sucursal;primaryKey" json:"id_sucursal"`
	Description string `gorm:"column:descripcion" json:"descripcion"`
}

func (Branch) TableName() string { return "sucursal" }

// Warehouse is a bodega: one fuel depot fed by dispenser pumps.
type Warehouse struct {
	ID          int    `gorm:"column:id_bod;primaryKey" json:"id_bod"`
	BranchID    int    `gorm:"column:id_sucursal" json:"id_sucursal"`
	Description string `gorm:"column:descripcion" json:"descripcion"`
}

func (Warehouse) TableName() string { return "bodega" }

// Tank belongs to a warehouse; capacities sum to the warehouse capacity.
type Tank struct {
	ID             int             `gorm:"column:id_tanque;primaryKey" json:"id_tanque"`
	WarehouseID    int             `gorm:"column:id_bodega" json:"id_bodega"`
	Description    string          `gorm:"column:descripcion_tanque" json:"descripcion_tanque"`
	CapacityLiters decimal.Decimal `gorm:"column:capacidad_litros;type:decimal(12,2)" json:"capacidad_litros"`
}

func (Tank) TableName() string { return "tanque" }

// Pump is a dispenser nozzle with a cumulative flow totalizer.
type Pump struct {
	ID          int    `gorm:"column:id_pico;primaryKey" json:"id_pico"`
	Description string `gorm:"column:descripcion" json:"descripcion"`
}

func (Pump) TableName() string { return "pico_surtidor" }

// MeasurementEvent is an opening or closing snapshot of a warehouse-day.
// Liters is an operator input; the engine never recomputes it from the
// event's tank readings, the two may legitimately diverge.
type MeasurementEvent struct {
	ID          int             `gorm:"column:id_med;primaryKey" json:"id_med"`
	BranchID    int             `gorm:"column:id_suc" json:"id_suc"`
	WarehouseID int             `gorm:"column:id_bod" json:"id_bod"`
	Date        int             `gorm:"column:fecha" json:"fecha"`
	Hora        string          `gorm:"column:hora" json:"hora"`
	Kind        int             `gorm:"column:tipo" json:"tipo"`
	Liters      decimal.Decimal `gorm:"column:litros;type:decimal(12,2)" json:"litros"`
	Operator    string          `gorm:"column:operador" json:"operador"`
	Observation string          `gorm:"column:observacion" json:"observacion"`
}

func (MeasurementEvent) TableName() string { return "med_inicio_cierre" }

// PumpReading is one pump's totalizer value at a measurement event.
// The photo columns are opaque attachment references.
type PumpReading struct {
	EventID        int             `gorm:"column:id_med" json:"id_med"`
	PumpID         int             `gorm:"column:id_pico" json:"id_pico"`
	Totalizer      decimal.Decimal `gorm:"column:taxilitro;type:decimal(14,2)" json:"taxilitro"`
	PhotoTotalizer string          `gorm:"column:foto_taxilitro" json:"foto_taxilitro"`
}

func (PumpReading) TableName() string { return "med_reg_pico" }

// TankReading is one tank's dip-derived level at a measurement event.
type TankReading struct {
	EventID     int             `gorm:"column:id_med" json:"id_med"`
	TankID      int             `gorm:"column:id_tanque" json:"id_tanque"`
	Liters      decimal.Decimal `gorm:"column:litros;type:decimal(12,2)" json:"litros"`
	Temperature decimal.Decimal `gorm:"column:temperatura;type:decimal(5,2)" json:"temperatura"`
	PhotoTank   string          `gorm:"column:foto_tanque" json:"foto_tanque"`
}

func (TankReading) TableName() string { return "med_reg_tanque" }

// CalibrationHeader groups the pump totalizer adjustments of one
// warehouse-day (seal replacements and similar non-sale movements).
type CalibrationHeader struct {
	ID          int `gorm:"column:id;primaryKey" json:"id"`
	WarehouseID int `gorm:"column:bodega" json:"bodega"`
	Date        int `gorm:"column:fecha_hora" json:"fecha_hora"`
}

func (CalibrationHeader) TableName() string { return "calibracion_pico_cabecera" }

// CalibrationDetail holds one pump's totalizer value before and after a
// deliberate adjustment.
type CalibrationDetail struct {
	ID              int             `gorm:"column:id;primaryKey" json:"id"`
	HeaderID        int             `gorm:"column:cabecera_id" json:"cabecera_id"`
	PumpID          int             `gorm:"column:id_pico" json:"id_pico"`
	TotalizerBefore decimal.Decimal `gorm:"column:taxilitro_inicial;type:decimal(14,2)" json:"taxilitro_inicial"`
	TotalizerAfter  decimal.Decimal `gorm:"column:taxilitro_final;type:decimal(14,2)" json:"taxilitro_final"`
}

func (CalibrationDetail) TableName() string { return "calibracion_pico_detalle" }

// Transfer moves fuel between two warehouses. The destination side is
// tracked by tank dip delta, the origin side by pump totalizer delta.
type Transfer struct {
	ID                int             `gorm:"column:id_traspaso;primaryKey" json:"id_traspaso"`
	OriginID          int             `gorm:"column:bod_origen" json:"bod_origen"`
	DestinationID     int             `gorm:"column:bod_destino" json:"bod_destino"`
	Date              int             `gorm:"column:fecha" json:"fecha"`
	TankLitersInitial decimal.Decimal `gorm:"column:litros_tanque_inicial;type:decimal(12,2)" json:"litros_tanque_inicial"`
	TankLitersFinal   decimal.Decimal `gorm:"column:litros_tanque_final;type:decimal(12,2)" json:"litros_tanque_final"`
	TotalizerInitial  decimal.Decimal `gorm:"column:taxilitro_inicial;type:decimal(14,2)" json:"taxilitro_inicial"`
	TotalizerFinal    decimal.Decimal `gorm:"column:taxilitro_final;type:decimal(14,2)" json:"taxilitro_final"`
}

func (Transfer) TableName() string { return "traspaso" }

// Dispatch is one customer sale through a pump.
type Dispatch struct {
	ID          int             `gorm:"column:id_ticket;primaryKey" json:"id_ticket"`
	WarehouseID int             `gorm:"column:id_bod" json:"id_bod"`
	PumpID      int             `gorm:"column:id_pico" json:"id_pico"`
	Date        int             `gorm:"column:fecha" json:"fecha"`
	Liters      decimal.Decimal `gorm:"column:litros;type:decimal(12,2)" json:"litros"`
}

func (Dispatch) TableName() string { return "ticket_surtidor" }

// Restock is an external fuel delivery. The totalizer pair records the
// delivery crew's meter movement; its delta ("zeta") explains totalizer
// drift that did not match the nominal delivered volume.
type Restock struct {
	ID               int             `gorm:"column:id_repos;primaryKey" json:"id_repos"`
	WarehouseID      int             `gorm:"column:id_bod" json:"id_bod"`
	Date             int             `gorm:"column:fecha" json:"fecha"`
	Hora             string          `gorm:"column:hora" json:"hora"`
	Liters           decimal.Decimal `gorm:"column:litros_total_repos;type:decimal(12,2)" json:"litros_total_repos"`
	TotalizerInitial decimal.Decimal `gorm:"column:taxilitro_inicial;type:decimal(14,2)" json:"taxilitro_inicial"`
	TotalizerFinal   decimal.Decimal `gorm:"column:taxilitro_final;type:decimal(14,2)" json:"taxilitro_final"`
}

func (Restock) TableName() string { return "repos_surtidor" }
