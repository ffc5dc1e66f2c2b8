package models

import "time"

type AlertType string

const (
	AlertTypeWarning  AlertType = "warning"
	AlertTypeCritical AlertType = "critical"
)

// Vendor verdicts carried on measurements as fetched from Labcom.
const (
	IdealStatusOkay     string = "OKAY"
	IdealStatusTooLow   string = "TOO LOW"
	IdealStatusTooHigh  string = "TOO HIGH"
	IdealStatusCritical string = "CRITICAL"
)

const (
	FetchStatusSuccess string = "success"
	FetchStatusFailed  string = "failed"
	FetchStatusPartial string = "partial"
)

type Vessel struct {
	ID              uint   `gorm:"primaryKey"`
	VesselID        string `gorm:"type:varchar(50);uniqueIndex;not null"`
	VesselName      string `gorm:"type:varchar(100);not null"`
	Email           string `gorm:"type:varchar(100)"`
	LabcomAccountID int
	AuthToken       string `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	SamplingPoints []SamplingPoint `gorm:"foreignKey:VesselID;references:ID"`
	Measurements   []Measurement   `gorm:"foreignKey:VesselID;references:ID"`
	Alerts         []Alert         `gorm:"foreignKey:VesselID;references:ID"`
	FetchLogs      []FetchLog      `gorm:"foreignKey:VesselID;references:ID"`
}

type SamplingPoint struct {
	ID                  uint   `gorm:"primaryKey"`
	VesselID            uint   `gorm:"not null;index:idx_vessel_code,unique;index:idx_vessel_labcom,unique"`
	Code                string `gorm:"type:varchar(10);not null;index:idx_vessel_code,unique"`
	Name                string `gorm:"type:varchar(100);not null"`
	SystemType          string `gorm:"type:varchar(50)"`
	Description         string `gorm:"type:text"`
	LabcomAccountID     *int   `gorm:"index;index:idx_vessel_labcom,unique"`
	IsActive            int    `gorm:"default:1"`
	LocationDescription string `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Parameter struct {
	ID                uint   `gorm:"primaryKey"`
	LabcomParameterID *int   `gorm:"uniqueIndex"`
	Name              string `gorm:"type:varchar(100);not null"`
	Symbol            string `gorm:"type:varchar(20)"`
	Unit              string `gorm:"type:varchar(50)"`
	IdealLow          *float64
	IdealHigh         *float64
	Category          string `gorm:"type:varchar(50)"`
	Criticality       string `gorm:"type:varchar(20)"`
	Description       string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Measurement struct {
	ID                  uint      `gorm:"primaryKey"`
	LabcomMeasurementID int       `gorm:"index"`
	VesselID            uint      `gorm:"not null;index"`
	SamplingPointID     *uint     `gorm:"index"`
	ParameterID         uint      `gorm:"not null;index"`
	Value               string    `gorm:"type:varchar(50);not null"`
	ValueNumeric        *float64
	Unit                string    `gorm:"type:varchar(50)"`
	IdealLow            *float64
	IdealHigh           *float64
	IdealStatus         string    `gorm:"type:varchar(20)"`
	MeasurementDate     time.Time `gorm:"not null;index"`
	OperatorName        string    `gorm:"type:varchar(100)"`
	DeviceSerial        string    `gorm:"type:varchar(100)"`
	Comment             string    `gorm:"type:text"`
	IsValid             int       `gorm:"default:1"`
	SyncStatus          string    `gorm:"type:varchar(20);default:synced"`
	FetchedAt           time.Time
	CreatedAt           time.Time
}

type Alert struct {
	ID              uint      `gorm:"primaryKey"`
	MeasurementID   uint      `gorm:"not null;index"`
	VesselID        uint      `gorm:"not null;index"`
	SamplingPointID *uint     `gorm:"index"`
	ParameterID     uint      `gorm:"not null;index"`
	AlertType       AlertType `gorm:"type:varchar(20);not null;check:alert_type IN ('warning','critical')"`
	AlertReason     string    `gorm:"type:varchar(50)"`
	MeasuredValue   *float64
	ExpectedLow     *float64
	ExpectedHigh    *float64
	AlertDate       time.Time `gorm:"not null;index"`
	AcknowledgedBy  string    `gorm:"type:varchar(100)"`
	AcknowledgedAt  *time.Time
	ResolvedAt      *time.Time `gorm:"index"`
	ResolutionNotes string     `gorm:"type:text"`
	CreatedAt       time.Time
}

type FetchLog struct {
	ID                    uint      `gorm:"primaryKey"`
	VesselID              uint      `gorm:"index"`
	FetchStart            time.Time `gorm:"not null"`
	FetchEnd              *time.Time
	Status                string `gorm:"type:varchar(20)"`
	MeasurementsFetched   int    `gorm:"default:0"`
	MeasurementsNew       int    `gorm:"default:0"`
	MeasurementsDuplicate int    `gorm:"default:0"`
	DateRangeFrom         *time.Time
	DateRangeTo           *time.Time
	ErrorMessage          string `gorm:"type:text"`
	CreatedAt             time.Time
}
