package fleet

import (
	"time"

	"accuport.cloud/fleet-service/pkg/models"
)

// FetchedMeasurement is one chemical test result as delivered by the
// Labcom backend, before it is matched against local rows.
type FetchedMeasurement struct {
	LabcomMeasurementID int
	LabcomAccountID     int
	LabcomParameterID   int
	ParameterName       string
	Value               string
	Timestamp           int64
	Unit                string
	Comment             string
	IdealLow            string
	IdealHigh           string
	IdealStatus         string
	OperatorName        string
	DeviceSerial        string
}

type StoreResult struct {
	New       int `json:"new"`
	Duplicate int `json:"duplicate"`
	Alerts    int `json:"alerts"`
}

type RecalcResult struct {
	MeasurementsChecked int `json:"measurements_checked"`
	AlertsCreated       int `json:"alerts_created"`
	AlertsResolved      int `json:"alerts_resolved"`
}

type AlertDetail struct {
	models.Alert
	ParameterName     string `json:"parameter_name"`
	ParameterSymbol   string `json:"parameter_symbol"`
	SamplingPointName string `json:"sampling_point_name"`
	SamplingPointCode string `json:"sampling_point_code"`
}

type MeasurementDetail struct {
	ID                uint      `json:"id"`
	MeasurementDate   time.Time `json:"measurement_date"`
	Value             string    `json:"value"`
	ValueNumeric      *float64  `json:"value_numeric"`
	Unit              string    `json:"unit"`
	IdealLow          *float64  `json:"ideal_low"`
	IdealHigh         *float64  `json:"ideal_high"`
	IdealStatus       string    `json:"ideal_status"`
	OperatorName      string    `json:"operator_name"`
	Comment           string    `json:"comment"`
	ParameterName     string    `json:"parameter_name"`
	ParameterSymbol   string    `json:"parameter_symbol"`
	SamplingPointCode string    `json:"sampling_point_code"`
	SamplingPointName string    `json:"sampling_point_name"`
}

// SummaryRow is the latest reading of one parameter at one sampling point.
type SummaryRow struct {
	SamplingPointName string    `json:"sampling_point_name"`
	SamplingPointCode string    `json:"sampling_point_code"`
	ParameterName     string    `json:"parameter_name"`
	Value             string    `json:"value"`
	ValueNumeric      *float64  `json:"value_numeric"`
	Unit              string    `json:"unit"`
	IdealStatus       string    `json:"ideal_status"`
	LatestDate        time.Time `json:"latest_date"`
}

type VesselWithToken struct {
	models.Vessel
	AuthToken      string     `json:"auth_token"`
	TokenCreatedAt *time.Time `json:"token_created_at"`
}

type CreateUserInput struct {
	Username string
	Password string
	FullName string
	Email    string
	Role     models.Role
}

// ManagerOverview lists a vessel manager together with the fleet manager
// currently responsible for them, if any.
type ManagerOverview struct {
	ID                    uint    `json:"id"`
	Username              string  `json:"username"`
	FullName              string  `json:"full_name"`
	Email                 string  `json:"email"`
	IsActive              int     `json:"is_active"`
	CurrentFleetManagerID *uint   `json:"current_fleet_manager_id"`
	CurrentFleetManager   *string `json:"current_fleet_manager"`
}

type AuditEntry struct {
	models.AdminAuditLog
	AdminUsername string `json:"admin_username"`
	AdminName     string `json:"admin_name"`
}
