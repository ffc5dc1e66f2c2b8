package fleet

import (
	"errors"
	"strings"
	"time"

	"accuport.cloud/fleet-service/pkg/db"
	"accuport.cloud/fleet-service/pkg/models"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrSessionExpired     = errors.New("session expired")
)

type IAlert interface {
	RecalculateVesselAlerts(vesselID uint) (*RecalcResult, error)
	GetVesselAlerts(vesselID uint, includeResolved bool) ([]AlertDetail, error)
	AcknowledgeAlert(vesselID uint, alertID uint, acknowledgedBy string) error
}

type IMeasurement interface {
	StoreFetchedMeasurements(vesselID uint, items []FetchedMeasurement) (*StoreResult, error)
	GetMeasurementsByParameterNames(vesselID uint, pointCode string, parameterNames []string, from, to time.Time) ([]MeasurementDetail, error)
	GetMeasurementsByEquipmentName(vesselID uint, namePattern string, parameterNames []string, from, to time.Time) ([]MeasurementDetail, error)
	GetScavengeDrainMeasurements(vesselID uint, parameterNames []string, from, to time.Time) ([]MeasurementDetail, error)
	GetLatestSummary(vesselID uint) ([]SummaryRow, error)
}

type IVessel interface {
	ListVessels() ([]models.Vessel, error)
	GetVesselsByIDs(ids []uint) ([]models.Vessel, error)
	GetVesselByID(id uint) (*models.Vessel, error)
	GetVesselByCode(code string) (*models.Vessel, error)
	ListSyncableVessels() ([]models.Vessel, error)
	GetSamplingPoints(vesselID uint) ([]models.SamplingPoint, error)
	UpsertVessel(input *models.Vessel) (*models.Vessel, error)
	UpsertSamplingPoint(input *models.SamplingPoint) (*models.SamplingPoint, error)
	CreateFetchLog(entry *models.FetchLog) error
	CreateVessel(code, name, email string, createdBy uint) (*VesselWithToken, error)
	AdminListVessels() ([]VesselWithToken, error)
	GetVesselAuthToken(vesselID uint) (string, error)
	GetVesselDetail(vesselID uint) (*models.VesselDetail, error)
	UpdateVesselDetail(vesselID uint, input *models.VesselDetail, updatedBy uint) error
}

type IUser interface {
	CreateUser(input CreateUserInput, createdBy uint) (*models.User, string, error)
	ListUsers(roleFilter models.Role) ([]models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	SetUserStatus(userID uint, active bool, adminUserID uint) error
	ResetPassword(userID uint, adminUserID uint) (*models.User, string, error)
	AssignVessel(userID, vesselID, assignedBy uint) error
	UnassignVessel(userID, vesselID, unassignedBy uint) error
	AssignManager(fleetManagerID, vesselManagerID, assignedBy uint) error
	UnassignManager(fleetManagerID, vesselManagerID, unassignedBy uint) error
	GetSubordinateManagers(fleetManagerID uint) ([]models.User, error)
	ListVesselManagers() ([]ManagerOverview, error)
	GetAuditLog(limit int, adminUserID uint, actionType string) ([]AuditEntry, error)
	GetUserVessels(userID uint, role models.Role) ([]uint, error)
	CanAccessVessel(user *models.User, vesselID uint) (bool, error)
}

type IAuth interface {
	Login(username, password string) (*models.User, string, error)
	Logout(token string) error
	GetSessionUser(token string) (*models.User, error)
}

type ILimit interface {
	ListLimits() ([]models.ParameterLimit, error)
	UpsertLimit(input *models.ParameterLimit, adminUserID uint) error
	DeleteLimit(equipment models.EquipmentType, parameterName string, adminUserID uint) error
	SeedDefaultLimits() (int, error)
}

// Options carries the tunables of the alert evaluator and the session layer.
type Options struct {
	LookbackDays   int
	CriticalFactor float64
	SessionTTL     time.Duration
}

func DefaultOptions() Options {
	return Options{
		LookbackDays:   90,
		CriticalFactor: 0.5,
		SessionTTL:     8 * time.Hour,
	}
}

type Fleet struct {
	VesselDB db.DB
	AdminDB  db.DB
	Opts     Options

	Alert       IAlert
	Measurement IMeasurement
	Vessel      IVessel
	User        IUser
	Auth        IAuth
	Limit       ILimit
}

type ServiceOpts struct {
	Alert       IAlert
	Measurement IMeasurement
	Vessel      IVessel
	User        IUser
	Auth        IAuth
	Limit       ILimit
}

func (f *Fleet) WithServices(opts ServiceOpts) *Fleet {
	if opts.Alert != nil {
		f.Alert = opts.Alert
	}
	if opts.Measurement != nil {
		f.Measurement = opts.Measurement
	}
	if opts.Vessel != nil {
		f.Vessel = opts.Vessel
	}
	if opts.User != nil {
		f.User = opts.User
	}
	if opts.Auth != nil {
		f.Auth = opts.Auth
	}
	if opts.Limit != nil {
		f.Limit = opts.Limit
	}
	return f
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
