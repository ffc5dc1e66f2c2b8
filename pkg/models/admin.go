package models

import "time"

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleFleetManager  Role = "fleet_manager"
	RoleVesselManager Role = "vessel_manager"
	RoleVesselUser    Role = "vessel_user"
)

// EquipmentType is the key space of the parameter limits table. The
// classifier in pkg/fleet maps sampling-point names onto these values,
// so new spellings must change both together.
type EquipmentType string

const (
	EquipmentHotwell      EquipmentType = "HOTWELL"
	EquipmentAuxBoilerEGE EquipmentType = "AUX BOILER & EGE"
	EquipmentCoolingWater EquipmentType = "HT & LT COOLING WATER"
	EquipmentPotableWater EquipmentType = "POTABLE WATER"
	EquipmentSewage       EquipmentType = "SEWAGE"
	EquipmentUnknown      EquipmentType = ""
)

const (
	AuditCreateUser          string = "CREATE_USER"
	AuditActivateUser        string = "ACTIVATE_USER"
	AuditDeactivateUser      string = "DEACTIVATE_USER"
	AuditResetPassword       string = "RESET_PASSWORD"
	AuditCreateVessel        string = "CREATE_VESSEL"
	AuditAssignVessel        string = "ASSIGN_VESSEL"
	AuditUnassignVessel      string = "UNASSIGN_VESSEL"
	AuditAssignHierarchy     string = "ASSIGN_HIERARCHY"
	AuditUnassignHierarchy   string = "UNASSIGN_HIERARCHY"
	AuditUpdateLimit         string = "UPDATE_LIMIT"
	AuditDeleteLimit         string = "DELETE_LIMIT"
	AuditUpdateVesselDetails string = "UPDATE_VESSEL_DETAILS"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(100)"`
	Role         Role   `gorm:"type:varchar(20);not null;check:role IN ('vessel_manager','fleet_manager','admin','vessel_user')"`
	IsActive     int    `gorm:"default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLogin    *time.Time
}

// VesselAssignment references vessels.id from the vessel store, so no
// foreign key constraint is possible across the two databases.
type VesselAssignment struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index:idx_user_vessel,unique"`
	VesselID   uint      `gorm:"not null;index:idx_user_vessel,unique"`
	AssignedAt time.Time `gorm:"autoCreateTime"`
}

type ManagerHierarchy struct {
	ID              uint `gorm:"primaryKey"`
	FleetManagerID  uint `gorm:"not null;index:idx_fleet_vessel_mgr,unique"`
	VesselManagerID uint `gorm:"not null;index:idx_fleet_vessel_mgr,unique"`
	CreatedAt       time.Time
}

func (ManagerHierarchy) TableName() string {
	return "manager_hierarchy"
}

type VesselAuthToken struct {
	ID        uint   `gorm:"primaryKey"`
	VesselID  uint   `gorm:"uniqueIndex;not null"`
	AuthToken string `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time
	CreatedBy uint
	IsActive  int `gorm:"default:1"`
}

type AdminAuditLog struct {
	ID             uint   `gorm:"primaryKey"`
	AdminUserID    uint   `gorm:"not null;index"`
	ActionType     string `gorm:"type:varchar(50);not null"`
	ActionDetails  string `gorm:"type:text"`
	TargetUserID   *uint
	TargetVesselID *uint
	CreatedAt      time.Time `gorm:"index"`
}

func (AdminAuditLog) TableName() string {
	return "admin_audit_log"
}

type ParameterLimit struct {
	ID            uint          `gorm:"primaryKey"`
	EquipmentType EquipmentType `gorm:"type:varchar(50);not null;index:idx_equipment_parameter,unique"`
	ParameterName string        `gorm:"type:varchar(100);not null;index:idx_equipment_parameter,unique"`
	LowerLimit    float64       `gorm:"not null"`
	UpperLimit    float64       `gorm:"not null"`
	CreatedAt     time.Time
}

type Session struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// VesselDetail is the equipment specification sheet, one row per vessel.
type VesselDetail struct {
	ID       uint `gorm:"primaryKey"`
	VesselID uint `gorm:"uniqueIndex;not null"`

	VesselName  string `gorm:"type:text"`
	VesselType  string `gorm:"type:text"`
	YearOfBuild int
	IMONumber   string `gorm:"type:text"`
	CompanyName string `gorm:"type:text"`

	ME1Make        string `gorm:"type:text"`
	ME1Model       string `gorm:"type:text"`
	ME1Serial      string `gorm:"type:text"`
	ME1SystemOil   string `gorm:"type:text"`
	ME1CylinderOil string `gorm:"type:text"`
	ME1Fuel1       string `gorm:"type:text"`
	ME1Fuel2       string `gorm:"type:text"`

	ME2Make        string `gorm:"type:text"`
	ME2Model       string `gorm:"type:text"`
	ME2Serial      string `gorm:"type:text"`
	ME2SystemOil   string `gorm:"type:text"`
	ME2CylinderOil string `gorm:"type:text"`
	ME2Fuel1       string `gorm:"type:text"`
	ME2Fuel2       string `gorm:"type:text"`

	AESystemOil string `gorm:"type:text"`
	AEFuel1     string `gorm:"type:text"`
	AEFuel2     string `gorm:"type:text"`

	AE1Make   string `gorm:"type:text"`
	AE1Model  string `gorm:"type:text"`
	AE1Serial string `gorm:"type:text"`
	AE2Make   string `gorm:"type:text"`
	AE2Model  string `gorm:"type:text"`
	AE2Serial string `gorm:"type:text"`
	AE3Make   string `gorm:"type:text"`
	AE3Model  string `gorm:"type:text"`
	AE3Serial string `gorm:"type:text"`

	BoilerSystemOil string `gorm:"type:text"`
	BoilerFuel1     string `gorm:"type:text"`
	BoilerFuel2     string `gorm:"type:text"`

	AB1Make   string `gorm:"type:text"`
	AB1Model  string `gorm:"type:text"`
	AB1Serial string `gorm:"type:text"`
	AB2Make   string `gorm:"type:text"`
	AB2Model  string `gorm:"type:text"`
	AB2Serial string `gorm:"type:text"`
	EGEMake   string `gorm:"type:text"`
	EGEModel  string `gorm:"type:text"`
	EGESerial string `gorm:"type:text"`

	BWTChemicalManufacturer string `gorm:"type:text"`
	BWTChemicalsInUse       string `gorm:"type:text"`
	CWTChemicalManufacturer string `gorm:"type:text"`
	CWTChemicalsInUse       string `gorm:"type:text"`

	BWTSMake   string `gorm:"type:text"`
	BWTSModel  string `gorm:"type:text"`
	BWTSSerial string `gorm:"type:text"`

	EGCSMake   string `gorm:"type:text"`
	EGCSModel  string `gorm:"type:text"`
	EGCSSerial string `gorm:"type:text"`
	EGCSType   string `gorm:"type:text"`

	STPMake     string `gorm:"type:text"`
	STPModel    string `gorm:"type:text"`
	STPSerial   string `gorm:"type:text"`
	STPCapacity string `gorm:"type:text"`

	CreatedAt       time.Time
	UpdatedAt       time.Time
	UpdatedByUserID uint
}
