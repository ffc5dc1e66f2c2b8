package fleet

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/models"
)

func (f *Fleet) listLimits() ([]models.ParameterLimit, error) {
	var limits []models.ParameterLimit
	err := f.AdminDB.Conn.Order("equipment_type, parameter_name").Find(&limits).Error
	if err != nil {
		return nil, err
	}
	return limits, nil
}

// upsertLimit writes one limit row under its canonical uppercase key. The
// evaluator only ever reads uppercased keys, so anything else would be a
// dead row.
func (f *Fleet) upsertLimit(input *models.ParameterLimit, adminUserID uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryLimit),
	)

	input.EquipmentType = models.EquipmentType(strings.ToUpper(strings.TrimSpace(string(input.EquipmentType))))
	input.ParameterName = strings.ToUpper(strings.TrimSpace(input.ParameterName))
	if input.EquipmentType == models.EquipmentUnknown || input.ParameterName == "" {
		return fmt.Errorf("equipment type and parameter name are required")
	}
	if input.LowerLimit > input.UpperLimit {
		return fmt.Errorf("lower limit %v above upper limit %v", input.LowerLimit, input.UpperLimit)
	}

	err := f.AdminDB.Conn.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "equipment_type"}, {Name: "parameter_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"lower_limit", "upper_limit"}),
		}).Create(input).Error
		if err != nil {
			return err
		}
		details := fmt.Sprintf("Set %s / %s to %v-%v",
			input.EquipmentType, input.ParameterName, input.LowerLimit, input.UpperLimit)
		return writeAudit(tx, adminUserID, models.AuditUpdateLimit, details, nil, nil)
	})
	if err != nil {
		return err
	}

	logger.Info("Upserted parameter limit",
		zap.String("equipment", string(input.EquipmentType)),
		zap.String("parameter", input.ParameterName),
		zap.Float64("lower", input.LowerLimit),
		zap.Float64("upper", input.UpperLimit))
	return nil
}

func (f *Fleet) deleteLimit(equipment models.EquipmentType, parameterName string, adminUserID uint) error {
	equipment = models.EquipmentType(strings.ToUpper(strings.TrimSpace(string(equipment))))
	parameterName = strings.ToUpper(strings.TrimSpace(parameterName))

	return f.AdminDB.Conn.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("equipment_type = ? AND parameter_name = ?", equipment, parameterName).
			Delete(&models.ParameterLimit{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		details := fmt.Sprintf("Removed %s / %s", equipment, parameterName)
		return writeAudit(tx, adminUserID, models.AuditDeleteLimit, details, nil, nil)
	})
}

// seedDefaultLimits loads the shipping defaults without touching rows an
// operator has already tuned. Returns how many rows were inserted. Create
// backfills primary keys into its argument, hence the copy.
func (f *Fleet) seedDefaultLimits() (int, error) {
	rows := make([]models.ParameterLimit, len(defaultLimits))
	copy(rows, defaultLimits)

	res := f.AdminDB.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "equipment_type"}, {Name: "parameter_name"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

// Default watch ranges per equipment type, expressed in the canonical
// parameter names the normalizer emits.
var defaultLimits = []models.ParameterLimit{
	{EquipmentType: models.EquipmentAuxBoilerEGE, ParameterName: "PH", LowerLimit: 9.5, UpperLimit: 11.5},
	{EquipmentType: models.EquipmentAuxBoilerEGE, ParameterName: "PHOSPHATE", LowerLimit: 20, UpperLimit: 50},
	{EquipmentType: models.EquipmentAuxBoilerEGE, ParameterName: "ALKALINITY P", LowerLimit: 100, UpperLimit: 300},
	{EquipmentType: models.EquipmentAuxBoilerEGE, ParameterName: "ALKALINITY M", LowerLimit: 150, UpperLimit: 700},
	{EquipmentType: models.EquipmentAuxBoilerEGE, ParameterName: "CHLORIDE", LowerLimit: 0, UpperLimit: 300},
	{EquipmentType: models.EquipmentAuxBoilerEGE, ParameterName: "CONDUCTIVITY", LowerLimit: 0, UpperLimit: 3000},
	{EquipmentType: models.EquipmentAuxBoilerEGE, ParameterName: "HYDRAZINE", LowerLimit: 0.1, UpperLimit: 0.5},
	{EquipmentType: models.EquipmentAuxBoilerEGE, ParameterName: "DEHA", LowerLimit: 0.06, UpperLimit: 0.2},

	{EquipmentType: models.EquipmentHotwell, ParameterName: "PH", LowerLimit: 8.3, UpperLimit: 9.6},
	{EquipmentType: models.EquipmentHotwell, ParameterName: "HYDRAZINE", LowerLimit: 0.1, UpperLimit: 0.5},
	{EquipmentType: models.EquipmentHotwell, ParameterName: "DEHA", LowerLimit: 0.06, UpperLimit: 0.2},

	{EquipmentType: models.EquipmentCoolingWater, ParameterName: "NITRITE", LowerLimit: 1000, UpperLimit: 2400},
	{EquipmentType: models.EquipmentCoolingWater, ParameterName: "PH", LowerLimit: 8.3, UpperLimit: 10},
	{EquipmentType: models.EquipmentCoolingWater, ParameterName: "CHLORIDE", LowerLimit: 0, UpperLimit: 50},
	{EquipmentType: models.EquipmentCoolingWater, ParameterName: "TOTAL HARDNESS", LowerLimit: 0, UpperLimit: 180},

	{EquipmentType: models.EquipmentPotableWater, ParameterName: "PH", LowerLimit: 6.5, UpperLimit: 8.5},
	{EquipmentType: models.EquipmentPotableWater, ParameterName: "FREE CHLORINE", LowerLimit: 0.1, UpperLimit: 0.5},
	{EquipmentType: models.EquipmentPotableWater, ParameterName: "TOTAL HARDNESS", LowerLimit: 0, UpperLimit: 500},
	{EquipmentType: models.EquipmentPotableWater, ParameterName: "TOTAL DISSOLVED SOLIDS", LowerLimit: 0, UpperLimit: 600},
	{EquipmentType: models.EquipmentPotableWater, ParameterName: "TURBIDITY", LowerLimit: 0, UpperLimit: 5},
	{EquipmentType: models.EquipmentPotableWater, ParameterName: "IRON (FE)", LowerLimit: 0, UpperLimit: 0.3},
	{EquipmentType: models.EquipmentPotableWater, ParameterName: "COPPER (CU)", LowerLimit: 0, UpperLimit: 2},
	{EquipmentType: models.EquipmentPotableWater, ParameterName: "CHLORIDE", LowerLimit: 0, UpperLimit: 250},
	{EquipmentType: models.EquipmentPotableWater, ParameterName: "SULPHATE (SO4)", LowerLimit: 0, UpperLimit: 250},
	{EquipmentType: models.EquipmentPotableWater, ParameterName: "NITRITE", LowerLimit: 0, UpperLimit: 3},

	{EquipmentType: models.EquipmentSewage, ParameterName: "PH", LowerLimit: 6, UpperLimit: 8.5},
	{EquipmentType: models.EquipmentSewage, ParameterName: "COD", LowerLimit: 0, UpperLimit: 125},
	{EquipmentType: models.EquipmentSewage, ParameterName: "BOD", LowerLimit: 0, UpperLimit: 25},
	{EquipmentType: models.EquipmentSewage, ParameterName: "FREE CHLORINE", LowerLimit: 0, UpperLimit: 0.5},
	{EquipmentType: models.EquipmentSewage, ParameterName: "TOTAL SUSPENDED SOLIDS", LowerLimit: 0, UpperLimit: 35},
}

type ILimitImpl struct {
	fleet *Fleet
}

func (l *ILimitImpl) ListLimits() ([]models.ParameterLimit, error) {
	return l.fleet.listLimits()
}

func (l *ILimitImpl) UpsertLimit(input *models.ParameterLimit, adminUserID uint) error {
	return l.fleet.upsertLimit(input, adminUserID)
}

func (l *ILimitImpl) DeleteLimit(equipment models.EquipmentType, parameterName string, adminUserID uint) error {
	return l.fleet.deleteLimit(equipment, parameterName, adminUserID)
}

func (l *ILimitImpl) SeedDefaultLimits() (int, error) {
	return l.fleet.seedDefaultLimits()
}

func (f *Fleet) GetILimit() ILimit {
	return &ILimitImpl{fleet: f}
}
