package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/models"
	_ "accuport.cloud/fleet-service/pkg/testing"
)

func TestUpsertLimit(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)

	// Keys are canonicalized to uppercase on the way in
	err := fleetObj.Limit.UpsertLimit(&models.ParameterLimit{
		EquipmentType: models.EquipmentType("aux boiler & ege"),
		ParameterName: "ph",
		LowerLimit:    9.0,
		UpperLimit:    11.0,
	}, 1)
	assert.NoError(t, err)

	limits, err := fleetObj.Limit.ListLimits()
	assert.NoError(t, err)
	assert.Len(t, limits, 1)
	assert.Equal(t, models.EquipmentAuxBoilerEGE, limits[0].EquipmentType)
	assert.Equal(t, "PH", limits[0].ParameterName)
	assert.Equal(t, 9.0, limits[0].LowerLimit)

	// Same key again updates in place
	err = fleetObj.Limit.UpsertLimit(&models.ParameterLimit{
		EquipmentType: models.EquipmentAuxBoilerEGE,
		ParameterName: "PH",
		LowerLimit:    9.5,
		UpperLimit:    11.5,
	}, 1)
	assert.NoError(t, err)

	limits, err = fleetObj.Limit.ListLimits()
	assert.NoError(t, err)
	assert.Len(t, limits, 1)
	assert.Equal(t, 9.5, limits[0].LowerLimit)
	assert.Equal(t, 11.5, limits[0].UpperLimit)

	var entry models.AdminAuditLog
	err = fleetObj.AdminDB.Conn.
		Where("action_type = ? AND action_details = ?",
			models.AuditUpdateLimit, "Set AUX BOILER & EGE / PH to 9.5-11.5").
		First(&entry).Error
	assert.NoError(t, err)
}

func TestUpsertLimitValidation(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)

	err := fleetObj.Limit.UpsertLimit(&models.ParameterLimit{
		EquipmentType: models.EquipmentUnknown,
		ParameterName: "PH",
	}, 1)
	assert.Error(t, err)

	err = fleetObj.Limit.UpsertLimit(&models.ParameterLimit{
		EquipmentType: models.EquipmentSewage,
		ParameterName: "",
	}, 1)
	assert.Error(t, err)

	err = fleetObj.Limit.UpsertLimit(&models.ParameterLimit{
		EquipmentType: models.EquipmentSewage,
		ParameterName: "PH",
		LowerLimit:    5,
		UpperLimit:    2,
	}, 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "lower limit 5 above upper limit 2")
}

func TestDeleteLimit(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)

	err := fleetObj.Limit.UpsertLimit(&models.ParameterLimit{
		EquipmentType: models.EquipmentHotwell,
		ParameterName: "HYDRAZINE",
		LowerLimit:    0.1,
		UpperLimit:    0.5,
	}, 1)
	assert.NoError(t, err)

	err = fleetObj.Limit.DeleteLimit(models.EquipmentType("hotwell"), "hydrazine", 1)
	assert.NoError(t, err)

	limits, err := fleetObj.Limit.ListLimits()
	assert.NoError(t, err)
	assert.Len(t, limits, 0)

	err = fleetObj.Limit.DeleteLimit(models.EquipmentHotwell, "HYDRAZINE", 1)
	assert.ErrorIs(t, err, ErrNotFound)

	var entry models.AdminAuditLog
	err = fleetObj.AdminDB.Conn.
		Where("action_type = ? AND action_details = ?",
			models.AuditDeleteLimit, "Removed HOTWELL / HYDRAZINE").
		First(&entry).Error
	assert.NoError(t, err)
}

func TestSeedDefaultLimits(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)

	inserted, err := fleetObj.Limit.SeedDefaultLimits()
	assert.NoError(t, err)
	assert.Equal(t, len(defaultLimits), inserted)

	// An operator-tuned row survives a re-seed untouched
	err = fleetObj.Limit.UpsertLimit(&models.ParameterLimit{
		EquipmentType: models.EquipmentAuxBoilerEGE,
		ParameterName: "PH",
		LowerLimit:    9.0,
		UpperLimit:    12.0,
	}, 1)
	assert.NoError(t, err)

	inserted, err = fleetObj.Limit.SeedDefaultLimits()
	assert.NoError(t, err)
	assert.Equal(t, 0, inserted)

	var tuned models.ParameterLimit
	err = fleetObj.AdminDB.Conn.
		Where("equipment_type = ? AND parameter_name = ?", models.EquipmentAuxBoilerEGE, "PH").
		First(&tuned).Error
	assert.NoError(t, err)
	assert.Equal(t, 9.0, tuned.LowerLimit)
	assert.Equal(t, 12.0, tuned.UpperLimit)
}

func TestListLimitsOrdering(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)

	err := fleetObj.Limit.UpsertLimit(&models.ParameterLimit{
		EquipmentType: models.EquipmentSewage,
		ParameterName: "PH",
		LowerLimit:    6,
		UpperLimit:    8.5,
	}, 1)
	assert.NoError(t, err)
	err = fleetObj.Limit.UpsertLimit(&models.ParameterLimit{
		EquipmentType: models.EquipmentAuxBoilerEGE,
		ParameterName: "DEHA",
		LowerLimit:    0.06,
		UpperLimit:    0.2,
	}, 1)
	assert.NoError(t, err)

	limits, err := fleetObj.Limit.ListLimits()
	assert.NoError(t, err)
	assert.Len(t, limits, 2)
	assert.Equal(t, models.EquipmentAuxBoilerEGE, limits[0].EquipmentType)
	assert.Equal(t, models.EquipmentSewage, limits[1].EquipmentType)
}
