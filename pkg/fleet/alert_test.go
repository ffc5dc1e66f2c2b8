package fleet

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/models"
	_ "accuport.cloud/fleet-service/pkg/testing"
)

func seedVesselMeasurement(t *testing.T, fleetObj *Fleet, pointName, parameterName string, value float64) (uint, uint) {
	t.Helper()

	vessel := models.Vessel{VesselID: uuid.NewString(), VesselName: "MV Clyde"}
	err := fleetObj.VesselDB.Conn.Create(&vessel).Error
	assert.NoError(t, err)

	point := models.SamplingPoint{VesselID: vessel.ID, Code: "AB1", Name: pointName}
	err = fleetObj.VesselDB.Conn.Create(&point).Error
	assert.NoError(t, err)

	parameter := models.Parameter{Name: parameterName}
	err = fleetObj.VesselDB.Conn.Create(&parameter).Error
	assert.NoError(t, err)

	measurement := models.Measurement{
		VesselID:        vessel.ID,
		SamplingPointID: &point.ID,
		ParameterID:     parameter.ID,
		Value:           strconv.FormatFloat(value, 'f', -1, 64),
		ValueNumeric:    &value,
		MeasurementDate: time.Now().Add(-time.Hour),
		IsValid:         1,
	}
	err = fleetObj.VesselDB.Conn.Create(&measurement).Error
	assert.NoError(t, err)

	return vessel.ID, measurement.ID
}

func seedLimit(t *testing.T, fleetObj *Fleet, equipment models.EquipmentType, parameterName string, lower, upper float64) {
	t.Helper()
	limit := models.ParameterLimit{
		EquipmentType: equipment,
		ParameterName: parameterName,
		LowerLimit:    lower,
		UpperLimit:    upper,
	}
	err := fleetObj.AdminDB.Conn.Create(&limit).Error
	assert.NoError(t, err)
}

func TestRecalculateVesselAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)
	seedLimit(t, fleetObj, models.EquipmentAuxBoilerEGE, "PH", 9.5, 11.5)

	// pH reads high at the aux boiler, above range but below the
	// critical band
	vesselID, measurementID := seedVesselMeasurement(t, fleetObj, "AB1 Aux Boiler 1", "pH", 12.0)

	result, err := fleetObj.Alert.RecalculateVesselAlerts(vesselID)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.MeasurementsChecked)
	assert.Equal(t, 1, result.AlertsCreated)
	assert.Equal(t, 0, result.AlertsResolved)

	alerts, err := fleetObj.Alert.GetVesselAlerts(vesselID, false)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, measurementID, alerts[0].MeasurementID)
	assert.Equal(t, models.AlertTypeWarning, alerts[0].AlertType)
	assert.Equal(t, "Value 12 outside range 9.5-11.5", alerts[0].AlertReason)
	assert.Equal(t, 9.5, *alerts[0].ExpectedLow)
	assert.Equal(t, 11.5, *alerts[0].ExpectedHigh)
	assert.Equal(t, 12.0, *alerts[0].MeasuredValue)
}

func TestRecalculateVesselAlertsCritical(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)
	seedLimit(t, fleetObj, models.EquipmentAuxBoilerEGE, "PH", 9.5, 11.5)

	// 20.0 clears upper * 1.5, which makes it critical
	vesselID, _ := seedVesselMeasurement(t, fleetObj, "AB1 Aux Boiler 1", "pH", 20.0)

	result, err := fleetObj.Alert.RecalculateVesselAlerts(vesselID)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.AlertsCreated)

	alerts, err := fleetObj.Alert.GetVesselAlerts(vesselID, false)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeCritical, alerts[0].AlertType)
}

func TestRecalculateVesselAlertsNoLimits(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)

	vesselID, _ := seedVesselMeasurement(t, fleetObj, "AB1 Aux Boiler 1", "pH", 20.0)

	// No limits configured, so nothing is evaluated
	result, err := fleetObj.Alert.RecalculateVesselAlerts(vesselID)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.MeasurementsChecked)
	assert.Equal(t, 0, result.AlertsCreated)

	alerts, err := fleetObj.Alert.GetVesselAlerts(vesselID, false)
	assert.NoError(t, err)
	assert.Len(t, alerts, 0)
}

func TestRecalculateVesselAlertsUnknownEquipment(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)
	seedLimit(t, fleetObj, models.EquipmentAuxBoilerEGE, "PH", 9.5, 11.5)

	// Scavenge drain points map to no equipment type and are skipped
	vesselID, _ := seedVesselMeasurement(t, fleetObj, "SD1 Main Engine Unit 1 Scavenge Drain", "pH", 999.0)

	result, err := fleetObj.Alert.RecalculateVesselAlerts(vesselID)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.MeasurementsChecked)
	assert.Equal(t, 0, result.AlertsCreated)

	alerts, err := fleetObj.Alert.GetVesselAlerts(vesselID, false)
	assert.NoError(t, err)
	assert.Len(t, alerts, 0)
}

func TestRecalculateVesselAlertsIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)
	seedLimit(t, fleetObj, models.EquipmentAuxBoilerEGE, "PH", 9.5, 11.5)

	vesselID, _ := seedVesselMeasurement(t, fleetObj, "AB1 Aux Boiler 1", "pH", 12.0)

	result, err := fleetObj.Alert.RecalculateVesselAlerts(vesselID)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.AlertsCreated)

	// Second run sees the open alert and leaves it alone
	result, err = fleetObj.Alert.RecalculateVesselAlerts(vesselID)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.AlertsCreated)
	assert.Equal(t, 0, result.AlertsResolved)

	alerts, err := fleetObj.Alert.GetVesselAlerts(vesselID, true)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestRecalculateVesselAlertsResolvesAndReopens(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)
	seedLimit(t, fleetObj, models.EquipmentAuxBoilerEGE, "PH", 9.5, 11.5)

	vesselID, measurementID := seedVesselMeasurement(t, fleetObj, "AB1 Aux Boiler 1", "pH", 12.0)

	result, err := fleetObj.Alert.RecalculateVesselAlerts(vesselID)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.AlertsCreated)

	// Widen the range so the reading is back in bounds
	err = fleetObj.AdminDB.Conn.Model(&models.ParameterLimit{}).
		Where("equipment_type = ? AND parameter_name = ?", models.EquipmentAuxBoilerEGE, "PH").
		Update("upper_limit", 13.0).Error
	assert.NoError(t, err)

	result, err = fleetObj.Alert.RecalculateVesselAlerts(vesselID)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.AlertsCreated)
	assert.Equal(t, 1, result.AlertsResolved)

	var resolved models.Alert
	err = fleetObj.VesselDB.Conn.
		Where("measurement_id = ?", measurementID).
		Order("id DESC").First(&resolved).Error
	assert.NoError(t, err)
	assert.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, "Auto-resolved: value within new parameter limits", resolved.ResolutionNotes)

	// Tighten the range again and a fresh alert row appears
	err = fleetObj.AdminDB.Conn.Model(&models.ParameterLimit{}).
		Where("equipment_type = ? AND parameter_name = ?", models.EquipmentAuxBoilerEGE, "PH").
		Update("upper_limit", 11.5).Error
	assert.NoError(t, err)

	result, err = fleetObj.Alert.RecalculateVesselAlerts(vesselID)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.AlertsCreated)
	assert.Equal(t, 0, result.AlertsResolved)

	var count int64
	err = fleetObj.VesselDB.Conn.Model(&models.Alert{}).
		Where("measurement_id = ?", measurementID).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRecalculateVesselAlertsNormalizesParameterName(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)
	seedLimit(t, fleetObj, models.EquipmentAuxBoilerEGE, "ALKALINITY P", 100, 300)

	// The vendor spelling still hits the canonical limit key
	vesselID, _ := seedVesselMeasurement(t, fleetObj, "AB1 Aux Boiler 1", "P-Alkalinity (HR tab)", 50.0)

	result, err := fleetObj.Alert.RecalculateVesselAlerts(vesselID)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.AlertsCreated)

	alerts, err := fleetObj.Alert.GetVesselAlerts(vesselID, false)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "Value 50 outside range 100-300", alerts[0].AlertReason)
}

func TestRecalculateVesselAlerts_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)
	seedLimit(t, fleetObj, models.EquipmentAuxBoilerEGE, "PH", 9.5, 11.5)

	vesselID, _ := seedVesselMeasurement(t, fleetObj, "AB1 Aux Boiler 1", "pH", 12.0)

	result, err := fleetObj.Alert.RecalculateVesselAlerts(vesselID)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.AlertsCreated)

	logs := ParseLogs(buf)

	{
		found := false
		for _, log := range logs {
			lobj := log.(map[string]any)
			if lobj["category"] == "alert" &&
				lobj["logger"] == "fleet_core" &&
				lobj["msg"] == "Alert found" &&
				lobj["alert"].(map[string]any)["VesselID"] == float64(vesselID) &&
				lobj["alert"].(map[string]any)["AlertType"] == "warning" &&
				lobj["alert"].(map[string]any)["AlertReason"] == "Value 12 outside range 9.5-11.5" {
				found = true
			}
		}
		assert.True(t, found)
	}

	{
		found := false
		for _, log := range logs {
			lobj := log.(map[string]any)
			if lobj["category"] == "alert" &&
				lobj["logger"] == "fleet_core" &&
				lobj["msg"] == "Alert saved" &&
				lobj["alert"].(map[string]any)["VesselID"] == float64(vesselID) &&
				lobj["alert"].(map[string]any)["AlertType"] == "warning" {
				found = true
			}
		}
		assert.True(t, found)
	}
}

func TestGetVesselAlertsJoinsPointAndParameter(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)
	seedLimit(t, fleetObj, models.EquipmentHotwell, "HYDRAZINE", 0.1, 0.5)

	vesselID, _ := seedVesselMeasurement(t, fleetObj, "HW Hotwell", "Hydrazine", 0.9)

	_, err := fleetObj.Alert.RecalculateVesselAlerts(vesselID)
	assert.NoError(t, err)

	alerts, err := fleetObj.Alert.GetVesselAlerts(vesselID, false)
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, "HW Hotwell", alerts[0].SamplingPointName)
	assert.Equal(t, "AB1", alerts[0].SamplingPointCode)
	assert.Equal(t, "Hydrazine", alerts[0].ParameterName)
}

func TestAcknowledgeAlert(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	clearLimits(t, fleetObj)
	seedLimit(t, fleetObj, models.EquipmentAuxBoilerEGE, "PH", 9.5, 11.5)

	vesselID, measurementID := seedVesselMeasurement(t, fleetObj, "AB1 Aux Boiler 1", "pH", 12.0)

	_, err := fleetObj.Alert.RecalculateVesselAlerts(vesselID)
	assert.NoError(t, err)

	var alert models.Alert
	err = fleetObj.VesselDB.Conn.Where("measurement_id = ?", measurementID).First(&alert).Error
	assert.NoError(t, err)

	err = fleetObj.Alert.AcknowledgeAlert(vesselID, alert.ID, "chief.engineer")
	assert.NoError(t, err)

	err = fleetObj.VesselDB.Conn.First(&alert, alert.ID).Error
	assert.NoError(t, err)
	assert.Equal(t, "chief.engineer", alert.AcknowledgedBy)
	assert.NotNil(t, alert.AcknowledgedAt)

	err = fleetObj.Alert.AcknowledgeAlert(vesselID, 99999999, "chief.engineer")
	assert.ErrorIs(t, err, ErrNotFound)
}
