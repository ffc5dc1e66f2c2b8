package fleet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/models"
)

const measurementDetailColumns = "m.id, m.measurement_date, m.value, m.value_numeric, m.unit, " +
	"m.ideal_low, m.ideal_high, m.ideal_status, m.operator_name, m.comment, " +
	"p.name AS parameter_name, p.symbol AS parameter_symbol, " +
	"sp.code AS sampling_point_code, sp.name AS sampling_point_name"

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// storeFetchedMeasurements lands one batch of Labcom results in the vessel
// store. Rows already present are counted as duplicates, parameters are
// created on first sight, and vendor verdicts outside OKAY raise an alert
// unless the measurement already has one. The whole batch commits or none
// of it does.
func (f *Fleet) storeFetchedMeasurements(vesselID uint, items []FetchedMeasurement) (*StoreResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMeasurement),
	)

	result := &StoreResult{}
	now := time.Now()

	err := f.VesselDB.Conn.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var count int64
			err := tx.Model(&models.Measurement{}).
				Where("labcom_measurement_id = ? AND vessel_id = ?", item.LabcomMeasurementID, vesselID).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				result.Duplicate++
				continue
			}

			parameter, err := ensureParameter(tx, item)
			if err != nil {
				return err
			}

			var pointID *uint
			var point models.SamplingPoint
			err = tx.Where("vessel_id = ? AND labcom_account_id = ?", vesselID, item.LabcomAccountID).
				First(&point).Error
			if err == nil {
				pointID = &point.ID
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			measurement := models.Measurement{
				LabcomMeasurementID: item.LabcomMeasurementID,
				VesselID:            vesselID,
				SamplingPointID:     pointID,
				ParameterID:         parameter.ID,
				Value:               item.Value,
				ValueNumeric:        parseFloat(item.Value),
				Unit:                item.Unit,
				IdealLow:            parseFloat(item.IdealLow),
				IdealHigh:           parseFloat(item.IdealHigh),
				IdealStatus:         item.IdealStatus,
				MeasurementDate:     time.Unix(item.Timestamp, 0),
				OperatorName:        item.OperatorName,
				DeviceSerial:        item.DeviceSerial,
				Comment:             item.Comment,
				IsValid:             1,
				SyncStatus:          "synced",
				FetchedAt:           now,
			}
			if err := tx.Create(&measurement).Error; err != nil {
				return err
			}
			result.New++

			created, err := createVendorStatusAlert(tx, &measurement)
			if err != nil {
				return err
			}
			if created {
				result.Alerts++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Stored fetched measurements for vessel",
		zap.Uint("vesselID", vesselID),
		zap.Int("new", result.New),
		zap.Int("duplicate", result.Duplicate),
		zap.Int("alerts", result.Alerts))
	return result, nil
}

func ensureParameter(tx *gorm.DB, item FetchedMeasurement) (*models.Parameter, error) {
	var parameter models.Parameter
	err := tx.Where("labcom_parameter_id = ?", item.LabcomParameterID).First(&parameter).Error
	if err == nil {
		return &parameter, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name := item.ParameterName
	if name == "" {
		name = fmt.Sprintf("Parameter %d", item.LabcomParameterID)
	}
	parameter = models.Parameter{
		LabcomParameterID: common.Ptr(item.LabcomParameterID),
		Name:              name,
		Unit:              item.Unit,
	}
	if err := tx.Create(&parameter).Error; err != nil {
		return nil, err
	}
	return &parameter, nil
}

// createVendorStatusAlert raises an alert straight from the verdict Labcom
// attached to the measurement. Limits-based recalculation may later stack
// its own alert on top, so this only guards against double-inserting for
// the same measurement.
func createVendorStatusAlert(tx *gorm.DB, m *models.Measurement) (bool, error) {
	status := m.IdealStatus
	if status != models.IdealStatusTooLow && status != models.IdealStatusTooHigh && status != models.IdealStatusCritical {
		return false, nil
	}

	var count int64
	err := tx.Model(&models.Alert{}).Where("measurement_id = ?", m.ID).Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	alertType := models.AlertTypeWarning
	if status == models.IdealStatusCritical {
		alertType = models.AlertTypeCritical
	}
	alert := models.Alert{
		MeasurementID:   m.ID,
		VesselID:        m.VesselID,
		SamplingPointID: m.SamplingPointID,
		ParameterID:     m.ParameterID,
		AlertType:       alertType,
		AlertReason:     strings.ReplaceAll(status, " ", "_"),
		MeasuredValue:   m.ValueNumeric,
		ExpectedLow:     m.IdealLow,
		ExpectedHigh:    m.IdealHigh,
		AlertDate:       m.MeasurementDate,
	}
	if err := tx.Create(&alert).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (f *Fleet) parameterNameCondition(parameterNames []string) *gorm.DB {
	cond := f.VesselDB.Conn.Where("p.name LIKE ?", "%"+parameterNames[0]+"%")
	for _, name := range parameterNames[1:] {
		cond = cond.Or("p.name LIKE ?", "%"+name+"%")
	}
	return cond
}

func (f *Fleet) getMeasurementsByParameterNames(vesselID uint, pointCode string, parameterNames []string, from, to time.Time) ([]MeasurementDetail, error) {
	var point models.SamplingPoint
	err := f.VesselDB.Conn.
		Where("vessel_id = ? AND code = ? AND is_active = 1", vesselID, pointCode).
		First(&point).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []MeasurementDetail{}, nil
	}
	if err != nil {
		return nil, err
	}

	query := f.VesselDB.Conn.Table("measurements m").
		Select(measurementDetailColumns).
		Joins("JOIN parameters p ON m.parameter_id = p.id").
		Joins("JOIN sampling_points sp ON m.sampling_point_id = sp.id").
		Where("m.sampling_point_id = ? AND m.is_valid = 1", point.ID).
		Where("m.measurement_date BETWEEN ? AND ?", from, to)
	if len(parameterNames) > 0 {
		query = query.Where(f.parameterNameCondition(parameterNames))
	}

	var details []MeasurementDetail
	err = query.Order("m.measurement_date ASC, p.name").Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (f *Fleet) getMeasurementsByEquipmentName(vesselID uint, namePattern string, parameterNames []string, from, to time.Time) ([]MeasurementDetail, error) {
	query := f.VesselDB.Conn.Table("measurements m").
		Select(measurementDetailColumns).
		Joins("JOIN parameters p ON m.parameter_id = p.id").
		Joins("JOIN sampling_points sp ON m.sampling_point_id = sp.id").
		Where("sp.vessel_id = ? AND sp.name LIKE ? AND m.is_valid = 1", vesselID, "%"+namePattern+"%").
		Where("m.measurement_date BETWEEN ? AND ?", from, to)
	if len(parameterNames) > 0 {
		query = query.Where(f.parameterNameCondition(parameterNames))
	}

	var details []MeasurementDetail
	err := query.Order("m.measurement_date ASC, p.name").Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

// Scavenge drain points never carry a stable name across installations,
// so the dashboard matches the handful of spellings seen in the field.
func (f *Fleet) getScavengeDrainMeasurements(vesselID uint, parameterNames []string, from, to time.Time) ([]MeasurementDetail, error) {
	query := f.VesselDB.Conn.Table("measurements m").
		Select(measurementDetailColumns).
		Joins("JOIN parameters p ON m.parameter_id = p.id").
		Joins("JOIN sampling_points sp ON m.sampling_point_id = sp.id").
		Where("sp.vessel_id = ? AND m.is_valid = 1", vesselID).
		Where("sp.name LIKE '%Scavenge Drain%' OR sp.name LIKE '%SD0%' OR sp.name LIKE '%Fresh%Oil%'").
		Where("m.measurement_date BETWEEN ? AND ?", from, to)
	if len(parameterNames) > 0 {
		query = query.Where(f.parameterNameCondition(parameterNames))
	}

	var details []MeasurementDetail
	err := query.Order("m.measurement_date ASC, sp.name, p.name").Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (f *Fleet) getLatestSummary(vesselID uint) ([]SummaryRow, error) {
	// SQLite resolves the bare columns against the row that holds the MAX,
	// which is exactly the latest reading per (point, parameter) pair.
	var rows []SummaryRow
	err := f.VesselDB.Conn.Raw(`
		SELECT sp.name AS sampling_point_name, sp.code AS sampling_point_code,
		       p.name AS parameter_name, m.value, m.value_numeric, m.unit,
		       m.ideal_status, MAX(m.measurement_date) AS latest_date
		FROM measurements m
		JOIN sampling_points sp ON m.sampling_point_id = sp.id
		JOIN parameters p ON m.parameter_id = p.id
		WHERE m.vessel_id = ? AND m.is_valid = 1
		GROUP BY sp.id, p.id
		ORDER BY sp.code, p.name`, vesselID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type IMeasurementImpl struct {
	fleet *Fleet
}

func (m *IMeasurementImpl) StoreFetchedMeasurements(vesselID uint, items []FetchedMeasurement) (*StoreResult, error) {
	return m.fleet.storeFetchedMeasurements(vesselID, items)
}

func (m *IMeasurementImpl) GetMeasurementsByParameterNames(vesselID uint, pointCode string, parameterNames []string, from, to time.Time) ([]MeasurementDetail, error) {
	return m.fleet.getMeasurementsByParameterNames(vesselID, pointCode, parameterNames, from, to)
}

func (m *IMeasurementImpl) GetMeasurementsByEquipmentName(vesselID uint, namePattern string, parameterNames []string, from, to time.Time) ([]MeasurementDetail, error) {
	return m.fleet.getMeasurementsByEquipmentName(vesselID, namePattern, parameterNames, from, to)
}

func (m *IMeasurementImpl) GetScavengeDrainMeasurements(vesselID uint, parameterNames []string, from, to time.Time) ([]MeasurementDetail, error) {
	return m.fleet.getScavengeDrainMeasurements(vesselID, parameterNames, from, to)
}

func (m *IMeasurementImpl) GetLatestSummary(vesselID uint) ([]SummaryRow, error) {
	return m.fleet.getLatestSummary(vesselID)
}

func (f *Fleet) GetIMeasurement() IMeasurement {
	return &IMeasurementImpl{fleet: f}
}
