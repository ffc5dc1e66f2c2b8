package fleet

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/models"
)

type limitRange struct {
	Lower float64
	Upper float64
}

// loadParameterLimits reads the admin store limits table into a lookup
// keyed by equipment type and canonical parameter name. Keys are
// uppercased so lookups stay insensitive to how rows were imported.
func (f *Fleet) loadParameterLimits() (map[models.EquipmentType]map[string]limitRange, error) {
	var rows []models.ParameterLimit
	if err := f.AdminDB.Conn.Find(&rows).Error; err != nil {
		return nil, err
	}

	limits := make(map[models.EquipmentType]map[string]limitRange)
	for _, row := range rows {
		equipment := models.EquipmentType(strings.ToUpper(strings.TrimSpace(string(row.EquipmentType))))
		parameter := strings.ToUpper(strings.TrimSpace(row.ParameterName))
		if limits[equipment] == nil {
			limits[equipment] = make(map[string]limitRange)
		}
		limits[equipment][parameter] = limitRange{Lower: row.LowerLimit, Upper: row.UpperLimit}
	}
	return limits, nil
}

type recalcRow struct {
	MeasurementID     uint
	ValueNumeric      *float64
	MeasurementDate   time.Time
	SamplingPointID   *uint
	ParameterID       uint
	SamplingPointName string
	ParameterName     string
}

func (f *Fleet) recalculateVesselAlerts(vesselID uint) (*RecalcResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	limits, err := f.loadParameterLimits()
	if err != nil {
		return nil, err
	}

	result := &RecalcResult{}
	if len(limits) == 0 {
		// no limits configured, then no alerts to calculate
		return result, nil
	}

	err = f.VesselDB.Conn.Transaction(func(tx *gorm.DB) error {
		cutoff := time.Now().AddDate(0, 0, -f.Opts.LookbackDays)

		var rows []recalcRow
		err := tx.Table("measurements m").
			Select("m.id AS measurement_id, m.value_numeric, m.measurement_date, m.sampling_point_id, m.parameter_id, sp.name AS sampling_point_name, p.name AS parameter_name").
			Joins("JOIN sampling_points sp ON m.sampling_point_id = sp.id").
			Joins("JOIN parameters p ON m.parameter_id = p.id").
			Where("sp.vessel_id = ? AND m.measurement_date >= ? AND m.value_numeric IS NOT NULL", vesselID, cutoff).
			Order("m.measurement_date DESC").
			Scan(&rows).Error
		if err != nil {
			return err
		}
		result.MeasurementsChecked = len(rows)

		for _, row := range rows {
			equipment := ClassifyEquipment(row.SamplingPointName)
			if equipment == models.EquipmentUnknown {
				continue
			}
			equipmentLimits, ok := limits[equipment]
			if !ok {
				continue
			}
			limit, ok := equipmentLimits[NormalizeParameterName(row.ParameterName)]
			if !ok {
				continue
			}

			value := *row.ValueNumeric
			outOfRange := value < limit.Lower || value > limit.Upper

			// An alert can be created and resolved several times over the
			// life of a measurement, so pin the latest row.
			var existing models.Alert
			findErr := tx.Where("measurement_id = ? AND vessel_id = ?", row.MeasurementID, vesselID).
				Order("id DESC").
				First(&existing).Error
			hasExisting := findErr == nil
			if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
				return findErr
			}

			if outOfRange {
				if hasExisting && existing.ResolvedAt == nil {
					continue
				}
				alertType := models.AlertTypeWarning
				if value < limit.Lower*(1-f.Opts.CriticalFactor) || value > limit.Upper*(1+f.Opts.CriticalFactor) {
					alertType = models.AlertTypeCritical
				}
				alert := models.Alert{
					MeasurementID:   row.MeasurementID,
					VesselID:        vesselID,
					SamplingPointID: row.SamplingPointID,
					ParameterID:     row.ParameterID,
					AlertType:       alertType,
					AlertReason:     fmt.Sprintf("Value %v outside range %v-%v", value, limit.Lower, limit.Upper),
					MeasuredValue:   &value,
					ExpectedLow:     &limit.Lower,
					ExpectedHigh:    &limit.Upper,
					AlertDate:       row.MeasurementDate,
				}
				logger.Info("Alert found", zap.Reflect("alert", alert))
				if err := tx.Create(&alert).Error; err != nil {
					return err
				}
				logger.Info("Alert saved", zap.Reflect("alert", alert))
				result.AlertsCreated++
			} else if hasExisting && existing.ResolvedAt == nil {
				now := time.Now()
				err := tx.Model(&models.Alert{}).Where("id = ?", existing.ID).Updates(map[string]any{
					"resolved_at":      now,
					"resolution_notes": "Auto-resolved: value within new parameter limits",
				}).Error
				if err != nil {
					return err
				}
				logger.Info("Alert resolved", zap.Uint("alertID", existing.ID), zap.Float64("value", value))
				result.AlertsResolved++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Recalculated alerts for vessel",
		zap.Uint("vesselID", vesselID),
		zap.Int("measurementsChecked", result.MeasurementsChecked),
		zap.Int("alertsCreated", result.AlertsCreated),
		zap.Int("alertsResolved", result.AlertsResolved))
	return result, nil
}

func (f *Fleet) getVesselAlerts(vesselID uint, includeResolved bool) ([]AlertDetail, error) {
	query := f.VesselDB.Conn.Table("alerts a").
		Select("a.*, p.name AS parameter_name, p.symbol AS parameter_symbol, sp.name AS sampling_point_name, sp.code AS sampling_point_code").
		Joins("JOIN parameters p ON a.parameter_id = p.id").
		Joins("LEFT JOIN sampling_points sp ON a.sampling_point_id = sp.id").
		Where("a.vessel_id = ?", vesselID)
	if !includeResolved {
		query = query.Where("a.resolved_at IS NULL")
	}

	var alerts []AlertDetail
	err := query.Order("a.alert_date DESC").Limit(100).Scan(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (f *Fleet) acknowledgeAlert(vesselID uint, alertID uint, acknowledgedBy string) error {
	now := time.Now()
	res := f.VesselDB.Conn.Model(&models.Alert{}).
		Where("id = ? AND vessel_id = ?", alertID, vesselID).
		Updates(map[string]any{"acknowledged_by": acknowledgedBy, "acknowledged_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type IAlertImpl struct {
	fleet *Fleet
}

func (a *IAlertImpl) RecalculateVesselAlerts(vesselID uint) (*RecalcResult, error) {
	return a.fleet.recalculateVesselAlerts(vesselID)
}

func (a *IAlertImpl) GetVesselAlerts(vesselID uint, includeResolved bool) ([]AlertDetail, error) {
	return a.fleet.getVesselAlerts(vesselID, includeResolved)
}

func (a *IAlertImpl) AcknowledgeAlert(vesselID uint, alertID uint, acknowledgedBy string) error {
	return a.fleet.acknowledgeAlert(vesselID, alertID, acknowledgedBy)
}

func (f *Fleet) GetIAlert() IAlert {
	return &IAlertImpl{fleet: f}
}
