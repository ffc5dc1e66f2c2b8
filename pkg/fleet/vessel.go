package fleet

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/models"
)

// generateVesselToken mints the token a vessel installation presents to
// this service. The prefix makes stray tokens easy to spot in logs.
func generateVesselToken() string {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		panic(err)
	}
	return "acc_" + base64.RawURLEncoding.EncodeToString(raw)
}

func (f *Fleet) listVessels() ([]models.Vessel, error) {
	var vessels []models.Vessel
	err := f.VesselDB.Conn.Order("vessel_name").Find(&vessels).Error
	if err != nil {
		return nil, err
	}
	return vessels, nil
}

func (f *Fleet) getVesselsByIDs(ids []uint) ([]models.Vessel, error) {
	if len(ids) == 0 {
		return []models.Vessel{}, nil
	}
	var vessels []models.Vessel
	err := f.VesselDB.Conn.Where("id IN ?", ids).Order("vessel_name").Find(&vessels).Error
	if err != nil {
		return nil, err
	}
	return vessels, nil
}

func (f *Fleet) getVesselByID(id uint) (*models.Vessel, error) {
	var vessel models.Vessel
	err := f.VesselDB.Conn.First(&vessel, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vessel, nil
}

func (f *Fleet) getVesselByCode(code string) (*models.Vessel, error) {
	var vessel models.Vessel
	err := f.VesselDB.Conn.Where("vessel_id = ?", code).First(&vessel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vessel, nil
}

// listSyncableVessels returns the vessels the datafetcher can poll, which
// is every vessel holding a Labcom token.
func (f *Fleet) listSyncableVessels() ([]models.Vessel, error) {
	var vessels []models.Vessel
	err := f.VesselDB.Conn.
		Where("auth_token IS NOT NULL AND auth_token != ''").
		Order("vessel_name").
		Find(&vessels).Error
	if err != nil {
		return nil, err
	}
	return vessels, nil
}

func (f *Fleet) getSamplingPoints(vesselID uint) ([]models.SamplingPoint, error) {
	var points []models.SamplingPoint
	err := f.VesselDB.Conn.
		Where("vessel_id = ? AND is_active = 1", vesselID).
		Order("code").
		Find(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}

func (f *Fleet) upsertVessel(input *models.Vessel) (*models.Vessel, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryVessel),
	)
	logger.Info("Received vessel upsert", zap.Reflect("vessel", input))

	err := f.VesselDB.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vessel_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"vessel_name", "email", "auth_token", "labcom_account_id", "updated_at"}),
	}).Create(input).Error
	if err != nil {
		return nil, err
	}

	var vessel models.Vessel
	err = f.VesselDB.Conn.Where("vessel_id = ?", input.VesselID).First(&vessel).Error
	if err != nil {
		return nil, err
	}
	logger.Info("Upserted vessel", zap.String("vesselID", vessel.VesselID), zap.Uint("id", vessel.ID))
	return &vessel, nil
}

func (f *Fleet) upsertSamplingPoint(input *models.SamplingPoint) (*models.SamplingPoint, error) {
	err := f.VesselDB.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vessel_id"}, {Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "system_type", "labcom_account_id", "is_active", "updated_at"}),
	}).Create(input).Error
	if err != nil {
		return nil, err
	}

	var point models.SamplingPoint
	err = f.VesselDB.Conn.
		Where("vessel_id = ? AND code = ?", input.VesselID, input.Code).
		First(&point).Error
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func (f *Fleet) createFetchLog(entry *models.FetchLog) error {
	return f.VesselDB.Conn.Create(entry).Error
}

// createVessel registers a vessel and issues its token in one go. The row
// lands in the vessel store and the token in the admin store, so a failed
// token insert rolls the vessel row back by hand.
func (f *Fleet) createVessel(code, name, email string, createdBy uint) (*VesselWithToken, error) {
	vessel := models.Vessel{VesselID: code, VesselName: name, Email: email}
	if err := f.VesselDB.Conn.Create(&vessel).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	authToken := models.VesselAuthToken{
		VesselID:  vessel.ID,
		AuthToken: generateVesselToken(),
		CreatedBy: createdBy,
		IsActive:  1,
	}
	err := f.AdminDB.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&authToken).Error; err != nil {
			return err
		}
		details := fmt.Sprintf("Created vessel: %s (%s)", name, code)
		return writeAudit(tx, createdBy, models.AuditCreateVessel, details, nil, &vessel.ID)
	})
	if err != nil {
		f.VesselDB.Conn.Delete(&models.Vessel{}, vessel.ID)
		return nil, err
	}

	return &VesselWithToken{
		Vessel:         vessel,
		AuthToken:      authToken.AuthToken,
		TokenCreatedAt: &authToken.CreatedAt,
	}, nil
}

func (f *Fleet) adminListVessels() ([]VesselWithToken, error) {
	vessels, err := f.listVessels()
	if err != nil {
		return nil, err
	}

	var tokens []models.VesselAuthToken
	err = f.AdminDB.Conn.Where("is_active = 1").Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	byVessel := make(map[uint]models.VesselAuthToken, len(tokens))
	for _, token := range tokens {
		byVessel[token.VesselID] = token
	}

	merged := make([]VesselWithToken, 0, len(vessels))
	for _, vessel := range vessels {
		entry := VesselWithToken{Vessel: vessel}
		if token, ok := byVessel[vessel.ID]; ok {
			entry.AuthToken = token.AuthToken
			created := token.CreatedAt
			entry.TokenCreatedAt = &created
		}
		merged = append(merged, entry)
	}
	return merged, nil
}

func (f *Fleet) getVesselAuthToken(vesselID uint) (string, error) {
	var token models.VesselAuthToken
	err := f.AdminDB.Conn.
		Where("vessel_id = ? AND is_active = 1", vesselID).
		First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return token.AuthToken, nil
}

func (f *Fleet) getVesselDetail(vesselID uint) (*models.VesselDetail, error) {
	var detail models.VesselDetail
	err := f.AdminDB.Conn.Where("vessel_id = ?", vesselID).First(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// updateVesselDetail replaces the particulars sheet wholesale. Forms
// always submit the full sheet.
func (f *Fleet) updateVesselDetail(vesselID uint, input *models.VesselDetail, updatedBy uint) error {
	return f.AdminDB.Conn.Transaction(func(tx *gorm.DB) error {
		input.VesselID = vesselID
		input.UpdatedByUserID = updatedBy

		var existing models.VesselDetail
		err := tx.Where("vessel_id = ?", vesselID).First(&existing).Error
		switch {
		case err == nil:
			input.ID = existing.ID
			input.CreatedAt = existing.CreatedAt
			if err := tx.Save(input).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(input).Error; err != nil {
				return err
			}
		default:
			return err
		}

		details := fmt.Sprintf("Updated details for vessel %d", vesselID)
		return writeAudit(tx, updatedBy, models.AuditUpdateVesselDetails, details, nil, &vesselID)
	})
}

type IVesselImpl struct {
	fleet *Fleet
}

func (v *IVesselImpl) ListVessels() ([]models.Vessel, error) {
	return v.fleet.listVessels()
}

func (v *IVesselImpl) GetVesselsByIDs(ids []uint) ([]models.Vessel, error) {
	return v.fleet.getVesselsByIDs(ids)
}

func (v *IVesselImpl) GetVesselByID(id uint) (*models.Vessel, error) {
	return v.fleet.getVesselByID(id)
}

func (v *IVesselImpl) GetVesselByCode(code string) (*models.Vessel, error) {
	return v.fleet.getVesselByCode(code)
}

func (v *IVesselImpl) ListSyncableVessels() ([]models.Vessel, error) {
	return v.fleet.listSyncableVessels()
}

func (v *IVesselImpl) GetSamplingPoints(vesselID uint) ([]models.SamplingPoint, error) {
	return v.fleet.getSamplingPoints(vesselID)
}

func (v *IVesselImpl) UpsertVessel(input *models.Vessel) (*models.Vessel, error) {
	return v.fleet.upsertVessel(input)
}

func (v *IVesselImpl) UpsertSamplingPoint(input *models.SamplingPoint) (*models.SamplingPoint, error) {
	return v.fleet.upsertSamplingPoint(input)
}

func (v *IVesselImpl) CreateFetchLog(entry *models.FetchLog) error {
	return v.fleet.createFetchLog(entry)
}

func (v *IVesselImpl) CreateVessel(code, name, email string, createdBy uint) (*VesselWithToken, error) {
	return v.fleet.createVessel(code, name, email, createdBy)
}

func (v *IVesselImpl) AdminListVessels() ([]VesselWithToken, error) {
	return v.fleet.adminListVessels()
}

func (v *IVesselImpl) GetVesselAuthToken(vesselID uint) (string, error) {
	return v.fleet.getVesselAuthToken(vesselID)
}

func (v *IVesselImpl) GetVesselDetail(vesselID uint) (*models.VesselDetail, error) {
	return v.fleet.getVesselDetail(vesselID)
}

func (v *IVesselImpl) UpdateVesselDetail(vesselID uint, input *models.VesselDetail, updatedBy uint) error {
	return v.fleet.updateVesselDetail(vesselID, input, updatedBy)
}

func (f *Fleet) GetIVessel() IVessel {
	return &IVesselImpl{fleet: f}
}
