package fleet

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/models"
	_ "accuport.cloud/fleet-service/pkg/testing"
)

func TestCreateVesselIssuesToken(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	code := uuid.NewString()
	created, err := fleetObj.Vessel.CreateVessel(code, "MV Tay", "chief@mvtay.example", 1)
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, code, created.VesselID)
	assert.True(t, strings.HasPrefix(created.AuthToken, "acc_"))
	assert.NotNil(t, created.TokenCreatedAt)

	token, err := fleetObj.Vessel.GetVesselAuthToken(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.AuthToken, token)

	var entry models.AdminAuditLog
	err = fleetObj.AdminDB.Conn.
		Where("action_type = ? AND target_vessel_id = ?", models.AuditCreateVessel, created.ID).
		First(&entry).Error
	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Created vessel: MV Tay (%s)", code), entry.ActionDetails)
	assert.Equal(t, uint(1), entry.AdminUserID)
}

func TestCreateVesselDuplicateCode(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	code := uuid.NewString()
	_, err := fleetObj.Vessel.CreateVessel(code, "MV Don", "", 1)
	assert.NoError(t, err)

	_, err = fleetObj.Vessel.CreateVessel(code, "MV Don Again", "", 1)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUpsertVesselInsertsThenUpdates(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	code := uuid.NewString()
	first, err := fleetObj.Vessel.UpsertVessel(&models.Vessel{
		VesselID:   code,
		VesselName: "MV Dee",
		Email:      "old@example.com",
	})
	assert.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := fleetObj.Vessel.UpsertVessel(&models.Vessel{
		VesselID:   code,
		VesselName: "MV Dee Renamed",
		Email:      "new@example.com",
		AuthToken:  "labcom-token",
	})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "MV Dee Renamed", second.VesselName)
	assert.Equal(t, "new@example.com", second.Email)
	assert.Equal(t, "labcom-token", second.AuthToken)
}

func TestUpsertSamplingPointInsertsThenUpdates(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	vessel := models.Vessel{VesselID: uuid.NewString(), VesselName: "MV Esk"}
	assert.NoError(t, fleetObj.VesselDB.Conn.Create(&vessel).Error)

	first, err := fleetObj.Vessel.UpsertSamplingPoint(&models.SamplingPoint{
		VesselID:        vessel.ID,
		Code:            "HW",
		Name:            "HW Hotwell",
		LabcomAccountID: common.Ptr(8101),
		IsActive:        1,
	})
	assert.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := fleetObj.Vessel.UpsertSamplingPoint(&models.SamplingPoint{
		VesselID:        vessel.ID,
		Code:            "HW",
		Name:            "HW Hotwell No.1",
		LabcomAccountID: common.Ptr(8101),
		IsActive:        1,
	})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "HW Hotwell No.1", second.Name)
}

func TestListSyncableVessels(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	withToken := models.Vessel{VesselID: uuid.NewString(), VesselName: "MV Ness", AuthToken: "labcom-" + uuid.NewString()}
	assert.NoError(t, fleetObj.VesselDB.Conn.Create(&withToken).Error)
	withoutToken := models.Vessel{VesselID: uuid.NewString(), VesselName: "MV Nairn"}
	assert.NoError(t, fleetObj.VesselDB.Conn.Create(&withoutToken).Error)

	vessels, err := fleetObj.Vessel.ListSyncableVessels()
	assert.NoError(t, err)

	codes := make(map[string]bool, len(vessels))
	for _, vessel := range vessels {
		codes[vessel.VesselID] = true
	}
	assert.True(t, codes[withToken.VesselID])
	assert.False(t, codes[withoutToken.VesselID])
}

func TestAdminListVesselsMergesTokens(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	tokened, err := fleetObj.Vessel.CreateVessel(uuid.NewString(), "MV Leven", "", 1)
	assert.NoError(t, err)
	plain := models.Vessel{VesselID: uuid.NewString(), VesselName: "MV Lossie"}
	assert.NoError(t, fleetObj.VesselDB.Conn.Create(&plain).Error)

	entries, err := fleetObj.Vessel.AdminListVessels()
	assert.NoError(t, err)

	byCode := make(map[string]VesselWithToken, len(entries))
	for _, entry := range entries {
		byCode[entry.VesselID] = entry
	}
	assert.Equal(t, tokened.AuthToken, byCode[tokened.VesselID].AuthToken)
	assert.Equal(t, "", byCode[plain.VesselID].AuthToken)
	assert.Nil(t, byCode[plain.VesselID].TokenCreatedAt)
}

func TestGetVesselAuthTokenMissing(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	vessel := models.Vessel{VesselID: uuid.NewString(), VesselName: "MV Ythan"}
	assert.NoError(t, fleetObj.VesselDB.Conn.Create(&vessel).Error)

	_, err := fleetObj.Vessel.GetVesselAuthToken(vessel.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetVesselByCode(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	code := uuid.NewString()
	vessel := models.Vessel{VesselID: code, VesselName: "MV Findhorn"}
	assert.NoError(t, fleetObj.VesselDB.Conn.Create(&vessel).Error)

	found, err := fleetObj.Vessel.GetVesselByCode(code)
	assert.NoError(t, err)
	assert.Equal(t, vessel.ID, found.ID)

	_, err = fleetObj.Vessel.GetVesselByCode(uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVesselDetailLifecycle(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	vessel := models.Vessel{VesselID: uuid.NewString(), VesselName: "MV Spey"}
	assert.NoError(t, fleetObj.VesselDB.Conn.Create(&vessel).Error)

	_, err := fleetObj.Vessel.GetVesselDetail(vessel.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = fleetObj.Vessel.UpdateVesselDetail(vessel.ID, &models.VesselDetail{
		VesselName: "MV Spey",
		VesselType: "Bulk Carrier",
		IMONumber:  "9876543",
		ME1Make:    "MAN B&W",
	}, 7)
	assert.NoError(t, err)

	detail, err := fleetObj.Vessel.GetVesselDetail(vessel.ID)
	assert.NoError(t, err)
	assert.Equal(t, "9876543", detail.IMONumber)
	assert.Equal(t, "MAN B&W", detail.ME1Make)
	assert.Equal(t, uint(7), detail.UpdatedByUserID)

	// Second submit replaces the sheet in place
	err = fleetObj.Vessel.UpdateVesselDetail(vessel.ID, &models.VesselDetail{
		VesselName: "MV Spey",
		VesselType: "Bulk Carrier",
		IMONumber:  "9876544",
	}, 7)
	assert.NoError(t, err)

	updated, err := fleetObj.Vessel.GetVesselDetail(vessel.ID)
	assert.NoError(t, err)
	assert.Equal(t, detail.ID, updated.ID)
	assert.Equal(t, "9876544", updated.IMONumber)
	assert.Equal(t, "", updated.ME1Make)

	var count int64
	err = fleetObj.AdminDB.Conn.Model(&models.AdminAuditLog{}).
		Where("action_type = ? AND target_vessel_id = ?", models.AuditUpdateVesselDetails, vessel.ID).
		Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
