package fleet

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/models"
	_ "accuport.cloud/fleet-service/pkg/testing"
)

// seedUserRow inserts a user directly, bypassing the bcrypt work that
// CreateUser does. Tests that do not exercise the password path use this.
func seedUserRow(t *testing.T, fleetObj *Fleet, role models.Role) *models.User {
	t.Helper()
	user := models.User{
		Username:     uuid.NewString(),
		PasswordHash: "not-a-hash",
		FullName:     "Seed " + uuid.NewString()[:8],
		Role:         role,
		IsActive:     1,
	}
	err := fleetObj.AdminDB.Conn.Create(&user).Error
	assert.NoError(t, err)
	return &user
}

func seedVesselRow(t *testing.T, fleetObj *Fleet) *models.Vessel {
	t.Helper()
	vessel := models.Vessel{VesselID: uuid.NewString(), VesselName: "MV Seed"}
	err := fleetObj.VesselDB.Conn.Create(&vessel).Error
	assert.NoError(t, err)
	return &vessel
}

func TestCreateUserGeneratesPassword(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	username := uuid.NewString()
	user, password, err := fleetObj.User.CreateUser(CreateUserInput{
		Username: username,
		FullName: "Alex Morrison",
		Email:    "alex@example.com",
		Role:     models.RoleVesselManager,
	}, 1)
	assert.NoError(t, err)
	assert.Len(t, password, 12)
	assert.True(t, checkPassword(user.PasswordHash, password))
	assert.Equal(t, 1, user.IsActive)

	var entry models.AdminAuditLog
	err = fleetObj.AdminDB.Conn.
		Where("action_type = ? AND target_user_id = ?", models.AuditCreateUser, user.ID).
		First(&entry).Error
	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Created vessel_manager: %s", username), entry.ActionDetails)
}

func TestCreateUserWithSuppliedPassword(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	user, password, err := fleetObj.User.CreateUser(CreateUserInput{
		Username: uuid.NewString(),
		Password: "chosen-by-admin",
		FullName: "Sam Petrov",
		Role:     models.RoleVesselUser,
	}, 1)
	assert.NoError(t, err)
	assert.Equal(t, "chosen-by-admin", password)
	assert.True(t, checkPassword(user.PasswordHash, "chosen-by-admin"))
	assert.NotEqual(t, "chosen-by-admin", user.PasswordHash)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	input := CreateUserInput{
		Username: uuid.NewString(),
		FullName: "First In",
		Role:     models.RoleVesselUser,
	}
	_, _, err := fleetObj.User.CreateUser(input, 1)
	assert.NoError(t, err)

	_, _, err = fleetObj.User.CreateUser(input, 1)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateUserInvalidRole(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	_, _, err := fleetObj.User.CreateUser(CreateUserInput{
		Username: uuid.NewString(),
		FullName: "No Such Role",
		Role:     models.Role("captain"),
	}, 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid role")
}

func TestSetUserStatus(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	user := seedUserRow(t, fleetObj, models.RoleVesselUser)

	err := fleetObj.User.SetUserStatus(user.ID, false, 1)
	assert.NoError(t, err)
	reloaded, err := fleetObj.User.GetUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, reloaded.IsActive)

	err = fleetObj.User.SetUserStatus(user.ID, true, 1)
	assert.NoError(t, err)
	reloaded, err = fleetObj.User.GetUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, reloaded.IsActive)

	var count int64
	err = fleetObj.AdminDB.Conn.Model(&models.AdminAuditLog{}).
		Where("action_type = ? AND target_user_id = ?", models.AuditDeactivateUser, user.ID).
		Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	err = fleetObj.User.SetUserStatus(99999999, false, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResetPassword(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()

	user, oldPassword, err := fleetObj.User.CreateUser(CreateUserInput{
		Username: uuid.NewString(),
		FullName: "Reset Target",
		Role:     models.RoleVesselManager,
	}, 1)
	assert.NoError(t, err)

	reset, newPassword, err := fleetObj.User.ResetPassword(user.ID, 1)
	assert.NoError(t, err)
	assert.Len(t, newPassword, 12)
	assert.NotEqual(t, oldPassword, newPassword)

	reloaded, err := fleetObj.User.GetUserByID(user.ID)
	assert.NoError(t, err)
	assert.True(t, checkPassword(reloaded.PasswordHash, newPassword))
	assert.False(t, checkPassword(reloaded.PasswordHash, oldPassword))

	var entry models.AdminAuditLog
	err = fleetObj.AdminDB.Conn.
		Where("action_type = ? AND target_user_id = ?", models.AuditResetPassword, user.ID).
		First(&entry).Error
	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Reset password for: %s", reset.Username), entry.ActionDetails)

	_, _, err = fleetObj.User.ResetPassword(99999999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssignAndUnassignVessel(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	user := seedUserRow(t, fleetObj, models.RoleVesselUser)
	vessel := seedVesselRow(t, fleetObj)

	err := fleetObj.User.AssignVessel(user.ID, vessel.ID, 1)
	assert.NoError(t, err)

	err = fleetObj.User.AssignVessel(user.ID, vessel.ID, 1)
	assert.ErrorIs(t, err, ErrDuplicate)

	ids, err := fleetObj.User.GetUserVessels(user.ID, user.Role)
	assert.NoError(t, err)
	assert.Equal(t, []uint{vessel.ID}, ids)

	err = fleetObj.User.UnassignVessel(user.ID, vessel.ID, 1)
	assert.NoError(t, err)

	err = fleetObj.User.UnassignVessel(user.ID, vessel.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssignManagerReassignsInPlace(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	firstFM := seedUserRow(t, fleetObj, models.RoleFleetManager)
	secondFM := seedUserRow(t, fleetObj, models.RoleFleetManager)
	vm := seedUserRow(t, fleetObj, models.RoleVesselManager)

	err := fleetObj.User.AssignManager(firstFM.ID, vm.ID, 1)
	assert.NoError(t, err)

	// Handing the manager to another fleet manager moves the one row
	err = fleetObj.User.AssignManager(secondFM.ID, vm.ID, 1)
	assert.NoError(t, err)

	var rows []models.ManagerHierarchy
	err = fleetObj.AdminDB.Conn.Where("vessel_manager_id = ?", vm.ID).Find(&rows).Error
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, secondFM.ID, rows[0].FleetManagerID)

	var entry models.AdminAuditLog
	err = fleetObj.AdminDB.Conn.
		Where("action_type = ? AND target_user_id = ? AND action_details LIKE ?",
			models.AuditAssignHierarchy, vm.ID, "Reassigned%").
		First(&entry).Error
	assert.NoError(t, err)
	expected := fmt.Sprintf("Reassigned vessel manager %d from fleet manager %d to fleet manager %d",
		vm.ID, firstFM.ID, secondFM.ID)
	assert.Equal(t, expected, entry.ActionDetails)

	subordinates, err := fleetObj.User.GetSubordinateManagers(secondFM.ID)
	assert.NoError(t, err)
	assert.Len(t, subordinates, 1)
	assert.Equal(t, vm.ID, subordinates[0].ID)

	err = fleetObj.User.UnassignManager(secondFM.ID, vm.ID, 1)
	assert.NoError(t, err)
	err = fleetObj.User.UnassignManager(secondFM.ID, vm.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListVesselManagers(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	fm := seedUserRow(t, fleetObj, models.RoleFleetManager)
	assigned := seedUserRow(t, fleetObj, models.RoleVesselManager)
	unassigned := seedUserRow(t, fleetObj, models.RoleVesselManager)

	err := fleetObj.User.AssignManager(fm.ID, assigned.ID, 1)
	assert.NoError(t, err)

	overviews, err := fleetObj.User.ListVesselManagers()
	assert.NoError(t, err)

	byUsername := make(map[string]ManagerOverview, len(overviews))
	for _, overview := range overviews {
		byUsername[overview.Username] = overview
	}

	withFM, ok := byUsername[assigned.Username]
	assert.True(t, ok)
	assert.NotNil(t, withFM.CurrentFleetManagerID)
	assert.Equal(t, fm.ID, *withFM.CurrentFleetManagerID)
	assert.NotNil(t, withFM.CurrentFleetManager)
	assert.Equal(t, fm.FullName, *withFM.CurrentFleetManager)

	withoutFM, ok := byUsername[unassigned.Username]
	assert.True(t, ok)
	assert.Nil(t, withoutFM.CurrentFleetManagerID)
}

func TestGetUserVesselsByRole(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	vesselA := seedVesselRow(t, fleetObj)
	vesselB := seedVesselRow(t, fleetObj)
	vesselC := seedVesselRow(t, fleetObj)

	vesselUser := seedUserRow(t, fleetObj, models.RoleVesselUser)
	vm := seedUserRow(t, fleetObj, models.RoleVesselManager)
	fm := seedUserRow(t, fleetObj, models.RoleFleetManager)
	admin := seedUserRow(t, fleetObj, models.RoleAdmin)

	assert.NoError(t, fleetObj.User.AssignVessel(vesselUser.ID, vesselA.ID, 1))
	assert.NoError(t, fleetObj.User.AssignVessel(vm.ID, vesselB.ID, 1))
	assert.NoError(t, fleetObj.User.AssignVessel(fm.ID, vesselC.ID, 1))
	assert.NoError(t, fleetObj.User.AssignManager(fm.ID, vm.ID, 1))

	ids, err := fleetObj.User.GetUserVessels(vesselUser.ID, models.RoleVesselUser)
	assert.NoError(t, err)
	assert.Equal(t, []uint{vesselA.ID}, ids)

	ids, err = fleetObj.User.GetUserVessels(vm.ID, models.RoleVesselManager)
	assert.NoError(t, err)
	assert.Equal(t, []uint{vesselB.ID}, ids)

	// Fleet manager inherits the vessel manager's assignment on top of
	// their own
	ids, err = fleetObj.User.GetUserVessels(fm.ID, models.RoleFleetManager)
	assert.NoError(t, err)
	assert.Equal(t, []uint{vesselB.ID, vesselC.ID}, ids)

	ids, err = fleetObj.User.GetUserVessels(admin.ID, models.RoleAdmin)
	assert.NoError(t, err)
	assert.Contains(t, ids, vesselA.ID)
	assert.Contains(t, ids, vesselB.ID)
	assert.Contains(t, ids, vesselC.ID)

	ok, err := fleetObj.User.CanAccessVessel(vesselUser, vesselA.ID)
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = fleetObj.User.CanAccessVessel(vesselUser, vesselB.ID)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestGetAuditLog(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	admin := seedUserRow(t, fleetObj, models.RoleAdmin)
	target := seedUserRow(t, fleetObj, models.RoleVesselUser)

	assert.NoError(t, fleetObj.User.SetUserStatus(target.ID, false, admin.ID))
	assert.NoError(t, fleetObj.User.SetUserStatus(target.ID, true, admin.ID))
	_, _, err := fleetObj.User.ResetPassword(target.ID, admin.ID)
	assert.NoError(t, err)

	entries, err := fleetObj.User.GetAuditLog(10, admin.ID, "")
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	// Newest first
	assert.Equal(t, models.AuditResetPassword, entries[0].ActionType)
	assert.Equal(t, admin.Username, entries[0].AdminUsername)
	assert.Equal(t, admin.FullName, entries[0].AdminName)

	entries, err = fleetObj.User.GetAuditLog(10, admin.ID, models.AuditResetPassword)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
