package fleet

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/models"
	_ "accuport.cloud/fleet-service/pkg/testing"
)

func seedLoginUser(t *testing.T, fleetObj *Fleet, password string) *models.User {
	t.Helper()
	user, _, err := fleetObj.User.CreateUser(CreateUserInput{
		Username: uuid.NewString(),
		Password: password,
		FullName: "Login Test",
		Role:     models.RoleVesselManager,
	}, 1)
	assert.NoError(t, err)
	return user
}

func TestLoginAndSession(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	user := seedLoginUser(t, fleetObj, "correct-horse")

	loggedIn, token, err := fleetObj.Auth.Login(user.Username, "correct-horse")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotNil(t, loggedIn.LastLogin)

	var session models.Session
	err = fleetObj.AdminDB.Conn.Where("token = ?", token).First(&session).Error
	assert.NoError(t, err)
	assert.True(t, session.ExpiresAt.After(time.Now().Add(7*time.Hour)))

	sessionUser, err := fleetObj.Auth.GetSessionUser(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, sessionUser.ID)

	err = fleetObj.Auth.Logout(token)
	assert.NoError(t, err)
	_, err = fleetObj.Auth.GetSessionUser(token)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestLoginBadCredentials(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	user := seedLoginUser(t, fleetObj, "correct-horse")

	_, _, err := fleetObj.Auth.Login(user.Username, "wrong-battery")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// An unknown username reads the same as a wrong password
	_, _, err = fleetObj.Auth.Login(uuid.NewString(), "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	user := seedLoginUser(t, fleetObj, "correct-horse")

	err := fleetObj.User.SetUserStatus(user.ID, false, 1)
	assert.NoError(t, err)

	_, _, err = fleetObj.Auth.Login(user.Username, "correct-horse")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestGetSessionUserExpiredToken(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	user := seedLoginUser(t, fleetObj, "correct-horse")

	stale := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	assert.NoError(t, fleetObj.AdminDB.Conn.Create(&stale).Error)

	_, err := fleetObj.Auth.GetSessionUser(stale.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)

	// The dead row is cleaned up on the way out
	var count int64
	err = fleetObj.AdminDB.Conn.Model(&models.Session{}).
		Where("token = ?", stale.Token).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestLoginSweepsExpiredSessions(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	user := seedLoginUser(t, fleetObj, "correct-horse")

	stale := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	assert.NoError(t, fleetObj.AdminDB.Conn.Create(&stale).Error)

	_, token, err := fleetObj.Auth.Login(user.Username, "correct-horse")
	assert.NoError(t, err)

	var count int64
	err = fleetObj.AdminDB.Conn.Model(&models.Session{}).
		Where("token = ?", stale.Token).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	err = fleetObj.AdminDB.Conn.Model(&models.Session{}).
		Where("token = ?", token).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGetSessionUserDeactivatedMidSession(t *testing.T) {
	common.SetTestLoggerNop()

	fleetObj := GetTestFleetWithMemorySqlite()
	user := seedLoginUser(t, fleetObj, "correct-horse")

	_, token, err := fleetObj.Auth.Login(user.Username, "correct-horse")
	assert.NoError(t, err)

	err = fleetObj.User.SetUserStatus(user.ID, false, 1)
	assert.NoError(t, err)

	_, err = fleetObj.Auth.GetSessionUser(token)
	assert.ErrorIs(t, err, ErrAccountDisabled)
}
