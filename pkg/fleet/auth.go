package fleet

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/models"
)

// login verifies the credentials and opens a bearer session. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (f *Fleet) login(username, password string) (*models.User, string, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAuth),
	)

	user, err := f.getUserByUsername(username)
	if errors.Is(err, ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if !checkPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	if user.IsActive != 1 {
		return nil, "", ErrAccountDisabled
	}

	now := time.Now()
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(f.Opts.SessionTTL),
	}
	err = f.AdminDB.Conn.Transaction(func(tx *gorm.DB) error {
		// expired sessions pile up otherwise, logins are rare enough to
		// sweep them here
		if err := tx.Where("expires_at < ?", now).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", user.ID).Update("last_login", now).Error
	})
	if err != nil {
		return nil, "", err
	}
	user.LastLogin = &now

	logger.Info("User logged in", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return user, session.Token, nil
}

func (f *Fleet) logout(token string) error {
	return f.AdminDB.Conn.Where("token = ?", token).Delete(&models.Session{}).Error
}

func (f *Fleet) getSessionUser(token string) (*models.User, error) {
	var session models.Session
	err := f.AdminDB.Conn.Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, err
	}
	if session.ExpiresAt.Before(time.Now()) {
		f.AdminDB.Conn.Delete(&models.Session{}, session.ID)
		return nil, ErrSessionExpired
	}

	user, err := f.getUserByID(session.UserID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, err
	}
	if user.IsActive != 1 {
		return nil, ErrAccountDisabled
	}
	return user, nil
}

type IAuthImpl struct {
	fleet *Fleet
}

func (a *IAuthImpl) Login(username, password string) (*models.User, string, error) {
	return a.fleet.login(username, password)
}

func (a *IAuthImpl) Logout(token string) error {
	return a.fleet.logout(token)
}

func (a *IAuthImpl) GetSessionUser(token string) (*models.User, error) {
	return a.fleet.getSessionUser(token)
}

func (f *Fleet) GetIAuth() IAuth {
	return &IAuthImpl{fleet: f}
}
