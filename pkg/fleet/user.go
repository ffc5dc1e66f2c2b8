package fleet

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/models"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generatePassword(length int) string {
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			panic(err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func validateRole(role models.Role) error {
	switch role {
	case models.RoleAdmin, models.RoleFleetManager, models.RoleVesselManager, models.RoleVesselUser:
		return nil
	default:
		return fmt.Errorf("invalid role: %s", role)
	}
}

func writeAudit(tx *gorm.DB, adminUserID uint, actionType, details string, targetUserID, targetVesselID *uint) error {
	entry := models.AdminAuditLog{
		AdminUserID:    adminUserID,
		ActionType:     actionType,
		ActionDetails:  details,
		TargetUserID:   targetUserID,
		TargetVesselID: targetVesselID,
	}
	return tx.Create(&entry).Error
}

// createUser provisions an account and hands the plaintext password back
// exactly once so the caller can deliver it. Only the bcrypt hash is
// stored.
func (f *Fleet) createUser(input CreateUserInput, createdBy uint) (*models.User, string, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryUser),
	)

	if err := validateRole(input.Role); err != nil {
		return nil, "", err
	}

	password := input.Password
	if password == "" {
		password = generatePassword(12)
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: hash,
		FullName:     input.FullName,
		Email:        input.Email,
		Role:         input.Role,
		IsActive:     1,
	}
	err = f.AdminDB.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return err
		}
		details := fmt.Sprintf("Created %s: %s", user.Role, user.Username)
		return writeAudit(tx, createdBy, models.AuditCreateUser, details, &user.ID, nil)
	})
	if err != nil {
		return nil, "", err
	}

	logger.Info("Created user", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return &user, password, nil
}

func (f *Fleet) listUsers(roleFilter models.Role) ([]models.User, error) {
	var users []models.User
	query := f.AdminDB.Conn
	if roleFilter != "" {
		query = query.Where("role = ?", roleFilter).Order("full_name")
	} else {
		query = query.Order("role, full_name")
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (f *Fleet) getUserByID(id uint) (*models.User, error) {
	var user models.User
	err := f.AdminDB.Conn.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (f *Fleet) getUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := f.AdminDB.Conn.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (f *Fleet) setUserStatus(userID uint, active bool, adminUserID uint) error {
	action := models.AuditDeactivateUser
	isActive := 0
	if active {
		action = models.AuditActivateUser
		isActive = 1
	}

	return f.AdminDB.Conn.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("id = ?", userID).
			Updates(map[string]any{"is_active": isActive, "updated_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return writeAudit(tx, adminUserID, action, "", &userID, nil)
	})
}

func (f *Fleet) resetPassword(userID uint, adminUserID uint) (*models.User, string, error) {
	user, err := f.getUserByID(userID)
	if err != nil {
		return nil, "", err
	}

	password := generatePassword(12)
	hash, err := hashPassword(password)
	if err != nil {
		return nil, "", err
	}

	err = f.AdminDB.Conn.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.User{}).Where("id = ?", userID).
			Updates(map[string]any{"password_hash": hash, "updated_at": time.Now()}).Error
		if err != nil {
			return err
		}
		details := fmt.Sprintf("Reset password for: %s", user.Username)
		return writeAudit(tx, adminUserID, models.AuditResetPassword, details, &userID, nil)
	})
	if err != nil {
		return nil, "", err
	}
	return user, password, nil
}

func (f *Fleet) assignVessel(userID, vesselID, assignedBy uint) error {
	return f.AdminDB.Conn.Transaction(func(tx *gorm.DB) error {
		assignment := models.VesselAssignment{UserID: userID, VesselID: vesselID}
		if err := tx.Create(&assignment).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return err
		}
		return writeAudit(tx, assignedBy, models.AuditAssignVessel, "", &userID, &vesselID)
	})
}

func (f *Fleet) unassignVessel(userID, vesselID, unassignedBy uint) error {
	return f.AdminDB.Conn.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND vessel_id = ?", userID, vesselID).
			Delete(&models.VesselAssignment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return writeAudit(tx, unassignedBy, models.AuditUnassignVessel, "", &userID, &vesselID)
	})
}

// assignManager puts a vessel manager under a fleet manager. A vessel
// manager reports to at most one fleet manager, so an existing row is
// reassigned in place rather than duplicated.
func (f *Fleet) assignManager(fleetManagerID, vesselManagerID, assignedBy uint) error {
	return f.AdminDB.Conn.Transaction(func(tx *gorm.DB) error {
		var details string

		var existing models.ManagerHierarchy
		err := tx.Where("vessel_manager_id = ?", vesselManagerID).First(&existing).Error
		switch {
		case err == nil:
			details = fmt.Sprintf("Reassigned vessel manager %d from fleet manager %d to fleet manager %d",
				vesselManagerID, existing.FleetManagerID, fleetManagerID)
			err := tx.Model(&existing).Update("fleet_manager_id", fleetManagerID).Error
			if err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			details = fmt.Sprintf("Assigned vessel manager %d to fleet manager %d", vesselManagerID, fleetManagerID)
			entry := models.ManagerHierarchy{FleetManagerID: fleetManagerID, VesselManagerID: vesselManagerID}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		default:
			return err
		}
		return writeAudit(tx, assignedBy, models.AuditAssignHierarchy, details, &vesselManagerID, nil)
	})
}

func (f *Fleet) unassignManager(fleetManagerID, vesselManagerID, unassignedBy uint) error {
	return f.AdminDB.Conn.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("fleet_manager_id = ? AND vessel_manager_id = ?", fleetManagerID, vesselManagerID).
			Delete(&models.ManagerHierarchy{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return writeAudit(tx, unassignedBy, models.AuditUnassignHierarchy, "", &vesselManagerID, nil)
	})
}

func (f *Fleet) getSubordinateManagers(fleetManagerID uint) ([]models.User, error) {
	var users []models.User
	err := f.AdminDB.Conn.Table("users u").
		Select("u.*").
		Joins("JOIN manager_hierarchy mh ON u.id = mh.vessel_manager_id").
		Where("mh.fleet_manager_id = ?", fleetManagerID).
		Order("u.full_name").
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (f *Fleet) listVesselManagers() ([]ManagerOverview, error) {
	var overviews []ManagerOverview
	err := f.AdminDB.Conn.Raw(`
		SELECT u.id, u.username, u.full_name, u.email, u.is_active,
		       mh.fleet_manager_id AS current_fleet_manager_id,
		       fm.full_name AS current_fleet_manager
		FROM users u
		LEFT JOIN manager_hierarchy mh ON u.id = mh.vessel_manager_id
		LEFT JOIN users fm ON mh.fleet_manager_id = fm.id
		WHERE u.role = ? AND u.is_active = 1
		ORDER BY u.full_name`, models.RoleVesselManager).Scan(&overviews).Error
	if err != nil {
		return nil, err
	}
	return overviews, nil
}

func (f *Fleet) getAuditLog(limit int, adminUserID uint, actionType string) ([]AuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	query := f.AdminDB.Conn.Table("admin_audit_log a").
		Select("a.*, u.username AS admin_username, u.full_name AS admin_name").
		Joins("JOIN users u ON a.admin_user_id = u.id")
	if adminUserID != 0 {
		query = query.Where("a.admin_user_id = ?", adminUserID)
	}
	if actionType != "" {
		query = query.Where("a.action_type = ?", actionType)
	}

	var entries []AuditEntry
	err := query.Order("a.created_at DESC, a.id DESC").Limit(limit).Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// getUserVessels resolves the vessel store ids a user may see. Admins see
// the whole fleet, managers and vessel users see their assignments, and a
// fleet manager additionally inherits every assignment of their vessel
// managers.
func (f *Fleet) getUserVessels(userID uint, role models.Role) ([]uint, error) {
	switch role {
	case models.RoleAdmin:
		var ids []uint
		err := f.VesselDB.Conn.Model(&models.Vessel{}).Order("id").Pluck("id", &ids).Error
		if err != nil {
			return nil, err
		}
		return ids, nil

	case models.RoleVesselManager, models.RoleVesselUser:
		return f.assignedVesselIDs(userID)

	case models.RoleFleetManager:
		var inherited []uint
		err := f.AdminDB.Conn.Raw(`
			SELECT DISTINCT va.vessel_id
			FROM manager_hierarchy mh
			JOIN vessel_assignments va ON va.user_id = mh.vessel_manager_id
			WHERE mh.fleet_manager_id = ?
			ORDER BY va.vessel_id`, userID).Scan(&inherited).Error
		if err != nil {
			return nil, err
		}
		direct, err := f.assignedVesselIDs(userID)
		if err != nil {
			return nil, err
		}

		seen := make(map[uint]bool, len(inherited)+len(direct))
		merged := make([]uint, 0, len(inherited)+len(direct))
		for _, id := range append(inherited, direct...) {
			if !seen[id] {
				seen[id] = true
				merged = append(merged, id)
			}
		}
		return merged, nil

	default:
		return []uint{}, nil
	}
}

func (f *Fleet) assignedVesselIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := f.AdminDB.Conn.Model(&models.VesselAssignment{}).
		Where("user_id = ?", userID).
		Order("vessel_id").
		Pluck("vessel_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (f *Fleet) canAccessVessel(user *models.User, vesselID uint) (bool, error) {
	ids, err := f.getUserVessels(user.ID, user.Role)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == vesselID {
			return true, nil
		}
	}
	return false, nil
}

type IUserImpl struct {
	fleet *Fleet
}

func (u *IUserImpl) CreateUser(input CreateUserInput, createdBy uint) (*models.User, string, error) {
	return u.fleet.createUser(input, createdBy)
}

func (u *IUserImpl) ListUsers(roleFilter models.Role) ([]models.User, error) {
	return u.fleet.listUsers(roleFilter)
}

func (u *IUserImpl) GetUserByID(id uint) (*models.User, error) {
	return u.fleet.getUserByID(id)
}

func (u *IUserImpl) GetUserByUsername(username string) (*models.User, error) {
	return u.fleet.getUserByUsername(username)
}

func (u *IUserImpl) SetUserStatus(userID uint, active bool, adminUserID uint) error {
	return u.fleet.setUserStatus(userID, active, adminUserID)
}

func (u *IUserImpl) ResetPassword(userID uint, adminUserID uint) (*models.User, string, error) {
	return u.fleet.resetPassword(userID, adminUserID)
}

func (u *IUserImpl) AssignVessel(userID, vesselID, assignedBy uint) error {
	return u.fleet.assignVessel(userID, vesselID, assignedBy)
}

func (u *IUserImpl) UnassignVessel(userID, vesselID, unassignedBy uint) error {
	return u.fleet.unassignVessel(userID, vesselID, unassignedBy)
}

func (u *IUserImpl) AssignManager(fleetManagerID, vesselManagerID, assignedBy uint) error {
	return u.fleet.assignManager(fleetManagerID, vesselManagerID, assignedBy)
}

func (u *IUserImpl) UnassignManager(fleetManagerID, vesselManagerID, unassignedBy uint) error {
	return u.fleet.unassignManager(fleetManagerID, vesselManagerID, unassignedBy)
}

func (u *IUserImpl) GetSubordinateManagers(fleetManagerID uint) ([]models.User, error) {
	return u.fleet.getSubordinateManagers(fleetManagerID)
}

func (u *IUserImpl) ListVesselManagers() ([]ManagerOverview, error) {
	return u.fleet.listVesselManagers()
}

func (u *IUserImpl) GetAuditLog(limit int, adminUserID uint, actionType string) ([]AuditEntry, error) {
	return u.fleet.getAuditLog(limit, adminUserID, actionType)
}

func (u *IUserImpl) GetUserVessels(userID uint, role models.Role) ([]uint, error) {
	return u.fleet.getUserVessels(userID, role)
}

func (u *IUserImpl) CanAccessVessel(user *models.User, vesselID uint) (bool, error) {
	return u.fleet.canAccessVessel(user, vesselID)
}

func (f *Fleet) GetIUser() IUser {
	return &IUserImpl{fleet: f}
}
