package db

import (
	"fmt"
	"log"
	"sync"

	constant "accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type DB struct {
	Conn *gorm.DB
}

var (
	vesselInstance *DB
	vesselOnce     sync.Once

	adminInstance *DB
	adminOnce     sync.Once
)

// GetVesselInstance opens the vessel measurement store. The datafetcher and the
// alert evaluator write here; the dashboard reads.
func GetVesselInstance(dialector gorm.Dialector) *DB {
	vesselOnce.Do(func() {
		vesselInstance = mustOpen(dialector, "vessel",
			&models.Vessel{},
			&models.SamplingPoint{},
			&models.Parameter{},
			&models.Measurement{},
			&models.Alert{},
			&models.FetchLog{},
		)
	})
	return vesselInstance
}

// GetAdminInstance opens the users/admin store: accounts, assignments, sessions,
// audit log, and the parameter limits table.
func GetAdminInstance(dialector gorm.Dialector) *DB {
	adminOnce.Do(func() {
		adminInstance = mustOpen(dialector, "admin",
			&models.User{},
			&models.VesselAssignment{},
			&models.ManagerHierarchy{},
			&models.VesselAuthToken{},
			&models.AdminAuditLog{},
			&models.ParameterLimit{},
			&models.Session{},
			&models.VesselDetail{},
		)
	})
	return adminInstance
}

func mustOpen(dialector gorm.Dialector, store string, migrations ...any) *DB {
	var logger = constant.GetLogger()

	conn, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	logger.Info("Connected to database with dialector:",
		zap.String("store", store), zap.String("dialector", dialector.Name()))

	instance := &DB{Conn: conn}

	err = instance.Conn.AutoMigrate(migrations...)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	logger.Info("Database migration completed", zap.String("store", store))

	if err := instance.Conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		log.Fatal("Failed to enable sqlite foreign key support", err)
	}

	if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		log.Fatal("Failed to set sqlite journal mode", err)
	}

	return instance
}

func UseSqliteDialector(dbPath string) gorm.Dialector {
	return sqlite.Open(dbPath)
}

// UseMemorySqliteDialector opens a named shared in-memory database, so the two
// stores (and parallel tests) stay isolated from each other.
func UseMemorySqliteDialector(name string) gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
}
