package storage

import (
	"fmt"
	"log"
	"os"
	"time"

	"amcbackend/config"
	"amcbackend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitGormDB opens the GORM connection used for statistics counts and
// coverage snapshots, and migrates the snapshot table.
func InitGormDB(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "gorm: ", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	gormDB, err := gorm.Open(postgres.Open(cfg.DSN()+" TimeZone=UTC"), &gorm.Config{
		Logger:                                   gormLogger,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database with GORM: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	if err := gormDB.AutoMigrate(&models.AMCCoverageSnapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate coverage snapshots: %w", err)
	}
	return gormDB, nil
}
