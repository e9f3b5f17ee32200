package database

import (
	"fmt"
	"time"

	"github.com/leon37/NetoLedger/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewMySQLConnection opens the MySQL asset store and makes sure the
// asset_records table exists.
func NewMySQLConnection(dsn string, debug bool) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("store.dsn is required for the mysql driver")
	}

	level := logger.Warn
	if debug {
		level = logger.Info // show SQL while developing
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	if err := db.AutoMigrate(&model.AssetEntity{}); err != nil {
		return nil, fmt.Errorf("migrate asset_records: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
