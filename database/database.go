package database

import (
	"golang.org/x/xerrors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var GlobalDataBase *gorm.DB

// InitDatabase opens the sqlite store and migrates all tables.
func InitDatabase(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return xerrors.Errorf("open database %s: %w", path, err)
	}
	GlobalDataBase = db

	if err := InitAuction(); err != nil {
		return err
	}
	if err := InitCheckpoint(); err != nil {
		return err
	}
	return InitDeploymentRecord()
}
