package database

import (
	"errors"

	"gorm.io/gorm"
)

// Checkpoint remembers the next block the watcher should scan from.
type Checkpoint struct {
	ID          uint `gorm:"primarykey"`
	BlockNumber int64
}

func InitCheckpoint() error {
	return GlobalDataBase.AutoMigrate(&Checkpoint{})
}

func GetBlockNumber() (int64, error) {
	var cp Checkpoint
	err := GlobalDataBase.Model(&Checkpoint{}).First(&cp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return cp.BlockNumber, nil
}

func SetBlockNumber(block int64) error {
	cp := Checkpoint{ID: 1, BlockNumber: block}
	return GlobalDataBase.Save(&cp).Error
}
