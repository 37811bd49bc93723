package database

import "time"

// DeploymentRecord keeps the serialized address book last seen for a
// network, so a restart can diff against it.
type DeploymentRecord struct {
	Network   string `gorm:"primarykey"`
	Addresses string // address-book JSON
	UpdatedAt time.Time
}

func InitDeploymentRecord() error {
	return GlobalDataBase.AutoMigrate(&DeploymentRecord{})
}

func (r *DeploymentRecord) SaveDeploymentRecord() error {
	return GlobalDataBase.Save(r).Error
}

func GetDeploymentRecord(network string) (DeploymentRecord, error) {
	var record DeploymentRecord
	err := GlobalDataBase.Model(&DeploymentRecord{}).
		Where("network = ?", network).First(&record).Error
	if err != nil {
		return DeploymentRecord{}, err
	}
	return record, nil
}
