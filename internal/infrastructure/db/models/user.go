package models

import "time"

type User struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:320;not null;uniqueIndex"`
	GroupID      *int64 `gorm:"index"`
	CreatedBy    string `gorm:"size:255;not null"`
	CreatedDate  time.Time
	ModifiedBy   *string `gorm:"size:255"`
	ModifiedDate *time.Time
	IsDeleted    bool `gorm:"not null;default:false"`
}

func (User) TableName() string {
	return "users"
}
