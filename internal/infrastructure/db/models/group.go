package models

type Group struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	CreatedBy string `gorm:"size:255;not null"`
}

func (Group) TableName() string {
	return "groups"
}
