package model

import "time"

type User struct {
	ID           string `gorm:"primaryKey;uuid;not null"`
	Email        string `gorm:"not null;uniqueIndex"`
	Name         string
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) TableName() string {
	return "users"
}
