package model

import "time"

// User account. Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Username  string `gorm:"type:varchar(64);uniqueIndex:ux_user_username;not null"`
	Email     string `gorm:"type:varchar(255)"`
	Password  string `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
