package model

import "time"

// Like is the edge "user liked post". Same set discipline as Follow.
type Like struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	UserID    string `gorm:"type:varchar(36);index:idx_like_user;index:idx_like_pair,unique;not null"`
	PostID    string `gorm:"type:varchar(36);not null;index:idx_like_post;index:idx_like_pair,unique"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Like) TableName() string { return "likes" }
