package model

import (
	"time"
)

// Follow is the directed edge "follower follows followee".
type Follow struct {
	ID         string `gorm:"primaryKey;type:varchar(36)"`
	FollowerID string `gorm:"type:varchar(36);index:idx_follow_follower;index:idx_follow_pair,unique;not null"`
	FolloweeID string `gorm:"type:varchar(36);not null;index:idx_follow_followee;index:idx_follow_pair,unique"`
	// idx_follow_pair = (follower_id, followee_id) keeps the relation a set:
	// duplicate edges are rejected by the store, not by application checks.
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
