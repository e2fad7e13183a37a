package model

import "time"

// MaxPostContentLen bounds post content after whitespace trimming.
const MaxPostContentLen = 500

// Post is immutable after creation; there is no edit path.
type Post struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	AuthorID  string    `gorm:"type:varchar(36);index:idx_post_author;not null"`
	Content   string    `gorm:"type:varchar(500);not null"`
	CreatedAt time.Time `gorm:"index:idx_post_created"`
}

func (Post) TableName() string { return "posts" }
