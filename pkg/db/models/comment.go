package models

import "time"

// Comment is a reply attached to a community post.
type Comment struct {
	ID        int64     `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	PostID    int64     `gorm:"column:post_id;not null;index" json:"post_id"`
	UserID    int64     `gorm:"column:user_id;not null" json:"user_id"`
	Text      string    `gorm:"column:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string { return "comments" }
