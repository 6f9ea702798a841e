package models

import "time"

// Post is a community post owned by a user.
type Post struct {
	ID        int64     `gorm:"column:post_id;primaryKey;autoIncrement" json:"post_id"`
	UserID    int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Category  string    `gorm:"column:category;not null" json:"category"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Content   string    `gorm:"column:content;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Post) TableName() string { return "posts" }
