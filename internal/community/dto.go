package community

import "time"

// CreatePostRequest is the payload for publishing a community post.
type CreatePostRequest struct {
	Category string `json:"category" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// CreateCommentRequest is the payload for replying to a post.
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// CommentDTO is a comment with its author's public identity.
type CommentDTO struct {
	CommentID       int64     `json:"comment_id"`
	Text            string    `json:"text"`
	Nickname        string    `json:"nickname"`
	ProfileImageURL *string   `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// PostDTO is a post with its author's public identity and embedded comments.
type PostDTO struct {
	PostID          int64        `json:"post_id"`
	Title           string       `json:"title"`
	Content         string       `json:"content"`
	Category        string       `json:"category"`
	CreatedAt       time.Time    `json:"created_at"`
	UserID          int64        `json:"user_id"`
	Nickname        string       `json:"nickname"`
	ProfileImageURL *string      `json:"profile_image_url"`
	Comments        []CommentDTO `json:"comments"`
}

// PostsPage is one page of the community feed, newest first. NextCursor is
// present only when more posts remain.
type PostsPage struct {
	Posts      []PostDTO `json:"posts"`
	NextCursor *string   `json:"next_cursor,omitempty"`
}

// postRow is the repo-level join of a post with its author.
type postRow struct {
	PostID          int64     `gorm:"column:post_id"`
	UserID          int64     `gorm:"column:user_id"`
	Category        string    `gorm:"column:category"`
	Title           string    `gorm:"column:title"`
	Content         string    `gorm:"column:content"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	Nickname        string    `gorm:"column:nickname"`
	ProfileImageURL *string   `gorm:"column:profile_image_url"`
}

// commentRow is the repo-level join of a comment with its author.
type commentRow struct {
	CommentID       int64     `gorm:"column:comment_id"`
	PostID          int64     `gorm:"column:post_id"`
	Text            string    `gorm:"column:text"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	Nickname        string    `gorm:"column:nickname"`
	ProfileImageURL *string   `gorm:"column:profile_image_url"`
}
