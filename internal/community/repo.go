package community

import (
	"context"

	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	"github.com/nutriapp/nutriapp-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository exposes posts and comments persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a community repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListPosts returns up to limit posts with their authors, newest first,
// optionally filtered by category and resuming after the cursor.
func (r *Repository) ListPosts(ctx context.Context, category string, cursor *pagination.Cursor, limit int) ([]postRow, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("posts.*, users.nickname, users.profile_image_url").
		Joins("JOIN users ON users.user_id = posts.user_id")

	if category != "" {
		q = q.Where("posts.category = ?", category)
	}
	if cursor != nil {
		q = q.Where(
			"posts.created_at < ? OR (posts.created_at = ? AND posts.post_id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var rows []postRow
	err := q.Order("posts.created_at DESC, posts.post_id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListCommentsForPosts returns the comments of the given posts with their
// authors, oldest first.
func (r *Repository) ListCommentsForPosts(ctx context.Context, postIDs []int64) ([]commentRow, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	var rows []commentRow
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("comments.*, users.nickname, users.profile_image_url").
		Joins("JOIN users ON users.user_id = comments.user_id").
		Where("comments.post_id IN ?", postIDs).
		Order("comments.created_at, comments.comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreatePost inserts a post and returns the persisted model.
func (r *Repository) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// FindPost loads a post by id regardless of owner.
func (r *Repository) FindPost(ctx context.Context, postID int64) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, "post_id = ?", postID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post by id. Comments cascade at the store level.
func (r *Repository) DeletePost(ctx context.Context, postID int64) error {
	return r.db.WithContext(ctx).
		Delete(&models.Post{}, "post_id = ?", postID).Error
}

// CreateComment inserts a comment and returns the persisted model.
func (r *Repository) CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
