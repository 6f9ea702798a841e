package community

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
	pkgerrors "github.com/nutriapp/nutriapp-backend/pkg/errors"
	"github.com/nutriapp/nutriapp-backend/pkg/pagination"
	"gorm.io/gorm"
)

// MsgPostDeleted confirms a successful post removal.
const MsgPostDeleted = "Post deleted successfully"

// Service defines the behavior needed by the community controllers.
type Service interface {
	ListPosts(ctx context.Context, category, cursor string, limit int) (*PostsPage, error)
	CreatePost(ctx context.Context, userID int64, req CreatePostRequest) (*models.Post, error)
	AddComment(ctx context.Context, userID, postID int64, text string) (*models.Comment, error)
	DeletePost(ctx context.Context, userID, postID int64) (string, error)
}

type repository interface {
	ListPosts(ctx context.Context, category string, cursor *pagination.Cursor, limit int) ([]postRow, error)
	ListCommentsForPosts(ctx context.Context, postIDs []int64) ([]commentRow, error)
	CreatePost(ctx context.Context, post *models.Post) (*models.Post, error)
	FindPost(ctx context.Context, postID int64) (*models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
}

type service struct {
	repo repository
}

// NewService constructs a community service over the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("community repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListPosts(ctx context.Context, category, cursor string, limit int) (*PostsPage, error) {
	parsed, err := pagination.ParseCursor(cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}
	limit = pagination.NormalizeLimit(limit)

	rows, err := s.repo.ListPosts(ctx, category, parsed, pagination.LimitWithBuffer(limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list posts")
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	postIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		postIDs = append(postIDs, row.PostID)
	}

	comments, err := s.repo.ListCommentsForPosts(ctx, postIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list comments")
	}

	byPost := make(map[int64][]CommentDTO, len(rows))
	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], CommentDTO{
			CommentID:       c.CommentID,
			Text:            c.Text,
			Nickname:        c.Nickname,
			ProfileImageURL: c.ProfileImageURL,
			CreatedAt:       c.CreatedAt,
		})
	}

	page := &PostsPage{Posts: make([]PostDTO, 0, len(rows))}
	for _, row := range rows {
		page.Posts = append(page.Posts, PostDTO{
			PostID:          row.PostID,
			Title:           row.Title,
			Content:         row.Content,
			Category:        row.Category,
			CreatedAt:       row.CreatedAt,
			UserID:          row.UserID,
			Nickname:        row.Nickname,
			ProfileImageURL: row.ProfileImageURL,
			Comments:        byPost[row.PostID],
		})
	}

	if hasMore && len(rows) > 0 {
		last := rows[len(rows)-1]
		next := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.PostID})
		page.NextCursor = &next
	}
	return page, nil
}

func (s *service) CreatePost(ctx context.Context, userID int64, req CreatePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Category) == "" ||
		strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Content) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category, title and content are required")
	}

	post, err := s.repo.CreatePost(ctx, &models.Post{
		UserID:   userID,
		Category: req.Category,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create post")
	}
	return post, nil
}

func (s *service) AddComment(ctx context.Context, userID, postID int64, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "comment text is required")
	}

	if _, err := s.repo.FindPost(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load post")
	}

	comment, err := s.repo.CreateComment(ctx, &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create comment")
	}
	return comment, nil
}

// DeletePost enforces the ownership policy: missing rows are 404, rows owned
// by another user are 403, and only then is the row removed.
func (s *service) DeletePost(ctx context.Context, userID, postID int64) (string, error) {
	post, err := s.repo.FindPost(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load post")
	}
	if post.UserID != userID {
		return "", pkgerrors.New(pkgerrors.CodeForbidden, "not allowed to delete this post")
	}

	if err := s.repo.DeletePost(ctx, postID); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete post")
	}
	return MsgPostDeleted, nil
}
