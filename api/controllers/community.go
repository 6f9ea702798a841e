package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nutriapp/nutriapp-backend/api/middleware"
	"github.com/nutriapp/nutriapp-backend/api/responses"
	"github.com/nutriapp/nutriapp-backend/api/validators"
	"github.com/nutriapp/nutriapp-backend/internal/community"
	pkgerrors "github.com/nutriapp/nutriapp-backend/pkg/errors"
	"github.com/nutriapp/nutriapp-backend/pkg/logger"
	"github.com/nutriapp/nutriapp-backend/pkg/pagination"
)

// ListPosts returns a cursor-paginated feed of posts with their authors
// and comments.
func ListPosts(svc community.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "community service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category := strings.TrimSpace(r.URL.Query().Get("category"))
		cursor := strings.TrimSpace(r.URL.Query().Get("cursor"))

		page, err := svc.ListPosts(r.Context(), category, cursor, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

// CreatePost publishes a new community post by the authenticated user.
func CreatePost(svc community.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "community service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body community.CreatePostRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		post, err := svc.CreatePost(r.Context(), middleware.UserIDFromContext(r.Context()), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, post)
	}
}

// AddComment attaches a comment to an existing post.
func AddComment(svc community.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "community service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		postID, err := validators.ParsePathInt64(strings.TrimSpace(chi.URLParam(r, "postId")), "postId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body community.CreateCommentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		comment, err := svc.AddComment(r.Context(), middleware.UserIDFromContext(r.Context()), postID, body.Text)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, comment)
	}
}

// DeletePost removes a post the authenticated user owns.
func DeletePost(svc community.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "community service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		postID, err := validators.ParsePathInt64(strings.TrimSpace(chi.URLParam(r, "postId")), "postId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		msg, err := svc.DeletePost(r.Context(), middleware.UserIDFromContext(r.Context()), postID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": msg})
	}
}
