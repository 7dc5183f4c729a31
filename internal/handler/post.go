package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/liyedanpdx/WEB602-Project-2/internal/httputil"
	"github.com/liyedanpdx/WEB602-Project-2/internal/model"
	"github.com/liyedanpdx/WEB602-Project-2/internal/service"
	"github.com/liyedanpdx/WEB602-Project-2/internal/transport/http/middleware"
	"github.com/liyedanpdx/WEB602-Project-2/internal/view"
)

// PostHandler serves the blog pages and the toggle-like API. All of its
// routes sit behind the authentication guard.
type PostHandler struct {
	posts    *service.PostService
	renderer *view.Renderer
	logger   *logrus.Logger
}

func NewPostHandler(posts *service.PostService, renderer *view.Renderer, logger *logrus.Logger) *PostHandler {
	return &PostHandler{posts: posts, renderer: renderer, logger: logger}
}

// Blog lists every post with the viewer's like state.
// GET /blog
func (h *PostHandler) Blog(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	posts, err := h.posts.List(r.Context(), user)
	if err != nil {
		h.logger.WithError(err).Error("failed to list posts")
		h.renderer.RenderError(w, http.StatusInternalServerError, "Error fetching blog posts.", err)
		return
	}

	h.renderer.Render(w, http.StatusOK, view.PageBlog, view.Data{
		Title:         "Blog Posts",
		Username:      user.Username,
		Authenticated: true,
		Posts:         posts,
	})
}

// BlogPost shows a single post.
// GET /blog/{id}
func (h *PostHandler) BlogPost(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.renderer.RenderError(w, http.StatusNotFound, "Blog post not found.", nil)
		return
	}

	post, err := h.posts.GetByID(r.Context(), postID, user)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			h.renderer.RenderError(w, http.StatusNotFound, "Blog post not found.", nil)
			return
		}
		h.logger.WithError(err).Error("failed to get post")
		h.renderer.RenderError(w, http.StatusInternalServerError, "Error fetching blog post.", err)
		return
	}

	h.renderer.Render(w, http.StatusOK, view.PageBlogPost, view.Data{
		Title:         post.Title,
		Username:      user.Username,
		Authenticated: true,
		Post:          post,
	})
}

// toggleLikeRequest keeps the original API's field name. The id is
// accepted as either a JSON number or a string.
type toggleLikeRequest struct {
	DishID json.RawMessage `json:"dishId"`
}

func (req *toggleLikeRequest) postID() (int64, error) {
	raw := strings.Trim(strings.TrimSpace(string(req.DishID)), `"`)
	return strconv.ParseInt(raw, 10, 64)
}

// ToggleLike flips the caller's like on a post and returns the new
// state as JSON.
// POST /toggle-like
func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var req toggleLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	postID, err := req.postID()
	if err != nil {
		httputil.WriteBadRequest(w, "dishId must be a post id")
		return
	}

	result, err := h.posts.ToggleLike(r.Context(), user.ID, postID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrPostNotFound):
			httputil.WriteNotFound(w, "Post not found")
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		default:
			h.logger.WithError(err).Error("failed to toggle like")
			httputil.WriteInternalError(w, "Error toggling like")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}
