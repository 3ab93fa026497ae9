package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/UkralStul/posts-service/internal/domain"
	"github.com/UkralStul/posts-service/internal/logging"

	"github.com/go-chi/chi/v5"
)

// PostService - то, что контроллеру нужно от слоя сервиса.
type PostService interface {
	FindAllPosts(ctx context.Context) ([]domain.PostSummary, error)
	FindPostByID(ctx context.Context, id int64) (*domain.PostDetail, error)
	CreatePost(ctx context.Context, nickname, password, title, content string) (*domain.PostDetail, error)
	UpdatePost(ctx context.Context, id int64, password, title, content string) (*domain.PostDetail, error)
	DeletePost(ctx context.Context, id int64, password string) (*domain.PostDetail, error)
}

// Handler - контроллер постов.
type Handler struct {
	posts  PostService
	logger logging.Logger
}

// NewHandler создает контроллер.
func NewHandler(posts PostService, logger logging.Logger) *Handler {
	return &Handler{posts: posts, logger: logger}
}

type createPostRequest struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

type updatePostRequest struct {
	Password string `json:"password"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

type deletePostRequest struct {
	Password string `json:"password"`
}

type dataResponse struct {
	Data any `json:"data"`
}

func (h *Handler) getPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.FindAllPosts(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: posts})
}

func (h *Handler) getPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.posts.FindPostByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: post})
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Nickname == "" || req.Password == "" || req.Title == "" || req.Content == "" {
		h.writeError(w, r, domain.NewError(domain.ErrValidation, "invalid params"))
		return
	}

	post, err := h.posts.CreatePost(r.Context(), req.Nickname, req.Password, req.Title, req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dataResponse{Data: post})
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req updatePostRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.posts.UpdatePost(r.Context(), id, req.Password, req.Title, req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: post})
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req deletePostRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.posts.DeletePost(r.Context(), id, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: post})
}

func postID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "postId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewError(domain.ErrValidation, "invalid postId %q", raw)
	}
	return id, nil
}

// decodeBody читает JSON-тело. Пустое тело допустимо.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.NewError(domain.ErrValidation, "malformed JSON body: %v", err)
	}
	return nil
}
