package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"

	"github.com/UkralStul/posts-service/internal/domain"
	"github.com/UkralStul/posts-service/internal/logging"
	"github.com/UkralStul/posts-service/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

// Posts реализует операции над постами поверх хранилища.
type Posts struct {
	store    storage.Storage
	logger   logging.Logger
	hashCost int
}

// Option настраивает сервис.
type Option func(*Posts)

// WithHashCost задает стоимость bcrypt для паролей постов.
func WithHashCost(cost int) Option {
	return func(p *Posts) { p.hashCost = cost }
}

// NewPosts создает сервис. Хранилище передается явно, чтобы в тестах
// его можно было подменить.
func NewPosts(store storage.Storage, logger logging.Logger, opts ...Option) *Posts {
	p := &Posts{
		store:    store,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FindAllPosts возвращает все посты, новые первыми.
func (p *Posts) FindAllPosts(ctx context.Context) ([]domain.PostSummary, error) {
	posts, err := p.store.FindAllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	result := make([]domain.PostSummary, len(posts))
	for i, post := range posts {
		result[i] = post.Summary()
	}
	return result, nil
}

// FindPostByID возвращает пост целиком, без пароля.
func (p *Posts) FindPostByID(ctx context.Context, id int64) (*domain.PostDetail, error) {
	post, err := p.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := post.Detail()
	return &detail, nil
}

// CreatePost сохраняет новый пост. Пароль хранится только в виде хеша.
func (p *Posts) CreatePost(ctx context.Context, nickname, password, title, content string) (*domain.PostDetail, error) {
	hash, err := bcrypt.GenerateFromPassword(digest(password), p.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := p.store.CreatePost(ctx, &domain.Post{
		Nickname: nickname,
		Password: string(hash),
		Title:    title,
		Content:  content,
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	p.logger.Info(ctx, "post created", "post_id", created.PostID, "nickname", created.Nickname)
	detail := created.Detail()
	return &detail, nil
}

// UpdatePost меняет заголовок и содержимое. Пустое значение поля
// оставляет его прежним.
func (p *Posts) UpdatePost(ctx context.Context, id int64, password, title, content string) (*domain.PostDetail, error) {
	post, err := p.authorize(ctx, id, password)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = post.Title
	}
	if content == "" {
		content = post.Content
	}

	// обновляется только строка с тем же хешем пароля
	if err := p.store.UpdatePost(ctx, id, post.Password, title, content); err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}

	updated, err := p.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "post updated", "post_id", id)
	detail := updated.Detail()
	return &detail, nil
}

// DeletePost удаляет пост и возвращает его состояние до удаления.
func (p *Posts) DeletePost(ctx context.Context, id int64, password string) (*domain.PostDetail, error) {
	post, err := p.authorize(ctx, id, password)
	if err != nil {
		return nil, err
	}

	if err := p.store.DeletePost(ctx, id, post.Password); err != nil {
		return nil, fmt.Errorf("delete post %d: %w", id, err)
	}

	p.logger.Info(ctx, "post deleted", "post_id", id)
	detail := post.Detail()
	return &detail, nil
}

func (p *Posts) lookup(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := p.store.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewError(domain.ErrNotFound, "post does not exist")
		}
		return nil, fmt.Errorf("find post %d: %w", id, err)
	}
	return post, nil
}

// authorize проверяет существование поста и затем пароль.
func (p *Posts) authorize(ctx context.Context, id int64, password string) (*domain.Post, error) {
	post, err := p.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(post.Password), digest(password)); err != nil {
		p.logger.Warn(ctx, "password mismatch", "post_id", id)
		return nil, domain.NewError(domain.ErrForbidden, "password does not match")
	}
	return post, nil
}

// digest сводит пароль любой длины к 44 байтам, bcrypt учитывает только первые 72.
func digest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
