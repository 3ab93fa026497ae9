package storage

import (
	"context"

	"github.com/UkralStul/posts-service/internal/domain"
)

// Storage определяет контракт для хранилищ постов.
//
// UpdatePost и DeletePost затрагивают только строку, у которой совпадают
// и идентификатор, и сохраненное значение пароля. Если такой строки нет,
// возвращается domain.ErrNotFound.
type Storage interface {
	FindAllPosts(ctx context.Context) ([]*domain.Post, error)
	FindPostByID(ctx context.Context, id int64) (*domain.Post, error)
	CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error)
	UpdatePost(ctx context.Context, id int64, password, title, content string) error
	DeletePost(ctx context.Context, id int64, password string) error
}

// Pinger реализуют хранилища, доступность которых можно проверить.
type Pinger interface {
	Ping(ctx context.Context) error
}
