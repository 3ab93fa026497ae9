package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/UkralStul/posts-service/internal/domain"
)

// Store реализует интерфейс Storage в памяти.
type Store struct {
	mu     sync.RWMutex
	posts  map[int64]*domain.Post
	nextID int64
	now    func() time.Time
}

// Option настраивает Store.
type Option func(*Store)

// WithClock подменяет источник времени для created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New создает новый экземпляр in-memory хранилища.
func New(opts ...Option) *Store {
	s := &Store{
		posts: make(map[int64]*domain.Post),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) FindAllPosts(ctx context.Context) ([]*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, clone(p))
	}
	return posts, nil
}

func (s *Store) FindPostByID(ctx context.Context, id int64) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, domain.NewError(domain.ErrNotFound, "post with id %d not found", id)
	}
	return clone(post), nil
}

func (s *Store) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := s.now()
	post.PostID = s.nextID
	post.CreatedAt = now
	post.UpdatedAt = now
	s.posts[post.PostID] = clone(post)
	return post, nil
}

func (s *Store) UpdatePost(ctx context.Context, id int64, password, title, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.match(id, password)
	if !ok {
		return domain.NewError(domain.ErrNotFound, "no post matches id %d and password", id)
	}
	post.Title = title
	post.Content = content
	post.UpdatedAt = s.now()
	return nil
}

func (s *Store) DeletePost(ctx context.Context, id int64, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.match(id, password); !ok {
		return domain.NewError(domain.ErrNotFound, "no post matches id %d and password", id)
	}
	delete(s.posts, id)
	return nil
}

func (s *Store) Ping(ctx context.Context) error { return nil }

// match ищет пост по составному условию. Вызывать под блокировкой.
func (s *Store) match(id int64, password string) (*domain.Post, bool) {
	post, ok := s.posts[id]
	if !ok || post.Password != password {
		return nil, false
	}
	return post, true
}

func clone(p *domain.Post) *domain.Post {
	c := *p
	return &c
}
