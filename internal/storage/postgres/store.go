package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/UkralStul/posts-service/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Коды ошибок PostgreSQL, которые считаем конфликтом данных.
const (
	codeNotNullViolation = "23502"
	codeUniqueViolation  = "23505"
	codeCheckViolation   = "23514"
)

// Store реализует интерфейс Storage с использованием PostgreSQL.
type Store struct {
	db *gorm.DB
}

// New создает новый экземпляр хранилища PostgreSQL.
func New(dsn string, logLevel logger.LogLevel) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Выполняем миграцию схемы
	if err := db.AutoMigrate(&domain.Post{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// NewWithDB оборачивает уже открытое соединение. Миграция не выполняется.
func NewWithDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindAllPosts(ctx context.Context) ([]*domain.Post, error) {
	var posts []*domain.Post
	if err := s.db.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, translate("find posts", err)
	}
	return posts, nil
}

func (s *Store) FindPostByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	if err := s.db.WithContext(ctx).First(&post, "post_id = ?", id).Error; err != nil {
		return nil, translate("find post", err)
	}
	return &post, nil
}

func (s *Store) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, translate("create post", err)
	}
	// GORM заполнит PostID, CreatedAt и UpdatedAt
	return post, nil
}

func (s *Store) UpdatePost(ctx context.Context, id int64, password, title, content string) error {
	res := s.db.WithContext(ctx).
		Model(&domain.Post{}).
		Where("post_id = ? AND password = ?", id, password).
		Updates(map[string]any{"title": title, "content": content})
	if res.Error != nil {
		return translate("update post", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NewError(domain.ErrNotFound, "no post matches id %d and password", id)
	}
	return nil
}

func (s *Store) DeletePost(ctx context.Context, id int64, password string) error {
	res := s.db.WithContext(ctx).
		Where("post_id = ? AND password = ?", id, password).
		Delete(&domain.Post{})
	if res.Error != nil {
		return translate("delete post", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NewError(domain.ErrNotFound, "no post matches id %d and password", id)
	}
	return nil
}

// Ping проверяет соединение с базой.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return translate("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return translate("ping", err)
	}
	return nil
}

// Close закрывает пул соединений.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// translate приводит ошибки gorm и драйвера к ошибкам домена.
func translate(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewError(domain.ErrNotFound, "post does not exist")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeNotNullViolation, codeUniqueViolation, codeCheckViolation:
			return domain.NewError(domain.ErrConflict, "%s: %s", op, pgErr.Message)
		}
	}

	return fmt.Errorf("%w: %s: %w", domain.ErrBackend, op, err)
}
