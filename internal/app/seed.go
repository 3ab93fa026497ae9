package app

import (
	"context"
	"fmt"

	"github.com/UkralStul/posts-service/internal/service"
)

// fillWithMockData создает несколько постов для локального запуска.
// Пароль у всех постов "password".
func fillWithMockData(ctx context.Context, posts *service.Posts) error {
	samples := []struct {
		nickname, title, content string
	}{
		{"gopher", "Hello, posts", "First post in the in-memory storage."},
		{"alice", "Layering", "Router, controller, service, repository."},
		{"bob", "Passwords", "Update and delete require the post password."},
	}

	for _, s := range samples {
		if _, err := posts.CreatePost(ctx, s.nickname, "password", s.title, s.content); err != nil {
			return fmt.Errorf("create %q: %w", s.title, err)
		}
	}
	return nil
}
