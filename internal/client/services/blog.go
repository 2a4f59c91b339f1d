package services

import (
	"context"
	"strings"

	"github.com/hady-bs/blog-mobile-application/internal/client/api"
	"github.com/hady-bs/blog-mobile-application/internal/client/models"
	"github.com/hady-bs/blog-mobile-application/internal/client/store"
)

// BlogService defines the blog read and mutation operations.
//
// Mutations never update any in-memory list; the dependent view re-fetches
// from the backend afterwards (List/Profile are the only sources of truth).
type BlogService interface {
	List(ctx context.Context) (models.BlogsPage, error)
	ListPage(ctx context.Context, page, limit int) (models.BlogsPage, error)
	Profile(ctx context.Context) (models.Profile, error)
	Add(ctx context.Context, content string) (models.Blog, error)
	Update(ctx context.Context, id int64, content string) (models.Blog, error)
	Delete(ctx context.Context, id int64) error
}

type blogService struct {
	client api.Client
	store  store.Repository
}

func NewBlogService(client api.Client, st store.Repository) BlogService {
	return &blogService{client: client, store: st}
}

// token acquires the stored credential. ErrNoToken short-circuits the
// operation before any network call.
func (s *blogService) token(ctx context.Context) (string, error) {
	token, err := s.store.Get(ctx, store.KeyToken)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *blogService) List(ctx context.Context) (models.BlogsPage, error) {
	return s.client.ListBlogs(ctx)
}

func (s *blogService) ListPage(ctx context.Context, page, limit int) (models.BlogsPage, error) {
	return s.client.ListBlogsPage(ctx, page, limit)
}

func (s *blogService) Profile(ctx context.Context) (models.Profile, error) {
	token, err := s.token(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	return s.client.Profile(ctx, token)
}

func (s *blogService) Add(ctx context.Context, content string) (models.Blog, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Blog{}, ErrEmptyContent
	}
	token, err := s.token(ctx)
	if err != nil {
		return models.Blog{}, err
	}
	return s.client.AddBlog(ctx, token, content)
}

func (s *blogService) Update(ctx context.Context, id int64, content string) (models.Blog, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Blog{}, ErrEmptyContent
	}
	token, err := s.token(ctx)
	if err != nil {
		return models.Blog{}, err
	}
	return s.client.UpdateBlog(ctx, token, id, content)
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	token, err := s.token(ctx)
	if err != nil {
		return err
	}
	return s.client.DeleteBlog(ctx, token, id)
}
