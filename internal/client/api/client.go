// Package api talks to the remote blog service over HTTP. The Client
// interface is the boundary the rest of the application depends on;
// HTTPClient is the concrete transport.
package api

import (
	"context"

	"github.com/hady-bs/blog-mobile-application/internal/client/models"
)

// Client is the remote blog API boundary.
//
// The token parameter on authenticated calls is an opaque bearer credential:
// it is sent verbatim in the Authorization header and never inspected.
type Client interface {
	Register(ctx context.Context, userName, password string) (string, error)
	Login(ctx context.Context, userName, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, token string) (models.Profile, error)
	ListBlogs(ctx context.Context) (models.BlogsPage, error)
	ListBlogsPage(ctx context.Context, page, limit int) (models.BlogsPage, error)
	AddBlog(ctx context.Context, token, content string) (models.Blog, error)
	UpdateBlog(ctx context.Context, token string, id int64, content string) (models.Blog, error)
	DeleteBlog(ctx context.Context, token string, id int64) error
	Ping(ctx context.Context) error
}
