package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/hady-bs/blog-mobile-application/internal/client/fetch"
	"github.com/hady-bs/blog-mobile-application/internal/client/models"
)

// Blogs shows the full blog feed.
func (a *App) Blogs(ctx context.Context) error {
	fmt.Fprintln(a.out, "All Blogs")

	err := a.allBlogs.Load(ctx, func(ctx context.Context) (models.BlogsPage, error) {
		return a.blogs.List(ctx)
	})
	if errors.Is(err, fetch.ErrStale) {
		return nil
	}
	a.renderBlogList(a.allBlogs.Snapshot())
	return err
}

// Refresh re-fetches the blog feed through the same resource, so a slow
// earlier load can never overwrite the refreshed data.
func (a *App) Refresh(ctx context.Context) error {
	fmt.Fprintln(a.out, "Refreshing...")
	return a.Blogs(ctx)
}
