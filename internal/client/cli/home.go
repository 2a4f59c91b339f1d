package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/hady-bs/blog-mobile-application/internal/client/fetch"
	"github.com/hady-bs/blog-mobile-application/internal/client/models"
)

// Home shows the hero header, join-in hints when logged out, and the three
// most recent blog entries.
func (a *App) Home(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to the Blog")
	fmt.Fprintln(a.out, "Discover amazing stories and insights from our community")
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Use 'login' or 'register' to join in.")
	}

	err := a.home.Load(ctx, func(ctx context.Context) (models.BlogsPage, error) {
		return a.blogs.ListPage(ctx, 1, 3)
	})
	if errors.Is(err, fetch.ErrStale) {
		return nil
	}
	a.renderBlogList(a.home.Snapshot())
	return err
}

// renderBlogList prints a fetched blog list or its error banner.
func (a *App) renderBlogList(snap fetch.Snapshot[models.BlogsPage]) {
	switch snap.State {
	case fetch.StateFailed:
		fmt.Fprintf(a.out, "Error: %s\n", a.errorMessage(snap.Err))
	case fetch.StateSuccess:
		for _, b := range snap.Data.Blogs {
			fmt.Fprintf(a.out, "\n#%d  %s\n%s\n%s\n", b.ID, b.User.UserName, b.Content, b.CreatedDate())
		}
		if len(snap.Data.Blogs) == 0 {
			fmt.Fprintln(a.out, "No blogs yet.")
		}
	}
}
