package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hady-bs/blog-mobile-application/internal/client/fetch"
	"github.com/hady-bs/blog-mobile-application/internal/client/models"
)

// Profile shows the account record and the user's own blogs. The whole
// profile is re-fetched on every visit and after every mutation; there is
// no partial update.
func (a *App) Profile(ctx context.Context) error {
	fmt.Fprintln(a.out, "Profile")

	err := a.profile.Load(ctx, func(ctx context.Context) (models.Profile, error) {
		return a.blogs.Profile(ctx)
	})
	if errors.Is(err, fetch.ErrStale) {
		return nil
	}
	a.renderProfile(a.profile.Snapshot())
	return err
}

func (a *App) renderProfile(snap fetch.Snapshot[models.Profile]) {
	switch snap.State {
	case fetch.StateFailed:
		fmt.Fprintf(a.out, "Error: %s\n", a.errorMessage(snap.Err))
	case fetch.StateSuccess:
		p := snap.Data
		fmt.Fprintf(a.out, "ID: %d\n", p.User.ID)
		fmt.Fprintf(a.out, "Username: %s\n", p.User.UserName)
		fmt.Fprintf(a.out, "Blogs Count: %d\n", len(p.Blogs))
		fmt.Fprintln(a.out, "Your Blogs:")
		for _, b := range p.Blogs {
			fmt.Fprintf(a.out, "\n#%d  %s\n%s\n", b.ID, b.Content, b.CreatedDate())
		}
	}
}

// promptBlogID asks for the id of one of the user's own blogs.
func (a *App) promptBlogID(ctx context.Context) (int64, error) {
	text, err := getSimpleText(a.reader, "Enter blog id", a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid blog id:", text)
		return 0, err
	}
	return id, nil
}

// EditBlog updates one of the user's blogs, then re-fetches the profile.
// The in-memory list is never updated optimistically.
func (a *App) EditBlog(ctx context.Context) error {
	id, err := a.promptBlogID(ctx)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Enter the new content...", a.out)
	if err != nil {
		return err
	}

	if _, err := a.blogs.Update(ctx, id, content); err != nil {
		a.alert(err)
		return err
	}

	fmt.Fprintln(a.out, "Blog updated successfully!")
	return a.Profile(ctx)
}

// DeleteBlog deletes one of the user's blogs, then re-fetches the profile.
// On failure the previously fetched profile is left untouched.
func (a *App) DeleteBlog(ctx context.Context) error {
	id, err := a.promptBlogID(ctx)
	if err != nil {
		return err
	}

	if err := a.blogs.Delete(ctx, id); err != nil {
		a.alert(err)
		return err
	}

	fmt.Fprintln(a.out, "Blog deleted successfully!")
	return a.Profile(ctx)
}
