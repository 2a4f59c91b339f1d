package cli

import (
	"context"
	"fmt"
)

// getMultiline is a test seam for multi-line input.
var getMultiline = GetMultiline

// AddBlog prompts for new blog content and submits it. Empty content and a
// missing token are rejected before any network call. On success the user
// is taken to the blog feed, which re-fetches from the backend.
func (a *App) AddBlog(ctx context.Context) error {
	content, err := getMultiline(a.reader, "Write your blog content here...", a.out)
	if err != nil {
		return err
	}

	if _, err := a.blogs.Add(ctx, content); err != nil {
		a.alert(err)
		return err
	}

	fmt.Fprintln(a.out, "Blog added successfully!")
	return a.Blogs(ctx)
}
