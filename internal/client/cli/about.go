package cli

import (
	"context"
	"fmt"
)

// About shows the static about text.
func (a *App) About(ctx context.Context) error {
	fmt.Fprintln(a.out, "About")
	fmt.Fprintln(a.out, "A small client for the blog service: browse the feed,")
	fmt.Fprintln(a.out, "post your own entries and manage them from your profile.")
	fmt.Fprintf(a.out, "Backend: %s\n", a.config.APIBaseURL)
	return nil
}
