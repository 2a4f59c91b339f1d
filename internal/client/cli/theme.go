package cli

import (
	"context"
	"fmt"

	"github.com/hady-bs/blog-mobile-application/internal/client/theme"
)

// ToggleTheme flips between the light and dark palettes. The new choice is
// persisted best-effort; a persistence failure keeps the in-memory flip.
func (a *App) ToggleTheme(ctx context.Context) error {
	err := a.themes.Toggle(ctx)

	scheme := a.themes.ColorScheme()
	pal := a.themes.Theme()
	icon := "moon"
	if scheme == theme.SchemeDark {
		icon = "sunny"
	}
	fmt.Fprintf(a.out, "Theme: %s (%s to switch back), background %s, text %s\n",
		scheme, icon, pal.Background, pal.Text)
	return err
}
