// Package theme manages the light/dark palette selection shared by every
// view. Exactly one of two fixed palettes is active at any time.
package theme

// Scheme names one of the two supported palettes.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// Palette is the fixed set of color tokens every view renders with.
type Palette struct {
	Background    string
	Surface       string
	Text          string
	TextSecondary string
	Primary       string
	Error         string
	Border        string
}

var Light = Palette{
	Background:    "#FFFFFF",
	Surface:       "#F5F5F5",
	Text:          "#000000",
	TextSecondary: "#666666",
	Primary:       "#BB86FC",
	Error:         "#FF4444",
	Border:        "#CCCCCC",
}

var Dark = Palette{
	Background:    "#121212",
	Surface:       "#1E1E1E",
	Text:          "#FFFFFF",
	TextSecondary: "#CCCCCC",
	Primary:       "#BB86FC",
	Error:         "#FF4444",
	Border:        "#333333",
}

// PaletteFor maps a scheme to its palette. Anything that is not light is
// rendered dark, matching the default scheme.
func PaletteFor(s Scheme) Palette {
	if s == SchemeLight {
		return Light
	}
	return Dark
}
