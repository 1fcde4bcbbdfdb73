package prettyhttp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mohamed-7018/prettyhttp/internal/theme"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]theme.Palette{
	paletteDefaultName: theme.Default,
	"catppuccin-mocha": theme.CatppuccinMocha,
	"doom-dracula":     theme.DoomDracula,
	"tokyo-night":      theme.TokyoNight,
	"gruvbox-light":    theme.GruvboxLight,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// ResolvePalette returns the ColorPalette for the given name, defaulting to
// "default" when the name is empty. The special name "none" disables
// coloring. If enableColor is false a no-color palette is returned
// regardless of the selection (still validating the name).
func ResolvePalette(name string, renderer *lipgloss.Renderer, enableColor bool) (ColorPalette, error) {
	key := paletteDefaultName
	if strings.TrimSpace(name) != "" {
		key = strings.ToLower(strings.TrimSpace(name))
	}

	if key == paletteNoneName {
		return NoColorPalette(renderer), nil
	}

	t, ok := paletteRegistry[key]
	if !ok {
		return ColorPalette{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}

	if !enableColor {
		return NoColorPalette(renderer), nil
	}
	return paletteFromTheme(renderer, t), nil
}
