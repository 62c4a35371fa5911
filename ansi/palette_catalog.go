package ansi

import (
	"sort"
	"strings"
)

func c256(n string) string {
	return "\x1b[38;5;" + n + "m"
}

// Built-in palettes.
var (
	PaletteDefault = Palette{
		String: BrightBlue,
		Num:    Magenta,
		Bool:   Yellow,
		Nil:    Faint,
		Text:   Gray,
	}
	PaletteMonochrome = Palette{
		String: Gray,
		Num:    Gray,
		Bool:   Gray,
		Nil:    Faint,
		Text:   Gray,
	}
	PaletteDracula = Palette{
		String: c256("228"),
		Num:    c256("141"),
		Bool:   c256("212"),
		Nil:    c256("61"),
		Text:   c256("253"),
	}
	PaletteNord = Palette{
		String: c256("144"),
		Num:    c256("139"),
		Bool:   c256("179"),
		Nil:    c256("60"),
		Text:   c256("188"),
	}
	PaletteGruvbox = Palette{
		String: c256("142"),
		Num:    c256("175"),
		Bool:   c256("214"),
		Nil:    c256("245"),
		Text:   c256("223"),
	}
	PaletteTokyoNight = Palette{
		String: c256("150"),
		Num:    c256("215"),
		Bool:   c256("204"),
		Nil:    c256("60"),
		Text:   c256("189"),
	}
	PaletteSolarizedDark = Palette{
		String: c256("37"),
		Num:    c256("125"),
		Bool:   c256("136"),
		Nil:    c256("240"),
		Text:   c256("245"),
	}
	PaletteOneDark = Palette{
		String: c256("114"),
		Num:    c256("173"),
		Bool:   c256("180"),
		Nil:    c256("59"),
		Text:   c256("145"),
	}
	PaletteSynthwave84 = Palette{
		String: c256("219"),
		Num:    c256("208"),
		Bool:   c256("226"),
		Nil:    c256("97"),
		Text:   c256("225"),
	}
)

var namedPalettes = map[string]*Palette{
	"default":        &PaletteDefault,
	"monochrome":     &PaletteMonochrome,
	"dracula":        &PaletteDracula,
	"nord":           &PaletteNord,
	"gruvbox":        &PaletteGruvbox,
	"tokyo-night":    &PaletteTokyoNight,
	"solarized-dark": &PaletteSolarizedDark,
	"one-dark":       &PaletteOneDark,
	"synthwave-84":   &PaletteSynthwave84,
}

var paletteAliases = map[string]string{
	"mono":          "monochrome",
	"doom-dracula":  "dracula",
	"doomdracula":   "dracula",
	"doom-nord":     "nord",
	"doomnord":      "nord",
	"doom-gruvbox":  "gruvbox",
	"doomgruvbox":   "gruvbox",
	"tokyonight":    "tokyo-night",
	"solarizeddark": "solarized-dark",
	"onedark":       "one-dark",
	"synthwave84":   "synthwave-84",
}

// PaletteByName resolves a built-in palette by its canonical name.
// Names are case-insensitive and support compatibility aliases. Unknown names
// resolve to PaletteDefault.
func PaletteByName(name string) *Palette {
	palette, _ := LookupPalette(name)
	return palette
}

// LookupPalette is PaletteByName that also reports whether name matched a
// built-in palette.
func LookupPalette(name string) (*Palette, bool) {
	normalized := normalizePaletteName(name)
	if normalized == "" {
		return &PaletteDefault, false
	}
	if canonical, ok := paletteAliases[normalized]; ok {
		normalized = canonical
	}
	if palette, ok := namedPalettes[normalized]; ok && palette != nil {
		return palette, true
	}
	return &PaletteDefault, false
}

// AvailablePaletteNames returns canonical built-in palette names in sorted order.
func AvailablePaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizePaletteName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if strings.HasPrefix(s, "palette-") {
		s = strings.TrimPrefix(s, "palette-")
	} else if strings.HasPrefix(s, "palette") {
		s = strings.TrimPrefix(s, "palette")
		s = strings.TrimLeft(s, "-")
	}
	return s
}
