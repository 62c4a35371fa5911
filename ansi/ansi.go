// Package ansi provides the ANSI escape sequences and palettes used when kv
// renders values in colour. The package-level colours can be swapped via
// SetPalette; renderers may also take an explicit *Palette.
package ansi

import "sync"

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose common ANSI colour sequences.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
)

// Semantic colours, one per value kind.
var (
	String = BrightBlue
	Num    = Magenta
	Bool   = Yellow
	Nil    = Faint
	Text   = Gray
)

var paletteMu sync.RWMutex

// Palette is the input type to SetPalette, see the Palette* variables for
// examples. Empty fields keep the current colour.
type Palette struct {
	String string
	Num    string
	Bool   string
	Nil    string
	// Text colours debug and display renderings.
	Text string
}

// SetPalette sets the package-level colour variables.
//
//	ansi.SetPalette(ansi.PaletteSynthwave84)
//	// Reset to default
//	ansi.SetPalette(ansi.PaletteDefault)
func SetPalette(palette Palette) {
	paletteMu.Lock()
	defer paletteMu.Unlock()

	current := snapshotLocked()
	String = f(palette.String, current.String)
	Num = f(palette.Num, current.Num)
	Bool = f(palette.Bool, current.Bool)
	Nil = f(palette.Nil, current.Nil)
	Text = f(palette.Text, current.Text)
}

// Snapshot returns the current package-level palette.
//
// Typical usage in tests:
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
//	ansi.SetPalette(ansi.PaletteSynthwave84)
func Snapshot() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return snapshotLocked()
}

func snapshotLocked() Palette {
	return Palette{
		String: String,
		Num:    Num,
		Bool:   Bool,
		Nil:    Nil,
		Text:   Text,
	}
}

func f(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
