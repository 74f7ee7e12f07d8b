package scale

import "image/color"

const (
	// MarkWidth is the horizontal extent of a step tick.
	MarkWidth = 6
	// LabelMarkSize is the diameter of a reference label marker.
	LabelMarkSize = 9
	// IndicatorHalfWidth and IndicatorHalfHeight size the diamond indicator.
	IndicatorHalfWidth  = 10
	IndicatorHalfHeight = 5
)

// Palette is the fixed set of colours used to draw the gauge. Palettes are
// plain values; the package level constructors return fresh copies.
type Palette struct {
	Pen       color.NRGBA // ticks and marker outlines
	Text      color.NRGBA
	Highlight color.NRGBA // glossy dot on label markers

	ActiveLight   color.NRGBA
	ActiveDark    color.NRGBA
	InactiveLight color.NRGBA
	InactiveDark  color.NRGBA
}

// DefaultPalette draws black on a light host background.
func DefaultPalette() Palette {
	return Palette{
		Pen:           color.NRGBA{A: 0xFF},
		Text:          color.NRGBA{A: 0xFF},
		Highlight:     color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		ActiveLight:   color.NRGBA{R: 0xAD, G: 0xFF, B: 0x2F, A: 0xFF}, // green yellow
		ActiveDark:    color.NRGBA{G: 0x80, A: 0xFF},
		InactiveLight: color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 70},
		InactiveDark:  color.NRGBA{A: 50},
	}
}

// DarkPalette keeps the indicator colours but uses light ink for ticks and
// text so the gauge reads on a dark theme.
func DarkPalette() Palette {
	p := DefaultPalette()
	p.Pen = color.NRGBA{R: 0xD0, G: 0xD0, B: 0xD0, A: 0xFF}
	p.Text = color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	p.InactiveDark = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 50}
	return p
}

// PaletteFor picks a palette by theme name; anything but "light" is dark.
func PaletteFor(themeName string) Palette {
	if themeName == "light" {
		return DefaultPalette()
	}
	return DarkPalette()
}

// indicatorColors returns the two-tone pair for the current signal state.
func (p Palette) indicatorColors(detected bool) (color.NRGBA, color.NRGBA) {
	if detected {
		return p.ActiveLight, p.ActiveDark
	}
	return p.InactiveLight, p.InactiveDark
}
