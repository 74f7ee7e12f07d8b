package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// tunerTheme pins the light or dark variant regardless of the OS preference
// and halves the inline icon size, which the pitch slider uses for its thumb.
type tunerTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t tunerTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(n, t.variant)
}

func (t tunerTheme) Size(n fyne.ThemeSizeName) float32 {
	if n == theme.SizeNameInlineIcon {
		return t.Theme.Size(n) * 0.5
	}
	return t.Theme.Size(n)
}

// UseTunerTheme applies the theme to the current app; name is "light" or
// "dark".
func UseTunerTheme(name string) {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	app.Settings().SetTheme(newTunerTheme(name))
}

func newTunerTheme(name string) fyne.Theme {
	v := theme.VariantDark
	if name == "light" {
		v = theme.VariantLight
	}
	return tunerTheme{Theme: theme.DefaultTheme(), variant: v}
}
