package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme swaps the text fonts of the default theme. Nil resources fall
// back to the default fonts.
type CustomTheme struct {
	fyne.Theme
	medium fyne.Resource
	bold   fyne.Resource
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme(mediumFont, boldFont fyne.Resource) fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme(), medium: mediumFont, bold: boldFont}
}

// Font returns the font for the given style.
func (t *CustomTheme) Font(style fyne.TextStyle) fyne.Resource {
	if style.Bold && t.bold != nil {
		return t.bold
	}
	if !style.Bold && !style.Monospace && t.medium != nil {
		return t.medium
	}
	return t.Theme.Font(style)
}

// successTheme paints the primary color with the success color. It is
// applied to the progress bar of completed timers.
type successTheme struct {
	fyne.Theme
}

func newSuccessTheme(base fyne.Theme) fyne.Theme {
	if base == nil {
		base = theme.DefaultTheme()
	}
	return &successTheme{Theme: base}
}

func (t *successTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return t.Theme.Color(theme.ColorNameSuccess, variant)
	}
	return t.Theme.Color(name, variant)
}
