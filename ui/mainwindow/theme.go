package mainwindow

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// viewerTheme tunes the default theme toward the diagram palette.
type viewerTheme struct{}

var _ fyne.Theme = (*viewerTheme)(nil)

func (t *viewerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		// Matches the part highlight stroke.
		return color.NRGBA{R: 0x19, G: 0x76, B: 0xd2, A: 0xff}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0xff, G: 0xc1, B: 0x07, A: 0x80}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *viewerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *viewerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *viewerTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
