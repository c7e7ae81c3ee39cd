package render

import "github.com/gdamore/tcell/v2"

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellToRGB converts tcell.Color to RGB, ColorDefault maps to the space background
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RgbSpace
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// Style builds a tcell style for a cell
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(RGBToTcell(c.Fg)).
		Background(RGBToTcell(c.Bg)).
		Attributes(c.Attrs)
}
