package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// HalfBlock is the upper half block, fg paints the top pixel and bg the bottom one
const HalfBlock = '▀'
