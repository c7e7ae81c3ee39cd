package vmath

import (
	"math"
)

// Traverse visits every grid cell crossed by the segment (x1,y1)→(x2,y2) in float pixel coordinates
// Supercover DDA: no cell touched by the segment is skipped. The callback receives the cell and the
// segment parameter t in [0,1] at cell entry; returning false stops the walk
func Traverse(x1, y1, x2, y2 float64, callback func(x, y int, t float64) bool) {
	ix, iy := int(math.Floor(x1)), int(math.Floor(y1))
	targetX, targetY := int(math.Floor(x2)), int(math.Floor(y2))

	if !callback(ix, iy, 0) {
		return
	}
	if ix == targetX && iy == targetY {
		return
	}

	dx := x2 - x1
	dy := y2 - y1

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	tMaxX, tMaxY := math.Inf(1), math.Inf(1)
	var tDeltaX, tDeltaY float64
	if dx > 0 {
		tDeltaX = 1 / dx
		frac := x1 - math.Floor(x1)
		if stepX > 0 {
			tMaxX = (1 - frac) * tDeltaX
		} else {
			tMaxX = frac * tDeltaX
		}
	}
	if dy > 0 {
		tDeltaY = 1 / dy
		frac := y1 - math.Floor(y1)
		if stepY > 0 {
			tMaxY = (1 - frac) * tDeltaY
		} else {
			tMaxY = frac * tDeltaY
		}
	}

	for ix != targetX || iy != targetY {
		var t float64
		switch {
		case tMaxX < tMaxY:
			if ix != targetX {
				t = tMaxX
				ix += stepX
				tMaxX += tDeltaX
			} else {
				t = tMaxY
				iy += stepY
				tMaxY += tDeltaY
			}
		case tMaxX > tMaxY:
			if iy != targetY {
				t = tMaxY
				iy += stepY
				tMaxY += tDeltaY
			} else {
				t = tMaxX
				ix += stepX
				tMaxX += tDeltaX
			}
		default:
			t = tMaxX
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}
		if !callback(ix, iy, math.Min(t, 1)) {
			return
		}
	}
}
