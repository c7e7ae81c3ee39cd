// Package renderers holds the cosmos render layers registered with the orchestrator.
package renderers

import (
	"math"

	"github.com/lixenwraith/cosmos/camera"
	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/sim"
	"github.com/lixenwraith/cosmos/vmath"
)

// boundsMargin widens projected sphere boxes to cover perspective bulge near the edges
const boundsMargin = 1.25

// frame maps world space onto the pixel raster for one render pass
type frame struct {
	proj camera.Projector
	w, h float64
	iw   int
	ih   int
}

func newFrame(sc *sim.Context, canvas *render.Canvas) (frame, bool) {
	w, h := canvas.Size()
	if w == 0 || h == 0 {
		return frame{}, false
	}
	return frame{
		proj: sc.Camera().Camera().Projector(),
		w:    float64(w),
		h:    float64(h),
		iw:   w,
		ih:   h,
	}, true
}

// toPixel projects p to raster coordinates and view depth
func (f *frame) toPixel(p vmath.Vec3F) (x, y, depth float64, ok bool) {
	ndc := f.proj.Project(p)
	if ndc.Z >= 1 || ndc.Z < -1 {
		return 0, 0, 0, false
	}
	return (ndc.X*0.5 + 0.5) * f.w, (-ndc.Y*0.5 + 0.5) * f.h, f.proj.Depth(p), true
}

// pixelRay returns the ray through the center of raster pixel x,y
func (f *frame) pixelRay(x, y int) vmath.Ray {
	ndcX := (float64(x)+0.5)/f.w*2 - 1
	ndcY := 1 - (float64(y)+0.5)/f.h*2
	return f.proj.Ray(ndcX, ndcY)
}

// radiusPx returns the on-screen radius of a sphere in pixels
func (f *frame) radiusPx(radius, depth float64) float64 {
	return f.proj.ProjectedRadius(radius, depth) * f.h / 2
}

// box is a clipped inclusive pixel rectangle
type box struct {
	x0, y0, x1, y1 int
}

// sphereBox returns the pixel box covering a sphere, false when off-screen or behind the eye
func (f *frame) sphereBox(center vmath.Vec3F, radius float64) (box, float64, bool) {
	cx, cy, depth, ok := f.toPixel(center)
	if !ok || depth <= radius {
		return box{}, 0, false
	}
	r := f.radiusPx(radius, depth)
	reach := r*boundsMargin + 1
	b := box{
		x0: max(0, int(math.Floor(cx-reach))),
		y0: max(0, int(math.Floor(cy-reach))),
		x1: min(f.iw-1, int(math.Ceil(cx+reach))),
		y1: min(f.ih-1, int(math.Ceil(cy+reach))),
	}
	if b.x0 > b.x1 || b.y0 > b.y1 {
		return box{}, 0, false
	}
	return b, r, true
}
