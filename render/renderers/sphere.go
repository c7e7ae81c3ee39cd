package renderers

import (
	"math"

	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/sim"
	"github.com/lixenwraith/cosmos/texture"
	"github.com/lixenwraith/cosmos/vmath"
)

// dotRadiusPx is the on-screen radius below which a sphere collapses to one pixel
const dotRadiusPx = 0.75

// sphere is one ray-cast draw
type sphere struct {
	center vmath.Vec3F
	radius float64
	tex    *texture.Image
	color  render.RGB // used without a texture
	spin   float64    // rotation about +Y, shifts texture longitude
	lit    bool
}

// texel samples the equirectangular texture for world normal n
// Longitude zero faces -X as on a standard UV sphere, v=0 is the north pole
func (s *sphere) texel(n vmath.Vec3F) render.RGB {
	if s.tex == nil {
		return s.color
	}
	local := vmath.V3FRotateY(n, -s.spin)
	u := math.Atan2(local.Z, -local.X) / vmath.TwoPi
	v := math.Acos(vmath.Clamp(local.Y, -1, 1)) / math.Pi
	return s.tex.Sample(u, v)
}

func (s *sphere) shade(p, n vmath.Vec3F, rig *sim.LightingRig) render.RGB {
	c := s.texel(n)
	if !s.lit {
		return c
	}
	return render.Scale(c, rig.Illuminance(p, n))
}

// rasterSphere ray-casts s into the canvas and returns the number of pixels written
func rasterSphere(f *frame, canvas *render.Canvas, s sphere, rig *sim.LightingRig) int {
	b, rpx, ok := f.sphereBox(s.center, s.radius)
	if !ok {
		return 0
	}

	if rpx < dotRadiusPx {
		x, y, depth, _ := f.toPixel(s.center)
		// Visible hemisphere faces the eye, shade its center
		n := vmath.V3FNormalize(vmath.V3FSub(f.proj.Position, s.center))
		p := vmath.V3FAdd(s.center, vmath.V3FScale(n, s.radius))
		if canvas.Plot(int(math.Floor(x)), int(math.Floor(y)), depth-s.radius, s.shade(p, n, rig), render.BlendReplace, 1) {
			return 1
		}
		return 0
	}

	written := 0
	inv := 1 / s.radius
	for y := b.y0; y <= b.y1; y++ {
		for x := b.x0; x <= b.x1; x++ {
			ray := f.pixelRay(x, y)
			t, hit := ray.IntersectSphere(s.center, s.radius)
			if !hit {
				continue
			}
			p := ray.At(t)
			n := vmath.V3FScale(vmath.V3FSub(p, s.center), inv)
			if canvas.Plot(x, y, f.proj.Depth(p), s.shade(p, n, rig), render.BlendReplace, 1) {
				written++
			}
		}
	}
	return written
}
