package scale

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ellipseSegments is how many edges approximate a circle; plenty for the
// small markers the gauge draws.
const ellipseSegments = 32

// RasterSurface draws onto an image with anti-aliased fills. Coordinates are
// relative to the image bounds' origin and shapes are clipped to the bounds.
type RasterSurface struct {
	dst  draw.Image
	face font.Face
	size image.Point
	z    *vector.Rasterizer
}

// NewRasterSurface wraps dst. face is used for all text.
func NewRasterSurface(dst draw.Image, face font.Face) *RasterSurface {
	size := dst.Bounds().Size()
	s := &RasterSurface{dst: dst, face: face, size: size}
	if size.X > 0 && size.Y > 0 {
		s.z = vector.NewRasterizer(size.X, size.Y)
	}
	return s
}

func (s *RasterSurface) empty() bool { return s.z == nil }

// Line draws a one pixel wide segment.
func (s *RasterSurface) Line(x0, y0, x1, y1 float32, c color.Color) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*0.5, dx/l*0.5
	s.fill(c, []f32.Vec2{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	})
}

// FillEllipse fills the ellipse inscribed in r.
func (s *RasterSurface) FillEllipse(r Rect, c color.Color) {
	s.fill(c, ellipse(r, 0, false))
}

// StrokeEllipse outlines the ellipse inscribed in r with a one pixel ring.
func (s *RasterSurface) StrokeEllipse(r Rect, c color.Color) {
	outer := ellipse(r, 0.5, false)
	inner := ellipse(r, -0.5, true)
	s.fill(c, outer, inner)
}

// FillPolygon fills a closed polygon; self-intersecting outlines fill every
// enclosed lobe.
func (s *RasterSurface) FillPolygon(pts []f32.Vec2, c color.Color) {
	s.fill(c, pts)
}

// MeasureText reports the advance and the ascent+descent of the face.
func (s *RasterSurface) MeasureText(text string) (float32, float32) {
	if s.face == nil {
		return 0, 0
	}
	m := s.face.Metrics()
	return fromFixed(font.MeasureString(s.face, text)), fromFixed(m.Ascent + m.Descent)
}

// Text draws text with its top-left corner at (x, y).
func (s *RasterSurface) Text(text string, x, y float32, c color.Color) {
	if s.face == nil || s.empty() || text == "" {
		return
	}
	origin := s.dst.Bounds().Min
	d := &font.Drawer{
		Dst:  s.dst,
		Src:  image.NewUniform(c),
		Face: s.face,
		Dot: fixed.Point26_6{
			X: toFixed(x) + fixed.I(origin.X),
			Y: toFixed(y) + s.face.Metrics().Ascent + fixed.I(origin.Y),
		},
	}
	d.DrawString(text)
}

func (s *RasterSurface) fill(c color.Color, paths ...[]f32.Vec2) {
	if s.empty() {
		return
	}
	s.z.Reset(s.size.X, s.size.Y)
	drawn := false
	for _, p := range paths {
		p = clipPolygon(p, float32(s.size.X), float32(s.size.Y))
		if len(p) < 3 {
			continue
		}
		s.z.MoveTo(p[0][0], p[0][1])
		for _, v := range p[1:] {
			s.z.LineTo(v[0], v[1])
		}
		s.z.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	s.z.Draw(s.dst, s.dst.Bounds(), image.NewUniform(c), image.Point{})
}

// ellipse flattens the ellipse inscribed in r grown by grow on every side.
// reverse flips the winding so the result can punch a hole.
func ellipse(r Rect, grow float32, reverse bool) []f32.Vec2 {
	rx, ry := r.W/2+grow, r.H/2+grow
	if rx <= 0 || ry <= 0 {
		return nil
	}
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	pts := make([]f32.Vec2, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		if reverse {
			a = -a
		}
		pts[i] = f32.Vec2{cx + rx*float32(math.Cos(a)), cy + ry*float32(math.Sin(a))}
	}
	return pts
}

// clipPolygon clips p against the box [0,w]x[0,h] (Sutherland-Hodgman).
func clipPolygon(p []f32.Vec2, w, h float32) []f32.Vec2 {
	edges := []struct {
		inside func(f32.Vec2) bool
		cross  func(a, b f32.Vec2) f32.Vec2
	}{
		{func(v f32.Vec2) bool { return v[0] >= 0 }, func(a, b f32.Vec2) f32.Vec2 { return atX(a, b, 0) }},
		{func(v f32.Vec2) bool { return v[0] <= w }, func(a, b f32.Vec2) f32.Vec2 { return atX(a, b, w) }},
		{func(v f32.Vec2) bool { return v[1] >= 0 }, func(a, b f32.Vec2) f32.Vec2 { return atY(a, b, 0) }},
		{func(v f32.Vec2) bool { return v[1] <= h }, func(a, b f32.Vec2) f32.Vec2 { return atY(a, b, h) }},
	}
	out := p
	for _, e := range edges {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]f32.Vec2, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				out = append(out, cur)
			case e.inside(cur):
				out = append(out, e.cross(prev, cur), cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func atX(a, b f32.Vec2, x float32) f32.Vec2 {
	t := (x - a[0]) / (b[0] - a[0])
	return f32.Vec2{x, a[1] + t*(b[1]-a[1])}
}

func atY(a, b f32.Vec2, y float32) f32.Vec2 {
	t := (y - a[1]) / (b[1] - a[1])
	return f32.Vec2{a[0] + t*(b[0]-a[0]), y}
}

func toFixed(v float32) fixed.Int26_6 { return fixed.Int26_6(math.Round(float64(v) * 64)) }

func fromFixed(v fixed.Int26_6) float32 { return float32(v) / 64 }

// RenderImage renders st into a fresh RGBA image of the given size.
func RenderImage(st State, width, height int, face font.Face, pal Palette) *image.RGBA {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	Render(NewRasterSurface(img, face), st, width, height, pal)
	return img
}
