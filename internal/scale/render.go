package scale

import (
	"image/color"

	"golang.org/x/image/math/f32"

	"github.com/edward-ap/minituner/internal/pitch"
)

// Rect is an axis aligned box in surface coordinates.
type Rect struct {
	X, Y, W, H float32
}

// Surface is the minimal set of drawing calls the gauge needs.
type Surface interface {
	Line(x0, y0, x1, y1 float32, c color.Color)
	FillEllipse(r Rect, c color.Color)
	StrokeEllipse(r Rect, c color.Color)
	FillPolygon(pts []f32.Vec2, c color.Color)
	// MeasureText reports the advance width and line height of s.
	MeasureText(s string) (w, h float32)
	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y float32, c color.Color)
}

// Render draws the whole gauge for st onto dst. It only issues drawing calls
// and is safe for any width and height, including zero.
func Render(dst Surface, st State, width, height int, pal Palette) {
	layout := pitch.NewLayout(height)
	center := float32(width / 2)

	for i := 0; i <= layout.TotalSteps; i++ {
		y := layout.TickY(i)
		dst.Line(center-MarkWidth/2, y, center+MarkWidth/2, y, pal.Pen)
	}

	// labels are centred in a column as wide as the widest glyph
	columnW, _ := dst.MeasureText("W")
	for _, l := range pitch.Labels() {
		y := layout.Y(l.Frequency)
		mark := Rect{X: pitch.Padding, Y: y - LabelMarkSize/2, W: LabelMarkSize, H: LabelMarkSize}
		dst.FillEllipse(mark, l.Color)
		dst.StrokeEllipse(mark, pal.Pen)
		dst.FillEllipse(Rect{
			X: pitch.Padding + LabelMarkSize/5,
			Y: y - LabelMarkSize/3,
			W: LabelMarkSize / 3,
			H: LabelMarkSize / 3,
		}, pal.Highlight)

		if l.Title == "" {
			continue
		}
		tw, th := dst.MeasureText(l.Title)
		x := float32(width) - pitch.Padding - columnW/2 - tw/2
		dst.Text(l.Title, x, y-th/2, pal.Text)
	}

	if st.CurrentFrequency > 0 {
		drawIndicator(dst, center, layout.Y(st.CurrentFrequency), pal, st.SignalDetected)
	}
}

// drawIndicator paints the diamond as two bow ties so opposite quadrants
// share a colour.
func drawIndicator(dst Surface, cx, cy float32, pal Palette, detected bool) {
	light, dark := pal.indicatorColors(detected)
	left := f32.Vec2{cx - IndicatorHalfWidth, cy}
	right := f32.Vec2{cx + IndicatorHalfWidth, cy}
	top := f32.Vec2{cx, cy - IndicatorHalfHeight}
	bottom := f32.Vec2{cx, cy + IndicatorHalfHeight}
	dst.FillPolygon([]f32.Vec2{left, top, bottom, right}, light)
	dst.FillPolygon([]f32.Vec2{left, bottom, top, right}, dark)
}
