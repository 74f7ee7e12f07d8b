package ui

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

var indicatorIdle = color.NRGBA{0x80, 0x80, 0x80, 0xFF}

// SignalIndicator is a small LED that pulses between two greens while a
// pitch is being detected and sits gray otherwise.
type SignalIndicator struct {
	wrap   *fyne.Container
	circle *canvas.Circle
	light  color.NRGBA
	dark   color.NRGBA

	mu   sync.Mutex
	stop chan struct{} // non-nil while a pulse goroutine runs
}

// NewSignalIndicator constructs an indicator of the given diameter pulsing
// between light and dark.
func NewSignalIndicator(diameter float32, light, dark color.NRGBA) *SignalIndicator {
	c := canvas.NewCircle(indicatorIdle)
	c.StrokeColor = color.NRGBA{0, 0, 0, 0}
	inner := container.New(layout.NewGridWrapLayout(fyne.NewSize(diameter, diameter)), c)
	wrap := container.NewCenter(inner)
	return &SignalIndicator{wrap: wrap, circle: c, light: light, dark: dark}
}

// CanvasObject returns the fyne object suitable for embedding in layouts.
func (s *SignalIndicator) CanvasObject() fyne.CanvasObject { return s.wrap }

// Active reports whether the pulse is running.
func (s *SignalIndicator) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

// SetActive starts or stops the pulse. Repeated calls with the same value are
// no-ops, so feeds may call it on every reading. At most one pulse goroutine
// runs at a time.
func (s *SignalIndicator) SetActive(on bool) {
	s.mu.Lock()
	if on == (s.stop != nil) {
		s.mu.Unlock()
		return
	}
	if on {
		s.stop = make(chan struct{})
		go s.animate(s.stop)
		s.mu.Unlock()
		return
	}
	close(s.stop)
	s.stop = nil
	s.mu.Unlock()

	CallOnMain(func() {
		s.circle.FillColor = indicatorIdle
		s.circle.Refresh()
	})
}

func (s *SignalIndicator) animate(stop <-chan struct{}) {
	t := time.NewTicker(90 * time.Millisecond)
	defer t.Stop()
	phase := 0.0
	for {
		col := lerpNRGBA(s.dark, s.light, triangle(phase))
		phase += 0.1
		if phase >= 2 {
			phase = 0
		}
		CallOnMain(func() {
			select {
			case <-stop:
				return
			default:
			}
			s.circle.FillColor = col
			s.circle.Refresh()
		})
		select {
		case <-stop:
			return
		case <-t.C:
		}
	}
}

// triangle folds p in [0,2) into a 0..1..0 ramp.
func triangle(p float64) float64 {
	if p > 1 {
		return 2 - p
	}
	return p
}

// lerpNRGBA mixes a and b; t is clamped to [0,1].
func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	t = clampFloat64(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
