package ui

import (
	"bytes"
	"image"
	"image/color"
	"runtime"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minituner/internal/scale"
)

func TestFrequencyScaleDrawsIndicator(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := NewFrequencyScale(scale.DefaultPalette())
	empty := s.draw(80, 400)

	s.SetCurrentFrequency(110)
	s.SetSignalDetected(true)
	if got := s.Model().Snapshot(); got != (scale.State{CurrentFrequency: 110, SignalDetected: true}) {
		t.Fatalf("unexpected state %+v", got)
	}
	withIndicator := s.draw(80, 400)
	if sameImage(empty, withIndicator) {
		t.Fatal("indicator did not change the raster")
	}
	if !sameImage(withIndicator, s.draw(80, 400)) {
		t.Fatal("repeated draws differ")
	}

	s.SetCurrentFrequency(0)
	if !sameImage(empty, s.draw(80, 400)) {
		t.Fatal("zero frequency must hide the indicator")
	}
}

func TestFrequencyScaleRenderer(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := NewFrequencyScale(scale.DarkPalette())
	r := test.WidgetRenderer(s)
	if len(r.Objects()) != 1 {
		t.Fatalf("want a single raster object, got %d", len(r.Objects()))
	}
	if s.MinSize().Height < 200 {
		t.Fatalf("min height too small: %v", s.MinSize())
	}
	s.SetPalette(scale.DefaultPalette())
}

func sameImage(a, b image.Image) bool {
	ra, okA := a.(*image.RGBA)
	rb, okB := b.(*image.RGBA)
	return okA && okB && ra.Rect == rb.Rect && bytes.Equal(ra.Pix, rb.Pix)
}

func TestFormatReading(t *testing.T) {
	tests := []struct {
		name     string
		hz       float64
		detected bool
		want     string
	}{
		{name: "no signal", hz: 110, detected: false, want: noSignalText},
		{name: "zero", hz: 0, detected: true, want: noSignalText},
		{name: "in tune A", hz: 110, detected: true, want: "A2 110.0 Hz  +0¢ A"},
		{name: "far from strings", hz: 1000, detected: true, want: "B5 1000.0 Hz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatReading(tt.hz, tt.detected); got != tt.want {
				t.Fatalf("formatReading(%v, %v) = %q, want %q", tt.hz, tt.detected, got, tt.want)
			}
		})
	}
}

func TestReadoutUpdate(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	r := NewReadout(widget.NewLabel(""))
	if r.Text() != noSignalText {
		t.Fatalf("initial text %q", r.Text())
	}
	r.Update(82.41, true)
	if !strings.HasPrefix(r.Text(), "E2 82.4 Hz") {
		t.Fatalf("unexpected text %q", r.Text())
	}
	r.Update(0, false)
	if r.Text() != noSignalText {
		t.Fatalf("unexpected text %q", r.Text())
	}
}

func TestLerpNRGBA(t *testing.T) {
	a := color.NRGBA{0, 0, 0, 255}
	b := color.NRGBA{200, 100, 50, 255}
	if got := lerpNRGBA(a, b, 0); got != a {
		t.Fatalf("t=0: %v", got)
	}
	if got := lerpNRGBA(a, b, 1); got != b {
		t.Fatalf("t=1: %v", got)
	}
	if got := lerpNRGBA(a, b, 0.5); got != (color.NRGBA{100, 50, 25, 255}) {
		t.Fatalf("t=0.5: %v", got)
	}
	if got := lerpNRGBA(a, b, 7); got != b {
		t.Fatalf("t clamps: %v", got)
	}
	if triangle(1.5) != 0.5 || triangle(0.25) != 0.25 {
		t.Fatal("triangle ramp")
	}
}

func TestSignalIndicatorIdempotent(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	ind := NewSignalIndicator(10, color.NRGBA{G: 255, A: 255}, color.NRGBA{G: 128, A: 255})
	if ind.CanvasObject() == nil {
		t.Fatal("nil canvas object")
	}
	ind.SetActive(true)
	ind.SetActive(true)
	if !ind.Active() {
		t.Fatal("expected active")
	}
	ind.SetActive(false)
	if ind.Active() {
		t.Fatal("expected inactive")
	}
}

func TestSignalIndicatorRunsOnePulse(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	ind := NewSignalIndicator(10, color.NRGBA{G: 255, A: 255}, color.NRGBA{G: 128, A: 255})
	before := runtime.NumGoroutine()
	for i := 0; i < 20; i++ {
		ind.SetActive(true)
		ind.SetActive(false)
	}
	ind.SetActive(true)
	time.Sleep(300 * time.Millisecond)
	if after := runtime.NumGoroutine(); after-before > 2 {
		t.Fatalf("goroutines before=%d after=%d, want one pulse goroutine", before, after)
	}

	ind.SetActive(false)
	time.Sleep(100 * time.Millisecond)
	if after := runtime.NumGoroutine(); after > before+1 {
		t.Fatalf("pulse goroutine still running: before=%d after=%d", before, after)
	}
}

func TestTunerThemeVariant(t *testing.T) {
	light := newTunerTheme("light")
	dark := newTunerTheme("dark")
	if light.Color(theme.ColorNameBackground, theme.VariantDark) == dark.Color(theme.ColorNameBackground, theme.VariantDark) {
		t.Fatal("variant must be pinned by the theme, not the caller")
	}
	base := theme.DefaultTheme().Size(theme.SizeNameInlineIcon)
	if got := light.Size(theme.SizeNameInlineIcon); got != base*0.5 {
		t.Fatalf("inline icon size = %v, want %v", got, base*0.5)
	}
	var _ fyne.Theme = light
}
