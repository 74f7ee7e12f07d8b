package ui

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/font"

	"github.com/edward-ap/minituner/internal/scale"
)

// FrequencyScale is the vertical tuning gauge. It repaints through a raster
// whenever its model reports a change.
type FrequencyScale struct {
	widget.BaseWidget

	model  *scale.Model
	raster *canvas.Raster

	mu      sync.Mutex
	palette scale.Palette
	face    font.Face
}

// NewFrequencyScale creates a gauge with no indicator, drawn in pal.
func NewFrequencyScale(pal scale.Palette) *FrequencyScale {
	s := &FrequencyScale{model: scale.NewModel(), palette: pal}
	s.raster = canvas.NewRaster(s.draw)
	s.model.OnInvalidate(s.raster.Refresh)
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget.
func (s *FrequencyScale) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.raster)
}

// MinSize leaves room for the label column and a readable step spacing.
func (s *FrequencyScale) MinSize() fyne.Size {
	return fyne.NewSize(64, 240)
}

// Model exposes the gauge state for hosts that drive it directly.
func (s *FrequencyScale) Model() *scale.Model { return s.model }

// SetCurrentFrequency moves the indicator; values <= 0 hide it.
func (s *FrequencyScale) SetCurrentFrequency(hz float64) { s.model.SetCurrentFrequency(hz) }

// SetSignalDetected switches the indicator colours.
func (s *FrequencyScale) SetSignalDetected(on bool) { s.model.SetSignalDetected(on) }

// SetPalette swaps the colour table, for example after a theme change.
func (s *FrequencyScale) SetPalette(pal scale.Palette) {
	s.mu.Lock()
	s.palette = pal
	s.mu.Unlock()
	s.raster.Refresh()
}

// draw is the raster generator; w and h are in device pixels.
func (s *FrequencyScale) draw(w, h int) image.Image {
	s.mu.Lock()
	if s.face == nil {
		s.face = labelFace()
	}
	face, pal := s.face, s.palette
	s.mu.Unlock()
	return scale.RenderImage(s.model.Snapshot(), w, h, face, pal)
}
