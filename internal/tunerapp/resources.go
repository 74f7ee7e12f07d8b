package tunerapp

import (
	"bytes"
	"image/png"
	"log"

	"fyne.io/fyne/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/edward-ap/minituner/internal/scale"
)

const iconSize = 64

// AppIcon is the window and application icon: the gauge itself, drawn with
// the indicator resting on the A string.
var AppIcon fyne.Resource

func init() {
	b, err := renderIcon()
	if err != nil {
		log.Println("icon render error:", err)
		return
	}
	AppIcon = fyne.NewStaticResource("minituner.png", b)
}

func renderIcon() ([]byte, error) {
	st := scale.State{CurrentFrequency: 110, SignalDetected: true}
	img := scale.RenderImage(st, iconSize, iconSize, basicfont.Face7x13, scale.DefaultPalette())
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
