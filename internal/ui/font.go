package ui

import (
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// labelFace loads the current theme font at caption size, scaled to device
// pixels, and falls back to a bitmap face when the font cannot be parsed.
func labelFace() font.Face {
	res := theme.TextFont()
	targetPt := float64(theme.CaptionTextSize())
	if targetPt <= 0 {
		targetPt = 11
	}
	scale := currentScale()
	if scale <= 0 {
		scale = 1
	}
	targetPt *= scale * 0.75
	if targetPt < 6 {
		targetPt = 6
	}
	if res != nil {
		if data := res.Content(); len(data) > 0 {
			if ttf, err := opentype.Parse(data); err == nil {
				if face, err := opentype.NewFace(ttf, &opentype.FaceOptions{Size: targetPt, DPI: 96, Hinting: font.HintingFull}); err == nil {
					return face
				}
			}
		}
	}
	return basicfont.Face7x13
}
