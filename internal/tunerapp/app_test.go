package tunerapp

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	config "github.com/edward-ap/minituner/internal/config"
	"github.com/edward-ap/minituner/internal/feed"
)

func TestRenderIcon(t *testing.T) {
	b, err := renderIcon()
	if err != nil {
		t.Fatalf("renderIcon: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("icon is not a PNG: %v", err)
	}
	if sz := img.Bounds().Size(); sz.X != iconSize || sz.Y != iconSize {
		t.Fatalf("icon size = %v, want %dx%d", sz, iconSize, iconSize)
	}
	if AppIcon == nil || len(AppIcon.Content()) == 0 {
		t.Fatal("AppIcon not initialised")
	}
}

func TestEveryModeHasATitle(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range feed.Modes() {
		title, ok := modeTitles[m]
		if !ok || title == "" {
			t.Fatalf("mode %q has no title", m)
		}
		if seen[title] {
			t.Fatalf("duplicate title %q", title)
		}
		seen[title] = true
	}
}

func TestSaveConfigLaterWritesSnapshot(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))
	t.Setenv("APPDATA", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var pending func()
	a := &App{
		config:    config.Default(),
		saveLater: func(f func()) { pending = f },
	}
	a.config.ManualFrequency = 196
	a.saveConfigLater()
	a.config.ManualFrequency = 330
	if pending == nil {
		t.Fatal("no save scheduled")
	}
	pending()

	got, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ManualFrequency != 196 {
		t.Fatalf("saved ManualFrequency = %v, want the value at scheduling time", got.ManualFrequency)
	}
}
