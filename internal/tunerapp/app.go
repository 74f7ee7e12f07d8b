// Package tunerapp wires the gauge, the frequency feed and the configuration
// together into the MiniTuner desktop window.
package tunerapp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/bep/debounce"

	config "github.com/edward-ap/minituner/internal/config"
	"github.com/edward-ap/minituner/internal/feed"
	"github.com/edward-ap/minituner/internal/scale"
	ui "github.com/edward-ap/minituner/internal/ui"
)

// saveDelay coalesces bursts of setting changes into one config write.
const saveDelay = 400 * time.Millisecond

var modeTitles = map[feed.Mode]string{
	feed.ModeStrings: "Guitar strings",
	feed.ModeSweep:   "Sweep 70-1200 Hz",
	feed.ModeManual:  "Manual",
}

// Options are command line overrides applied on top of the stored config.
type Options struct {
	Mode string
}

// App owns the fyne application, the main window and the running feed.
type App struct {
	fa     fyne.App
	w      fyne.Window
	config *config.Config

	gauge      *ui.FrequencyScale
	slider     *ui.PitchSlider
	sliderBox  *fyne.Container
	readout    *ui.Readout
	signal     *ui.SignalIndicator
	modeSelect *widget.Select

	saveLater func(func())

	mu         sync.Mutex
	cancelFeed context.CancelFunc
}

// NewApp loads the configuration and builds the window. It does not start a
// feed; Run does.
func NewApp(opts Options) *App {
	cfg, err := config.Load()
	if err != nil {
		log.Println("config load error:", err)
		cfg = config.Default()
	}
	if opts.Mode != "" {
		if m, err := feed.ParseMode(opts.Mode); err == nil {
			cfg.Mode = string(m)
		} else {
			log.Println("ignoring mode override:", err)
		}
	}

	fa := app.NewWithID(config.AppID)
	ui.UseTunerTheme(cfg.Theme)
	if AppIcon != nil {
		fa.SetIcon(AppIcon)
	}
	w := fa.NewWindow("MiniTuner")
	w.SetMaster()
	if AppIcon != nil {
		w.SetIcon(AppIcon)
	}
	w.Resize(fyne.NewSize(float32(cfg.WindowW), float32(cfg.WindowH)))

	a := &App{
		fa:        fa,
		w:         w,
		config:    cfg,
		saveLater: debounce.New(saveDelay),
	}
	a.buildUI()

	w.SetCloseIntercept(func() {
		a.stopFeed()
		a.signal.SetActive(false)
		sz := w.Canvas().Size()
		cfg.WindowW = int(sz.Width)
		cfg.WindowH = int(sz.Height)
		if err := cfg.Save(); err != nil {
			log.Println("config save error:", err)
		}
		w.Close()
		fa.Quit()
	})
	return a
}

// Run starts the configured feed and blocks in the fyne event loop.
func (a *App) Run() {
	a.modeSelect.SetSelected(modeTitles[a.config.FeedMode()])
	a.w.ShowAndRun()
}

func (a *App) buildUI() {
	a.gauge = ui.NewFrequencyScale(scale.PaletteFor(a.config.Theme))

	a.slider = ui.NewPitchSlider()
	a.slider.SetFrequency(a.config.ManualFrequency)
	a.slider.OnChanged = func(hz float64) {
		a.config.ManualFrequency = hz
		a.apply(hz, true)
		a.saveConfigLater()
	}
	a.sliderBox = container.NewStack(a.slider)

	lbl := widget.NewLabel("")
	lbl.Alignment = fyne.TextAlignCenter
	a.readout = ui.NewReadout(lbl)

	pal := scale.DefaultPalette()
	a.signal = ui.NewSignalIndicator(10, pal.ActiveLight, pal.ActiveDark)

	titles := make([]string, 0, len(feed.Modes()))
	for _, m := range feed.Modes() {
		titles = append(titles, modeTitles[m])
	}
	a.modeSelect = widget.NewSelect(titles, func(title string) {
		for m, t := range modeTitles {
			if t == title {
				a.switchMode(m)
				return
			}
		}
	})

	status := container.NewHBox(a.signal.CanvasObject(), lbl, layout.NewSpacer())
	body := container.NewBorder(nil, nil, a.sliderBox, nil, a.gauge)
	a.w.SetContent(container.NewBorder(a.modeSelect, status, nil, nil, body))
}

// switchMode stops the running feed and starts the one for m. Manual mode
// shows the slider and drives the gauge from it instead.
func (a *App) switchMode(m feed.Mode) {
	a.stopFeed()
	if a.config.Mode != string(m) {
		a.config.Mode = string(m)
		a.saveConfigLater()
	}

	if m == feed.ModeManual {
		a.sliderBox.Show()
		a.apply(a.slider.Frequency(), true)
		return
	}
	a.sliderBox.Hide()
	a.apply(0, false)
	if err := a.startFeed(m); err != nil {
		dialog.ShowError(fmt.Errorf("cannot start %s feed: %w", m, err), a.w)
	}
}

func (a *App) startFeed(m feed.Mode) error {
	src, err := feed.New(m, a.config.FeedOptions())
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.mu.Lock()
	a.cancelFeed = cancel
	a.mu.Unlock()

	interval := a.config.UpdateInterval()
	go func() {
		err := feed.Run(ctx, src, interval, func(r feed.Reading) {
			ui.CallOnMain(func() {
				if ctx.Err() != nil {
					return
				}
				a.apply(r.Frequency, r.Detected)
			})
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Println("feed stopped:", err)
		}
	}()
	return nil
}

// stopFeed cancels the running feed, if any. Readings already queued for the
// UI thread are dropped by the context check in startFeed.
func (a *App) stopFeed() {
	a.mu.Lock()
	cancel := a.cancelFeed
	a.cancelFeed = nil
	a.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// apply pushes one reading to every widget that reflects it.
func (a *App) apply(hz float64, detected bool) {
	a.gauge.Model().Set(scale.State{CurrentFrequency: hz, SignalDetected: detected})
	a.readout.Update(hz, detected)
	a.signal.SetActive(detected)
}

// saveConfigLater schedules a write of the current settings. The copy is
// taken here because the debounced save runs on its own timer goroutine.
func (a *App) saveConfigLater() {
	snap := a.config.Clone()
	a.saveLater(func() {
		if err := snap.Save(); err != nil {
			log.Println("config save error:", err)
		}
	})
}
