package main

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/basicfont"

	"github.com/edward-ap/minituner/internal/pitch"
	"github.com/edward-ap/minituner/internal/scale"
)

type renderOptions struct {
	frequency float64
	detected  bool
	width     int
	height    int
	theme     string
	out       string
}

var opts = renderOptions{width: 80, height: 510, theme: "light", out: "scale.png"}

var rootCmd = &cobra.Command{
	Use:   "scalepng",
	Short: "Render the tuning gauge to a PNG file",
	Long: `scalepng draws the tuning gauge exactly as the MiniTuner window does,
with the indicator at --freq, and writes it as a PNG. Useful for
documentation and for eyeballing layout changes without a display.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := opts.validate(); err != nil {
			return err
		}
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		if err := writePNG(f, opts); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		if n, ok := pitch.NoteOf(opts.frequency); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %+.1f cents\n", opts.out, n, n.Cents)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: no indicator\n", opts.out)
		}
		return nil
	},
}

func init() {
	fl := rootCmd.Flags()
	fl.Float64VarP(&opts.frequency, "freq", "f", 0, "frequency in Hz to mark; 0 hides the indicator")
	fl.BoolVarP(&opts.detected, "detected", "d", false, "draw the indicator in the active colours")
	fl.IntVar(&opts.width, "width", opts.width, "image width in pixels")
	fl.IntVar(&opts.height, "height", opts.height, "image height in pixels")
	fl.StringVar(&opts.theme, "theme", opts.theme, "palette: light or dark")
	fl.StringVarP(&opts.out, "out", "o", opts.out, "output file")
}

// Execute runs the root command.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func (o renderOptions) validate() error {
	if o.width <= 0 || o.height <= 0 {
		return errors.New("width and height must be positive")
	}
	return nil
}

// writePNG renders the gauge described by o and encodes it to w.
func writePNG(w io.Writer, o renderOptions) error {
	if err := o.validate(); err != nil {
		return err
	}
	st := scale.State{CurrentFrequency: o.frequency, SignalDetected: o.detected}
	img := scale.RenderImage(st, o.width, o.height, basicfont.Face7x13, scale.PaletteFor(o.theme))
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
