package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/r7vme/ripple/internal/field"
)

// GrayImage renders a grid to an 8-bit grayscale image using the linear
// [low, high] intensity mapping.
func GrayImage(g *field.Grid, low, high float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Cols(), g.Rows()))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			img.SetGray(c, r, color.Gray{Y: Intensity(g.At(r, c), low, high)})
		}
	}
	return img
}

// WritePNG renders a grid and writes it as a PNG file.
func WritePNG(path string, g *field.Grid, low, high float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, GrayImage(g, low, high))
}

// FrameWriter persists a PNG frame every Every steps. It implements the
// wave observer contract: OnStep treats the grid as read-only.
type FrameWriter struct {
	Dir       string
	Low, High float64
	// Every writes one frame per N steps; values below 1 behave as 1.
	Every int

	written int
	err     error
}

func NewFrameWriter(dir string, low, high float64, every int) (*FrameWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	if every < 1 {
		every = 1
	}
	return &FrameWriter{Dir: dir, Low: low, High: high, Every: every}, nil
}

func (w *FrameWriter) OnStep(u *field.Grid, step int, t float64) {
	if w.err != nil || step%w.Every != 0 {
		return
	}
	path := filepath.Join(w.Dir, fmt.Sprintf("frame_%05d.png", step))
	w.err = WritePNG(path, u, w.Low, w.High)
	if w.err == nil {
		w.written++
	}
}

// Written returns the number of frames successfully written.
func (w *FrameWriter) Written() int { return w.written }

// Err returns the first write failure, if any. Frame output stops after the
// first error; the simulation itself is unaffected.
func (w *FrameWriter) Err() error { return w.err }

// grayPalette is the 256-level palette used for GIF assembly.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// AssembleGIF reads the PNG frames in dir (in filename order) and writes an
// animated GIF with the given per-frame delay in hundredths of a second.
func AssembleGIF(dir, outPath string, delay int) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".png" {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return 0, fmt.Errorf("render: no frames in %s", dir)
	}
	sort.Strings(names)

	anim := &gif.GIF{}
	for _, name := range names {
		img, err := readPNG(filepath.Join(dir, name))
		if err != nil {
			return 0, err
		}

		bounds := img.Bounds()
		frame := image.NewPaletted(bounds, grayPalette)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				frame.Set(x, y, img.At(x, y))
			}
		}

		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	if err := gif.EncodeAll(out, anim); err != nil {
		return 0, err
	}
	return len(anim.Image), nil
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}
