package viz

import (
	"strings"

	"github.com/r7vme/ripple/internal/field"
	"github.com/r7vme/ripple/internal/render"
)

// shades orders characters by visual weight; index 0 is flat water.
var shades = []rune(" .:-=+*#%@")

// Heatmap downsamples a grid into rows×cols character cells by block
// averaging of absolute displacement, then maps each cell through the
// [low, high] intensity ramp.
func Heatmap(g *field.Grid, rows, cols int, low, high float64) string {
	if rows < 1 || cols < 1 {
		return ""
	}
	if rows > g.Rows() {
		rows = g.Rows()
	}
	if cols > g.Cols() {
		cols = g.Cols()
	}

	blockR := g.Rows() / rows
	blockC := g.Cols() / cols

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sum := 0.0
			count := 0
			for br := r * blockR; br < (r+1)*blockR; br++ {
				for bc := c * blockC; bc < (c+1)*blockC; bc++ {
					v := g.At(br, bc)
					if v < 0 {
						v = -v
					}
					sum += v
					count++
				}
			}

			intensity := render.Intensity(sum/float64(count), low, high)
			idx := int(intensity) * (len(shades) - 1) / 255
			sb.WriteRune(shades[idx])
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
