package graphic

import (
	"image"
	"math"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Viridis is a perceptually uniform colormap, sampled at five stops.
var Viridis = []colorful.Color{
	mustHex("#440154"),
	mustHex("#3b528b"),
	mustHex("#21918c"),
	mustHex("#5ec962"),
	mustHex("#fde725"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("graphic: invalid color " + s)
	}
	return c
}

// Heatmap is an image-plot artist over a 2D grid of values. Like a plot
// artist it is bound to a figure: embedders call Figure to obtain a Raster.
type Heatmap struct {
	Data     [][]float64
	Scale    int              // pixels per cell (default 4)
	Colormap []colorful.Color // stops blended in Lab space (default Viridis)
}

// RandomHeatmap returns a rows x cols heatmap of uniform random values.
// The same seed always produces the same data.
func RandomHeatmap(rows, cols int, seed uint64) Heatmap {
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
		for j := range data[i] {
			data[i][j] = rng.Float64()
		}
	}
	return Heatmap{Data: data}
}

// Figure returns the heatmap rendered as a raster figure.
func (h Heatmap) Figure() Figure {
	return Raster{Image: h.Image()}
}

// Image renders the heatmap. Values are normalized to the range of the finite
// values, so a constant grid maps entirely to the first colormap stop. NaN
// cells take the first stop; infinities clamp to the ends.
func (h Heatmap) Image() image.Image {
	scale := h.Scale
	if scale <= 0 {
		scale = 4
	}
	cmap := h.Colormap
	if len(cmap) == 0 {
		cmap = Viridis
	}

	rows := len(h.Data)
	cols := 0
	for _, row := range h.Data {
		cols = max(cols, len(row))
	}
	img := image.NewRGBA(image.Rect(0, 0, cols*scale, rows*scale))

	lo, hi := valueRange(h.Data)
	for y, row := range h.Data {
		for x, v := range row {
			t := 0.0
			if hi > lo {
				t = (v - lo) / (hi - lo)
			}
			c := sample(cmap, t).Clamped()
			for dy := range scale {
				for dx := range scale {
					img.Set(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img
}

func valueRange(data [][]float64) (lo, hi float64) {
	first := true
	for _, row := range data {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if first {
				lo, hi, first = v, v, false
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi
}

// sample interpolates the colormap at t in [0, 1].
func sample(cmap []colorful.Color, t float64) colorful.Color {
	if len(cmap) == 1 || t <= 0 || math.IsNaN(t) {
		return cmap[0]
	}
	if t >= 1 {
		return cmap[len(cmap)-1]
	}
	pos := t * float64(len(cmap)-1)
	i := int(pos)
	return cmap[i].BlendLab(cmap[i+1], pos-float64(i))
}
