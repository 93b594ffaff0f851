//go:build ebiten

package render

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
	rng     *rand.Rand
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette Palette, seed int64) *GridPainter {
	gp := &GridPainter{
		w:       w,
		h:       h,
		buf:     make([]byte, 4*w*h),
		palette: palette,
		rng:     rand.New(rand.NewPCG(uint64(seed), 1)),
	}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image, draws it scaled and
// overlays the cell grid lines.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	FillShadedRGBA(gp.buf, cells, gp.palette, gp.rng)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)

	if scale < 3 {
		return
	}
	width, height := float32(gp.w*scale), float32(gp.h*scale)
	for x := 0; x <= gp.w; x++ {
		fx := float32(x * scale)
		vector.StrokeLine(dst, fx, 0, fx, height, 1, gp.palette.Lines, false)
	}
	for y := 0; y <= gp.h; y++ {
		fy := float32(y * scale)
		vector.StrokeLine(dst, 0, fy, width, fy, 1, gp.palette.Lines, false)
	}
}
