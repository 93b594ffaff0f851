package render

import (
	"image/color"
	"math/rand/v2"
)

// Palette holds the colors used to draw the board.
type Palette struct {
	Dead  color.RGBA
	Lines color.RGBA
	Live  []color.RGBA
}

// DefaultPalette is a dark background with blue live cells.
var DefaultPalette = Palette{
	Dead:  color.RGBA{R: 30, G: 30, B: 30, A: 255},
	Lines: color.RGBA{R: 100, G: 100, B: 100, A: 255},
	Live: []color.RGBA{
		{R: 30, G: 144, B: 255, A: 255},
		{R: 70, G: 130, B: 180, A: 255},
		{R: 135, G: 206, B: 235, A: 255},
		{R: 173, G: 216, B: 230, A: 255},
	},
}

// FillShadedRGBA converts binary cell data into RGBA pixels in buf. Each live
// cell gets a shade drawn from rng on every call, so colors flicker from frame
// to frame. An empty live palette draws live cells white.
func FillShadedRGBA(buf []byte, cells []uint8, p Palette, rng *rand.Rand) {
	for i, c := range cells {
		col := p.Dead
		if c != 0 {
			col = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if len(p.Live) > 0 {
				col = p.Live[rng.IntN(len(p.Live))]
			}
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
