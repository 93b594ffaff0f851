package render

import (
	"bytes"
	"image/color"
	"math/rand/v2"
	"slices"
	"testing"

	"lifegrid/internal/core"
)

func TestFillShadedRGBA(t *testing.T) {
	cells := []uint8{0, 1, 1, 0}
	buf := make([]byte, 4*len(cells))
	rng := rand.New(rand.NewPCG(1, 2))

	FillShadedRGBA(buf, cells, DefaultPalette, rng)

	dead := DefaultPalette.Dead
	for _, i := range []int{0, 3} {
		got := color.RGBA{R: buf[4*i], G: buf[4*i+1], B: buf[4*i+2], A: buf[4*i+3]}
		if got != dead {
			t.Fatalf("pixel %d = %v, want dead color %v", i, got, dead)
		}
	}
	for _, i := range []int{1, 2} {
		got := color.RGBA{R: buf[4*i], G: buf[4*i+1], B: buf[4*i+2], A: buf[4*i+3]}
		if !slices.Contains(DefaultPalette.Live, got) {
			t.Fatalf("pixel %d = %v is not a live shade", i, got)
		}
	}
}

func TestFillShadedRGBAResamples(t *testing.T) {
	cells := make([]uint8, 64)
	for i := range cells {
		cells[i] = 1
	}
	rng := rand.New(rand.NewPCG(9, 9))
	a := make([]byte, 4*len(cells))
	b := make([]byte, 4*len(cells))
	FillShadedRGBA(a, cells, DefaultPalette, rng)
	FillShadedRGBA(b, cells, DefaultPalette, rng)
	if bytes.Equal(a, b) {
		t.Fatal("live shades should be resampled on every fill")
	}
}

func TestFillShadedRGBAEmptyPalette(t *testing.T) {
	buf := make([]byte, 4)
	FillShadedRGBA(buf, []uint8{1}, Palette{}, rand.New(rand.NewPCG(0, 0)))
	if !bytes.Equal(buf, []byte{255, 255, 255, 255}) {
		t.Fatalf("pixel = %v, want white", buf)
	}
}

func TestTerminalDisplay(t *testing.T) {
	g := core.NewGrid(3, 2)
	g.Set(0, 0, true)
	g.Set(2, 1, true)

	var out bytes.Buffer
	if err := NewTerminal(&out).Display(g); err != nil {
		t.Fatal(err)
	}
	want := "██    \n    ██\n"
	if out.String() != want {
		t.Fatalf("display = %q, want %q", out.String(), want)
	}
}
