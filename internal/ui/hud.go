//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor       = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	buttonColor      = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	buttonHoverColor = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	labelColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	statusColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// Status is the simulation summary shown at the right of the menu strip.
type Status struct {
	Paused     bool
	TPS        int
	Generation int
	Population int
	Boundary   string
}

func (s Status) String() string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return fmt.Sprintf("%s | %d tps | gen %d | pop %d | %s", state, s.TPS, s.Generation, s.Population, s.Boundary)
}

// HUD renders the menu strip below the simulation view.
type HUD struct {
	menu  *Menu
	width int
	hover int
	pixel *ebiten.Image
}

// NewHUD constructs a HUD drawing menu across a strip width pixels wide.
func NewHUD(menu *Menu, width int) *HUD {
	h := &HUD{menu: menu, width: width, hover: -1}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update tracks which button the cursor is over.
func (h *HUD) Update(mx, my int) {
	if h == nil {
		return
	}
	h.hover = h.menu.HoverIndex(mx, my)
}

// Draw paints the strip, its buttons and the status line.
func (h *HUD) Draw(screen *ebiten.Image, status Status) {
	if h == nil {
		return
	}
	strip := image.Rect(0, h.menu.Top, h.width, h.menu.Top+MenuHeight)
	h.fillRect(screen, strip, panelColor)
	for i, b := range h.menu.Buttons {
		bg := buttonColor
		if i == h.hover {
			bg = buttonHoverColor
		}
		h.fillRect(screen, b.Rect, bg)
		face := basicfont.Face7x13
		bounds := text.BoundString(face, b.Label)
		x := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
		y := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 + bounds.Dy()
		text.Draw(screen, b.Label, face, x, y, labelColor)
	}

	line := status.String()
	lx := h.width - menuPadding - LabelWidth(line)
	if n := len(h.menu.Buttons); n > 0 && lx < h.menu.Buttons[n-1].Rect.Max.X+buttonGap {
		return
	}
	text.Draw(screen, line, basicfont.Face7x13, lx, h.menu.Top+MenuHeight/2+4, statusColor)
}

func (h *HUD) fillRect(dst *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(h.pixel, op)
}
