package ui

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	menuPadding   = 10
	buttonGap     = 10
	buttonHeight  = 40
	buttonTextPad = 20
)

// MenuHeight is the height in pixels of the strip below the grid.
const MenuHeight = 60

// Button is a labelled menu entry.
type Button struct {
	Label  string
	Action Action
	Rect   image.Rectangle
}

// Menu is a single row of buttons laid out below the grid.
type Menu struct {
	Top     int
	Buttons []Button
}

// DefaultEntries is the standard button row.
var DefaultEntries = []Button{
	{Label: "Start", Action: ActionStart},
	{Label: "Open RLE", Action: ActionOpen},
	{Label: "Clear", Action: ActionClear},
	{Label: "Randomize", Action: ActionRandomize},
	{Label: "Glider", Action: ActionGlider},
	{Label: "LWSS", Action: ActionLWSS},
	{Label: "Blinker", Action: ActionBlinker},
	{Label: "MWSS", Action: ActionMWSS},
	{Label: "Hotkeys", Action: ActionHotkeys},
}

// NewMenu lays entries out left to right in the strip starting at pixel row
// top. Each button is as wide as its label plus padding.
func NewMenu(top int, entries []Button) *Menu {
	m := &Menu{Top: top, Buttons: make([]Button, len(entries))}
	x := menuPadding
	y := top + menuPadding
	for i, e := range entries {
		w := LabelWidth(e.Label) + buttonTextPad
		e.Rect = image.Rect(x, y, x+w, y+buttonHeight)
		m.Buttons[i] = e
		x += w + buttonGap
	}
	return m
}

// LabelWidth measures a label in the menu font.
func LabelWidth(label string) int {
	return font.MeasureString(basicfont.Face7x13, label).Ceil()
}

// Contains reports whether the pixel lies in the menu strip.
func (m *Menu) Contains(x, y int) bool {
	return y >= m.Top
}

// Hit returns the action of the button under (x, y).
func (m *Menu) Hit(x, y int) (Action, bool) {
	if i := m.HoverIndex(x, y); i >= 0 {
		return m.Buttons[i].Action, true
	}
	return ActionNone, false
}

// HoverIndex returns the index of the button under (x, y), or -1.
func (m *Menu) HoverIndex(x, y int) int {
	for i, b := range m.Buttons {
		if pointInRect(x, y, b.Rect) {
			return i
		}
	}
	return -1
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
