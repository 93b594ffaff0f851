//go:build ebiten

package app

import (
	"log"

	"lifegrid/internal/render"
	"lifegrid/internal/session"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = []struct {
	keys   []ebiten.Key
	action ui.Action
}{
	{keys: []ebiten.Key{ebiten.KeySpace}, action: ui.ActionTogglePause},
	{keys: []ebiten.Key{ebiten.KeyEnter}, action: ui.ActionStart},
	{keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, action: ui.ActionSpeedUp},
	{keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, action: ui.ActionSpeedDown},
	{keys: []ebiten.Key{ebiten.KeyO}, action: ui.ActionOpen},
	{keys: []ebiten.Key{ebiten.KeyC}, action: ui.ActionClear},
	{keys: []ebiten.Key{ebiten.KeyR}, action: ui.ActionRandomize},
	{keys: []ebiten.Key{ebiten.KeyH}, action: ui.ActionHotkeys},
	{keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, action: ui.ActionQuit},
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	scale   int
	tps     int
}

// New constructs a Game for the provided session.
func New(sess *session.Session, scale int, seed int64) *Game {
	size := sess.Grid().Size()
	return &Game{
		sess:    sess,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette, seed),
		hud:     ui.NewHUD(sess.Menu(), size.W*scale),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.dispatch(ka.action)
				break
			}
		}
	}

	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if err := g.sess.PointerDown(mx, my); err != nil {
			log.Printf("pointer action: %v", err)
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.sess.PointerUp()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.sess.PointerMove(mx, my)
	}
	g.hud.Update(mx, my)

	if g.sess.Quit() {
		return ebiten.Termination
	}

	if tps := g.sess.Clock().TPS(); tps != g.tps {
		ebiten.SetTPS(tps)
		g.tps = tps
	}
	g.sess.Frame()
	return nil
}

func (g *Game) dispatch(a ui.Action) {
	if err := g.sess.Dispatch(a); err != nil {
		log.Printf("%v: %v", a, err)
	}
}

// Draw renders the current generation and the menu strip.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.sess.Grid()
	g.painter.Blit(screen, grid.Cells(), g.scale)
	g.hud.Draw(screen, ui.Status{
		Paused:     g.sess.Clock().Paused(),
		TPS:        g.sess.Clock().TPS(),
		Generation: g.sess.Generation(),
		Population: grid.Population(),
		Boundary:   g.sess.Boundary().String(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize(g.sess.Grid().Size(), g.scale)
}
