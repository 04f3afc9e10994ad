package blue

import "github.com/hajimehoshi/ebiten/v2"

// Game is the host loop: it implements ebiten.Game and drives one update tick
// and one render tick per frame against the current scene. Scene switches are
// deferred to the next frame boundary so a scene is never torn down while its
// own callbacks are running.
type Game struct {
	time    *Time
	scene   *Scene
	next    *Scene
	content *Content
	batch   *SpriteBatch

	width, height int
}

// NewGame creates a game with the given logical screen size.
func NewGame(width, height int) *Game {
	return &Game{
		time:   NewTime(),
		width:  width,
		height: height,
	}
}

// Time returns the game's clock.
func (g *Game) Time() *Time { return g.time }

// Scene returns the current scene, or nil before the first SetScene applies.
func (g *Game) Scene() *Scene { return g.scene }

// SetScene schedules a scene switch. The switch applies at the start of the
// next frame, before that frame's update.
func (g *Game) SetScene(s *Scene) {
	g.next = s
}

// SetContent attaches a content loader.
func (g *Game) SetContent(c *Content) { g.content = c }

// Content returns the attached content loader, or nil.
func (g *Game) Content() *Content { return g.content }

// Update implements ebiten.Game. It applies a pending scene switch, steps the
// clock by the fixed tick delta and updates the scene.
func (g *Game) Update() error {
	if g.next != nil {
		g.scene = g.next
		g.next = nil
	}
	if g.scene == nil {
		return nil
	}

	// TPS() reports SyncWithFPS (-1) when ticks are unsynced.
	dt := 1.0 / 60.0
	if tps := ebiten.TPS(); tps > 0 {
		dt = 1.0 / float64(tps)
	}
	g.time.Step(dt)
	g.scene.Update(g.time.Frame(g.scene))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene == nil {
		return
	}
	if g.batch == nil {
		g.batch = NewSpriteBatch(screen)
	} else {
		g.batch.SetTarget(screen)
	}
	g.scene.Render(g.batch)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(int, int) (int, int) {
	return g.width, g.height
}

// Run opens the window and runs the game loop until the window closes or an
// update returns an error.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(g)
}
