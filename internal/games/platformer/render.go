package platformer

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
)

// Glyphs for actors. The facing glyph marks the leading edge of the box.
const (
	PlayerBody  = '█'
	EnemyBody   = '▓'
	FacingLeft  = '◄'
	FacingRight = '►'
)

// deadFrames is the glyph for each death animation frame index.
var deadFrames = []rune{'✖', '*', '+', '+', '·', '·', '.', '.'}

// Minimum screen that fits the HUD and a bordered arena.
const (
	minScreenW = 24
	minScreenH = 8
)

// Render draws the arena, the actors and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawText(0, 0, "Terminal too small", core.ColorYellow)
		return
	}
	if g.rng == nil {
		return
	}

	frame := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(frame, statusColor(g.state.Status()))

	params := g.state.Params()
	proj := core.NewProjection(params.ViewportW, params.ViewportH, frame.Inset(1))

	for _, a := range g.state.Dead() {
		g.drawDead(dst, proj, a)
	}
	for _, a := range g.state.Actors() {
		g.drawActor(dst, proj, a)
	}

	g.drawHUD(dst)

	switch {
	case g.err != nil:
		drawCenteredMessage(dst, "ERROR", g.err.Error())
	case g.gameOver && g.won:
		drawCenteredMessage(dst, "YOU WIN", fmt.Sprintf("Cleared in %d rounds  |  R to play again", g.round))
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.state.Status() == engine.Won:
		drawCenteredMessage(dst, "ROUND WON", "All enemies stomped")
	case g.state.Status() == engine.Lost:
		drawCenteredMessage(dst, "ROUND LOST", "Restarting...")
	}
}

// statusColor is the arena frame tint for a round status.
func statusColor(s engine.Status) core.Color {
	switch s {
	case engine.Won:
		return core.ColorBrightGreen
	case engine.Lost:
		return core.ColorBrightRed
	default:
		return core.ColorGray
	}
}

func (g *Game) drawActor(dst *core.Screen, proj core.Projection, a engine.Actor) {
	box := proj.Box(a.Pos.X(), a.Pos.Y(), a.Size.X(), a.Size.Y())

	body, color := PlayerBody, core.ColorBrightCyan
	if a.Kind == engine.KindEnemy {
		body, color = EnemyBody, core.ColorOrange
	}
	dst.FillRect(box, body, color)

	// Facing marker on the top row
	if g.facingOf(a) < 0 {
		dst.SetCell(box.X, box.Y, FacingLeft, color)
	} else {
		dst.SetCell(box.Right()-1, box.Y, FacingRight, color)
	}
}

func (g *Game) drawDead(dst *core.Screen, proj core.Projection, a engine.Actor) {
	tiles := g.cfg.Animation.DeadTiles
	if len(tiles) == 0 {
		return
	}
	frame := tiles[core.Clamp(a.DeadTile, 0, len(tiles)-1)]
	glyph := deadFrames[core.Clamp(frame, 0, len(deadFrames)-1)]

	color := core.ColorGray
	if a.Kind == engine.KindPlayer {
		color = core.ColorRed
	}
	dst.FillRect(proj.Box(a.Pos.X(), a.Pos.Y(), a.Size.X(), a.Size.Y()), glyph, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" Round %d  Enemies %d  Time %s ",
		g.round, g.state.Enemies(), roundDuration(g.roundTime))
	dst.DrawText(0, 0, left, core.ColorWhite)

	status := fmt.Sprintf(" %s ", g.state.Status())
	dst.DrawText(dst.Width()-len(status), 0, status, statusColor(g.state.Status()))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	titleX := box.X + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, box.Y+1, title, core.ColorBrightGreen)

	subtitleX := box.X + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, box.Y+3, subtitle, core.ColorWhite)
}

// roundDuration converts simulated seconds to a display duration.
func roundDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second)).Round(100 * time.Millisecond)
}
