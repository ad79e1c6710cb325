package tui

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/chatbase-hero/internal/game"
	"github.com/ugaemi/chatbase-hero/internal/render"
)

// hudRows are reserved above the arena.
const hudRows = 2

// viewport maps arena coordinates onto screen cells below the HUD.
type viewport struct {
	cols, rows    int
	width, height float64
}

func newViewport(cols, rows int, width, height float64) viewport {
	return viewport{
		cols:   max(cols, 1),
		rows:   max(rows-hudRows, 1),
		width:  width,
		height: height,
	}
}

func (v viewport) toCell(x, y float64) (int, int) {
	if v.width <= 0 || v.height <= 0 {
		return 0, hudRows
	}
	cx := int(x / v.width * float64(v.cols))
	cy := int(y / v.height * float64(v.rows))
	return clamp(cx, 0, v.cols-1), hudRows + clamp(cy, 0, v.rows-1)
}

func (v viewport) toArena(cx, cy int) (float64, float64) {
	if v.cols == 0 || v.rows == 0 {
		return 0, 0
	}
	x := (float64(cx) + 0.5) / float64(v.cols) * v.width
	y := (float64(cy-hudRows) + 0.5) / float64(v.rows) * v.height
	return x, y
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// spriteRune returns the glyph of a sprite.
func spriteRune(s game.Sprite) rune {
	switch s.Kind {
	case game.SpritePlayer:
		return '@'
	case game.SpriteCustomer:
		if s.Progress > 0 {
			return 'c'
		}
		return 'C'
	case game.SpriteDoc:
		if s.Special {
			return '$'
		}
		return 'D'
	case game.SpriteBug:
		return 'x'
	case game.SpriteBullet:
		return '.'
	case game.SpritePowerUp:
		return 'P'
	default:
		return '?'
	}
}

func draw(screen tcell.Screen, v viewport, frame *game.Frame) {
	bg := tcell.StyleDefault.Background(tcellColor(render.Background))
	screen.Fill(' ', bg)

	obstacle := bg.Foreground(tcellColor(render.ObstacleFill))
	for _, o := range frame.Obstacles {
		x0, y0 := v.toCell(o.X, o.Y)
		x1, y1 := v.toCell(o.X+o.W, o.Y+o.H)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				screen.SetContent(x, y, '▓', nil, obstacle)
			}
		}
	}

	for _, s := range frame.Sprites {
		x, y := v.toCell(s.X, s.Y)
		style := bg.Foreground(tcellColor(render.SpriteColor(s)))
		if s.Kind == game.SpritePlayer {
			style = style.Bold(true)
			if frame.HUD.Immune || frame.HUD.Shielded {
				style = style.Reverse(true)
			}
		}
		screen.SetContent(x, y, spriteRune(s), nil, style)
	}

	drawHUD(screen, v, frame)

	switch frame.Mode {
	case game.ModeGameOver:
		drawLines(screen, v, bg,
			"GAME OVER",
			"Final Score: "+frame.HUD.ScoreText,
			fmt.Sprintf("Level Reached: %d", frame.HUD.Level),
			"",
			"ENTER save score   SPACE play again   ESC quit",
		)
	case game.ModeEnterName:
		drawLines(screen, v, bg,
			"New High Score!",
			"Enter Your Name:",
			"[ "+frame.Name+"_ ]",
			"",
			"ENTER save",
		)
	}
}

func drawHUD(screen tcell.Screen, v viewport, frame *game.Frame) {
	hud := frame.HUD
	text := tcell.StyleDefault.Foreground(tcellColor(render.TextColor))

	left := fmt.Sprintf("Level %d  Score %s/%.0f  Customers %d  Docs %d",
		hud.Level, hud.ScoreText, hud.LevelGoal, hud.Score.Customers, hud.Score.Docs)
	drawText(screen, 0, 0, left, text)

	health := fmt.Sprintf("HP %d%%", hud.Health)
	drawText(screen, v.cols-len(health), 0, health, text.Foreground(tcellColor(render.HealthColor(hud.Health))))

	status := hud.LevelDescription
	if hud.PowerUp != game.PowerUpNone {
		status = fmt.Sprintf("%s %ds  %s", hud.PowerUp, hud.PowerUpSeconds, status)
	}
	if hud.Shielded {
		status = "SHIELD  " + status
	}
	drawText(screen, 0, 1, status, text.Dim(true))
}

// drawLines centers lines over the arena.
func drawLines(screen tcell.Screen, v viewport, style tcell.Style, lines ...string) {
	top := hudRows + (v.rows-len(lines))/2
	for i, line := range lines {
		x := (v.cols - len([]rune(line))) / 2
		drawText(screen, max(x, 0), top+i, line, style.Foreground(tcellColor(render.TextColor)).Bold(i == 0))
	}
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
