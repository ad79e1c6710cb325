package desktop

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ugaemi/chatbase-hero/internal/game"
	"github.com/ugaemi/chatbase-hero/internal/render"
)

// ebitenutil's debug font is 6x16 pixels per glyph.
const (
	glyphWidth = 6
	lineHeight = 16
)

func draw(screen *ebiten.Image, frame *game.Frame) {
	screen.Fill(render.Background)

	for _, o := range frame.Obstacles {
		x, y, w, h := float32(o.X), float32(o.Y), float32(o.W), float32(o.H)
		vector.DrawFilledRect(screen, x, y, w, h, render.ObstacleFill, false)
		vector.StrokeRect(screen, x, y, w, h, 2, render.ObstacleStroke, false)
	}

	for _, s := range frame.Sprites {
		drawSprite(screen, frame, s)
	}
	drawHUD(screen, frame)

	switch frame.Mode {
	case game.ModeGameOver:
		drawPanel(screen, frame,
			"GAME OVER",
			"Final Score: "+frame.HUD.ScoreText,
			fmt.Sprintf("Level Reached: %d", frame.HUD.Level),
			"",
			"Press ENTER to save your score",
			"Press SPACE to play again without saving",
		)
	case game.ModeEnterName:
		drawPanel(screen, frame,
			"New High Score!",
			"Enter Your Name:",
			"[ "+frame.Name+"_ ]",
			"",
			"Press ENTER to save",
		)
	}
}

func drawSprite(screen *ebiten.Image, frame *game.Frame, s game.Sprite) {
	x, y, r := float32(s.X), float32(s.Y), float32(s.Size/2)
	fill := render.SpriteColor(s)

	switch s.Kind {
	case game.SpritePlayer:
		if frame.HUD.Immune {
			vector.DrawFilledCircle(screen, x, y, r+10, render.ImmuneColor, true)
		}
		if frame.HUD.Shielded {
			vector.StrokeCircle(screen, x, y, r+6, 2, game.PowerUpShield.Color(), true)
		}
		vector.DrawFilledCircle(screen, x, y, r, fill, true)
		fx := x + float32(math.Cos(s.Angle))*r
		fy := y + float32(math.Sin(s.Angle))*r
		vector.StrokeLine(screen, x, y, fx, fy, 3, render.TextColor, true)

	case game.SpriteCustomer:
		vector.DrawFilledRect(screen, x-r, y-r, 2*r, 2*r, fill, false)
		if s.Progress > 0 {
			w := float32(s.Progress/game.ProgressComplete) * 2 * r
			vector.DrawFilledRect(screen, x-r, y-r-6, w, 3, render.ProgressColor, false)
		}

	case game.SpriteDoc:
		vector.DrawFilledRect(screen, x-r*0.75, y-r, r*1.5, 2*r, fill, false)

	case game.SpriteBug:
		vector.DrawFilledCircle(screen, x, y, r, fill, true)
		for _, dx := range []float32{-r, r} {
			vector.StrokeLine(screen, x, y, x+dx, y-r, 2, fill, true)
		}

	default:
		vector.DrawFilledCircle(screen, x, y, r, fill, true)
	}
}

func drawHUD(screen *ebiten.Image, frame *game.Frame) {
	hud := frame.HUD
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d  %s", hud.Level, hud.LevelDescription), 20, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %s / %.0f", hud.ScoreText, hud.LevelGoal), 20, 10+lineHeight)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Customers: %d  Docs: %d", hud.Score.Customers, hud.Score.Docs), 20, 10+2*lineHeight)

	barW := float32(150)
	x := float32(frame.Width) - barW - 20
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Health: %d%%", hud.Health), int(x), 10)
	vector.DrawFilledRect(screen, x, 30, barW, 12, render.ObstacleStroke, false)
	vector.DrawFilledRect(screen, x, 30, barW*float32(hud.Health)/game.MaxHealth, 12, render.HealthColor(hud.Health), false)

	if hud.PowerUp != game.PowerUpNone {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %ds", hud.PowerUp, hud.PowerUpSeconds), int(x), 50)
	}
}

func drawPanel(screen *ebiten.Image, frame *game.Frame, lines ...string) {
	vector.DrawFilledRect(screen, 0, 0, float32(frame.Width), float32(frame.Height), render.Panel, false)

	top := int(frame.Height)/2 - len(lines)*lineHeight
	for i, line := range lines {
		x := (int(frame.Width) - len(line)*glyphWidth) / 2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*2*lineHeight)
	}
}
