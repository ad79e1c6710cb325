package render

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/fogleman/gg"

	"github.com/ugaemi/chatbase-hero/internal/game"
	"github.com/ugaemi/chatbase-hero/internal/metrics"
)

// PNG encodes frame as a PNG image of the arena with its HUD.
func PNG(w io.Writer, frame *game.Frame) error {
	start := time.Now()
	dc := gg.NewContext(int(frame.Width), int(frame.Height))
	Draw(dc, frame)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	metrics.RecordRender(time.Since(start))
	return nil
}

// Draw paints frame onto dc.
func Draw(dc *gg.Context, frame *game.Frame) {
	dc.SetColor(Background)
	dc.DrawRectangle(0, 0, frame.Width, frame.Height)
	dc.Fill()

	drawObstacles(dc, frame.Obstacles)
	for _, s := range frame.Sprites {
		drawSprite(dc, frame, s)
	}
	drawHUD(dc, frame)

	switch frame.Mode {
	case game.ModeGameOver:
		drawGameOver(dc, frame)
	case game.ModeEnterName:
		drawEnterName(dc, frame)
	}
}

func drawObstacles(dc *gg.Context, obstacles []game.Obstacle) {
	dc.SetLineWidth(2)
	for _, o := range obstacles {
		dc.DrawRectangle(o.X, o.Y, o.W, o.H)
		dc.SetColor(ObstacleFill)
		dc.FillPreserve()
		dc.SetColor(ObstacleStroke)
		dc.Stroke()
	}
}

func drawSprite(dc *gg.Context, frame *game.Frame, s game.Sprite) {
	r := s.Size / 2
	dc.SetColor(SpriteColor(s))

	switch s.Kind {
	case game.SpritePlayer:
		if frame.HUD.Immune {
			dc.SetColor(ImmuneColor)
			dc.DrawCircle(s.X, s.Y, r+10)
			dc.Fill()
		}
		if frame.HUD.Shielded {
			dc.SetColor(game.PowerUpShield.Color())
			dc.SetLineWidth(3)
			dc.DrawCircle(s.X, s.Y, r+6)
			dc.Stroke()
		}
		dc.SetColor(PlayerColor)
		dc.DrawCircle(s.X, s.Y, r)
		dc.Fill()
		// facing indicator
		dc.SetLineWidth(4)
		dc.DrawLine(s.X, s.Y, s.X+math.Cos(s.Angle)*game.MuzzleOffset, s.Y+math.Sin(s.Angle)*game.MuzzleOffset)
		dc.Stroke()

	case game.SpriteCustomer:
		dc.DrawCircle(s.X, s.Y, r)
		dc.Fill()
		if s.Progress > 0 {
			dc.SetColor(ProgressColor)
			dc.SetLineWidth(3)
			start := -math.Pi / 2
			dc.DrawArc(s.X, s.Y, r+4, start, start+2*math.Pi*s.Progress/game.ProgressComplete)
			dc.Stroke()
		}

	case game.SpriteDoc:
		dc.DrawRectangle(s.X-r*0.7, s.Y-r, r*1.4, s.Size)
		dc.Fill()

	case game.SpriteBug:
		dc.DrawRegularPolygon(6, s.X, s.Y, r, 0)
		dc.Fill()

	case game.SpriteBullet, game.SpritePowerUp:
		dc.DrawCircle(s.X, s.Y, r)
		dc.Fill()
	}
}

func drawHUD(dc *gg.Context, frame *game.Frame) {
	hud := frame.HUD
	dc.SetColor(TextColor)
	dc.DrawString(fmt.Sprintf("Level: %d", hud.Level), 20, 30)
	dc.DrawString(hud.LevelDescription, 20, 48)
	dc.DrawString(fmt.Sprintf("Score: %s / %.0f", hud.ScoreText, hud.LevelGoal), 20, 66)
	dc.DrawString(fmt.Sprintf("Customers: %d  Docs: %d", hud.Score.Customers, hud.Score.Docs), 20, 84)

	// health bar
	barW := 150.0
	x := frame.Width - barW - 20
	dc.DrawStringAnchored(fmt.Sprintf("Health: %d%%", hud.Health), frame.Width-20, 30, 1, 0)
	dc.SetColor(ObstacleStroke)
	dc.DrawRectangle(x, 40, barW, 12)
	dc.Fill()
	dc.SetColor(HealthColor(hud.Health))
	dc.DrawRectangle(x, 40, barW*float64(hud.Health)/game.MaxHealth, 12)
	dc.Fill()

	if hud.PowerUp != game.PowerUpNone {
		dc.SetColor(hud.PowerUp.Color())
		dc.DrawStringAnchored(fmt.Sprintf("%s: %ds", hud.PowerUp, hud.PowerUpSeconds), frame.Width-20, 70, 1, 0)
	}
}

func drawPanel(dc *gg.Context, frame *game.Frame) {
	dc.SetColor(Panel)
	dc.DrawRectangle(0, 0, frame.Width, frame.Height)
	dc.Fill()
	dc.SetColor(TextColor)
}

func drawGameOver(dc *gg.Context, frame *game.Frame) {
	drawPanel(dc, frame)
	cx, cy := frame.Width/2, frame.Height/2
	dc.DrawStringAnchored("GAME OVER", cx, cy-100, 0.5, 0.5)
	dc.DrawStringAnchored("Final Score: "+frame.HUD.ScoreText, cx, cy-40, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("Level Reached: %d", frame.HUD.Level), cx, cy, 0.5, 0.5)
	dc.DrawStringAnchored("Press ENTER to save your score", cx, cy+50, 0.5, 0.5)
	dc.DrawStringAnchored("Press SPACE to play again without saving", cx, cy+80, 0.5, 0.5)
}

func drawEnterName(dc *gg.Context, frame *game.Frame) {
	drawPanel(dc, frame)
	cx, cy := frame.Width/2, frame.Height/2
	dc.DrawStringAnchored("New High Score!", cx, cy-100, 0.5, 0.5)
	dc.DrawStringAnchored("Enter Your Name:", cx, cy-40, 0.5, 0.5)

	dc.SetColor(PlayerColor)
	dc.DrawRectangle(cx-150, cy-15, 300, 40)
	dc.Stroke()
	dc.SetColor(TextColor)
	dc.DrawStringAnchored(frame.Name+"_", cx, cy+5, 0.5, 0.5)
	dc.DrawStringAnchored("Press ENTER to save", cx, cy+70, 0.5, 0.5)
}
