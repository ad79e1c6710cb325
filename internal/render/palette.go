package render

import (
	"image/color"

	"github.com/ugaemi/chatbase-hero/internal/game"
)

// Shared palette for every frontend.
var (
	Background     = color.RGBA{20, 34, 64, 255}
	Panel          = color.RGBA{19, 34, 64, 230}
	ObstacleFill   = color.RGBA{100, 100, 100, 255}
	ObstacleStroke = color.RGBA{50, 50, 50, 255}
	PlayerColor    = color.RGBA{0, 200, 255, 255}
	CustomerColor  = color.RGBA{255, 255, 255, 255}
	ProgressColor  = color.RGBA{0, 255, 200, 255}
	DocColor       = color.RGBA{230, 230, 210, 255}
	SpecialColor   = color.RGBA{255, 215, 0, 255}
	BugColor       = color.RGBA{255, 60, 60, 255}
	BulletColor    = color.RGBA{255, 255, 120, 255}
	TextColor      = color.RGBA{255, 255, 255, 255}
	ImmuneColor    = color.RGBA{255, 255, 255, 77}
)

// SpriteColor returns the fill color of a sprite.
func SpriteColor(s game.Sprite) color.RGBA {
	switch s.Kind {
	case game.SpritePlayer:
		return PlayerColor
	case game.SpriteCustomer:
		return CustomerColor
	case game.SpriteDoc:
		if s.Special {
			return SpecialColor
		}
		return DocColor
	case game.SpriteBug:
		return BugColor
	case game.SpriteBullet:
		return BulletColor
	case game.SpritePowerUp:
		return s.PowerUp.Color()
	default:
		return TextColor
	}
}

// HealthColor returns the bar color for a health value.
func HealthColor(health int) color.RGBA {
	switch game.HealthBand(health) {
	case "good":
		return color.RGBA{0, 255, 0, 255}
	case "warn":
		return color.RGBA{255, 255, 0, 255}
	default:
		return color.RGBA{255, 0, 0, 255}
	}
}
