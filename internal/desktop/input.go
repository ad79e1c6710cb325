package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ugaemi/chatbase-hero/internal/game"
)

// devices is the slice of ebiten's input API the window reads.
type devices interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
	IsMouseButtonPressed(b ebiten.MouseButton) bool
	CursorPosition() (int, int)
	AppendInputChars(runes []rune) []rune
}

type ebitenDevices struct{}

func (ebitenDevices) IsKeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (ebitenDevices) IsKeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (ebitenDevices) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (ebitenDevices) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenDevices) AppendInputChars(runes []rune) []rune {
	return ebiten.AppendInputChars(runes)
}

func anyPressed(d devices, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if d.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// readInput maps the devices to controls for a session in mode.
func readInput(d devices, mode game.Mode) game.Input {
	mx, my := d.CursorPosition()
	in := game.Input{AimX: float64(mx), AimY: float64(my)}

	switch mode {
	case game.ModePlaying:
		in.Left = anyPressed(d, ebiten.KeyArrowLeft, ebiten.KeyA)
		in.Right = anyPressed(d, ebiten.KeyArrowRight, ebiten.KeyD)
		in.Up = anyPressed(d, ebiten.KeyArrowUp, ebiten.KeyW)
		in.Down = anyPressed(d, ebiten.KeyArrowDown, ebiten.KeyS)
		in.Fire = d.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		in.Special = d.IsKeyPressed(ebiten.KeySpace)

	case game.ModeGameOver:
		in.Save = d.IsKeyJustPressed(ebiten.KeyEnter)
		in.Discard = d.IsKeyJustPressed(ebiten.KeySpace)

	case game.ModeEnterName:
		for _, r := range d.AppendInputChars(nil) {
			in.Text = append(in.Text, game.TextEvent{Kind: game.TextChar, Char: r})
		}
		if d.IsKeyJustPressed(ebiten.KeyBackspace) {
			in.Text = append(in.Text, game.TextEvent{Kind: game.TextBackspace})
		}
		if d.IsKeyJustPressed(ebiten.KeyEnter) {
			in.Text = append(in.Text, game.TextEvent{Kind: game.TextConfirm})
		}
	}
	return in
}
