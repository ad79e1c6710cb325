package session

import "github.com/ugaemi/chatbase-hero/internal/game"

type combined []InputSource

// Combine merges input sources. Held controls are OR-ed, aim comes from the
// first source reporting one, and keystrokes are concatenated in source order.
func Combine(sources ...InputSource) InputSource {
	return combined(sources)
}

func (c combined) Poll() game.Input {
	var out game.Input
	aimed := false
	for _, src := range c {
		in := src.Poll()
		out.Left = out.Left || in.Left
		out.Right = out.Right || in.Right
		out.Up = out.Up || in.Up
		out.Down = out.Down || in.Down
		out.Fire = out.Fire || in.Fire
		out.Special = out.Special || in.Special
		out.Save = out.Save || in.Save
		out.Discard = out.Discard || in.Discard
		if !aimed && (in.AimX != 0 || in.AimY != 0) {
			out.AimX, out.AimY = in.AimX, in.AimY
			aimed = true
		}
		out.Text = append(out.Text, in.Text...)
	}
	return out
}
