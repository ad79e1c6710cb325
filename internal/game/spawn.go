package game

import "math"

// findFreePosition tries SpawnAttempts random positions whose footprint is
// clear of the field.
func (s *State) findFreePosition(size float64) (Position, bool) {
	for i := 0; i < SpawnAttempts; i++ {
		x := s.rng.Float64() * s.Field.Width
		y := s.rng.Float64() * s.Field.Height
		if !s.Field.CheckCollision(x, y, size, size) {
			return Position{X: x, Y: y}, true
		}
	}
	return Position{}, false
}

// nearPlayer returns a point at distance from the player, kept pad units
// inside the arena edges.
func (s *State) nearPlayer(distance, pad float64) Position {
	angle := randAngle(s.rng)
	x := s.Player.X + math.Cos(angle)*distance
	y := s.Player.Y + math.Sin(angle)*distance
	return Position{
		X: Constrain(x, pad, s.Field.Width-pad),
		Y: Constrain(y, pad, s.Field.Height-pad),
	}
}

func (s *State) spawnCustomer() *Customer {
	pos, ok := s.findFreePosition(CustomerSize)
	if !ok {
		pos = s.nearPlayer(CustomerFallbackRange, CustomerFallbackPad)
		s.Field.ClearArea(pos.X, pos.Y, CustomerFallbackPad)
	}

	c := NewCustomer(pos.X, pos.Y, randAngle(s.rng))
	s.Customers = append(s.Customers, c)
	return c
}

func (s *State) spawnDoc(forceSpecial bool) *Doc {
	special := forceSpecial || s.rng.Float64() < SpecialDocChance

	pos, ok := s.findFreePosition(DocSize)
	if !ok {
		pos = s.nearPlayer(DocFallbackRange, DocFallbackPad)
	}

	d := &Doc{
		X:       pos.X,
		Y:       pos.Y,
		Offset:  randAngle(s.rng),
		Special: special,
	}
	s.Docs = append(s.Docs, d)
	return d
}

// spawnBug places a bug on a random arena edge.
func (s *State) spawnBug() *Bug {
	var x, y float64
	if s.rng.Float64() < 0.5 {
		x = s.edge(s.Field.Width)
		y = s.rng.Float64() * s.Field.Height
	} else {
		x = s.rng.Float64() * s.Field.Width
		y = s.edge(s.Field.Height)
	}

	b := &Bug{X: x, Y: y, Speed: s.BugSpeed}
	s.Bugs = append(s.Bugs, b)
	return b
}

func (s *State) edge(extent float64) float64 {
	if s.rng.Float64() < 0.5 {
		return 0
	}
	return extent
}

// spawnPowerUp re-rolls its position until it is clear of obstacles. After
// PowerUpSpawnAttempts it falls back to a spot near the player.
func (s *State) spawnPowerUp() *PowerUp {
	t := PowerUpTypes[s.rng.Intn(len(PowerUpTypes))]
	p := &PowerUp{
		X:      s.rng.Float64() * s.Field.Width,
		Y:      s.rng.Float64() * s.Field.Height,
		Offset: randAngle(s.rng),
		Type:   t,
	}

	for i := 0; s.Field.CheckCollision(p.X, p.Y, PowerUpSize, PowerUpSize); i++ {
		if i >= PowerUpSpawnAttempts {
			pos := s.nearPlayer(DocFallbackRange, DocFallbackPad)
			p.X, p.Y = pos.X, pos.Y
			break
		}
		p.X = s.rng.Float64() * s.Field.Width
		p.Y = s.rng.Float64() * s.Field.Height
	}

	s.PowerUps = append(s.PowerUps, p)
	return p
}

// spawn dispatches a deferred or ambient spawn.
func (s *State) spawn(kind SpawnKind) {
	switch kind {
	case SpawnCustomer:
		s.spawnCustomer()
	case SpawnDoc:
		s.spawnDoc(false)
	case SpawnBug:
		s.spawnBug()
	case SpawnPowerUp:
		s.spawnPowerUp()
	}
}

// spawnAmbient rolls the per-tick spawn chances, scaled by level.
func (s *State) spawnAmbient() {
	level := float64(s.Level)
	if s.rng.Float64() < DocSpawnRate*(1+level*0.1) {
		s.spawnDoc(false)
	}
	if s.rng.Float64() < CustomerSpawnRate*(1+level*0.1) {
		s.spawnCustomer()
	}
	if s.rng.Float64() < BugSpawnRate*(1+level*0.2) {
		s.spawnBug()
	}
	if s.rng.Float64() < PowerUpSpawnRate*level {
		s.spawnPowerUp()
	}
}
