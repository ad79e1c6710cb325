package game

import (
	"errors"
	"log/slog"
	"math"
	"math/rand"
)

// ErrArenaTooSmall is returned by obstacle generation when the arena cannot
// hold a single grid cell.
var ErrArenaTooSmall = errors.New("arena smaller than one obstacle cell")

// Obstacle is a static axis-aligned rectangle blocking movement and bullets.
type Obstacle struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Field owns the obstacle layout of the arena and answers collision queries.
type Field struct {
	Width     float64
	Height    float64
	obstacles []Obstacle
}

// NewField creates a field with a procedurally generated obstacle layout.
// Generation failures degrade to an empty layout.
func NewField(width, height float64, rng *rand.Rand) *Field {
	f := &Field{Width: width, Height: height}

	obstacles, err := generateObstacles(width, height, rng)
	if err != nil {
		slog.Warn("obstacle generation failed, using empty arena", "error", err)
		obstacles = nil
	}
	f.obstacles = obstacles

	f.ClearArea(width/2, height/2, CenterSafeRadius)
	return f
}

// NewFieldWithObstacles creates a field with a fixed obstacle layout.
func NewFieldWithObstacles(width, height float64, obstacles []Obstacle) *Field {
	return &Field{
		Width:     width,
		Height:    height,
		obstacles: append([]Obstacle(nil), obstacles...),
	}
}

// Obstacles returns a copy of the current layout.
func (f *Field) Obstacles() []Obstacle {
	return append([]Obstacle(nil), f.obstacles...)
}

// CheckCollision reports whether the box at (x, y) with size (w, h) leaves the
// arena or overlaps any obstacle.
func (f *Field) CheckCollision(x, y, w, h float64) bool {
	if x < 0 || x+w > f.Width || y < 0 || y+h > f.Height {
		return true
	}
	for _, o := range f.obstacles {
		if o.Overlaps(x, y, w, h) {
			return true
		}
	}
	return false
}

// ClearArea removes every obstacle whose center lies within radius/2 of (cx, cy).
func (f *Field) ClearArea(cx, cy, radius float64) {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		ox, oy := o.Center()
		if Distance(cx, cy, ox, oy) > radius/2 {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

type region struct {
	startCol, endCol int
	startRow, endRow int
}

// generateObstacles places 2-3 obstacles in each corner region of a coarse
// grid and 3-5 scattered ones. Candidates whose origin corner is within
// CenterSafeRadius of the arena center are dropped.
func generateObstacles(width, height float64, rng *rand.Rand) ([]Obstacle, error) {
	cols := int(math.Floor(width / CellSize))
	rows := int(math.Floor(height / CellSize))
	if cols < 1 || rows < 1 {
		return nil, ErrArenaTooSmall
	}

	near := func(n int) int { return int(math.Floor(float64(n) * CornerFraction)) }
	far := func(n int) int { return int(math.Floor(float64(n) * (1 - CornerFraction))) }

	regions := []region{
		{0, near(cols), 0, near(rows)},     // top-left
		{far(cols), cols, 0, near(rows)},   // top-right
		{0, near(cols), far(rows), rows},   // bottom-left
		{far(cols), cols, far(rows), rows}, // bottom-right
	}

	centerX, centerY := width/2, height/2
	var obstacles []Obstacle

	for _, r := range regions {
		count := 2 + rng.Intn(2)
		for i := 0; i < count; i++ {
			col := int(math.Floor(randRange(rng, float64(r.startCol), float64(r.endCol))))
			row := int(math.Floor(randRange(rng, float64(r.startRow), float64(r.endRow))))

			o := Obstacle{
				X: float64(col * CellSize),
				Y: float64(row * CellSize),
				W: randRange(rng, ObstacleMinSize, CornerObstacleMax),
				H: randRange(rng, ObstacleMinSize, CornerObstacleMax),
			}
			if Distance(o.X, o.Y, centerX, centerY) > CenterSafeRadius {
				obstacles = append(obstacles, o)
			}
		}
	}

	scattered := 3 + rng.Intn(3)
	for i := 0; i < scattered; i++ {
		o := Obstacle{
			X: rng.Float64() * width,
			Y: rng.Float64() * height,
			W: randRange(rng, ObstacleMinSize, ScatterObstacleMax),
			H: randRange(rng, ObstacleMinSize, ScatterObstacleMax),
		}
		if Distance(o.X, o.Y, centerX, centerY) > CenterSafeRadius {
			obstacles = append(obstacles, o)
		}
	}

	return obstacles, nil
}
