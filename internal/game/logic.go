package game

import (
	"fmt"
	"log/slog"
)

// Score tallies progress. Total is the progression currency and never drops below zero.
type Score struct {
	Customers int `json:"customers"`
	Docs      int `json:"docs"`
	Total     int `json:"total"`
}

// Penalize subtracts points from the total, flooring at zero.
func (sc *Score) Penalize(points int) {
	sc.Total = max(0, sc.Total-points)
}

// checkLevelUp advances at most one level per tick once the goal is reached.
func (s *State) checkLevelUp() {
	if float64(s.Score.Total) >= s.LevelGoal {
		s.levelUp()
	}
}

func (s *State) levelUp() {
	s.Level++
	s.LevelGoal *= LevelGoalFactor

	switch s.Level {
	case 2:
		for i := 0; i < 2; i++ {
			s.spawnBug()
		}
	case 3:
		s.BugSpeed += 0.5
	case 4:
		for i := 0; i < 3; i++ {
			s.spawnPowerUp()
		}
	case 5:
		for i := 0; i < 3; i++ {
			s.spawnBug()
		}
		s.BugSpeed += 0.5
	default:
		s.BugSpeed += 0.2
		for i := 0; i < min(s.Level, MaxLevelBugSpawns); i++ {
			s.spawnBug()
		}
	}

	for i := 0; i < LevelRewardDocs; i++ {
		s.spawnDoc(true)
	}

	slog.Info("level up", "level", s.Level, "goal", s.LevelGoal, "bug_speed", s.BugSpeed)
	s.emit(Event{Kind: EventLevelUp, Level: s.Level})
}

// LevelDescription returns the banner text shown for a level.
func LevelDescription(level int) string {
	switch level {
	case 1:
		return "Tutorial: Collect docs and help customers"
	case 2:
		return "More bugs appear! Watch out!"
	case 3:
		return "Bugs move faster now"
	case 4:
		return "Power-ups appear more frequently"
	case 5:
		return "Challenge level: Survive the bug swarm!"
	default:
		return fmt.Sprintf("Expert level: %d", level-5)
	}
}
