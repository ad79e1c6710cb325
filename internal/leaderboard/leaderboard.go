package leaderboard

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

// MaxEntries is the number of entries kept on the board.
const MaxEntries = 5

// MaxNameLength bounds the name typed on the game-over screen.
const MaxNameLength = 15

// ErrEmptyName is returned when an entry is created without a name.
var ErrEmptyName = errors.New("leaderboard name is empty")

// Entry is a single leaderboard row.
type Entry struct {
	Name  string    `json:"name" yaml:"name"`
	Score int       `json:"score" yaml:"score"`
	Level int       `json:"level" yaml:"level"`
	Date  time.Time `json:"date" yaml:"date"`
}

// NewEntry stamps the entry with date. The name is kept as typed but must
// not be blank.
func NewEntry(name string, score, level int, date time.Time) (Entry, error) {
	if strings.TrimSpace(name) == "" {
		return Entry{}, ErrEmptyName
	}
	return Entry{Name: name, Score: score, Level: level, Date: date}, nil
}

// Board holds the top entries sorted by score, highest first.
type Board struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewBoard builds a board from previously stored entries.
func NewBoard(entries []Entry) *Board {
	b := &Board{}
	for _, e := range entries {
		b.insert(e)
	}
	return b
}

// Add inserts e and returns its 1-based rank, or 0 when the score does not
// make the board.
func (b *Board) Add(e Entry) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.insert(e)
}

func (b *Board) insert(e Entry) int {
	// Ties rank below existing entries.
	i := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Score < e.Score
	})
	if i >= MaxEntries {
		return 0
	}

	b.entries = append(b.entries, Entry{})
	copy(b.entries[i+1:], b.entries[i:])
	b.entries[i] = e
	if len(b.entries) > MaxEntries {
		b.entries = b.entries[:MaxEntries]
	}
	return i + 1
}

// Qualifies reports whether score would make the board.
func (b *Board) Qualifies(score int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries) < MaxEntries || score > b.entries[len(b.entries)-1].Score
}

// Entries returns a copy of the board, highest score first.
func (b *Board) Entries() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of entries on the board.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
