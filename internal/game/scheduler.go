package game

// SpawnKind names what a deferred spawn creates.
type SpawnKind int

const (
	SpawnCustomer SpawnKind = iota
	SpawnDoc
	SpawnBug
	SpawnPowerUp
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnCustomer:
		return "customer"
	case SpawnDoc:
		return "doc"
	case SpawnBug:
		return "bug"
	case SpawnPowerUp:
		return "power_up"
	default:
		return "unknown"
	}
}

type deferredSpawn struct {
	due  uint64
	kind SpawnKind
}

// Scheduler is a queue of spawns keyed by the tick on which they fire.
type Scheduler struct {
	pending []deferredSpawn
}

// Schedule queues kind to fire delay ticks after now. A delay below one tick
// still waits for the next tick boundary.
func (q *Scheduler) Schedule(now uint64, delay int, kind SpawnKind) {
	if delay < 1 {
		delay = 1
	}
	q.pending = append(q.pending, deferredSpawn{due: now + uint64(delay), kind: kind})
}

// Due removes and returns, in scheduling order, every spawn due at or before now.
func (q *Scheduler) Due(now uint64) []SpawnKind {
	var due []SpawnKind
	kept := q.pending[:0]
	for _, d := range q.pending {
		if d.due <= now {
			due = append(due, d.kind)
		} else {
			kept = append(kept, d)
		}
	}
	q.pending = kept
	return due
}

// Len returns the number of pending spawns.
func (q *Scheduler) Len() int {
	return len(q.pending)
}

// Clear drops every pending spawn.
func (q *Scheduler) Clear() {
	q.pending = nil
}
