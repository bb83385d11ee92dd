package sim

import "github.com/vovakirdan/fuelrun/internal/core"

// EventKind identifies something that happened during a frame.
type EventKind int

const (
	EventShot EventKind = iota
	EventEnemySpawned
	EventEnemyDestroyed
	EventPickupCollected
	EventTargetReached
	EventPlayerDied
	EventReset
)

// Sound cue names emitted with events.
const (
	SoundShot       = "shot"
	SoundExplosion  = "explosion"
	SoundPickup     = "pickup"
	SoundCheckpoint = "checkpoint"
	SoundDeath      = "death"
)

// Event is a fire-and-forget notification for the host.
type Event struct {
	Kind     EventKind
	Position core.Vec2
}

// Sound returns the cue to play for the event, or "" for silent events.
func (e Event) Sound() string {
	switch e.Kind {
	case EventShot:
		return SoundShot
	case EventEnemyDestroyed:
		return SoundExplosion
	case EventPickupCollected:
		return SoundPickup
	case EventTargetReached:
		return SoundCheckpoint
	case EventPlayerDied:
		return SoundDeath
	default:
		return ""
	}
}

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventPickupCollected:
		return "pickup_collected"
	case EventTargetReached:
		return "target_reached"
	case EventPlayerDied:
		return "player_died"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// FrameReport is returned by World.Step.
type FrameReport struct {
	Frame  uint64
	Events []Event
}

// Sounds returns the non-empty sound cues of the frame, in event order.
func (r FrameReport) Sounds() []string {
	var out []string
	for _, e := range r.Events {
		if s := e.Sound(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Count returns how many events of kind k the frame produced.
func (r FrameReport) Count(k EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
