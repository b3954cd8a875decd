package input

import "github.com/go-gl/glfw/v3.3/glfw"

// KeySource reports the current state of a key. *glfw.Window satisfies it.
type KeySource interface {
	GetKey(key glfw.Key) glfw.Action
}

// KeyPhase is where a key sits in its press cycle.
type KeyPhase int

const (
	Idle KeyPhase = iota
	// Pressed lasts exactly one polled frame.
	Pressed
	Held
)

func (p KeyPhase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Pressed:
		return "Pressed"
	case Held:
		return "Held"
	default:
		return "Unknown"
	}
}

// KeyTracker polls a fixed set of keys once per frame and keeps the phase
// of each. A key only fires JustPressed again after it was seen released.
type KeyTracker struct {
	keys   []glfw.Key
	phases map[glfw.Key]KeyPhase
}

func NewKeyTracker(keys ...glfw.Key) *KeyTracker {
	kt := &KeyTracker{phases: make(map[glfw.Key]KeyPhase, len(keys))}
	for _, k := range keys {
		if _, dup := kt.phases[k]; dup {
			continue
		}
		kt.keys = append(kt.keys, k)
		kt.phases[k] = Idle
	}
	return kt
}

// Update polls every tracked key. Call it once per frame before any query.
func (kt *KeyTracker) Update(src KeySource) {
	for _, k := range kt.keys {
		down := src.GetKey(k) != glfw.Release
		switch kt.phases[k] {
		case Idle:
			if down {
				kt.phases[k] = Pressed
			}
		case Pressed, Held:
			if down {
				kt.phases[k] = Held
			} else {
				kt.phases[k] = Idle
			}
		}
	}
}

// Phase returns Idle for untracked keys.
func (kt *KeyTracker) Phase(key glfw.Key) KeyPhase {
	return kt.phases[key]
}

// JustPressed is true only on the frame the key went down.
func (kt *KeyTracker) JustPressed(key glfw.Key) bool {
	return kt.phases[key] == Pressed
}

// IsDown is true for every frame the key is held, including the first.
func (kt *KeyTracker) IsDown(key glfw.Key) bool {
	p := kt.phases[key]
	return p == Pressed || p == Held
}
