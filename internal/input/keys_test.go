package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type fakeKeys map[glfw.Key]bool

func (f fakeKeys) GetKey(key glfw.Key) glfw.Action {
	if f[key] {
		return glfw.Press
	}
	return glfw.Release
}

func TestKeyTrackerPhases(t *testing.T) {
	kt := NewKeyTracker(glfw.KeyP)
	keys := fakeKeys{}

	kt.Update(keys)
	if kt.Phase(glfw.KeyP) != Idle {
		t.Errorf("expected Idle, got %v", kt.Phase(glfw.KeyP))
	}

	keys[glfw.KeyP] = true
	kt.Update(keys)
	if kt.Phase(glfw.KeyP) != Pressed {
		t.Errorf("expected Pressed, got %v", kt.Phase(glfw.KeyP))
	}

	kt.Update(keys)
	if kt.Phase(glfw.KeyP) != Held {
		t.Errorf("expected Held, got %v", kt.Phase(glfw.KeyP))
	}

	keys[glfw.KeyP] = false
	kt.Update(keys)
	if kt.Phase(glfw.KeyP) != Idle {
		t.Errorf("expected Idle after release, got %v", kt.Phase(glfw.KeyP))
	}
}

func TestKeyTrackerHoldFiresOnce(t *testing.T) {
	kt := NewKeyTracker(glfw.KeyZ)
	keys := fakeKeys{glfw.KeyZ: true}

	fired, down := 0, 0
	for frame := 0; frame < 10; frame++ {
		kt.Update(keys)
		if kt.JustPressed(glfw.KeyZ) {
			fired++
		}
		if kt.IsDown(glfw.KeyZ) {
			down++
		}
	}

	if fired != 1 {
		t.Errorf("held key should fire once, fired %d times", fired)
	}
	if down != 10 {
		t.Errorf("held key should be down for all 10 frames, got %d", down)
	}
}

func TestKeyTrackerRepress(t *testing.T) {
	kt := NewKeyTracker(glfw.KeyL)
	keys := fakeKeys{}
	fired := 0

	for _, state := range []bool{true, true, false, true, false, false, true} {
		keys[glfw.KeyL] = state
		kt.Update(keys)
		if kt.JustPressed(glfw.KeyL) {
			fired++
		}
	}

	if fired != 3 {
		t.Errorf("expected 3 presses, got %d", fired)
	}
}

func TestKeyTrackerUntracked(t *testing.T) {
	kt := NewKeyTracker(glfw.KeyW, glfw.KeyW)
	kt.Update(fakeKeys{glfw.KeyA: true})

	if kt.IsDown(glfw.KeyA) || kt.JustPressed(glfw.KeyA) {
		t.Error("untracked key should never report down")
	}
	if len(kt.keys) != 1 {
		t.Errorf("duplicate keys should be tracked once, got %d", len(kt.keys))
	}
}

func TestEventQueueDrain(t *testing.T) {
	q := NewEventQueue()
	q.PushCursor(10, 20)
	q.PushScroll(0, 1)

	events := q.Drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != CursorMoved || events[0].X != 10 || events[0].Y != 20 {
		t.Errorf("unexpected first event %+v", events[0])
	}
	if events[1].Kind != Scrolled || events[1].Y != 1 {
		t.Errorf("unexpected second event %+v", events[1])
	}
	if q.Len() != 0 {
		t.Error("drain should empty the queue")
	}
	if len(q.Drain()) != 0 {
		t.Error("second drain should return nothing")
	}
}

func TestTrackedKeysCoverBindings(t *testing.T) {
	keys := TrackedKeys()
	if len(keys) != len(Bindings) {
		t.Errorf("expected %d keys, got %d", len(Bindings), len(keys))
	}
	for _, b := range Bindings {
		got, ok := BindingFor(b.Action)
		if !ok || got.Key != b.Key {
			t.Errorf("BindingFor(%d) mismatch", b.Action)
		}
	}
}
