package engine

import (
	"reflect"
	"testing"
)

func TestUnwindRunsInReverse(t *testing.T) {
	var order []int
	var u Unwind
	for i := 1; i <= 3; i++ {
		i := i
		u.Add(func() { order = append(order, i) })
	}

	u.Unwind()

	if !reflect.DeepEqual(order, []int{3, 2, 1}) {
		t.Errorf("expected [3 2 1], got %v", order)
	}
	u.Unwind()
	if len(order) != 3 {
		t.Error("a second Unwind should not run cleanups again")
	}
}

func TestUnwindDiscard(t *testing.T) {
	ran := false
	var u Unwind
	u.Add(func() { ran = true })
	u.Discard()
	u.Unwind()

	if ran {
		t.Error("discarded cleanups should not run")
	}
}
