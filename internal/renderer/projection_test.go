package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestProjectionModeToggle(t *testing.T) {
	if Perspective.Toggled() != Orthographic {
		t.Error("Perspective should toggle to Orthographic")
	}
	if Orthographic.Toggled().Toggled() != Orthographic {
		t.Error("double toggle should restore the mode")
	}
	if Perspective.String() != "Perspective" || Orthographic.String() != "Orthographic" {
		t.Error("unexpected mode names")
	}
}

func TestPerspectiveMatrix(t *testing.T) {
	proj := ProjectionMatrix(Perspective, 80, 1000.0/800.0)

	if proj.At(3, 2) != -1 {
		t.Errorf("perspective matrix should have -1 at (3,2), got %v", proj.At(3, 2))
	}
	if proj.At(3, 3) != 0 {
		t.Errorf("perspective matrix should have 0 at (3,3), got %v", proj.At(3, 3))
	}

	want := mgl32.Perspective(mgl32.DegToRad(80), 1.25, 0.1, 100)
	if !proj.ApproxEqual(want) {
		t.Errorf("got %v, want %v", proj, want)
	}
}

func TestOrthographicMatrix(t *testing.T) {
	aspect := float32(1000.0 / 800.0)
	proj := ProjectionMatrix(Orthographic, 80, aspect)

	if proj.At(3, 3) != 1 {
		t.Errorf("orthographic matrix should have 1 at (3,3), got %v", proj.At(3, 3))
	}

	// Right edge of the volume maps to x = 1
	edge := proj.Mul4x1(mgl32.Vec4{OrthoHalfExtent * aspect, OrthoHalfExtent, -1, 1})
	if math.Abs(float64(edge.X()-1)) > epsilon || math.Abs(float64(edge.Y()-1)) > epsilon {
		t.Errorf("volume corner should map to (1,1), got %v", edge)
	}
}

func TestOrthographicIgnoresFov(t *testing.T) {
	a := ProjectionMatrix(Orthographic, 10, 1.5)
	b := ProjectionMatrix(Orthographic, 90, 1.5)
	if a != b {
		t.Error("orthographic matrix should not depend on zoom")
	}
}
