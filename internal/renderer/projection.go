package renderer

import "github.com/go-gl/mathgl/mgl32"

type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

const (
	NearPlane = 0.1
	FarPlane  = 100.0
	// Half the visible height of the orthographic volume in world units.
	OrthoHalfExtent = 5.0
)

func (p ProjectionMode) String() string {
	switch p {
	case Perspective:
		return "Perspective"
	case Orthographic:
		return "Orthographic"
	default:
		return "Unknown"
	}
}

// Toggled returns the other projection mode.
func (p ProjectionMode) Toggled() ProjectionMode {
	if p == Orthographic {
		return Perspective
	}
	return Orthographic
}

// ProjectionMatrix builds the matrix for the given mode. fov is in degrees and
// only used in perspective mode.
func ProjectionMatrix(mode ProjectionMode, fov, aspect float32) mgl32.Mat4 {
	if mode == Orthographic {
		w := OrthoHalfExtent * aspect
		return mgl32.Ortho(-w, w, -OrthoHalfExtent, OrthoHalfExtent, NearPlane, FarPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(fov), aspect, NearPlane, FarPlane)
}
