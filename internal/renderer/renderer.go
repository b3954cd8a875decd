package renderer

import "github.com/go-gl/mathgl/mgl32"

// Debug turns programming errors that would otherwise be clamped (such as an
// out-of-range light selection) into panics.
var Debug bool = false

// UniformSetter is the shader interface the view and scene code write to.
// Implementations ignore names the active program does not declare.
type UniformSetter interface {
	SetMat4(name string, value mgl32.Mat4)
	SetVec2(name string, value mgl32.Vec2)
	SetVec3(name string, value mgl32.Vec3)
	SetVec4(name string, value mgl32.Vec4)
	SetFloat(name string, value float32)
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetSampler2D(name string, slot int32)
}

// ViewState is everything the input translator mutates and the view manager
// reads each frame. It has a single owner and is passed down by pointer.
type ViewState struct {
	Camera     *Camera
	Lights     *LightParameters
	Projection ProjectionMode
}

func NewViewState() *ViewState {
	return &ViewState{
		Camera:     NewDefaultCamera(),
		Lights:     NewLightParameters(),
		Projection: Perspective,
	}
}
