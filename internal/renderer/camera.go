// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultZoom        = 80.0
	DefaultSpeed       = 3.0
	DefaultSensitivity = 0.1

	MinZoom  = 1.0
	MaxZoom  = 90.0
	MaxPitch = 89.0
	MinPitch = -89.0
)

var (
	DefaultCameraPosition = mgl32.Vec3{0, 5, 12}
	DefaultCameraFront    = mgl32.Vec3{0, -0.5, -2}
)

type Camera struct {
	// HOT DATA - touched every frame by input and view composition
	Position mgl32.Vec3 // Camera position in world space
	Front    mgl32.Vec3 // Forward direction vector
	Up       mgl32.Vec3 // Up direction vector
	Right    mgl32.Vec3 // Right direction vector
	Pitch    float32    // Pitch angle in degrees
	Yaw      float32    // Yaw angle in degrees
	Zoom     float32    // Vertical field of view in degrees

	// COLD DATA - configuration
	WorldUp     mgl32.Vec3 // World up vector (usually (0,1,0))
	Speed       float32    // Base movement speed in units per second
	Sensitivity float32    // Mouse sensitivity
}

// NewDefaultCamera returns the camera the desk scene starts with: above and
// in front of the table, looking down at it.
func NewDefaultCamera() *Camera {
	camera := Camera{
		Position:    DefaultCameraPosition,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Zoom:        DefaultZoom,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
	}
	camera.SetFront(DefaultCameraFront)
	return &camera
}

// SetFront points the camera along dir. Yaw and pitch are derived from the
// direction so later look deltas continue smoothly from it.
func (c *Camera) SetFront(dir mgl32.Vec3) {
	if dir.Len() == 0 {
		return
	}
	d := dir.Normalize()
	c.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(d.Z()), float64(d.X()))))
	c.Pitch = mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(d.Y(), -1, 1)))))
	c.Pitch = mgl32.Clamp(c.Pitch, MinPitch, MaxPitch)
	c.updateCameraVectors()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) MoveForward(distance float32) {
	c.Position = c.Position.Add(c.Front.Mul(distance))
}

func (c *Camera) MoveBackward(distance float32) {
	c.Position = c.Position.Sub(c.Front.Mul(distance))
}

func (c *Camera) MoveLeft(distance float32) {
	c.Position = c.Position.Sub(c.Right.Mul(distance))
}

func (c *Camera) MoveRight(distance float32) {
	c.Position = c.Position.Add(c.Right.Mul(distance))
}

func (c *Camera) MoveUp(distance float32) {
	c.Position = c.Position.Add(c.Up.Mul(distance))
}

func (c *Camera) MoveDown(distance float32) {
	c.Position = c.Position.Sub(c.Up.Mul(distance))
}

// ApplyLookDelta turns the camera by mouse offsets. Positive y looks up.
func (c *Camera) ApplyLookDelta(xoffset, yoffset float32) {
	c.Yaw += xoffset * c.Sensitivity
	c.Pitch += yoffset * c.Sensitivity

	// Past +-90 the up vector would flip
	c.Pitch = mgl32.Clamp(c.Pitch, MinPitch, MaxPitch)

	// Keep yaw bounded so float precision does not degrade over long sessions
	if c.Yaw > 360 || c.Yaw < -360 {
		c.Yaw = float32(math.Mod(float64(c.Yaw), 360))
	}
	c.updateCameraVectors()
}

// ApplyZoomDelta narrows the field of view for positive deltas.
func (c *Camera) ApplyZoomDelta(delta float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-delta, MinZoom, MaxZoom)
}

func (c *Camera) updateCameraVectors() {
	yawRad := float64(mgl32.DegToRad(c.Yaw))
	pitchRad := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
