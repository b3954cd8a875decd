package scene

import (
	"DeskScene/internal/logger"
	"DeskScene/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// DrawCall is one object of the scene. Rotation is in degrees per axis. An
// empty Texture draws the object in the flat Color.
type DrawCall struct {
	Name     string
	Shape    Shape
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3
	Position mgl32.Vec3
	Texture  string
	Material string
	UVScale  mgl32.Vec2
	Color    mgl32.Vec4
}

// ModelMatrix composes translate * rotZ * rotY * rotX * scale.
func ModelMatrix(scale, rotation, position mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation.Z()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotation.Y()))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotation.X()))).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

func (d DrawCall) ModelMatrix() mgl32.Mat4 {
	return ModelMatrix(d.Scale, d.Rotation, d.Position)
}

// Drawer draws one mesh with the uniforms already set.
type Drawer interface {
	Draw()
}

// TextureSlots resolves a texture tag to the unit it is bound to.
type TextureSlots interface {
	Slot(tag string) int
}

// Scene draws a fixed list of calls with shared meshes.
type Scene struct {
	Calls    []DrawCall
	meshes   map[Shape]Drawer
	textures TextureSlots

	warned map[string]bool
}

func New(calls []DrawCall, meshes map[Shape]Drawer, textures TextureSlots) *Scene {
	return &Scene{
		Calls:    calls,
		meshes:   meshes,
		textures: textures,
		warned:   make(map[string]bool),
	}
}

// Shapes lists every shape the calls use, each once.
func Shapes(calls []DrawCall) []Shape {
	seen := make(map[Shape]bool)
	var shapes []Shape
	for _, c := range calls {
		if !seen[c.Shape] {
			seen[c.Shape] = true
			shapes = append(shapes, c.Shape)
		}
	}
	return shapes
}

// Render sets the per-object uniforms and draws every call in order.
func (s *Scene) Render(u renderer.UniformSetter) {
	if u == nil {
		return
	}
	u.SetBool("bUseLighting", true)
	for i := range s.Calls {
		s.apply(u, &s.Calls[i])
		mesh, ok := s.meshes[s.Calls[i].Shape]
		if !ok {
			s.warnOnce("mesh:"+s.Calls[i].Shape.String(), "No mesh for shape", zap.String("shape", s.Calls[i].Shape.String()))
			continue
		}
		mesh.Draw()
	}
}

func (s *Scene) apply(u renderer.UniformSetter, call *DrawCall) {
	if call.Texture == "" {
		u.SetBool("bUseTexture", false)
		u.SetVec4("objectColor", call.Color)
	} else if slot := s.slot(call.Texture); slot >= 0 {
		u.SetBool("bUseTexture", true)
		u.SetSampler2D("objectTexture", int32(slot))
	} else {
		s.warnOnce("texture:"+call.Texture, "Unknown texture tag", zap.String("tag", call.Texture), zap.String("object", call.Name))
	}

	if call.Material != "" {
		if m, ok := FindMaterial(call.Material); ok {
			m.Upload(u)
		} else {
			s.warnOnce("material:"+call.Material, "Unknown material tag", zap.String("tag", call.Material), zap.String("object", call.Name))
		}
	}

	uv := call.UVScale
	if uv == (mgl32.Vec2{}) {
		uv = mgl32.Vec2{1, 1}
	}
	u.SetVec2("UVscale", uv)
	u.SetMat4("model", call.ModelMatrix())
}

func (s *Scene) slot(tag string) int {
	if s.textures == nil {
		return -1
	}
	return s.textures.Slot(tag)
}

func (s *Scene) warnOnce(key, msg string, fields ...zap.Field) {
	if s.warned[key] {
		return
	}
	s.warned[key] = true
	logger.Log.Warn(msg, fields...)
}
