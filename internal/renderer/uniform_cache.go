package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformCache caches uniform locations to avoid repeated gl.GetUniformLocation calls
type UniformCache struct {
	locations map[string]int32
	program   uint32
	lookup    func(program uint32, name string) int32
}

// NewUniformCache creates a new uniform cache for a shader program
func NewUniformCache(program uint32) *UniformCache {
	return &UniformCache{
		locations: make(map[string]int32),
		program:   program,
		lookup:    glUniformLocation,
	}
}

func glUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// GetLocation returns the cached uniform location or fetches and caches it.
// Unknown names cache as -1 so they are only queried once.
func (uc *UniformCache) GetLocation(name string) int32 {
	if loc, exists := uc.locations[name]; exists {
		return loc
	}

	loc := uc.lookup(uc.program, name)
	uc.locations[name] = loc
	return loc
}

func (uc *UniformCache) SetMat4(name string, value mgl32.Mat4) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

func (uc *UniformCache) SetVec2(name string, value mgl32.Vec2) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform2f(loc, value.X(), value.Y())
	}
}

func (uc *UniformCache) SetVec3(name string, value mgl32.Vec3) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform3f(loc, value.X(), value.Y(), value.Z())
	}
}

func (uc *UniformCache) SetVec4(name string, value mgl32.Vec4) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform4f(loc, value.X(), value.Y(), value.Z(), value.W())
	}
}

func (uc *UniformCache) SetFloat(name string, value float32) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

func (uc *UniformCache) SetInt(name string, value int32) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

// SetBool uploads b as an int uniform, which is how GLSL bools are set.
func (uc *UniformCache) SetBool(name string, b bool) {
	var v int32
	if b {
		v = 1
	}
	uc.SetInt(name, v)
}

func (uc *UniformCache) SetSampler2D(name string, slot int32) {
	uc.SetInt(name, slot)
}

// Clear clears the cache (call when shader program changes)
func (uc *UniformCache) Clear() {
	uc.locations = make(map[string]int32)
}
