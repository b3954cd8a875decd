package scene

import (
	"DeskScene/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Material is a tagged Phong material.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// Materials is the catalog the draw list refers to by tag. Each texture has a
// material of the same name.
var Materials = []Material{
	{"wood", mgl32.Vec3{0.2, 0.1, 0.05}, 0.4, mgl32.Vec3{0.5, 0.25, 0.1}, mgl32.Vec3{0.3, 0.2, 0.1}, 8},
	{"marble1", mgl32.Vec3{0.3, 0.3, 0.3}, 0.5, mgl32.Vec3{0.7, 0.7, 0.7}, mgl32.Vec3{0.9, 0.9, 0.9}, 64},
	{"leather1", mgl32.Vec3{0.2, 0.1, 0.1}, 0.3, mgl32.Vec3{0.4, 0.2, 0.2}, mgl32.Vec3{0.5, 0.4, 0.3}, 64},
	{"paper", mgl32.Vec3{0.4, 0.4, 0.3}, 0.3, mgl32.Vec3{0.8, 0.8, 0.7}, mgl32.Vec3{0.1, 0.1, 0.1}, 4},
	{"leather2", mgl32.Vec3{0.15, 0.1, 0.05}, 0.3, mgl32.Vec3{0.3, 0.2, 0.1}, mgl32.Vec3{0.4, 0.3, 0.2}, 12},
	{"paper2", mgl32.Vec3{0.4, 0.4, 0.4}, 0.3, mgl32.Vec3{0.9, 0.9, 0.8}, mgl32.Vec3{0.1, 0.1, 0.1}, 4},
	{"leather3", mgl32.Vec3{0.1, 0.05, 0.05}, 0.3, mgl32.Vec3{0.35, 0.2, 0.2}, mgl32.Vec3{0.4, 0.3, 0.3}, 16},
	{"marble2", mgl32.Vec3{0.35, 0.35, 0.35}, 0.5, mgl32.Vec3{0.8, 0.8, 0.8}, mgl32.Vec3{1, 1, 1}, 64},
	{"ground", mgl32.Vec3{0.2, 0.2, 0.2}, 0.4, mgl32.Vec3{0.3, 0.3, 0.3}, mgl32.Vec3{0.2, 0.4, 0.2}, 8},
	{"grass1", mgl32.Vec3{0.1, 0.3, 0.1}, 0.4, mgl32.Vec3{0.2, 0.5, 0.2}, mgl32.Vec3{0.2, 0.4, 0.2}, 8},
	{"grass2", mgl32.Vec3{0.15, 0.35, 0.15}, 0.4, mgl32.Vec3{0.25, 0.55, 0.25}, mgl32.Vec3{0.25, 0.45, 0.25}, 10},
	{"pattern", mgl32.Vec3{0.3, 0.2, 0.2}, 0.4, mgl32.Vec3{0.6, 0.3, 0.3}, mgl32.Vec3{0.4, 0.2, 0.2}, 20},
	{"fabric", mgl32.Vec3{0.3, 0.3, 0.3}, 0.4, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{0.6, 0.6, 0.6}, 16},
	{"wood2", mgl32.Vec3{0.3, 0.3, 0.3}, 0.4, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{0.6, 0.6, 0.6}, 16},
}

// FindMaterial looks a material up by tag.
func FindMaterial(tag string) (Material, bool) {
	for _, m := range Materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (m Material) Upload(u renderer.UniformSetter) {
	u.SetVec3("material.diffuseColor", m.DiffuseColor)
	u.SetVec3("material.specularColor", m.SpecularColor)
	u.SetFloat("material.shininess", m.Shininess)
	u.SetVec3("material.ambientColor", m.AmbientColor)
	u.SetFloat("material.ambientStrength", m.AmbientStrength)
}
