package scene

import (
	"DeskScene/internal/logger"
	"DeskScene/internal/renderer"

	"go.uber.org/zap"
)

// GLScene is a Scene together with the GL resources it draws with.
type GLScene struct {
	*Scene
	Textures *TextureManager
	meshes   map[Shape]*Mesh
}

// Prepare uploads one mesh per shape the calls use and loads the textures
// from texturesDir. It needs a current GL context.
func Prepare(calls []DrawCall, texturesDir string, textures []TextureSpec) *GLScene {
	tm := NewTextureManager()
	tm.LoadAll(texturesDir, textures)

	meshes := make(map[Shape]*Mesh)
	drawers := make(map[Shape]Drawer)
	for _, shape := range Shapes(calls) {
		data := Generate(shape)
		if data == nil {
			continue
		}
		mesh := UploadMesh(data)
		meshes[shape] = mesh
		drawers[shape] = mesh
		logger.Log.Debug("Mesh uploaded",
			zap.String("shape", shape.String()),
			zap.Int("vertices", data.VertexCount()),
			zap.Int("indices", len(data.Indices)))
	}

	stats := tm.GetStats()
	logger.Log.Info("Scene prepared",
		zap.Int("objects", len(calls)),
		zap.Int("meshes", len(meshes)),
		zap.Int("textures", stats.Loaded),
		zap.Int("missingTextures", stats.Skipped))

	return &GLScene{
		Scene:    New(calls, drawers, tm),
		Textures: tm,
		meshes:   meshes,
	}
}

func (g *GLScene) Render(u renderer.UniformSetter) {
	g.Textures.Bind()
	g.Scene.Render(u)
}

func (g *GLScene) Destroy() {
	for _, m := range g.meshes {
		m.Delete()
	}
	g.meshes = nil
	g.Textures.Destroy()
}
