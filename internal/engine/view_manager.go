package engine

import (
	"DeskScene/internal/input"
	"DeskScene/internal/logger"
	"DeskScene/internal/renderer"
	"fmt"
	"strconv"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// FrameTiming tracks the time between frames.
type FrameTiming struct {
	Delta    float32
	lastTime float64
	started  bool
}

// Tick records now (in seconds) and returns the time since the previous
// tick. The first tick returns 0.
func (ft *FrameTiming) Tick(now float64) float32 {
	if !ft.started {
		ft.started = true
		ft.lastTime = now
		ft.Delta = 0
		return 0
	}
	ft.Delta = float32(now - ft.lastTime)
	ft.lastTime = now
	return ft.Delta
}

// ViewManager runs the per-frame view update: timing, input, then the view
// and projection uploads.
type ViewManager struct {
	State      *renderer.ViewState
	Translator *input.Translator
	Timing     FrameTiming

	width  int32
	height int32

	view       mgl.Mat4
	projection mgl.Mat4

	warnedNilShader bool
}

func NewViewManager(state *renderer.ViewState, width, height int32) *ViewManager {
	vm := &ViewManager{
		State:      state,
		Translator: input.NewTranslator(),
	}
	vm.SetViewport(width, height)
	return vm
}

// SetViewport updates the size the aspect ratio is taken from. A zero height
// (minimized window) keeps the previous size.
func (vm *ViewManager) SetViewport(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	vm.width = width
	vm.height = height
}

func (vm *ViewManager) AspectRatio() float32 {
	if vm.height == 0 {
		return 1
	}
	return float32(vm.width) / float32(vm.height)
}

func (vm *ViewManager) ViewMatrix() mgl.Mat4 {
	return vm.view
}

func (vm *ViewManager) ProjectionMatrix() mgl.Mat4 {
	return vm.projection
}

// PrepareSceneView advances the frame clock to now, applies the frame's input
// and uploads the camera and lights to shader. With a nil shader the matrices
// are still computed but nothing is uploaded.
func (vm *ViewManager) PrepareSceneView(now float64, keys input.KeySource, events []input.Event, shader renderer.UniformSetter) input.Result {
	dt := vm.Timing.Tick(now)
	res := vm.Translator.Process(vm.State, dt, keys, events)

	cam := vm.State.Camera
	vm.view = cam.GetViewMatrix()
	vm.projection = renderer.ProjectionMatrix(vm.State.Projection, cam.Zoom, vm.AspectRatio())

	if shader == nil {
		if !vm.warnedNilShader {
			vm.warnedNilShader = true
			logger.Log.Debug("No shader bound, skipping view uploads")
		}
		return res
	}

	shader.SetMat4("view", vm.view)
	shader.SetMat4("projection", vm.projection)
	shader.SetVec3("viewPosition", cam.Position)
	vm.State.Lights.Upload(shader, cam)
	return res
}

// FormatTitle builds the window title shown while navigating.
func FormatTitle(base string, status input.Status) string {
	return fmt.Sprintf("%s  |  Selected Light: %d  |  Move speed x%s",
		base, status.SelectedLight+1, strconv.FormatFloat(float64(status.SpeedScale), 'g', -1, 32))
}
