package engine

import (
	"DeskScene/internal/input"
	"DeskScene/internal/renderer"
	"math"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	mgl "github.com/go-gl/mathgl/mgl32"
)

type recordingSetter struct {
	values map[string]interface{}
	count  int
}

func newRecordingSetter() *recordingSetter {
	return &recordingSetter{values: make(map[string]interface{})}
}

func (r *recordingSetter) set(name string, v interface{}) {
	r.values[name] = v
	r.count++
}

func (r *recordingSetter) SetMat4(name string, v mgl.Mat4) { r.set(name, v) }
func (r *recordingSetter) SetVec2(name string, v mgl.Vec2) { r.set(name, v) }
func (r *recordingSetter) SetVec3(name string, v mgl.Vec3) { r.set(name, v) }
func (r *recordingSetter) SetVec4(name string, v mgl.Vec4) { r.set(name, v) }
func (r *recordingSetter) SetFloat(name string, v float32) { r.set(name, v) }
func (r *recordingSetter) SetBool(name string, v bool) { r.set(name, v) }
func (r *recordingSetter) SetInt(name string, v int32) { r.set(name, v) }
func (r *recordingSetter) SetSampler2D(name string, v int32) { r.set(name, v) }

type fakeKeys map[glfw.Key]bool

func (f fakeKeys) GetKey(key glfw.Key) glfw.Action {
	if f[key] {
		return glfw.Press
	}
	return glfw.Release
}

func TestFrameTiming(t *testing.T) {
	var ft FrameTiming
	if dt := ft.Tick(10); dt != 0 {
		t.Errorf("first tick should be 0, got %f", dt)
	}
	if dt := ft.Tick(10.5); math.Abs(float64(dt)-0.5) > 1e-6 {
		t.Errorf("expected 0.5, got %f", dt)
	}
	if dt := ft.Tick(10.5); dt != 0 {
		t.Errorf("same timestamp should give 0, got %f", dt)
	}
	if ft.Delta != 0 {
		t.Errorf("Delta should track the last tick, got %f", ft.Delta)
	}
}

func TestPrepareSceneViewUploads(t *testing.T) {
	state := renderer.NewViewState()
	vm := NewViewManager(state, 1000, 800)
	rec := newRecordingSetter()

	vm.PrepareSceneView(0, fakeKeys{}, nil, rec)

	if rec.values["view"] != state.Camera.GetViewMatrix() {
		t.Error("view matrix not uploaded")
	}
	want := renderer.ProjectionMatrix(renderer.Perspective, state.Camera.Zoom, 1.25)
	if rec.values["projection"] != want {
		t.Error("perspective projection not uploaded")
	}
	if rec.values["viewPosition"] != state.Camera.Position {
		t.Error("viewPosition not uploaded")
	}
	if _, ok := rec.values["pointLights[0].position"]; !ok {
		t.Error("light parameters not uploaded")
	}
	if vm.ViewMatrix() != rec.values["view"] || vm.ProjectionMatrix() != want {
		t.Error("accessors should return the uploaded matrices")
	}
}

func TestPrepareSceneViewFirstFrameDoesNotMove(t *testing.T) {
	state := renderer.NewViewState()
	vm := NewViewManager(state, 1000, 800)
	start := state.Camera.Position

	vm.PrepareSceneView(5, fakeKeys{glfw.KeyW: true}, nil, newRecordingSetter())

	if state.Camera.Position != start {
		t.Errorf("camera moved on a zero-length frame: %v", state.Camera.Position)
	}

	vm.PrepareSceneView(5.016, fakeKeys{glfw.KeyW: true}, nil, newRecordingSetter())
	if state.Camera.Position == start {
		t.Error("camera should move once time passes")
	}
}

func TestPrepareSceneViewProjectionToggle(t *testing.T) {
	state := renderer.NewViewState()
	vm := NewViewManager(state, 1000, 800)
	rec := newRecordingSetter()

	res := vm.PrepareSceneView(0, fakeKeys{glfw.KeyP: true}, nil, rec)
	if !res.ProjectionChanged || state.Projection != renderer.Orthographic {
		t.Fatal("P should switch to orthographic")
	}
	want := renderer.ProjectionMatrix(renderer.Orthographic, state.Camera.Zoom, 1.25)
	if rec.values["projection"] != want {
		t.Error("orthographic projection should be uploaded on the same frame")
	}
}

func TestPrepareSceneViewNilShader(t *testing.T) {
	state := renderer.NewViewState()
	vm := NewViewManager(state, 1000, 800)

	for i := 0; i < 3; i++ {
		vm.PrepareSceneView(float64(i)*0.016, fakeKeys{glfw.KeyW: true}, nil, nil)
	}
	if !vm.warnedNilShader {
		t.Error("nil shader should be noted")
	}
	if state.Camera.Position == renderer.DefaultCameraPosition {
		t.Error("input should still be processed without a shader")
	}
}

func TestPrepareSceneViewEvents(t *testing.T) {
	state := renderer.NewViewState()
	vm := NewViewManager(state, 1000, 800)
	q := input.NewEventQueue()
	q.PushScroll(0, 10)

	vm.PrepareSceneView(0, nil, q.Drain(), newRecordingSetter())

	if state.Camera.Zoom != renderer.DefaultZoom-10 {
		t.Errorf("scroll should zoom in, got %f", state.Camera.Zoom)
	}
}

func TestSetViewport(t *testing.T) {
	vm := NewViewManager(renderer.NewViewState(), 1000, 800)
	if vm.AspectRatio() != 1.25 {
		t.Errorf("expected aspect 1.25, got %f", vm.AspectRatio())
	}
	vm.SetViewport(0, 0)
	if vm.AspectRatio() != 1.25 {
		t.Error("a minimized window should keep the last aspect ratio")
	}
	vm.SetViewport(800, 800)
	if vm.AspectRatio() != 1 {
		t.Errorf("expected aspect 1, got %f", vm.AspectRatio())
	}
}

func TestFormatTitle(t *testing.T) {
	tests := []struct {
		status input.Status
		want   string
	}{
		{input.Status{SelectedLight: 0, SpeedScale: 1}, "Graphics Project  |  Selected Light: 1  |  Move speed x1"},
		{input.Status{SelectedLight: 2, SpeedScale: 0.25}, "Graphics Project  |  Selected Light: 3  |  Move speed x0.25"},
		{input.Status{SelectedLight: 3, SpeedScale: 8}, "Graphics Project  |  Selected Light: 4  |  Move speed x8"},
	}
	for _, tt := range tests {
		if got := FormatTitle("Graphics Project", tt.status); got != tt.want {
			t.Errorf("FormatTitle(%+v) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
