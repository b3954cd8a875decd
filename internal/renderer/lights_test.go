package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type recordingSetter struct {
	values map[string]interface{}
}

func newRecordingSetter() *recordingSetter {
	return &recordingSetter{values: make(map[string]interface{})}
}

func (r *recordingSetter) SetMat4(name string, v mgl32.Mat4)  { r.values[name] = v }
func (r *recordingSetter) SetVec2(name string, v mgl32.Vec2)  { r.values[name] = v }
func (r *recordingSetter) SetVec3(name string, v mgl32.Vec3)  { r.values[name] = v }
func (r *recordingSetter) SetVec4(name string, v mgl32.Vec4)  { r.values[name] = v }
func (r *recordingSetter) SetFloat(name string, v float32)    { r.values[name] = v }
func (r *recordingSetter) SetBool(name string, v bool)        { r.values[name] = v }
func (r *recordingSetter) SetInt(name string, v int32)        { r.values[name] = v }
func (r *recordingSetter) SetSampler2D(name string, v int32)  { r.values[name] = v }

func TestIntensityClamp(t *testing.T) {
	lights := NewLightParameters()

	lights.SetIntensity(0, 10)
	if got := lights.Points[0].Intensity; got != MaxIntensity {
		t.Errorf("intensity should clamp to %v, got %v", MaxIntensity, got)
	}

	lights.SetIntensity(0, -1)
	if got := lights.Points[0].Intensity; got != MinIntensity {
		t.Errorf("intensity should clamp to %v, got %v", MinIntensity, got)
	}

	lights.SetIntensity(1, 1.5)
	lights.AdjustIntensity(1, 0.25)
	if got := lights.Points[1].Intensity; got != 1.75 {
		t.Errorf("expected 1.75, got %v", got)
	}
}

func TestIntensitySaturates(t *testing.T) {
	lights := NewLightParameters()
	lights.SetIntensity(2, 2.98)

	for i := 0; i < 10; i++ {
		lights.AdjustIntensity(2, 0.05)
		if got := lights.Points[2].Intensity; got > MaxIntensity {
			t.Fatalf("intensity exceeded max: %v", got)
		}
	}
	if got := lights.Points[2].Intensity; got != MaxIntensity {
		t.Errorf("intensity should saturate at %v, got %v", MaxIntensity, got)
	}
}

func TestAmbientBoostClamp(t *testing.T) {
	lights := NewLightParameters()

	lights.SetAmbientBoost(1)
	if lights.AmbientBoost != MaxAmbientBoost {
		t.Errorf("ambient boost should clamp to %v, got %v", MaxAmbientBoost, lights.AmbientBoost)
	}

	lights.AdjustAmbientBoost(-5)
	if lights.AmbientBoost != MinAmbientBoost {
		t.Errorf("ambient boost should clamp to %v, got %v", MinAmbientBoost, lights.AmbientBoost)
	}
}

func TestToggles(t *testing.T) {
	lights := NewLightParameters()
	dir, flash, point := lights.Directional, lights.Flashlight, lights.Points[3].Enabled

	lights.ToggleDirectional()
	lights.ToggleFlashlight()
	lights.TogglePoint(3)
	if lights.Directional == dir || lights.Flashlight == flash || lights.Points[3].Enabled == point {
		t.Error("single toggle should flip every flag")
	}

	lights.ToggleDirectional()
	lights.ToggleFlashlight()
	lights.TogglePoint(3)
	if lights.Directional != dir || lights.Flashlight != flash || lights.Points[3].Enabled != point {
		t.Error("double toggle should restore every flag")
	}
}

func TestSelect(t *testing.T) {
	lights := NewLightParameters()

	lights.Select(2)
	if lights.Selected != 2 {
		t.Errorf("expected selected 2, got %d", lights.Selected)
	}
	if lights.SelectedLight() != &lights.Points[2] {
		t.Error("SelectedLight should point at the selected entry")
	}
}

func TestSelectOutOfRangeClamps(t *testing.T) {
	prev := Debug
	Debug = false
	defer func() { Debug = prev }()

	lights := NewLightParameters()
	lights.Select(9)
	if lights.Selected != NumPointLights-1 {
		t.Errorf("expected clamp to %d, got %d", NumPointLights-1, lights.Selected)
	}
	lights.Select(-1)
	if lights.Selected != 0 {
		t.Errorf("expected clamp to 0, got %d", lights.Selected)
	}
}

func TestSelectOutOfRangePanicsInDebug(t *testing.T) {
	prev := Debug
	Debug = true
	defer func() { Debug = prev }()

	defer func() {
		if recover() == nil {
			t.Error("Select should panic on out-of-range index in debug mode")
		}
	}()
	NewLightParameters().Select(NumPointLights)
}

func TestNudge(t *testing.T) {
	lights := NewLightParameters()
	start := lights.Points[1].Position

	lights.Nudge(1, mgl32.Vec3{0.5, 0, -0.25})

	want := start.Add(mgl32.Vec3{0.5, 0, -0.25})
	if lights.Points[1].Position != want {
		t.Errorf("got %v, want %v", lights.Points[1].Position, want)
	}
	if lights.Points[0].Position != DefaultPointLights[0].Position {
		t.Error("nudge should only move the given light")
	}
}

func TestUpload(t *testing.T) {
	lights := NewLightParameters()
	lights.Select(1)
	lights.SetAmbientBoost(0.2)
	cam := NewDefaultCamera()
	rec := newRecordingSetter()

	lights.Upload(rec, cam)

	if rec.values["pointLights[3].enabled"] != lights.Points[3].Enabled {
		t.Error("pointLights[3].enabled not uploaded")
	}
	if rec.values["pointLights[0].position"] != lights.Points[0].Position {
		t.Error("pointLights[0].position not uploaded")
	}
	if rec.values["selectedLight"] != int32(1) {
		t.Errorf("selectedLight = %v, want 1", rec.values["selectedLight"])
	}
	if rec.values["ambientBoost"] != float32(0.2) {
		t.Errorf("ambientBoost = %v, want 0.2", rec.values["ambientBoost"])
	}
	if rec.values["flashlight.position"] != cam.Position {
		t.Error("flashlight should follow the camera position")
	}
	if rec.values["flashlight.direction"] != cam.Front {
		t.Error("flashlight should follow the camera front")
	}
	if _, ok := rec.values["dirLight.enabled"]; !ok {
		t.Error("dirLight.enabled not uploaded")
	}
}
