package renderer

import (
	"DeskScene/internal/logger"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	NumPointLights = 4

	MinIntensity    = 0.0
	MaxIntensity    = 3.0
	MinAmbientBoost = 0.0
	MaxAmbientBoost = 0.3
)

type PointLight struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	Enabled   bool
}

// LightParameters holds the runtime-editable lighting state. Every setter
// clamps, so the numeric fields are always in range after a mutation.
type LightParameters struct {
	Points       [NumPointLights]PointLight
	Selected     int
	Directional  bool
	Flashlight   bool
	AmbientBoost float32
}

// DefaultPointLights places one light over each corner of the table.
var DefaultPointLights = [NumPointLights]PointLight{
	{Position: mgl32.Vec3{-1.5, 2.0, 1.5}, Color: mgl32.Vec3{1.0, 0.95, 0.85}, Intensity: 1.0, Enabled: true},
	{Position: mgl32.Vec3{1.5, 2.0, 1.5}, Color: mgl32.Vec3{1.0, 1.0, 1.0}, Intensity: 1.0, Enabled: true},
	{Position: mgl32.Vec3{-2.0, 3.0, -2.0}, Color: mgl32.Vec3{0.8, 0.1, 0.1}, Intensity: 1.0, Enabled: true},
	{Position: mgl32.Vec3{1.5, 2.0, -1.5}, Color: mgl32.Vec3{0.6, 0.7, 1.0}, Intensity: 0.5, Enabled: false},
}

func NewLightParameters() *LightParameters {
	return &LightParameters{
		Points:       DefaultPointLights,
		Directional:  true,
		AmbientBoost: 0.05,
	}
}

// Select makes index the light that edits apply to. The index set is fixed,
// so an out-of-range value is a caller bug.
func (l *LightParameters) Select(index int) {
	if index < 0 || index >= NumPointLights {
		if Debug {
			panic(fmt.Sprintf("light index %d out of range [0,%d)", index, NumPointLights))
		}
		logger.Log.Error("Light selection out of range, clamping", zap.Int("index", index))
		index = clampIndex(index)
	}
	l.Selected = index
}

func (l *LightParameters) SelectedLight() *PointLight {
	return &l.Points[l.Selected]
}

func (l *LightParameters) SetIntensity(index int, value float32) {
	l.Points[clampIndex(index)].Intensity = mgl32.Clamp(value, MinIntensity, MaxIntensity)
}

func (l *LightParameters) AdjustIntensity(index int, delta float32) {
	i := clampIndex(index)
	l.SetIntensity(i, l.Points[i].Intensity+delta)
}

func (l *LightParameters) SetAmbientBoost(value float32) {
	l.AmbientBoost = mgl32.Clamp(value, MinAmbientBoost, MaxAmbientBoost)
}

func (l *LightParameters) AdjustAmbientBoost(delta float32) {
	l.SetAmbientBoost(l.AmbientBoost + delta)
}

func (l *LightParameters) Nudge(index int, delta mgl32.Vec3) {
	i := clampIndex(index)
	l.Points[i].Position = l.Points[i].Position.Add(delta)
}

func (l *LightParameters) TogglePoint(index int) {
	i := clampIndex(index)
	l.Points[i].Enabled = !l.Points[i].Enabled
}

func (l *LightParameters) ToggleDirectional() {
	l.Directional = !l.Directional
}

func (l *LightParameters) ToggleFlashlight() {
	l.Flashlight = !l.Flashlight
}

// Upload writes every lighting field to the shader. The flashlight is
// attached to the camera.
func (l *LightParameters) Upload(u UniformSetter, camera *Camera) {
	for i := range l.Points {
		p := &l.Points[i]
		prefix := fmt.Sprintf("pointLights[%d].", i)
		u.SetVec3(prefix+"position", p.Position)
		u.SetVec3(prefix+"color", p.Color)
		u.SetFloat(prefix+"intensity", p.Intensity)
		u.SetBool(prefix+"enabled", p.Enabled)
	}
	u.SetInt("selectedLight", int32(l.Selected))
	u.SetBool("dirLight.enabled", l.Directional)
	u.SetBool("flashlight.enabled", l.Flashlight)
	if camera != nil {
		u.SetVec3("flashlight.position", camera.Position)
		u.SetVec3("flashlight.direction", camera.Front)
	}
	u.SetFloat("ambientBoost", l.AmbientBoost)
}

func clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index >= NumPointLights {
		return NumPointLights - 1
	}
	return index
}
