package input

import (
	"DeskScene/internal/logger"
	"DeskScene/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	MinSpeedScale = 0.25
	MaxSpeedScale = 8.0

	// Per second, scaled by frame delta.
	AmbientBoostRate = 0.06
	IntensityRate    = 1.0

	// Per press of the symbol keys.
	IntensityStep = 0.05
)

// Result reports what a frame of input changed that the caller has to act on.
type Result struct {
	CloseRequested    bool
	StatusChanged     bool
	ProjectionChanged bool
}

// Status is the navigation state shown in the window title.
type Status struct {
	SelectedLight int // 0-based
	SpeedScale    float32
}

// Translator turns polled keys and queued pointer events into mutations of
// a ViewState. It owns the state that only input cares about.
type Translator struct {
	keys       *KeyTracker
	speedScale float32
	lastX      float64
	lastY      float64
	firstMouse bool
	selected   int
}

func NewTranslator() *Translator {
	return &Translator{
		keys:       NewKeyTracker(TrackedKeys()...),
		speedScale: 1.0,
		firstMouse: true,
	}
}

func (t *Translator) SpeedScale() float32 {
	return t.speedScale
}

func (t *Translator) Keys() *KeyTracker {
	return t.keys
}

// Status reports the selection of the last processed state and the speed
// multiplier.
func (t *Translator) Status() Status {
	return Status{SelectedLight: t.selected, SpeedScale: t.speedScale}
}

func (t *Translator) active(a Action) bool {
	b, ok := BindingFor(a)
	if !ok {
		return false
	}
	if b.Trigger == Edge {
		return t.keys.JustPressed(b.Key)
	}
	return t.keys.IsDown(b.Key)
}

// Process runs one frame of input against state. dt is in seconds.
func (t *Translator) Process(state *renderer.ViewState, dt float32, src KeySource, events []Event) Result {
	var res Result
	if src != nil {
		t.keys.Update(src)
	}

	if t.active(Quit) {
		res.CloseRequested = true
	}

	cam := state.Camera
	lights := state.Lights

	distance := cam.Speed * t.speedScale * dt
	if t.active(SpeedBoost) {
		distance *= 2
	}

	if t.active(MoveForward) {
		cam.MoveForward(distance)
	}
	if t.active(MoveBackward) {
		cam.MoveBackward(distance)
	}
	if t.active(MoveLeft) {
		cam.MoveLeft(distance)
	}
	if t.active(MoveRight) {
		cam.MoveRight(distance)
	}
	if t.active(MoveDown) {
		cam.MoveDown(distance)
	}
	if t.active(MoveUp) {
		cam.MoveUp(distance)
	}

	if t.active(SlowDown) {
		t.speedScale = mgl32.Clamp(t.speedScale*0.5, MinSpeedScale, MaxSpeedScale)
		res.StatusChanged = true
	}
	if t.active(SpeedUp) {
		t.speedScale = mgl32.Clamp(t.speedScale*2, MinSpeedScale, MaxSpeedScale)
		res.StatusChanged = true
	}

	for i, a := range []Action{SelectLight1, SelectLight2, SelectLight3, SelectLight4} {
		if t.active(a) {
			lights.Select(i)
			res.StatusChanged = true
		}
	}
	sel := lights.Selected
	t.selected = sel

	var nudge mgl32.Vec3
	if t.active(NudgeLightLeft) {
		nudge[0] -= distance
	}
	if t.active(NudgeLightRight) {
		nudge[0] += distance
	}
	if t.active(NudgeLightForward) {
		nudge[2] -= distance
	}
	if t.active(NudgeLightBack) {
		nudge[2] += distance
	}
	if t.active(NudgeLightUp) {
		nudge[1] += distance
	}
	if t.active(NudgeLightDown) {
		nudge[1] -= distance
	}
	if nudge != (mgl32.Vec3{}) {
		lights.Nudge(sel, nudge)
	}

	if t.active(ToggleDirectional) {
		lights.ToggleDirectional()
		logger.Log.Debug("Directional light toggled", zap.Bool("enabled", lights.Directional))
	}
	if t.active(ToggleFlashlight) {
		lights.ToggleFlashlight()
		logger.Log.Debug("Flashlight toggled", zap.Bool("enabled", lights.Flashlight))
	}
	if t.active(ToggleSelectedLight) {
		lights.TogglePoint(sel)
		logger.Log.Debug("Point light toggled", zap.Int("light", sel+1), zap.Bool("enabled", lights.Points[sel].Enabled))
	}

	if t.active(IntensityUp) {
		lights.AdjustIntensity(sel, IntensityRate*dt)
	}
	if t.active(IntensityDown) {
		lights.AdjustIntensity(sel, -IntensityRate*dt)
	}
	if t.active(IntensityStepUp) {
		lights.AdjustIntensity(sel, IntensityStep)
	}
	if t.active(IntensityStepDown) {
		lights.AdjustIntensity(sel, -IntensityStep)
	}

	if t.active(AmbientDown) {
		lights.AdjustAmbientBoost(-AmbientBoostRate * dt)
	}
	if t.active(AmbientUp) {
		lights.AdjustAmbientBoost(AmbientBoostRate * dt)
	}

	if t.active(ToggleProjection) {
		state.Projection = state.Projection.Toggled()
		res.ProjectionChanged = true
		logger.Log.Info("Projection changed", zap.String("mode", state.Projection.String()))
	}

	for _, ev := range events {
		switch ev.Kind {
		case CursorMoved:
			t.handleCursor(cam, ev.X, ev.Y)
		case Scrolled:
			cam.ApplyZoomDelta(float32(ev.Y))
		}
	}

	return res
}

func (t *Translator) handleCursor(cam *renderer.Camera, xpos, ypos float64) {
	if t.firstMouse {
		t.lastX = xpos
		t.lastY = ypos
		t.firstMouse = false
		return
	}

	xoffset := xpos - t.lastX
	yoffset := t.lastY - ypos // Reversed since y-coordinates go from bottom to top
	t.lastX = xpos
	t.lastY = ypos

	cam.ApplyLookDelta(float32(xoffset), float32(yoffset))
}
