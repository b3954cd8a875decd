package input

import "github.com/go-gl/glfw/v3.3/glfw"

type Action int

const (
	MoveForward Action = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveDown
	MoveUp
	SpeedBoost
	SlowDown
	SpeedUp
	SelectLight1
	SelectLight2
	SelectLight3
	SelectLight4
	NudgeLightLeft
	NudgeLightRight
	NudgeLightForward
	NudgeLightBack
	NudgeLightUp
	NudgeLightDown
	ToggleDirectional
	ToggleFlashlight
	ToggleSelectedLight
	IntensityUp
	IntensityDown
	IntensityStepUp
	IntensityStepDown
	AmbientDown
	AmbientUp
	ToggleProjection
	Quit
)

// Trigger selects which discipline a binding is evaluated with.
type Trigger int

const (
	// Level fires every frame the key is down.
	Level Trigger = iota
	// Edge fires once per physical press.
	Edge
)

func (t Trigger) String() string {
	if t == Edge {
		return "press"
	}
	return "hold"
}

type Binding struct {
	Action      Action
	Key         glfw.Key
	KeyName     string
	Trigger     Trigger
	Description string
}

// Bindings is the complete keyboard map. The translator evaluates actions
// through it and the bindings command prints it.
var Bindings = []Binding{
	{MoveForward, glfw.KeyW, "W", Level, "move forward"},
	{MoveBackward, glfw.KeyS, "S", Level, "move backward"},
	{MoveLeft, glfw.KeyA, "A", Level, "move left"},
	{MoveRight, glfw.KeyD, "D", Level, "move right"},
	{MoveDown, glfw.KeyQ, "Q", Level, "move down"},
	{MoveUp, glfw.KeyE, "E", Level, "move up"},
	{SpeedBoost, glfw.KeyLeftShift, "Left Shift", Level, "double movement speed"},
	{SlowDown, glfw.KeyZ, "Z", Edge, "halve speed multiplier"},
	{SpeedUp, glfw.KeyX, "X", Edge, "double speed multiplier"},
	{SelectLight1, glfw.Key1, "1", Edge, "select point light 1"},
	{SelectLight2, glfw.Key2, "2", Edge, "select point light 2"},
	{SelectLight3, glfw.Key3, "3", Edge, "select point light 3"},
	{SelectLight4, glfw.Key4, "4", Edge, "select point light 4"},
	{NudgeLightLeft, glfw.KeyLeft, "Left", Level, "move selected light -X"},
	{NudgeLightRight, glfw.KeyRight, "Right", Level, "move selected light +X"},
	{NudgeLightForward, glfw.KeyUp, "Up", Level, "move selected light -Z"},
	{NudgeLightBack, glfw.KeyDown, "Down", Level, "move selected light +Z"},
	{NudgeLightUp, glfw.KeyPageUp, "Page Up", Level, "move selected light +Y"},
	{NudgeLightDown, glfw.KeyPageDown, "Page Down", Level, "move selected light -Y"},
	{ToggleDirectional, glfw.KeyL, "L", Edge, "toggle directional light"},
	{ToggleFlashlight, glfw.KeyF, "F", Edge, "toggle flashlight"},
	{ToggleSelectedLight, glfw.KeyT, "T", Edge, "toggle selected light"},
	{IntensityUp, glfw.KeyKPAdd, "Numpad +", Level, "raise selected light intensity"},
	{IntensityDown, glfw.KeyKPSubtract, "Numpad -", Level, "lower selected light intensity"},
	{IntensityStepUp, glfw.KeyEqual, "=", Edge, "raise selected light intensity by a step"},
	{IntensityStepDown, glfw.KeyMinus, "-", Edge, "lower selected light intensity by a step"},
	{AmbientDown, glfw.KeySemicolon, ";", Level, "lower ambient boost"},
	{AmbientUp, glfw.KeyApostrophe, "'", Level, "raise ambient boost"},
	{ToggleProjection, glfw.KeyP, "P", Edge, "toggle perspective/orthographic"},
	{Quit, glfw.KeyEscape, "Esc", Level, "close the window"},
}

var bindingsByAction = func() map[Action]Binding {
	m := make(map[Action]Binding, len(Bindings))
	for _, b := range Bindings {
		m[b.Action] = b
	}
	return m
}()

// BindingFor returns the binding of an action.
func BindingFor(a Action) (Binding, bool) {
	b, ok := bindingsByAction[a]
	return b, ok
}

// TrackedKeys lists every bound key once, in table order.
func TrackedKeys() []glfw.Key {
	keys := make([]glfw.Key, 0, len(Bindings))
	for _, b := range Bindings {
		keys = append(keys, b.Key)
	}
	return keys
}
