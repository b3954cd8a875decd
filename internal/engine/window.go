package engine

import (
	"DeskScene/internal/config"
	"DeskScene/internal/input"
	"DeskScene/internal/logger"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Window wraps the glfw window and its GL context. Callbacks only append to
// Events; the frame loop drains it.
type Window struct {
	*glfw.Window
	Events *input.EventQueue

	width   int32
	height  int32
	resized bool
}

// NewWindow initializes glfw, opens the window and makes its OpenGL 4.1 core
// context current. It must run on the main OS thread.
func NewWindow(cfg config.WindowConfig) (*Window, error) {
	var undo Unwind
	defer undo.Unwind()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize glfw: %w", err)
	}
	undo.Add(glfw.Terminate)

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create glfw window: %w", err)
	}
	undo.Add(win.Destroy)
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize OpenGL: %w", err)
	}

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{
		Window: win,
		Events: input.NewEventQueue(),
	}

	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	win.SetInputMode(glfw.StickyKeysMode, glfw.True)
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.Events.PushCursor(xpos, ypos)
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.Events.PushScroll(xoff, yoff)
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = int32(width), int32(height)
		w.resized = true
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	w.width, w.height = int32(fbWidth), int32(fbHeight)
	gl.Viewport(0, 0, w.width, w.height)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)

	SetDarkTitleBar(win)

	logger.Log.Info("Window created",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	undo.Discard()
	return w, nil
}

// Size returns the framebuffer size.
func (w *Window) Size() (int32, int32) {
	return w.width, w.height
}

// TakeResize reports whether the framebuffer changed size since the last
// call, and applies the new viewport.
func (w *Window) TakeResize() bool {
	if !w.resized {
		return false
	}
	w.resized = false
	if w.width > 0 && w.height > 0 {
		gl.Viewport(0, 0, w.width, w.height)
	}
	return true
}

func (w *Window) Destroy() {
	w.Window.Destroy()
	glfw.Terminate()
}
