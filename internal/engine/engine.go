package engine

import (
	"DeskScene/internal/config"
	"DeskScene/internal/logger"
	"DeskScene/internal/renderer"
	"DeskScene/internal/scene"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Engine owns the window, the shader program, the scene and the view state
// for the lifetime of the program. All of it lives on the main OS thread.
type Engine struct {
	cfg    *config.Config
	window *Window
	shader *renderer.Shader
	scene  *scene.GLScene
	views  *ViewManager

	watcher *config.Watcher
}

// New opens the window and loads everything the desk scene needs. Errors are
// fatal for the caller.
func New(cfg *config.Config) (*Engine, error) {
	logger.Log.Info("DeskScene initializing...")

	var undo Unwind
	defer undo.Unwind()

	window, err := NewWindow(cfg.Window)
	if err != nil {
		return nil, err
	}
	undo.Add(window.Destroy)

	shader := renderer.InitShader()
	if err := shader.Compile(); err != nil {
		return nil, fmt.Errorf("could not build shader program: %w", err)
	}

	width, height := window.Size()
	e := &Engine{
		cfg:    cfg,
		window: window,
		shader: shader,
		scene:  scene.Prepare(scene.DeskScene(), cfg.TexturesDir, scene.DeskTextures),
		views:  NewViewManager(cfg.ViewState(), width, height),
	}
	e.updateTitle()
	undo.Discard()
	return e, nil
}

// Watch applies later edits of the config file at path to the running scene.
func (e *Engine) Watch(path string) error {
	w, err := config.Watch(path)
	if err != nil {
		return err
	}
	e.watcher = w
	logger.Log.Info("Watching config", zap.String("path", path))
	return nil
}

// Run draws frames until the window is asked to close.
func (e *Engine) Run() {
	for !e.window.ShouldClose() {
		e.applyConfigChanges()
		if e.window.TakeResize() {
			e.views.SetViewport(e.window.Size())
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		e.shader.Use()

		res := e.views.PrepareSceneView(glfw.GetTime(), e.window, e.window.Events.Drain(), e.shader)
		if res.StatusChanged {
			e.updateTitle()
		}
		if res.ProjectionChanged && renderer.Debug {
			logger.Log.Debug("Projection matrix", zap.Any("matrix", e.views.ProjectionMatrix()))
		}
		if res.CloseRequested {
			e.window.SetShouldClose(true)
		}

		e.scene.Render(e.shader)

		e.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (e *Engine) applyConfigChanges() {
	if e.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-e.watcher.Changes():
		if ok {
			cfg.ApplyLive(e.views.State)
		}
	default:
	}
}

func (e *Engine) updateTitle() {
	e.window.SetTitle(FormatTitle(e.cfg.Window.Title, e.views.Translator.Status()))
}

// Cleanup stops the config watcher, releases GL resources and closes the
// window.
func (e *Engine) Cleanup() error {
	var err error
	if e.watcher != nil {
		err = multierr.Append(err, e.watcher.Close())
	}
	e.scene.Destroy()
	e.shader.Delete()
	e.window.Destroy()
	logger.Log.Info("DeskScene shut down")
	return err
}
