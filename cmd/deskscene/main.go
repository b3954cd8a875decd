package main

import (
	"DeskScene/internal/config"
	"DeskScene/internal/engine"
	"DeskScene/internal/input"
	"DeskScene/internal/logger"
	"DeskScene/internal/renderer"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	debug      bool
	watch      bool
)

func init() {
	// GLFW and OpenGL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	cmd := &cobra.Command{
		Use:   "deskscene",
		Short: "Interactive 3D desk scene",
		Long: `deskscene - Interactive 3D desk scene

Fly around a lit desk with the keyboard and mouse and adjust the four point
lights, the directional light and the flashlight live.

Run "deskscene bindings" for the full key map.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a JSON or YAML config file")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging and strict checks")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload lights and camera speed when the config file changes")

	bindingsCmd := &cobra.Command{
		Use:   "bindings",
		Short: "List the key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBindings(cmd.OutOrStdout())
		},
	}
	cmd.AddCommand(bindingsCmd)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "deskscene:", err)
		os.Exit(1)
	}
}

func run() error {
	if watch && configPath == "" {
		return errors.New("--watch needs --config")
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if debug {
		cfg.Debug = true
	}

	if err := logger.Init(cfg.Debug); err != nil {
		return fmt.Errorf("could not initialize logger: %w", err)
	}
	defer logger.Sync()
	renderer.Debug = cfg.Debug

	logger.Log.Debug("Configuration loaded",
		zap.String("path", configPath),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("textures", cfg.TexturesDir))

	e, err := engine.New(cfg)
	if err != nil {
		logger.Log.Error("Startup failed", zap.Error(err))
		return err
	}
	defer func() {
		if err := e.Cleanup(); err != nil {
			logger.Log.Warn("Cleanup failed", zap.Error(err))
		}
	}()

	if watch {
		if err := e.Watch(configPath); err != nil {
			return err
		}
	}

	e.Run()
	return nil
}

func printBindings(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tTRIGGER\tACTION")
	for _, b := range input.Bindings {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.KeyName, b.Trigger, b.Description)
	}
	fmt.Fprintln(w, "Mouse\tmove\tlook around")
	fmt.Fprintln(w, "Scroll\twheel\tzoom")
	return w.Flush()
}
