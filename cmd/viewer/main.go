package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"orbit-viewer/editor"
	"orbit-viewer/internal/config"
	"orbit-viewer/internal/logging"
	"orbit-viewer/opengl"
	"orbit-viewer/renderer"
	"orbit-viewer/scene"
	"orbit-viewer/window"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("viewer", pflag.ContinueOnError)
	configDir := flags.String("config", "", "directory containing viewer.yaml")
	flags.String("log-level", "", "trace, debug, info, warn or error")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	v := viper.New()
	if err := v.BindPFlag("logLevel", flags.Lookup("log-level")); err != nil {
		return err
	}

	cfg, err := config.Load(v, *configDir)
	if err != nil {
		logger := logging.New(os.Stderr, "info")
		logger.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	if cfg.File != "" {
		logger.Info().Str("file", cfg.File).Msg("configuration loaded")
	}

	if err := start(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("viewer failed")
		return err
	}
	return nil
}

func start(cfg config.Config, logger zerolog.Logger) error {
	winCfg := window.DefaultConfig()
	winCfg.Width = cfg.Window.Width
	winCfg.Height = cfg.Window.Height
	winCfg.Title = cfg.Window.Title
	winCfg.VSync = cfg.Window.VSync

	win, err := window.New(winCfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	mesh := scene.NewModelMesh()
	gpu, err := opengl.NewRenderer(mesh, cfg.ClearColor(), logging.Component(logger, "opengl"))
	if err != nil {
		return fmt.Errorf("renderer setup: %w", err)
	}

	camera := scene.NewCameraController(scene.CameraSettings{
		Sensitivity: cfg.Camera.Sensitivity,
		Speed:       cfg.Camera.Speed,
		OrbitRadius: cfg.Camera.OrbitRadius,
	})

	router := editor.NewInputRouter(camera, logging.Component(logger, "input"))
	win.OnMouseButton(router.MouseButton)
	win.OnCursorMove(router.CursorMoved)

	viewer := renderer.NewViewer(gpu, camera, win.Viewport(), renderer.Options{
		Projection: renderer.ProjectionSettings{
			FovDegrees: cfg.Projection.FovDegrees,
			Near:       cfg.Projection.Near,
			Far:        cfg.Projection.Far,
		},
		Title:       cfg.Window.Title,
		ShowFPS:     cfg.Window.ShowFPS,
		ModelBounds: &mesh.LocalAABB,
	}, logging.Component(logger, "viewer"))
	defer viewer.Close()
	win.OnResize(viewer.Resize)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Msg("controls: left drag orbits, right drag dollies, Esc exits")
	return viewer.Run(ctx, win)
}
