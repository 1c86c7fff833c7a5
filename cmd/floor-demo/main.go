package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"floor-demo/internal/config"
	"floor-demo/internal/game"
	"floor-demo/internal/logging"
	"floor-demo/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.FileName)
	scenePath := flag.String("scene", "", "scene description file (overrides assets.scene)")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Pretty, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if f := config.UsedFile(); f != "" {
		log.Info().Str("file", f).Msg("Config loaded")
	}

	if *scenePath != "" {
		cfg.Assets.Scene = *scenePath
	}

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("Fatal")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	desc := scene.DefaultDescription()
	if cfg.Assets.Scene != "" {
		var err error
		if desc, err = scene.LoadDescription(cfg.Assets.Scene); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(cfg.Window)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	app, err := game.NewApp(window, cfg, desc, log)
	if err != nil {
		return err
	}
	defer app.Close()

	app.Run()
	return nil
}
