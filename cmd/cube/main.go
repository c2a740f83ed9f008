package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/leterax/go-cube/internal/config"
	"github.com/leterax/go-cube/internal/openglhelper"
	"github.com/leterax/go-cube/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(config.Filename)
	if err != nil {
		fatal(log, "failed to load config", err)
	}

	level, _ := cfg.Log.SlogLevel()
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	openglhelper.SetLogger(log)

	window, err := openglhelper.NewWindow(openglhelper.WindowOptions{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		fatal(log, "failed to create window", err)
	}
	defer window.Close()

	program, err := render.LoadShaderProgram(cfg.Shaders.Vertex, cfg.Shaders.Fragment, cfg.Shaders.Strict)
	if err != nil {
		window.Close()
		fatal(log, "failed to load shader program", err)
	}

	renderer := render.NewRenderer(window, program, cfg.Window.Title)
	defer renderer.Cleanup()

	renderer.Init()
	log.Info("starting render loop")
	renderer.Run()
	log.Info("window closed")
}
