// meshview opens an OBJ mesh in an orbit-camera preview window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshload/internal/assets"
	"github.com/Faultbox/meshload/internal/config"
	"github.com/Faultbox/meshload/internal/engine/camera"
	"github.com/Faultbox/meshload/internal/engine/render"
	"github.com/Faultbox/meshload/internal/engine/window"
	"github.com/Faultbox/meshload/internal/logger"
	"github.com/Faultbox/meshload/pkg/math"
)

func main() {
	config.ParseFlags()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshview [flags] <mesh.obj>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, flag.Arg(0)); err != nil {
		logger.Error("meshview failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, name string) error {
	manager := assets.NewManager(cfg.Loader)
	defer manager.Close()

	m, err := manager.LoadMesh(name)
	if err != nil {
		return err
	}

	win, err := window.New(window.Config{
		Title:      "meshview - " + m.Name,
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	renderer, err := render.NewMeshRenderer()
	if err != nil {
		return err
	}
	defer renderer.Close()

	gpuMesh, err := render.Upload(m.Buffers, render.PrimitiveMode(m.Meta.Faces))
	if err != nil {
		return fmt.Errorf("uploading %s: %w", m.Name, err)
	}
	defer gpuMesh.Delete()

	cam := camera.NewOrbitCamera()
	cam.FitToBounds(m.Bounds)

	gl.Enable(gl.DEPTH_TEST)

	wireframe := cfg.Viewer.Wireframe
	dragging := false
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false

			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					dragging = e.State == sdl.PRESSED
				}

			case *sdl.MouseMotionEvent:
				if dragging {
					cam.HandleDrag(float32(e.XRel), float32(e.YRel))
				}

			case *sdl.MouseWheelEvent:
				cam.HandleZoom(float32(e.Y))

			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					running = false
				case sdl.K_w:
					wireframe = !wireframe
					logger.Debug("wireframe toggled", zap.Bool("wireframe", wireframe))
				case sdl.K_f:
					cam.FitToBounds(m.Bounds)
				}
			}
		}

		width, height := win.Size()
		if height == 0 {
			height = 1
		}
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.ClearColor(0.1, 0.1, 0.15, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		viewProj := cam.ProjectionMatrix(float32(width) / float32(height)).Mul(cam.ViewMatrix())
		renderer.Render(gpuMesh, viewProj, math.Identity(), wireframe)

		win.SwapBuffers()
	}

	logger.Info("viewer closed")
	return nil
}
