// Package game runs the windowed day/night viewer: SDL window, sky
// renderer and the per-frame simulator drive.
package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-daycycle/internal/app"
	"github.com/Faultbox/midgard-daycycle/internal/engine/input"
	"github.com/Faultbox/midgard-daycycle/internal/engine/renderer"
	"github.com/Faultbox/midgard-daycycle/internal/engine/window"
	"github.com/Faultbox/midgard-daycycle/internal/logger"
)

// Config holds viewer window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Game is the windowed viewer instance.
type Game struct {
	config   Config
	running  bool
	driver   *app.Driver
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
}

// New opens the window and renderer around driver.
func New(cfg Config, driver *app.Driver) (*Game, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)

	g := &Game{
		config: cfg,
		driver: driver,
	}

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New(nil)

	logger.Info("viewer initialized")
	return g, nil
}

// Run starts the frame loop. It returns when the window closes, Escape is
// pressed or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for g.running {
		if ctx.Err() != nil {
			break
		}

		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				g.renderer.Resize(event.Width, event.Height)
			case input.EventTogglePause:
				g.driver.TogglePause()
			}
		}

		// 2. Advance the cycle
		g.driver.Step(dt)

		// 3. Render
		g.render()

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (g *Game) Close() {
	logger.Info("closing viewer")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) render() {
	env := g.driver.Environment()

	g.window.SetTitle(g.driver.Title(g.config.Title))

	g.renderer.Begin(env)
	g.renderer.DrawSky(env)
	g.renderer.End()
}
