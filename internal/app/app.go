package app

import (
	"fmt"
	"image"

	"github.com/hora-app/mascot/internal/render"
)

// Previewer displays a finished icon somewhere other than the output files.
type Previewer interface {
	Show(icon image.Image, caption string) error
}

// Result describes the files a run produced.
type Result struct {
	OpaquePath string
	AlphaPath  string
	Width      int
	Height     int
}

type App struct {
	Config  Config
	Logger  Logger
	Preview Previewer
}

func New(cfg Config) *App {
	return &App{Config: cfg, Logger: NoopLogger{}}
}

// Run renders the mascot once and writes both PNGs. Nothing is written when
// rendering fails. A failed preview is logged and does not fail the run.
func (app *App) Run() (Result, error) {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	cfg := app.Config

	compositor := render.NewCompositor()
	compositor.Logger = app.Logger
	layer, err := compositor.Render(cfg.Seed)
	if err != nil {
		app.Logger.Errorf("app", "render failed: %v", err)
		return Result{}, fmt.Errorf("render mascot: %w", err)
	}
	bounds := layer.Bounds()
	app.Logger.Infof("app", "rendered %dx%d, seed=%d", bounds.Dx(), bounds.Dy(), cfg.Seed)

	opaque := render.Flatten(layer, render.BackgroundDark)
	if err := render.Save(opaque, cfg.OpaquePath()); err != nil {
		app.Logger.Errorf("app", "save failed: %v", err)
		return Result{}, err
	}
	if err := render.Save(render.BakeBackground(layer, render.BackgroundDark), cfg.AlphaPath()); err != nil {
		app.Logger.Errorf("app", "save failed: %v", err)
		return Result{}, err
	}
	app.Logger.Infof("app", "saved %s and %s", cfg.OpaquePath(), cfg.AlphaPath())

	res := Result{
		OpaquePath: cfg.OpaquePath(),
		AlphaPath:  cfg.AlphaPath(),
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
	}

	if cfg.Preview {
		app.showPreview(opaque, fmt.Sprintf("%s %dx%d", cfg.Name, res.Width, res.Height))
	}
	return res, nil
}

func (app *App) showPreview(icon image.Image, caption string) {
	if app.Preview == nil {
		fbPreview := render.NewFBPreview(app.Config.FBDevice)
		fbPreview.Logger = app.Logger
		app.Preview = fbPreview
	}
	if err := app.Preview.Show(icon, caption); err != nil {
		app.Logger.Errorf("preview", "preview failed: %v", err)
	}
}
