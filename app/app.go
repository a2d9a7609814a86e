package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/soocke/pixel-eraser-go/config"
	"github.com/soocke/pixel-eraser-go/debug"
	"github.com/soocke/pixel-eraser-go/domain/erase"
	"github.com/soocke/pixel-eraser-go/ui/view"
)

// App runs one interactive erase: load, select, mask, inpaint, display, write.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &App{cfg: cfg, logger: logger}
}

// Run blocks until the window is closed and the result has been written.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Debug {
		stop := debug.StartMemLogger(time.Duration(a.cfg.MemLogSeconds)*time.Second, a.logger)
		defer stop()
	}

	img, err := erase.LoadSource(a.cfg.InputPath)
	if err != nil {
		return err
	}
	b := img.Bounds()
	a.logger.Info("image loaded", "path", a.cfg.InputPath, "width", b.Dx(), "height", b.Dy())
	debug.LogStage(a.logger, string(erase.StageLoad))

	c, err := BuildContainer(ctx, a.cfg, a.logger)
	if err != nil {
		return erase.Wrap(erase.StageSelect, err)
	}
	c.RootView.Build(view.Handlers{
		Click:   c.Selection.OnClick,
		Confirm: c.Selection.OnConfirm,
		Cancel:  c.Selection.OnCancel,
		Close:   c.Selection.OnClose,
	})
	c.Selection.Start(img)
	c.Status.Refresh()
	a.logger.Info("awaiting selection", "mode", c.Selector.Mode().String(), "method", c.Pipeline.Params().Method.String())

	c.RootView.Run()

	result, err := c.Selection.Outcome()
	if err != nil {
		return err
	}
	debug.LogStage(a.logger, string(erase.StageInpaint))

	if err := erase.Write(a.cfg.OutputPath, result, a.cfg.JPEGQuality); err != nil {
		return err
	}
	a.logger.Info("result written", "path", a.cfg.OutputPath)
	return nil
}
