package app

import (
	"context"
	"log/slog"

	"github.com/soocke/pixel-eraser-go/config"
	"github.com/soocke/pixel-eraser-go/domain/erase"
	"github.com/soocke/pixel-eraser-go/domain/inpaint"
	"github.com/soocke/pixel-eraser-go/domain/inpaint/opencv"
	"github.com/soocke/pixel-eraser-go/domain/selection"
	"github.com/soocke/pixel-eraser-go/ui/model"
	"github.com/soocke/pixel-eraser-go/ui/presenter"
	"github.com/soocke/pixel-eraser-go/ui/theme"
	"github.com/soocke/pixel-eraser-go/ui/view"
)

// AppContainer assembles the selector, pipeline, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Selector *selection.Selector
	Viewport *model.Viewport
	Pipeline *erase.Pipeline
	RootView *view.RootView

	// Presenters
	Selection *presenter.SelectionPresenter
	Status    *presenter.StatusPresenter
}

// BuildContainer constructs all components. No widgets are created until
// RootView.Build is called.
func BuildContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*AppContainer, error) {
	mode, err := selection.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	method, err := inpaint.ParseMethod(cfg.Method)
	if err != nil {
		return nil, err
	}
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Selector = selection.NewSelector(mode, logger)
	c.Viewport = model.NewViewport(cfg.MaxPreviewW, cfg.MaxPreviewH)
	params := inpaint.DefaultParams()
	params.Radius = cfg.Radius
	params.Method = method
	c.Pipeline = erase.NewPipeline(opencv.New(logger), params, logger)
	c.Pipeline.UseMaskBuilder(opencv.BuildMask)
	c.RootView = view.NewRootView(logger)
	c.Selection = presenter.NewSelectionPresenter(ctx, c.Selector, c.Viewport, c.Pipeline, c.RootView, theme.Overlay(), logger)
	c.Status = presenter.NewStatusPresenter(c.Selector, c.RootView)
	c.Selector.AddListener(c.Status.OnState)
	return c, nil
}
