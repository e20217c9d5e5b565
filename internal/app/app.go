package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/DavidKinter/bestbuy-2-0/config"
	"github.com/DavidKinter/bestbuy-2-0/internal/adapter/catalog"
	"github.com/DavidKinter/bestbuy-2-0/internal/adapter/cli"
	"github.com/DavidKinter/bestbuy-2-0/internal/core/service"
)

type App struct {
	cfg  config.Config
	menu *cli.Menu
}

func New(cfg config.Config) App {
	app := App{cfg: cfg}

	app.initLogger()
	app.initMenu()

	return app
}

func (app App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initMenu() {
	const op = "App.initMenu"

	store, err := catalog.Build(app.cfg)
	if err != nil {
		app.fallDown(op, err)
	}

	s := service.New(store)
	app.menu = cli.NewMenu(s, s, os.Stdin, os.Stdout)
}

// Run blocks on the interactive menu until the user quits or ctx is
// canceled.
func (app App) Run(ctx context.Context) {
	slog.Info("application is running")

	if err := app.menu.Run(ctx); err != nil {
		slog.Error("menu stopped", "err", err)
	}

	slog.Info("application is closed")
}

func (app App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
