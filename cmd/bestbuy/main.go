package main

import (
	"github.com/DavidKinter/bestbuy-2-0/config"
	"github.com/DavidKinter/bestbuy-2-0/internal/app"
	"github.com/DavidKinter/bestbuy-2-0/pkg/sigctx"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	bestbuy := app.New(cfg)
	bestbuy.Run(sigCtx)
}
