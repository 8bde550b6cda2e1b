package main

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/soocke/mosaic-pix-go/app"
	"github.com/soocke/mosaic-pix-go/config"
)

func main() {
	cfgPath := filepath.Join(xdg.ConfigHome, "mosaic-pix", "config.json")

	cfg, err := config.Load(cfgPath)
	logger := NewLogger(LogLevel(cfg.Debug))
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", cfgPath, "error", err)
	}

	application := app.NewApp("Mosaic Pix", cfg, cfgPath, logger)
	application.Start()
}
