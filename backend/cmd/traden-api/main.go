package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/traden-dev/traden/backend/internal/router"
	"github.com/traden-dev/traden/backend/internal/setup"
	"github.com/traden-dev/traden/shared/config"
	"github.com/traden-dev/traden/shared/logger"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to initialize dependencies", "error", err)
		return
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	addr := fmt.Sprintf(":%d", cfg.Public.Api.Port)
	logger.Log.Info("API server started", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
	}
}
