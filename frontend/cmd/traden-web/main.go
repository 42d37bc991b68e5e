package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/traden-dev/traden/frontend/internal/router"
	"github.com/traden-dev/traden/frontend/internal/setup"
	"github.com/traden-dev/traden/shared/config"
	"github.com/traden-dev/traden/shared/logger"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "frontend/config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to initialize dependencies", "error", err)
		return
	}

	r := router.New(deps)

	addr := fmt.Sprintf(":%d", cfg.Public.Web.Port)
	logger.Log.Info("web server started", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
	}
}
