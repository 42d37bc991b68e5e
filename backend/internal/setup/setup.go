package setup

import (
	"github.com/traden-dev/traden/backend/internal/handler"
	"github.com/traden-dev/traden/backend/internal/service"
	"github.com/traden-dev/traden/backend/internal/storage/sqlite"
	"github.com/traden-dev/traden/shared/config"
)

// Dependencies holds all initialized dependencies of the API binary.
type Dependencies struct {
	Storage *sqlite.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes storage, services and handlers.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := sqlite.New(cfg.Public.Api.DbPath)
	if err != nil {
		return nil, err
	}

	thread := service.NewThread(storage)
	reply := service.NewReply(storage)

	h := handler.New(thread, reply)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Config:  cfg,
	}, nil
}
