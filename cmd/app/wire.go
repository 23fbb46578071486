//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/sunsafe/internal/bootstrap"
	"github.com/yanqian/sunsafe/internal/domain/lookup"
	"github.com/yanqian/sunsafe/internal/domain/session"
	"github.com/yanqian/sunsafe/internal/infra/config"
	httpiface "github.com/yanqian/sunsafe/internal/interface/http"
	"github.com/yanqian/sunsafe/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideDataset,
		provideSessionConfig,
		provideSessionStore,
		lookup.NewService,
		session.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
