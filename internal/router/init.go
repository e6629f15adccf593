package router

import (
	"github.com/oksasatya/identity-api/internal/application"
	"github.com/oksasatya/identity-api/internal/container"
	pginfra "github.com/oksasatya/identity-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/identity-api/internal/interface/http"
	"github.com/oksasatya/identity-api/internal/router/modules"
)

// InitModules builds all feature modules from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	indexer := application.NewUserIndexer(container.GetES(), container.GetConfig().ESUsersIndex, container.GetLogger())

	authSvc := application.NewAuthService(
		repo,
		container.GetAuthGateway(),
		container.GetLogger(),
		container.GetRabbitPub(),
		indexer,
	)
	userSvc := application.NewUserService(
		repo,
		container.GetRedis(),
		container.GetLogger(),
		indexer,
	)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, container.GetLogger())))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, container.GetLogger()), container.GetTokenValidator()))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(container.GetPGPool(), container.GetRedis())))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
