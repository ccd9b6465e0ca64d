package router

import (
	"user-management-api/internal/application"
	"user-management-api/internal/container"
	"user-management-api/internal/infrastructure/cache"
	"user-management-api/internal/infrastructure/postgres"
	"user-management-api/internal/infrastructure/search"
	"user-management-api/internal/router/modules"
)

func buildService() *application.Service {
	cfg := container.GetConfig()

	repo := postgres.NewUserRepository(container.GetPGPool())

	var userCache *cache.RedisCache
	if rdb := container.GetRedis(); rdb != nil {
		userCache = cache.NewRedisCache(rdb, cfg.CacheTTL)
	}

	var userIndex *search.UserIndex
	if es := container.GetES(); es != nil && cfg.ESUsersIndex != "" {
		userIndex = search.NewUserIndex(es, cfg.ESUsersIndex)
	}

	return application.NewService(
		repo,
		container.GetJWT(),
		userCache,
		userIndex,
		container.GetRabbitPub(),
		container.GetLogger(),
	)
}

// InitModules wires all feature modules into the router registry. Called once
// during startup.
func InitModules(r *Registry) {
	svc := buildService()

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(svc, container.GetLogger()))
	r.Add(modules.NewUserModule(svc, container.GetLogger(), container.GetJWT()))
}
