package app

import (
	"context"
	"log"

	"github.com/cinerec/core/internal/config"
	http_auth "github.com/cinerec/core/internal/delivery/http/auth"
	http_health "github.com/cinerec/core/internal/delivery/http/health"
	http_init "github.com/cinerec/core/internal/delivery/http/init"
	http_auth_middleware "github.com/cinerec/core/internal/delivery/http/middleware/auth"
	http_ratelimit_middleware "github.com/cinerec/core/internal/delivery/http/middleware/ratelimit"
	http_movie "github.com/cinerec/core/internal/delivery/http/movie"
	http_recommendation "github.com/cinerec/core/internal/delivery/http/recommendation"
	ws_catalog "github.com/cinerec/core/internal/delivery/ws/catalog"
	infra_inmem_catalog "github.com/cinerec/core/internal/infra/inmem/catalog"
	infra_inmem_ratelimit "github.com/cinerec/core/internal/infra/inmem/ratelimit"
	infra_inmem_session "github.com/cinerec/core/internal/infra/inmem/session"
	infra_pg_init "github.com/cinerec/core/internal/infra/postgres/init"
	infra_postgres_movie "github.com/cinerec/core/internal/infra/postgres/movie"
	infra_redis_cache "github.com/cinerec/core/internal/infra/redis/cache"
	infra_redis_init "github.com/cinerec/core/internal/infra/redis/init"
	infra_redis_ratelimit "github.com/cinerec/core/internal/infra/redis/ratelimit"
	infra_seed "github.com/cinerec/core/internal/infra/seed"
	service_simple_auth "github.com/cinerec/core/internal/service/auth/simple"
	service_popularity "github.com/cinerec/core/internal/service/popularity"
	usecase_movie "github.com/cinerec/core/internal/usecase/movie"
	usecase_recommendation "github.com/cinerec/core/internal/usecase/recommendation"
)

func Go(cfg *config.Config) {
	var (
		movieRepo usecase_movie.Repository
		recRepo   usecase_recommendation.Repository
		sessions  service_simple_auth.SessionCache
		counter   http_ratelimit_middleware.Counter

		movieOpts []usecase_movie.Option
		recOpts   []usecase_recommendation.Option
	)

	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)

		repository := infra_postgres_movie.New(pgConn)
		ctx := context.Background()
		if err := repository.EnsureSchema(ctx); err != nil {
			log.Fatalf("failed to ensure movies schema: %v", err)
		}
		count, err := repository.Count(ctx)
		if err != nil {
			log.Fatalf("failed to count movies: %v", err)
		}
		if count == 0 {
			if err := repository.Seed(ctx, infra_seed.Movies()); err != nil {
				log.Fatalf("failed to seed movies: %v", err)
			}
			log.Printf("seeded movie catalog with %d movies", len(infra_seed.Movies()))
		}

		cache := infra_redis_cache.New(redisConn, "")
		movieRepo = repository
		recRepo = repository
		sessions = infra_redis_cache.New(redisConn, "session")
		counter = infra_redis_ratelimit.New(redisConn, "rate_limit")
		movieOpts = append(movieOpts, usecase_movie.WithCache(cache))
		recOpts = append(recOpts, usecase_recommendation.WithCache(cache))

	default:
		catalog := infra_inmem_catalog.New(infra_seed.Movies())
		movieRepo = catalog
		recRepo = catalog
		sessions = infra_inmem_session.New()
		counter = infra_inmem_ratelimit.New()
	}

	hub := ws_catalog.NewHub()
	go hub.Run()
	movieOpts = append(movieOpts, usecase_movie.WithEvents(hub))

	scorer := service_popularity.New()
	movieUC := usecase_movie.New(movieRepo, scorer, movieOpts...)
	recUC := usecase_recommendation.New(recRepo, scorer, recOpts...)

	authService := service_simple_auth.New(cfg.Auth.AdminSecret, sessions, cfg.Auth.TokenTTL)
	authMiddleware := http_auth_middleware.New(authService)
	rateLimiter := http_ratelimit_middleware.New(counter, cfg.RateLimit.PerMinute)

	controllerPool := http_init.NewControllerPool(rateLimiter.Limit())
	controllerPool.AddRoot(http_health.New())
	controllerPool.Add(http_movie.New(movieUC, authMiddleware))
	controllerPool.Add(http_recommendation.New(recUC))
	controllerPool.Add(http_auth.New(authService))
	controllerPool.Add(ws_catalog.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
