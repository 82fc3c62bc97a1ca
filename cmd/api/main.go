// Returns platform API.
//
// @title           Retours Express API
// @version         1.0
// @description     Reverse-logistics returns management: return lifecycle, creation wizard, carrier events and operator dashboard.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/retours-express/returns-platform/internal/api"
	"github.com/retours-express/returns-platform/internal/core/ports"
	"github.com/retours-express/returns-platform/internal/core/service"
	"github.com/retours-express/returns-platform/internal/infrastructure/config"
	"github.com/retours-express/returns-platform/internal/infrastructure/db/memory"
	mongostore "github.com/retours-express/returns-platform/internal/infrastructure/db/mongo"
	redisstore "github.com/retours-express/returns-platform/internal/infrastructure/db/redis"
	"github.com/retours-express/returns-platform/internal/infrastructure/fixtures"
	"github.com/retours-express/returns-platform/internal/infrastructure/queue"
	"github.com/retours-express/returns-platform/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Store wiring ---
	// The prototype default is the seeded in-memory store; STORE_DRIVER=mongo
	// switches on the durable store plus the Redis-backed event dedup.
	var (
		returnRepo ports.ReturnRepository
		eventRepo  ports.EventRepository
		dedup      service.DedupChecker
		deps       api.Dependencies
	)

	switch cfg.Store.Driver {
	case "mongo":
		mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = mongoClient.Disconnect(shutdownCtx)
		}()

		rdb, err := redisstore.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}

		mongoReturns := mongostore.NewReturnRepository(db)
		if err := mongoReturns.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index creation failed")
		}

		returnRepo = mongoReturns
		eventRepo = mongostore.NewEventRepository(db)
		dedup = redisstore.NewDedupChecker(rdb)
		deps.Mongo = db
		deps.Redis = rdb

	default:
		returnRepo = memory.NewReturnRepository()
		eventRepo = memory.NewEventRepository()
		dedup = memory.NewDedupChecker()
	}

	userRepo := memory.NewUserRepository()
	catalog := memory.NewCatalogRepository(fixtures.Products(), fixtures.Orders())

	if cfg.Store.Seed {
		if err := fixtures.Seed(ctx, userRepo, returnRepo); err != nil {
			log.Fatal().Err(err).Msg("fixture seeding failed")
		}
		log.Info().Msg("demo fixtures loaded")
	}

	// --- Services ---
	returnService := service.NewReturnService(returnRepo, catalog, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	eventService := service.NewEventService(returnRepo, eventRepo, dedup, log)

	dispatcher := queue.NewDispatcher(cfg.EventWorkers, eventService, log)
	dispatcher.Start(ctx)

	deps.ReturnService = returnService
	deps.AuthService = authService
	deps.EventService = eventService
	deps.Catalog = catalog
	deps.Dispatcher = dispatcher
	deps.JWTSecret = cfg.JWTSecret

	e := api.NewRouter(deps)

	log.Info().
		Str("port", cfg.Port).
		Str("store", cfg.Store.Driver).
		Int("event_workers", cfg.EventWorkers).
		Msg("returns platform listening")

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
