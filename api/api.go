package main

import (
	"context"
	"errors"
	"lolookup/api/cache"
	grpcserver "lolookup/api/grpc"
	"lolookup/api/modules"
	"lolookup/api/routes"
	"lolookup/fetcher/assets"
	"lolookup/fetcher/data"
	"lolookup/fetcher/requests"
	"lolookup/pkg/config"
	"lolookup/pkg/database"
	"lolookup/pkg/database/models"
	"lolookup/pkg/logger"
	"lolookup/pkg/metrics"
	"lolookup/pkg/redis"
	"lolookup/pkg/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info")
		bootLog.Fatal().Err(err).Msg("Invalid configuration")
	}

	log := logger.New(cfg.LogLevel)
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Riot.ApiKey == "" {
		log.Warn().Msg("API_KEY is not set, provider calls will fail")
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't connect to the database")
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Couldn't migrate the database")
	}

	redisClient := connectRedis(cfg, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	metricsService := metrics.NewService()

	riotClient := requests.NewRiotClient(requests.ClientOptions{
		ApiKey:  cfg.Riot.ApiKey,
		Limiter: requests.NewRateLimiter(cfg.Riot),
		Metrics: metricsService,
	})

	championCache := cache.NewMemCache[[]models.Champion](0)
	defer championCache.Close()

	module, err := modules.NewModule(&modules.ModuleDependencies{
		DB:       db,
		Redis:    redisClient,
		Config:   cfg,
		Logger:   log,
		Metrics:  metricsService,
		Provider: data.NewFetcher(riotClient),
		Assets: assets.NewAssetFetcher(&assets.AssetFetcherDeps{
			Store:  storage.NewImageStore(cfg),
			Logger: log,
		}),
		ChampionMemCache: championCache,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't create the api module")
	}

	router := routes.NewRouter(module.Router)
	router.SetupRoutes(module.Handlers()...)
	router.RegisterMetrics(metrics.NewMetricsHandler())
	if cfg.Bucket.Name == "" {
		router.ServeAssets(storage.LocalURLPrefix, cfg.AssetsDir)
	}

	var healthServer *grpcserver.HealthServer
	if cfg.GRPCHealthAddr != "" {
		healthServer, err = grpcserver.StartHealthServer(cfg.GRPCHealthAddr, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Couldn't start the gRPC health server")
		}
	}

	server := newHTTPServer(cfg.HTTPAddr, router.Handler())

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("Running http server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Http server failed")
		}
	}()

	handleShutdown(server, healthServer, log)
}

// The pages and the api share one server, CORS applies to both.
func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Redis is optional, the database backs the caches when it is missing or unreachable.
func connectRedis(cfg *config.Config, log zerolog.Logger) *redis.RedisClient {
	if !cfg.Redis.Enabled() {
		log.Info().Msg("REDIS_HOST is not set, using the database for the caches")
		return nil
	}

	client := redis.NewClient(cfg.Redis)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis is unreachable, using the database for the caches")
		client.Close()
		return nil
	}
	return client
}

// Wait for a signal and stop the servers.
func handleShutdown(server *http.Server, healthServer *grpcserver.HealthServer, log zerolog.Logger) {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChannel
	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	if healthServer != nil {
		healthServer.SetServing(false)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Http server shutdown failed")
	}

	if healthServer != nil {
		healthServer.Stop()
	}
}
