package modules

import (
	"fmt"
	"lolookup/api/cache"
	"lolookup/api/handlers"
	"lolookup/api/middleware"
	championservice "lolookup/api/services/champion"
	"lolookup/api/templates"
	"lolookup/fetcher/data"
	"lolookup/pkg/config"
	"lolookup/pkg/database/models"
	"lolookup/pkg/metrics"
	"lolookup/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ModuleDependencies is everything the services are built from.
// Redis is optional, a nil client falls back to the database.
type ModuleDependencies struct {
	DB               *gorm.DB
	Redis            *redis.RedisClient
	Config           *config.Config
	Logger           zerolog.Logger
	Metrics          metrics.Metrics
	Provider         data.ProviderClient
	Assets           championservice.AssetClient
	ChampionMemCache *cache.MemCache[[]models.Champion]
}

// Module containing the necessary handlers.
type Module struct {
	Router          *gin.Engine
	AccountHandler  *handlers.AccountHandler
	MatchHandler    *handlers.MatchHandler
	StatsHandler    *handlers.StatsHandler
	ChampionHandler *handlers.ChampionHandler
	PageHandler     *handlers.PageHandler
	HealthHandler   *handlers.HealthHandler
}

// Handlers lists the handlers in registration order.
func (m *Module) Handlers() []any {
	return []any{
		m.AccountHandler,
		m.MatchHandler,
		m.StatsHandler,
		m.ChampionHandler,
		m.PageHandler,
		m.HealthHandler,
	}
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) (*Module, error) {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Noop{}
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(deps.Logger))

	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("couldn't parse the page templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	services := initializeServices(deps)

	return &Module{
		Router:          router,
		AccountHandler:  initializeAccountHandler(services),
		MatchHandler:    initializeMatchHandler(services),
		StatsHandler:    initializeStatsHandler(services),
		ChampionHandler: initializeChampionHandler(services),
		PageHandler:     initializePageHandler(deps, services),
		HealthHandler:   initializeHealthHandler(deps),
	}, nil
}
