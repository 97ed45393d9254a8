package routes

import (
	"lolookup/api/handlers"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
	pages  *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		Engine: engine,
		api:    engine.Group("/api/lol"),
		pages:  engine.Group("/lol"),
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.AccountHandler:
			r.registerAccountHandler(handler)
		case *handlers.MatchHandler:
			r.registerMatchHandler(handler)
		case *handlers.StatsHandler:
			r.registerStatsHandler(handler)
		case *handlers.ChampionHandler:
			r.registerChampionHandler(handler)
		case *handlers.PageHandler:
			r.registerPageHandler(handler)
		case *handlers.HealthHandler:
			r.Engine.GET("/health", handler.Check)
		}
	}
}

// Register the account handler.
func (r *Router) registerAccountHandler(handler *handlers.AccountHandler) {
	r.api.GET("/account", handler.GetAccount)
	r.api.GET("/summoner", handler.GetSummoner)
}

// Register the match handler.
func (r *Router) registerMatchHandler(handler *handlers.MatchHandler) {
	r.api.GET("/matches", handler.GetMatches)
}

// Register the stats handler.
func (r *Router) registerStatsHandler(handler *handlers.StatsHandler) {
	r.api.GET("/stats/:playerId", handler.GetPlayerStats)
}

// Register the champion handler.
func (r *Router) registerChampionHandler(handler *handlers.ChampionHandler) {
	champions := r.api.Group("/champions")
	{
		champions.GET("", handler.GetChampions)
		champions.POST("", handler.GetChampion)
	}
}

// Register the HTML pages, the root redirects to the search form.
func (r *Router) registerPageHandler(handler *handlers.PageHandler) {
	r.Engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/lol")
	})
	r.pages.GET("", handler.Home)
	r.pages.GET("/search", handler.Search)
	r.pages.GET("/:region/:riotIdGameName/:tagline", handler.Results)
}

// RegisterMetrics exposes the Prometheus handler.
func (r *Router) RegisterMetrics(handler http.Handler) {
	r.Engine.GET("/metrics", gin.WrapH(handler))
}

// ServeAssets serves the locally stored champion images.
func (r *Router) ServeAssets(prefix string, dir string) {
	r.Engine.Static(prefix, dir)
}

// Handler returns the engine as a http.Handler.
func (r *Router) Handler() http.Handler {
	return r.Engine
}
