package modules

import (
	"lolookup/api/cache"
	cacherepo "lolookup/api/repositories/cache"
	accountservice "lolookup/api/services/account"
	championservice "lolookup/api/services/champion"
	matchservice "lolookup/api/services/match"
	searchservice "lolookup/api/services/search"
	statsservice "lolookup/api/services/stats"
)

// Services shared by the JSON and page handlers.
type moduleServices struct {
	account  *accountservice.AccountService
	match    *matchservice.MatchService
	stats    *statsservice.StatsService
	champion *championservice.ChampionService
	search   *searchservice.SearchService
}

func initializeServices(deps *ModuleDependencies) *moduleServices {
	matchCache := cache.NewMatchCache(deps.Redis, deps.Metrics)
	store := cache.NewKeyValueStore(deps.Redis, cacherepo.NewCacheRepository(deps.DB))

	return &moduleServices{
		account: accountservice.NewAccountService(&accountservice.AccountServiceDeps{
			DB:       deps.DB,
			Provider: deps.Provider,
			Config:   deps.Config,
			Logger:   deps.Logger,
		}),
		match: matchservice.NewMatchService(&matchservice.MatchServiceDeps{
			DB:         deps.DB,
			MatchCache: matchCache,
			Provider:   deps.Provider,
			Metrics:    deps.Metrics,
			Config:     deps.Config,
			Logger:     deps.Logger,
		}),
		stats: statsservice.NewStatsService(&statsservice.StatsServiceDeps{
			DB: deps.DB,
		}),
		champion: championservice.NewChampionService(&championservice.ChampionServiceDeps{
			DB:       deps.DB,
			Assets:   deps.Assets,
			MemCache: deps.ChampionMemCache,
			Language: deps.Config.Language,
			Logger:   deps.Logger,
		}),
		search: searchservice.NewSearchService(&searchservice.SearchServiceDeps{
			Store:  store,
			Logger: deps.Logger,
		}),
	}
}
