package modules

import (
	"context"
	"lolookup/api/handlers"
	"lolookup/pkg/scoring"
)

func initializePageHandler(deps *ModuleDependencies, services *moduleServices) *handlers.PageHandler {
	pageHandlerDeps := &handlers.PageHandlerDependencies{
		AccountService: services.account,
		MatchService:   services.match,
		StatsService:   services.stats,
		SearchService:  services.search,
		Weights: scoring.Weights{
			KDA:     deps.Config.Scoring.KDAWeight,
			Damage:  deps.Config.Scoring.DamageWeight,
			Healing: deps.Config.Scoring.HealingWeight,
		},
		Logger: deps.Logger,
	}

	return handlers.NewPageHandler(pageHandlerDeps)
}

func initializeHealthHandler(deps *ModuleDependencies) *handlers.HealthHandler {
	checks := map[string]handlers.Pinger{
		"database": handlers.PingFunc(func(ctx context.Context) error {
			sqlDb, err := deps.DB.DB()
			if err != nil {
				return err
			}
			return sqlDb.PingContext(ctx)
		}),
	}
	if deps.Redis != nil {
		checks["redis"] = deps.Redis
	}

	return handlers.NewHealthHandler(checks)
}
