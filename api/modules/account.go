package modules

import (
	"lolookup/api/handlers"
)

func initializeAccountHandler(services *moduleServices) *handlers.AccountHandler {
	accountHandlerDeps := &handlers.AccountHandlerDependencies{
		AccountService: services.account,
	}

	return handlers.NewAccountHandler(accountHandlerDeps)
}

func initializeStatsHandler(services *moduleServices) *handlers.StatsHandler {
	statsHandlerDeps := &handlers.StatsHandlerDependencies{
		StatsService: services.stats,
	}

	return handlers.NewStatsHandler(statsHandlerDeps)
}
