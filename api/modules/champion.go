package modules

import (
	"lolookup/api/handlers"
)

func initializeChampionHandler(services *moduleServices) *handlers.ChampionHandler {
	championHandlerDeps := &handlers.ChampionHandlerDependencies{
		ChampionService: services.champion,
	}

	return handlers.NewChampionHandler(championHandlerDeps)
}
