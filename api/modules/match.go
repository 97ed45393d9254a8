package modules

import (
	"lolookup/api/handlers"
)

func initializeMatchHandler(services *moduleServices) *handlers.MatchHandler {
	matchHandlerDeps := &handlers.MatchHandlerDependencies{
		MatchService: services.match,
	}

	return handlers.NewMatchHandler(matchHandlerDeps)
}
