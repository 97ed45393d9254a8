package filters

import (
	"lolookup/pkg/apperror"
	"lolookup/pkg/messages"
	"strings"
)

// URI params for the stats endpoint, the player id is the puuid.
type StatsURIParams struct {
	PlayerId string `uri:"playerId"`
}

type PlayerStatsFilter struct {
	Puuid string
}

func NewPlayerStatsFilter(pp *StatsURIParams) (*PlayerStatsFilter, error) {
	if pp == nil || strings.TrimSpace(pp.PlayerId) == "" {
		return nil, apperror.InvalidInput(messages.PlayerIdRequired)
	}

	return &PlayerStatsFilter{
		Puuid: strings.TrimSpace(pp.PlayerId),
	}, nil
}
