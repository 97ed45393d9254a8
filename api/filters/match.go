package filters

import (
	"lolookup/pkg/apperror"
	"lolookup/pkg/messages"
	"strings"
)

// Query parameters for the match history.
type MatchQueryParams struct {
	Puuid  string `form:"puuid"`
	Region string `form:"region"`
}

type MatchHistoryFilter struct {
	Puuid  string
	Region string
}

func NewMatchHistoryFilter(qp *MatchQueryParams) (*MatchHistoryFilter, error) {
	if qp == nil {
		return nil, apperror.InvalidInput(messages.MatchParamsRequired)
	}

	filter := &MatchHistoryFilter{
		Puuid:  strings.TrimSpace(qp.Puuid),
		Region: strings.ToLower(strings.TrimSpace(qp.Region)),
	}
	if filter.Puuid == "" || filter.Region == "" {
		return nil, apperror.InvalidInput(messages.MatchParamsRequired)
	}

	return filter, nil
}
