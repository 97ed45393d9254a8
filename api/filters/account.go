package filters

import (
	"lolookup/pkg/apperror"
	"lolookup/pkg/messages"
	"strings"
)

// Query parameters for the account lookup.
type AccountQueryParams struct {
	RiotIdGameName string `form:"riotIdGameName"`
	Tagline        string `form:"tagline"`
	Region         string `form:"region"`
}

type AccountFilter struct {
	GameName string
	TagLine  string
	Region   string
}

// NewAccountFilter validates the lookup params, all of them are required.
func NewAccountFilter(qp *AccountQueryParams) (*AccountFilter, error) {
	if qp == nil {
		return nil, apperror.InvalidInput(messages.AccountParamsRequired)
	}

	filter := &AccountFilter{
		GameName: strings.TrimSpace(qp.RiotIdGameName),
		TagLine:  strings.TrimSpace(qp.Tagline),
		Region:   strings.ToLower(strings.TrimSpace(qp.Region)),
	}
	if filter.GameName == "" || filter.TagLine == "" || filter.Region == "" {
		return nil, apperror.InvalidInput(messages.AccountParamsRequired)
	}

	return filter, nil
}
