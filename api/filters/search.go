package filters

import (
	"lolookup/pkg/apperror"
	"lolookup/pkg/messages"
	"strings"
)

// Query params of the search form.
type SearchQueryParams struct {
	Region  string `form:"region"`
	Name    string `form:"name"`
	Tagline string `form:"tagline"`
}

type SearchFilter struct {
	Name    string
	Tagline string
	Region  string
}

func NewSearchFilter(qp *SearchQueryParams) (*SearchFilter, error) {
	if qp == nil {
		return nil, apperror.InvalidInput(messages.SearchParamsRequired)
	}

	filter := &SearchFilter{
		Name:    strings.TrimSpace(qp.Name),
		Tagline: strings.TrimSpace(qp.Tagline),
		Region:  strings.ToLower(strings.TrimSpace(qp.Region)),
	}
	if filter.Name == "" || filter.Tagline == "" || filter.Region == "" {
		return nil, apperror.InvalidInput(messages.SearchParamsRequired)
	}

	return filter, nil
}

// URI params of the results page.
type ResultsURIParams struct {
	Region         string `uri:"region"`
	RiotIdGameName string `uri:"riotIdGameName"`
	Tagline        string `uri:"tagline"`
}

// Query params of the results page, one sort entry per match table.
type ResultsQueryParams struct {
	Sort []string `form:"sort"`
}

type ResultsFilter struct {
	Account *AccountFilter
	Sort    []string
}

func NewResultsFilter(pp *ResultsURIParams, qp *ResultsQueryParams) (*ResultsFilter, error) {
	if pp == nil {
		return nil, apperror.InvalidInput(messages.AccountParamsRequired)
	}

	account, err := NewAccountFilter(&AccountQueryParams{
		RiotIdGameName: pp.RiotIdGameName,
		Tagline:        pp.Tagline,
		Region:         pp.Region,
	})
	if err != nil {
		return nil, err
	}

	filter := &ResultsFilter{Account: account}
	if qp != nil {
		filter.Sort = qp.Sort
	}

	return filter, nil
}
