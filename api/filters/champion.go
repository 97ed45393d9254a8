package filters

import (
	"lolookup/pkg/apperror"
	"lolookup/pkg/messages"
)

// Query params for the champion catalog.
type ChampionListParams struct {
	ForceUpdate bool `form:"forceUpdate"`
}

type ChampionListFilter struct {
	ForceUpdate bool
}

func NewChampionListFilter(qp *ChampionListParams) *ChampionListFilter {
	if qp == nil {
		return &ChampionListFilter{}
	}
	return &ChampionListFilter{
		ForceUpdate: qp.ForceUpdate,
	}
}

// Body of the single champion lookup.
type ChampionBody struct {
	ChampionId int `json:"championId"`
}

type GetChampionFilter struct {
	ChampionId int
}

// NewGetChampionFilter requires a non zero champion id.
func NewGetChampionFilter(body *ChampionBody) (*GetChampionFilter, error) {
	if body == nil || body.ChampionId == 0 {
		return nil, apperror.InvalidInput(messages.ChampionIdRequired)
	}

	return &GetChampionFilter{
		ChampionId: body.ChampionId,
	}, nil
}
