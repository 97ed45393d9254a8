package handlers

import (
	"lolookup/api/dto"
	"lolookup/api/filters"
	"lolookup/pkg/messages"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MatchHandler is the handler for the match history endpoint.
type MatchHandler struct {
	MatchService MatchService
}

type MatchHandlerDependencies struct {
	MatchService MatchService
}

// NewMatchHandler creates a new instance of the match handler.
func NewMatchHandler(deps *MatchHandlerDependencies) *MatchHandler {
	return &MatchHandler{
		MatchService: deps.MatchService,
	}
}

// Helper to bind the match history query params.
func (h *MatchHandler) bindQueryParams(c *gin.Context) (*filters.MatchQueryParams, error) {
	var qp filters.MatchQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		return nil, err
	}
	return &qp, nil
}

// GetMatches returns the formatted recent matches of a player.
func (h *MatchHandler) GetMatches(c *gin.Context) {
	qp, err := h.bindQueryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := filters.NewMatchHistoryFilter(qp)
	if err != nil {
		respondError(c, err, messages.FailedToFetchMatches)
		return
	}

	matches, err := h.MatchService.GetMatches(c, filter)
	if err != nil {
		respondError(c, err, messages.FailedToFetchMatches)
		return
	}

	c.JSON(http.StatusOK, dto.MatchList{Matches: matches})
}
