package handlers

import (
	"lolookup/api/filters"
	"lolookup/pkg/messages"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatsHandler is the handler for the aggregated player stats.
type StatsHandler struct {
	StatsService StatsService
}

type StatsHandlerDependencies struct {
	StatsService StatsService
}

// NewStatsHandler creates a new instance of the stats handler.
func NewStatsHandler(deps *StatsHandlerDependencies) *StatsHandler {
	return &StatsHandler{
		StatsService: deps.StatsService,
	}
}

// GetPlayerStats returns the stored stats of a puuid.
func (h *StatsHandler) GetPlayerStats(c *gin.Context) {
	var pp filters.StatsURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := filters.NewPlayerStatsFilter(&pp)
	if err != nil {
		respondError(c, err, messages.FailedToFetchStats)
		return
	}

	stats, err := h.StatsService.GetPlayerStats(c, filter)
	if err != nil {
		respondError(c, err, messages.FailedToFetchStats)
		return
	}

	c.JSON(http.StatusOK, stats)
}
