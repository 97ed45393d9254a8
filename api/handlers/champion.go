package handlers

import (
	"lolookup/api/dto"
	"lolookup/api/filters"
	"lolookup/pkg/apperror"
	"lolookup/pkg/messages"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChampionHandler is the handler for the champion catalog.
type ChampionHandler struct {
	ChampionService ChampionService
}

type ChampionHandlerDependencies struct {
	ChampionService ChampionService
}

// NewChampionHandler creates a new instance of the champion handler.
func NewChampionHandler(deps *ChampionHandlerDependencies) *ChampionHandler {
	return &ChampionHandler{
		ChampionService: deps.ChampionService,
	}
}

// Champion errors carry the cause in details.
func respondChampionError(c *gin.Context, err error, fallback string) {
	appErr := apperror.From(err, fallback)
	c.JSON(appErr.StatusCode(), dto.ChampionError{
		Success: false,
		Error:   appErr.Message,
		Details: appErr.Details(),
	})
}

// GetChampions lists the catalog, reloading it when empty or forced.
func (h *ChampionHandler) GetChampions(c *gin.Context) {
	var qp filters.ChampionListParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		respondChampionError(c, apperror.InvalidInput(err.Error()), messages.FailedToFetchChampions)
		return
	}

	champions, err := h.ChampionService.GetChampions(c, filters.NewChampionListFilter(&qp))
	if err != nil {
		respondChampionError(c, err, messages.FailedToFetchChampions)
		return
	}

	c.JSON(http.StatusOK, champions)
}

// GetChampion returns a single champion by its numeric id.
func (h *ChampionHandler) GetChampion(c *gin.Context) {
	var body filters.ChampionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondChampionError(c, apperror.InvalidInput(messages.ChampionIdRequired), messages.FailedToFetchChampion)
		return
	}

	filter, err := filters.NewGetChampionFilter(&body)
	if err != nil {
		respondChampionError(c, err, messages.FailedToFetchChampion)
		return
	}

	champion, err := h.ChampionService.GetChampion(c, filter)
	if err != nil {
		respondChampionError(c, err, messages.FailedToFetchChampion)
		return
	}

	c.JSON(http.StatusOK, dto.ChampionResponse{Success: true, Champion: champion})
}
