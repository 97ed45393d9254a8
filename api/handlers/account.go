package handlers

import (
	"lolookup/api/filters"
	"lolookup/pkg/messages"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AccountHandler is the handler for the account endpoints.
type AccountHandler struct {
	AccountService AccountService
}

type AccountHandlerDependencies struct {
	AccountService AccountService
}

// NewAccountHandler creates a new instance of the account handler.
func NewAccountHandler(deps *AccountHandlerDependencies) *AccountHandler {
	return &AccountHandler{
		AccountService: deps.AccountService,
	}
}

// Helper to bind the account query params.
func (h *AccountHandler) bindQueryParams(c *gin.Context) (*filters.AccountQueryParams, error) {
	var qp filters.AccountQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		return nil, err
	}
	return &qp, nil
}

// GetAccount looks up a player by riot id and region.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	qp, err := h.bindQueryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := filters.NewAccountFilter(qp)
	if err != nil {
		respondError(c, err, messages.FailedToFetchAccount)
		return
	}

	account, err := h.AccountService.GetAccount(c, filter)
	if err != nil {
		respondError(c, err, messages.FailedToFetchAccount)
		return
	}

	c.JSON(http.StatusOK, account)
}

// GetSummoner returns the profile of the configured player.
func (h *AccountHandler) GetSummoner(c *gin.Context) {
	summoner, err := h.AccountService.GetSelfSummoner(c)
	if err != nil {
		respondError(c, err, messages.FailedToFetchSummoner)
		return
	}

	c.JSON(http.StatusOK, summoner)
}
