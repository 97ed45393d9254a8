package handlers

import (
	"lolookup/api/dto"
	"lolookup/api/filters"
	"lolookup/api/views"
	"lolookup/pkg/apperror"
	"lolookup/pkg/messages"
	"lolookup/pkg/scoring"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	AccountService AccountService
	MatchService   MatchService
	StatsService   StatsService
	SearchService  SearchService
	weights        scoring.Weights
	logger         zerolog.Logger
}

type PageHandlerDependencies struct {
	AccountService AccountService
	MatchService   MatchService
	StatsService   StatsService
	SearchService  SearchService
	Weights        scoring.Weights
	Logger         zerolog.Logger
}

// NewPageHandler creates a new instance of the page handler.
func NewPageHandler(deps *PageHandlerDependencies) *PageHandler {
	return &PageHandler{
		AccountService: deps.AccountService,
		MatchService:   deps.MatchService,
		StatsService:   deps.StatsService,
		SearchService:  deps.SearchService,
		weights:        deps.Weights,
		logger:         deps.Logger,
	}
}

// Recent searches are optional, a failure only hides them.
func (h *PageHandler) recentSearches(c *gin.Context) []dto.RecentSearch {
	recent, err := h.SearchService.GetRecentSearches(c)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Couldn't load recent searches")
		return nil
	}
	return recent
}

func (h *PageHandler) renderHome(c *gin.Context, status int, region string, errMessage string) {
	c.HTML(status, "home.html", views.BuildHome(h.recentSearches(c), region, errMessage))
}

func (h *PageHandler) renderResultsError(c *gin.Context, err error, fallback string) {
	appErr := apperror.From(err, fallback)
	if appErr.Kind == apperror.KindInternal || appErr.Kind == apperror.KindUpstream {
		h.logger.Error().Err(appErr).Str("path", c.Request.URL.Path).Msg("Results page failed")
	}
	c.HTML(appErr.StatusCode(), "results.html", views.ResultsPage{
		Title: "Error",
		Error: appErr.Message,
	})
}

// Home renders the search form.
func (h *PageHandler) Home(c *gin.Context) {
	h.renderHome(c, http.StatusOK, c.Query("region"), "")
}

// Search records the search and redirects to the results page.
func (h *PageHandler) Search(c *gin.Context) {
	var qp filters.SearchQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		h.renderHome(c, http.StatusBadRequest, "", messages.SearchParamsRequired)
		return
	}

	filter, err := filters.NewSearchFilter(&qp)
	if err != nil {
		appErr := apperror.From(err, messages.SearchParamsRequired)
		h.renderHome(c, appErr.StatusCode(), qp.Region, appErr.Message)
		return
	}

	if err := h.SearchService.RecordSearch(c, filter); err != nil {
		h.logger.Warn().Err(err).Msg("Couldn't record the search")
	}

	c.Redirect(http.StatusFound, views.PlayerPath(filter.Region, filter.Name, filter.Tagline))
}

// Results renders the match history tables of a player.
func (h *PageHandler) Results(c *gin.Context) {
	var pp filters.ResultsURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		h.renderResultsError(c, apperror.InvalidInput(err.Error()), messages.AccountParamsRequired)
		return
	}

	var qp filters.ResultsQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		h.renderResultsError(c, apperror.InvalidInput(err.Error()), messages.AccountParamsRequired)
		return
	}

	filter, err := filters.NewResultsFilter(&pp, &qp)
	if err != nil {
		h.renderResultsError(c, err, messages.AccountParamsRequired)
		return
	}

	account, err := h.AccountService.GetAccount(c, filter.Account)
	if err != nil {
		h.renderResultsError(c, err, messages.FailedToFetchAccount)
		return
	}

	matches, err := h.MatchService.GetMatches(c, &filters.MatchHistoryFilter{
		Puuid:  account.Account.Puuid,
		Region: filter.Account.Region,
	})
	if err != nil {
		h.renderResultsError(c, err, messages.FailedToFetchMatches)
		return
	}

	// Stats are computed from the stored matches, the page works without them.
	stats, err := h.StatsService.GetPlayerStats(c, &filters.PlayerStatsFilter{Puuid: account.Account.Puuid})
	if err != nil {
		h.logger.Warn().Err(err).Str("puuid", account.Account.Puuid).Msg("Couldn't load player stats")
		stats = nil
	}

	c.HTML(http.StatusOK, "results.html", views.BuildResults(views.ResultsInput{
		Account:  *account,
		Region:   filter.Account.Region,
		Matches:  matches,
		Stats:    stats,
		Sort:     views.ParseSort(filter.Sort),
		BasePath: c.Request.URL.Path,
		Weights:  h.weights,
	}))
}
