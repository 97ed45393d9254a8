package accountservice

import (
	"context"
	"lolookup/api/converters"
	"lolookup/api/dto"
	"lolookup/api/filters"
	playerrepo "lolookup/api/repositories/player"
	"lolookup/fetcher/data"
	"lolookup/fetcher/requests"
	"lolookup/pkg/apperror"
	"lolookup/pkg/config"
	"lolookup/pkg/messages"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// AccountService resolves a riot id into a stored profile, fetching it when stale.
type AccountService struct {
	PlayerRepository playerrepo.PlayerRepository
	provider         data.ProviderClient
	logger           zerolog.Logger
	freshness        time.Duration
	selfPuuid        string
	selfRegion       string
	now              func() time.Time
}

// AccountServiceDeps is the dependency list for the account service.
type AccountServiceDeps struct {
	DB       *gorm.DB
	Provider data.ProviderClient
	Config   *config.Config
	Logger   zerolog.Logger
}

// NewAccountService creates a account service.
func NewAccountService(deps *AccountServiceDeps) *AccountService {
	return &AccountService{
		PlayerRepository: playerrepo.NewPlayerRepository(deps.DB),
		provider:         deps.Provider,
		logger:           deps.Logger.With().Str("service", "account").Logger(),
		freshness:        deps.Config.Freshness.Profile,
		selfPuuid:        deps.Config.Riot.SelfPuuid,
		selfRegion:       deps.Config.Riot.SelfRegion,
		now:              time.Now,
	}
}

// GetAccount returns the profile of a riot id.
// A profile fetched inside the freshness window is served from the database.
func (as *AccountService) GetAccount(ctx context.Context, filter *filters.AccountFilter) (*dto.AccountResponse, error) {
	if filter == nil {
		return nil, apperror.InvalidInput(messages.AccountParamsRequired)
	}

	player, err := as.PlayerRepository.FindByIdentity(ctx, filter.GameName, filter.TagLine, filter.Region)
	if err != nil {
		return nil, apperror.Internal(messages.FailedToFetchAccount, err)
	}

	now := as.now()
	if player != nil && player.ProfileFresh(now, as.freshness) {
		response := converters.NewAccountResponse(player)
		return &response, nil
	}

	account, err := as.provider.GetAccount(ctx, filter.GameName, filter.TagLine, filter.Region)
	if err != nil {
		return nil, providerError(messages.FailedToFetchAccount, err)
	}

	summoner, err := as.provider.GetSummoner(ctx, account.Puuid, filter.Region)
	if err != nil {
		return nil, providerError(messages.FailedToFetchAccount, err)
	}

	stored, err := as.PlayerRepository.Upsert(ctx, converters.NewPlayerInfo(account, summoner, filter.Region, now))
	if err != nil {
		return nil, apperror.Internal(messages.FailedToFetchAccount, err)
	}

	as.logger.Debug().
		Str("puuid", stored.Puuid).
		Str("region", stored.Region).
		Msg("Profile refreshed")

	response := converters.NewAccountResponse(stored)
	return &response, nil
}

// GetSelfSummoner returns the summoner configured as the owner of the instance.
func (as *AccountService) GetSelfSummoner(ctx context.Context) (*dto.SummonerResponse, error) {
	if as.selfPuuid == "" {
		return nil, apperror.Internal(messages.SelfPuuidNotConfigured, nil)
	}

	player, err := as.PlayerRepository.FindByPuuid(ctx, as.selfPuuid)
	if err != nil {
		return nil, apperror.Internal(messages.FailedToFetchSummoner, err)
	}
	if player != nil && player.ProfileFresh(as.now(), as.freshness) {
		return &dto.SummonerResponse{Data: converters.NewSummoner(player)}, nil
	}

	summoner, err := as.provider.GetSummoner(ctx, as.selfPuuid, as.selfRegion)
	if err != nil {
		return nil, providerError(messages.FailedToFetchSummoner, err)
	}

	return &dto.SummonerResponse{Data: converters.SummonerFromProvider(summoner, as.selfRegion)}, nil
}

// A 404 from the provider means the riot id doesn't exist.
func providerError(message string, err error) error {
	if requests.IsNotFound(err) {
		return apperror.NotFound(messages.PlayerNotFound)
	}
	return apperror.Upstream(message, err)
}
