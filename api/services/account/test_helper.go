package accountservice

import (
	"lolookup/api/services/testutil"
	"time"

	"github.com/rs/zerolog"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// Helper to initialize the mocks.
func setupTestService() (*AccountService, *testutil.MockPlayerRepository, *testutil.MockProvider) {
	mockPlayerRepo := new(testutil.MockPlayerRepository)
	mockProvider := new(testutil.MockProvider)

	service := &AccountService{
		PlayerRepository: mockPlayerRepo,
		provider:         mockProvider,
		logger:           zerolog.Nop(),
		freshness:        24 * time.Hour,
		selfPuuid:        "self-puuid",
		selfRegion:       "na1",
		now:              func() time.Time { return fixedNow },
	}

	return service, mockPlayerRepo, mockProvider
}
