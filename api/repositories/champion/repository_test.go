package repositories

import (
	"context"
	"lolookup/internal/testutil"
	"lolookup/pkg/database/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChampionRepository(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewChampionRepository(db)
	ctx := context.Background()

	count, err := repository.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	champions := []*models.Champion{
		{ID: 266, Key: "Aatrox", Name: "Aatrox", Title: "the Darkin Blade", Version: "15.4.1"},
		{ID: 103, Key: "Ahri", Name: "Ahri", Title: "the Nine-Tailed Fox", Version: "15.4.1"},
		{ID: 1, Key: "Annie", Name: "Annie", Title: "the Dark Child", Version: "15.4.1"},
	}
	for _, c := range champions {
		require.NoError(t, repository.Upsert(ctx, c))
	}

	count, err = repository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	all, err := repository.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Aatrox", "Ahri", "Annie"}, []string{all[0].Name, all[1].Name, all[2].Name})

	// Overwrite on the same id.
	require.NoError(t, repository.Upsert(ctx, &models.Champion{ID: 103, Key: "Ahri", Name: "Ahri", Title: "the Fox", Version: "15.5.1", ThumbnailUrl: "/champions/103.png"}))

	tests := []struct {
		name          string
		id            int
		expectedTitle string
	}{
		{name: "updated", id: 103, expectedTitle: "the Fox"},
		{name: "untouched", id: 266, expectedTitle: "the Darkin Blade"},
		{name: "missing", id: 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			champion, err := repository.FindById(ctx, tt.id)
			require.NoError(t, err)
			if tt.expectedTitle == "" {
				assert.Nil(t, champion)
				return
			}
			require.NotNil(t, champion)
			assert.Equal(t, tt.expectedTitle, champion.Title)
		})
	}

	count, err = repository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
