package scoring

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func participantsFrom(kills, deaths, damage []int) []Participant {
	ps := make([]Participant, len(kills))
	for i := range kills {
		ps[i] = Participant{Stats: Stats{
			Kills:                       kills[i],
			Deaths:                      deaths[i],
			Assists:                     kills[i] / 2,
			TotalDamageDealtToChampions: damage[i],
			TotalDamageTaken:            damage[len(damage)-1-i],
			TotalHeal:                   damage[i] / 3,
			TotalTimeCCDealt:            deaths[i] * 7,
			TimeCCingOthers:             kills[i] * 2,
		}}
	}
	return ps
}

func TestBestInColumnProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("best is greater than or equal to every value", prop.ForAll(
		func(kills, deaths, damage []int) bool {
			ps := participantsFrom(kills, deaths, damage)
			for _, c := range HighlightColumns {
				best, ok := BestInColumn(ps, c, DefaultWeights)
				if !ok {
					return false
				}
				found := false
				for _, p := range ps {
					v, _ := c.Value(p, DefaultWeights)
					if v > best {
						return false
					}
					if IsBest(p, c, DefaultWeights, best) {
						found = true
					}
				}
				if !found {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(10, gen.IntRange(0, 30)),
		gen.SliceOfN(10, gen.IntRange(0, 20)),
		gen.SliceOfN(10, gen.IntRange(0, 80000)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestBestInColumn(t *testing.T) {
	ps := []Participant{
		{RiotIdGameName: "a", Stats: Stats{Kills: 10, Deaths: 2, TotalDamageDealtToChampions: 30000}},
		{RiotIdGameName: "b", Stats: Stats{Kills: 5, Deaths: 1, TotalDamageDealtToChampions: 30000}},
		{RiotIdGameName: "c", Stats: Stats{Kills: 1, Deaths: 5, TotalDamageDealtToChampions: 1000}},
	}

	tests := []struct {
		name     string
		column   Column
		expected float64
		ok       bool
	}{
		{name: "kda", column: ColumnKDA, expected: 5, ok: true},
		{name: "damage", column: ColumnDamageDealt, expected: 30000, ok: true},
		{name: "unknown", column: Column("pentakills"), ok: false},
		{name: "textcolumn", column: ColumnName, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, ok := BestInColumn(ps, tt.column, DefaultWeights)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, best)
		})
	}

	_, ok := BestInColumn(nil, ColumnKDA, DefaultWeights)
	assert.False(t, ok)
}

func TestIsBestTies(t *testing.T) {
	ps := []Participant{
		{Stats: Stats{TotalDamageDealtToChampions: 30000}},
		{Stats: Stats{TotalDamageDealtToChampions: 30000}},
		{Stats: Stats{TotalDamageDealtToChampions: 100}},
	}

	best, ok := BestInColumn(ps, ColumnDamageDealt, DefaultWeights)
	assert.True(t, ok)
	assert.True(t, IsBest(ps[0], ColumnDamageDealt, DefaultWeights, best))
	assert.True(t, IsBest(ps[1], ColumnDamageDealt, DefaultWeights, best))
	assert.False(t, IsBest(ps[2], ColumnDamageDealt, DefaultWeights, best))
	assert.False(t, IsBest(ps[0], Column("unknown"), DefaultWeights, 0))
}

func TestColumnValid(t *testing.T) {
	assert.True(t, ColumnName.Valid())
	assert.True(t, ColumnEffectiveness.Valid())
	assert.True(t, ColumnGold.Valid())
	assert.False(t, Column("").Valid())
	assert.False(t, ColumnGold.IsHighlighted())
}
