package scoring

import (
	"sort"
	"strings"
)

// Direction of a table sort.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection defaults to ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, string(Desc)) {
		return Desc
	}
	return Asc
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// DefaultDirection is the first direction applied when a column is clicked.
// Text columns go A to Z, stat columns start with the highest value.
func DefaultDirection(c Column) Direction {
	if c == ColumnName || c == ColumnChampion {
		return Asc
	}
	return Desc
}

// SortParticipants returns a sorted copy, stable for equal values.
// Unknown columns keep the original order.
func SortParticipants(participants []Participant, c Column, dir Direction, w Weights) []Participant {
	sorted := make([]Participant, len(participants))
	copy(sorted, participants)

	if !c.Valid() {
		return sorted
	}

	compare := func(a, b Participant) int {
		switch c {
		case ColumnName:
			return strings.Compare(strings.ToLower(a.RiotIdGameName), strings.ToLower(b.RiotIdGameName))
		case ColumnChampion:
			return strings.Compare(strings.ToLower(a.ChampionName), strings.ToLower(b.ChampionName))
		}
		va, _ := c.Value(a, w)
		vb, _ := c.Value(b, w)
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		}
		return 0
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compare(sorted[i], sorted[j])
		if dir == Desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}
