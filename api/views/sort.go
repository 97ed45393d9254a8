package views

import (
	"lolookup/pkg/scoring"
	"net/url"
	"sort"
	"strings"
)

// SortState is the sort applied to one match table.
type SortState struct {
	Column    scoring.Column
	Direction scoring.Direction
}

// SortStates maps a match id to the sort of its table.
type SortStates map[string]SortState

// ParseSort reads "MATCHID:column:dir" entries, ignoring malformed ones.
func ParseSort(values []string) SortStates {
	states := make(SortStates, len(values))
	for _, v := range values {
		parts := strings.Split(v, ":")
		if len(parts) != 3 || parts[0] == "" {
			continue
		}

		column := scoring.Column(parts[1])
		if !column.Valid() {
			continue
		}

		states[parts[0]] = SortState{
			Column:    column,
			Direction: scoring.ParseDirection(parts[2]),
		}
	}
	return states
}

// Next returns the sort applied when the header of a column is clicked.
// Clicking the active column flips it, any other column starts at its default direction.
func (s SortStates) Next(matchId string, column scoring.Column) SortState {
	if current, ok := s[matchId]; ok && current.Column == column {
		return SortState{Column: column, Direction: current.Direction.Opposite()}
	}
	return SortState{Column: column, Direction: scoring.DefaultDirection(column)}
}

// With returns a copy where the match uses the given sort.
func (s SortStates) With(matchId string, state SortState) SortStates {
	copied := make(SortStates, len(s)+1)
	for k, v := range s {
		copied[k] = v
	}
	copied[matchId] = state
	return copied
}

// Query encodes the states in a stable order.
func (s SortStates) Query() string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	values := url.Values{}
	for _, id := range ids {
		state := s[id]
		values.Add("sort", id+":"+string(state.Column)+":"+string(state.Direction))
	}
	return values.Encode()
}
