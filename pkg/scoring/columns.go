package scoring

// Column names a stat column of the match table.
type Column string

const (
	ColumnName          Column = "name"
	ColumnChampion      Column = "champion"
	ColumnKills         Column = "kills"
	ColumnDeaths        Column = "deaths"
	ColumnAssists       Column = "assists"
	ColumnKDA           Column = "kda"
	ColumnDamageDealt   Column = "damageDealt"
	ColumnDamageTaken   Column = "damageTaken"
	ColumnHealing       Column = "healing"
	ColumnCCTime        Column = "ccTime"
	ColumnCCingOthers   Column = "ccingOthers"
	ColumnGold          Column = "gold"
	ColumnCS            Column = "cs"
	ColumnVision        Column = "vision"
	ColumnEffectiveness Column = "effectiveness"
)

// HighlightColumns are the columns where the best value is highlighted.
var HighlightColumns = []Column{
	ColumnKDA,
	ColumnDamageDealt,
	ColumnHealing,
	ColumnDamageTaken,
	ColumnEffectiveness,
	ColumnCCTime,
	ColumnCCingOthers,
}

// Participant is a table row as seen by the scoring functions.
type Participant struct {
	Puuid          string
	RiotIdGameName string
	RiotIdTagline  string
	ChampionName   string
	TeamId         int
	Win            bool
	GoldEarned     int
	MinionsKilled  int
	VisionScore    int
	Stats
}

// Value returns the numeric value of a column, false for text or unknown columns.
func (c Column) Value(p Participant, w Weights) (float64, bool) {
	switch c {
	case ColumnKills:
		return float64(p.Kills), true
	case ColumnDeaths:
		return float64(p.Deaths), true
	case ColumnAssists:
		return float64(p.Assists), true
	case ColumnKDA:
		return KDARatio(p.Stats), true
	case ColumnDamageDealt:
		return float64(p.TotalDamageDealtToChampions), true
	case ColumnDamageTaken:
		return float64(p.TotalDamageTaken), true
	case ColumnHealing:
		return float64(p.TotalHeal), true
	case ColumnCCTime:
		return float64(p.TotalTimeCCDealt), true
	case ColumnCCingOthers:
		return float64(p.TimeCCingOthers), true
	case ColumnGold:
		return float64(p.GoldEarned), true
	case ColumnCS:
		return float64(p.MinionsKilled), true
	case ColumnVision:
		return float64(p.VisionScore), true
	case ColumnEffectiveness:
		return EffectivenessScore(p.Stats, w), true
	}
	return 0, false
}

// IsHighlighted reports whether best-in-column applies to the column.
func (c Column) IsHighlighted() bool {
	for _, h := range HighlightColumns {
		if h == c {
			return true
		}
	}
	return false
}

// Valid reports whether the column can be sorted on.
func (c Column) Valid() bool {
	if c == ColumnName || c == ColumnChampion {
		return true
	}
	_, ok := c.Value(Participant{}, DefaultWeights)
	return ok
}

// BestInColumn returns the maximum value of a highlight column.
// Unknown columns and empty lists return false.
func BestInColumn(participants []Participant, c Column, w Weights) (float64, bool) {
	if len(participants) == 0 || !c.IsHighlighted() {
		return 0, false
	}

	best, _ := c.Value(participants[0], w)
	for _, p := range participants[1:] {
		if v, _ := c.Value(p, w); v > best {
			best = v
		}
	}
	return best, true
}

// IsBest compares by equality, so every tied participant is highlighted.
func IsBest(p Participant, c Column, w Weights, best float64) bool {
	v, ok := c.Value(p, w)
	return ok && v == best
}
