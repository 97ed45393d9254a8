package scoring

// TeamTotals sums the combat lines of one team.
type TeamTotals struct {
	TeamId  int
	Players []Participant
	Kills   int
	Deaths  int
	Assists int
	Gold    int
	Damage  int
}

// TeamSummary splits the participants by team, keeping their order.
func TeamSummary(participants []Participant, teamId int) TeamTotals {
	totals := TeamTotals{TeamId: teamId}
	for _, p := range participants {
		if p.TeamId != teamId {
			continue
		}
		totals.Players = append(totals.Players, p)
		totals.Kills += p.Kills
		totals.Deaths += p.Deaths
		totals.Assists += p.Assists
		totals.Gold += p.GoldEarned
		totals.Damage += p.TotalDamageDealtToChampions
	}
	return totals
}
