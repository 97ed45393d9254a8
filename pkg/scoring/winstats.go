package scoring

import "strings"

// WinStats summarizes the searched player's results across matches.
type WinStats struct {
	Wins    int
	Losses  int
	WinRate float64
}

// CalculateWinStats counts the wins of the participant named gameName in each match.
// A match where the player isn't found counts as a loss.
func CalculateWinStats(matches [][]Participant, gameName string) WinStats {
	wins := 0
	for _, participants := range matches {
		for _, p := range participants {
			if strings.EqualFold(p.RiotIdGameName, gameName) {
				if p.Win {
					wins++
				}
				break
			}
		}
	}

	return WinStats{
		Wins:    wins,
		Losses:  len(matches) - wins,
		WinRate: WinRate(wins, len(matches)),
	}
}
