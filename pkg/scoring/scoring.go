package scoring

import "math"

// Weights of the effectiveness score components.
type Weights struct {
	KDA     float64
	Damage  float64
	Healing float64
}

var DefaultWeights = Weights{KDA: 0.4, Damage: 0.4, Healing: 0.2}

// Stats is the per-participant combat line used by every score.
// Missing values are simply zero.
type Stats struct {
	Kills                       int
	Deaths                      int
	Assists                     int
	TotalDamageDealtToChampions int
	TotalDamageTaken            int
	TotalHeal                   int
	TotalTimeCCDealt            int
	TimeCCingOthers             int
}

// RoundTo rounds half up to the given number of decimals.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(v*p+0.5) / p
}

// EffectivenessScore combines kill participation, damage trade and healing.
func EffectivenessScore(s Stats, w Weights) float64 {
	kdaScore := float64(s.Kills*3 + s.Assists - s.Deaths*2)
	damageScore := float64(s.TotalDamageDealtToChampions) / math.Max(1, float64(s.TotalDamageTaken)) * 100
	healingScore := float64(s.TotalHeal) / 100

	return RoundTo(kdaScore*w.KDA+damageScore*w.Damage+healingScore*w.Healing, 1)
}

// KDARatio is (kills + assists) / deaths, with zero deaths counted as one.
func KDARatio(s Stats) float64 {
	return float64(s.Kills+s.Assists) / math.Max(1, float64(s.Deaths))
}

// WinRate returns the percentage of wins rounded to two decimals, 0 without games.
func WinRate(wins, total int) float64 {
	if total <= 0 {
		return 0
	}
	return RoundTo(float64(wins)/float64(total)*100, 2)
}
