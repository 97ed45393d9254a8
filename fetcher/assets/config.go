package assets

import "lolookup/pkg/models/champion"

// Consts used across the package.
const (
	ddragon = "https://ddragon.leagueoflegends.com"

	// BatchSize is how many champions are processed concurrently.
	BatchSize = 10
)

// Definition for extracting the champion data.
type fullChampion struct {
	Data map[string]champion.Champion `json:"data"`
}
