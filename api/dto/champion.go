package dto

import (
	"lolookup/pkg/database/models"
)

// ChampionList is the champion catalog response.
type ChampionList struct {
	Success   bool              `json:"success"`
	Champions []models.Champion `json:"champions"`
	Message   string            `json:"message"`
	Version   string            `json:"version,omitempty"`
}

// ChampionResponse is the single champion response.
type ChampionResponse struct {
	Success  bool             `json:"success"`
	Champion *models.Champion `json:"champion"`
}

// ChampionError is the error body of the champion endpoints.
type ChampionError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
