package dto

// RecentSearch is a player searched on the home page.
type RecentSearch struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Region  string `json:"region"`
}
