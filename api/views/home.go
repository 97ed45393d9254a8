package views

import (
	"lolookup/api/dto"
	"lolookup/pkg/regions"
	"strings"
)

// RegionOption is a entry of the region dropdown.
type RegionOption struct {
	Value    string
	Label    string
	Selected bool
}

// RecentLink is a recent search shown under the form.
type RecentLink struct {
	Label string
	URL   string
}

// HomePage is the search page.
type HomePage struct {
	Title   string
	Regions []RegionOption
	Recent  []RecentLink
	Error   string
}

// BuildHome creates the search page with the default region selected.
func BuildHome(recent []dto.RecentSearch, selected string, errMessage string) HomePage {
	if selected == "" {
		selected = string(regions.DefaultSubRegion)
	}

	options := make([]RegionOption, 0, len(regions.SearchableRegions))
	for _, r := range regions.SearchableRegions {
		options = append(options, RegionOption{
			Value:    string(r),
			Label:    strings.ToUpper(string(r)),
			Selected: strings.EqualFold(string(r), selected),
		})
	}

	links := make([]RecentLink, 0, len(recent))
	for _, s := range recent {
		links = append(links, RecentLink{
			Label: s.Name + "#" + s.Tagline + " (" + strings.ToUpper(s.Region) + ")",
			URL:   PlayerPath(s.Region, s.Name, s.Tagline),
		})
	}

	return HomePage{
		Title:   "League of Legends Lookup",
		Regions: options,
		Recent:  links,
		Error:   errMessage,
	}
}
