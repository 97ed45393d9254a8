package regions

import (
	"sort"
	"strings"
)

// Simple package containing the region list and the lookups on top of it.
// Create the types for clarity.
type (
	MainRegion string
	SubRegion  string
)

const (
	Americas MainRegion = "americas"
	Europe   MainRegion = "europe"
	Asia     MainRegion = "asia"
	Sea      MainRegion = "sea"

	DefaultMainRegion = Americas
	DefaultSubRegion  = SubRegion("na1")
)

// List of regions.
var RegionList = map[MainRegion][]SubRegion{
	Americas: {"br1", "la1", "la2", "na1"},
	Europe:   {"eun1", "euw1", "tr1", "me1", "ru"},
	Asia:     {"kr", "jp1"},
	Sea:      {"oc1", "sg2", "tw2", "vn2"},
}

// Reverse lookup built from the region list.
var subToMain = func() map[SubRegion]MainRegion {
	m := make(map[SubRegion]MainRegion)
	for main, subs := range RegionList {
		for _, sub := range subs {
			m[sub] = main
		}
	}
	return m
}()

func normalize(region string) SubRegion {
	return SubRegion(strings.ToLower(strings.TrimSpace(region)))
}

// GetMainRegion returns the routing cluster for a platform code.
// Unknown platforms route through americas.
func GetMainRegion(region string) MainRegion {
	if main, ok := subToMain[normalize(region)]; ok {
		return main
	}
	return DefaultMainRegion
}

// GetSubRegion returns the platform host for a region, na1 when unknown.
func GetSubRegion(region string) SubRegion {
	sub := normalize(region)
	if _, ok := subToMain[sub]; ok {
		return sub
	}
	return DefaultSubRegion
}

// IsKnown reports whether the region is a known platform code.
func IsKnown(region string) bool {
	_, ok := subToMain[normalize(region)]
	return ok
}

// SearchableRegions is the list shown on the search form.
var SearchableRegions = []SubRegion{"na1", "euw1", "eun1", "kr", "jp1", "br1", "la1", "la2", "oc1", "tr1", "ru"}

// AllSubRegions returns every known platform sorted alphabetically.
func AllSubRegions() []SubRegion {
	subs := make([]SubRegion, 0, len(subToMain))
	for sub := range subToMain {
		subs = append(subs, sub)
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i] < subs[j] })
	return subs
}
