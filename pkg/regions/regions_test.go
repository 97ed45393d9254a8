package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMainRegion(t *testing.T) {
	tests := []struct {
		region   string
		expected MainRegion
	}{
		{region: "KR", expected: Asia},
		{region: "kr", expected: Asia},
		{region: "jp1", expected: Asia},
		{region: "NA1", expected: Americas},
		{region: "br1", expected: Americas},
		{region: "EUW1", expected: Europe},
		{region: "ru", expected: Europe},
		{region: "oc1", expected: Sea},
		{region: "vn2", expected: Sea},
		{region: " euw1 ", expected: Europe},
		{region: "unknown", expected: Americas},
		{region: "", expected: Americas},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetMainRegion(tt.region))
		})
	}
}

func TestGetSubRegion(t *testing.T) {
	assert.Equal(t, SubRegion("kr"), GetSubRegion("KR"))
	assert.Equal(t, SubRegion("euw1"), GetSubRegion("EUW1"))
	assert.Equal(t, SubRegion("na1"), GetSubRegion("atlantis"))
	assert.Equal(t, SubRegion("na1"), GetSubRegion(""))
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("LA2"))
	assert.False(t, IsKnown("pbe1"))
}

func TestRegionListConsistency(t *testing.T) {
	all := AllSubRegions()
	assert.Len(t, all, 15)

	for _, sub := range SearchableRegions {
		assert.True(t, IsKnown(string(sub)), "searchable region %s must be routable", sub)
	}
}
