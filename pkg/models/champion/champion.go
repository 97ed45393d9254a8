package champion

import (
	"lolookup/pkg/models/image"
	"strconv"
)

// Struct for holding a champion summary from the static data.
// Id is the name key ("Aatrox"), Key the numeric id as a string ("266").
type Champion struct {
	Id    string      `json:"id"`
	Key   string      `json:"key"`
	Name  string      `json:"name"`
	Title string      `json:"title"`
	Image image.Image `json:"image"`
}

// NumericId parses the numeric champion id.
func (c *Champion) NumericId() (int, error) {
	return strconv.Atoi(c.Key)
}
