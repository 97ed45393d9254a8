package views

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// PlayerPath builds the results page path of a player.
func PlayerPath(region, name, tagline string) string {
	return "/lol/" + url.PathEscape(strings.ToLower(region)) +
		"/" + url.PathEscape(name) +
		"/" + url.PathEscape(tagline)
}

// FormatDuration renders seconds as m:ss.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatDate renders a unix millisecond timestamp.
func FormatDate(millis int64) string {
	if millis == 0 {
		return ""
	}
	return time.UnixMilli(millis).UTC().Format("Jan 2, 2006 15:04")
}

func formatInt(v float64) string {
	return strconv.FormatInt(int64(v), 10)
}

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
