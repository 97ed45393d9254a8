package templates

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"arrow": func(direction string) string {
		if direction == "asc" {
			return "▲"
		}
		return "▼"
	},
}

// Load parses the embedded page templates.
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "*.html")
}
