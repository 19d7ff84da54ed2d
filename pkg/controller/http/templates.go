package http

import (
	"embed"
	"html/template"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

var settingsTemplate = template.Must(
	template.New("settings.html").
		Funcs(template.FuncMap{"humanize": humanize.Time}).
		ParseFS(templateFS, "templates/settings.html"),
)
