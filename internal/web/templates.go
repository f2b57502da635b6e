package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Templates parses the embedded view templates. Panics on a broken embed,
// which can only happen at build time.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFiles, "templates/*.html"))
}
