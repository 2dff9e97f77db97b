package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse returns the page templates, keyed by file name. Embedding keeps the
// binary self-contained and the pages reachable regardless of working
// directory.
func Parse() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
