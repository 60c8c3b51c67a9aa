// file: templates/templates.go
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse 解析全部内嵌页面模板
func Parse() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
