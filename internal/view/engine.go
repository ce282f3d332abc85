package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Engine renders the embedded templates. It satisfies fiber.Views.
type Engine struct {
	templates *template.Template
}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Load() error {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"safeURL": safeURL,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	e.templates = tmpl
	return nil
}

// Render executes the template called name, with or without the .html suffix.
func (e *Engine) Render(w io.Writer, name string, binding interface{}, _ ...string) error {
	if e.templates == nil {
		if err := e.Load(); err != nil {
			return err
		}
	}
	tmpl := e.templates.Lookup(name)
	if tmpl == nil {
		tmpl = e.templates.Lookup(name + ".html")
	}
	if tmpl == nil {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.Execute(w, binding)
}

// safeURL lets image data URLs through html/template's URL filter, which
// otherwise replaces them with #ZgotmplZ.
func safeURL(s string) template.URL {
	if strings.HasPrefix(s, "data:image/") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://") {
		return template.URL(s)
	}
	return ""
}
