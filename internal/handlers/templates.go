package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var funcMap = template.FuncMap{
	"FormatDateTime": FormatDateTime,
}

// FormatDateTime formats a time.Time object into a more readable string.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("January 2, 2006 at 3:04 PM")
}

// templates holds all parsed templates.
// The key is the template name relative to the templates directory,
// e.g. "auth/login.html" or "todos/index.html".
var templates map[string]*template.Template

// LoadTemplates parses all HTML templates from the given directory and its
// immediate subdirectories. Every page template is parsed together with
// layout.html and all "_"-prefixed partials, so a page renders through the
// layout. It should be called once at application startup.
func LoadTemplates(dir string) error {
	templates = make(map[string]*template.Template)

	layoutFile := filepath.Join(dir, "layout.html")
	if _, err := os.Stat(layoutFile); err != nil {
		return fmt.Errorf("layout.html not found in %s: %w", dir, err)
	}

	topLevel, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return fmt.Errorf("error globbing templates: %w", err)
	}
	nested, err := filepath.Glob(filepath.Join(dir, "*", "*.html"))
	if err != nil {
		return fmt.Errorf("error globbing templates: %w", err)
	}

	var pageFiles, partialFiles []string
	for _, file := range append(topLevel, nested...) {
		switch {
		case file == layoutFile:
		case strings.HasPrefix(filepath.Base(file), "_"):
			partialFiles = append(partialFiles, file)
		default:
			pageFiles = append(pageFiles, file)
		}
	}

	for _, pageFile := range pageFiles {
		name := strings.TrimPrefix(pageFile, dir+string(filepath.Separator))
		name = filepath.ToSlash(name)

		filesToParse := append([]string{layoutFile, pageFile}, partialFiles...)
		tmpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(filesToParse...)
		if err != nil {
			return fmt.Errorf("error parsing page template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	return nil
}

// RenderTemplate executes the named page template through the layout.
func RenderTemplate(w http.ResponseWriter, name string, data interface{}) {
	tmpl, ok := templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template not found: %s", name), http.StatusInternalServerError)
		return
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, fmt.Sprintf("Error executing template %s: %s", name, err.Error()), http.StatusInternalServerError)
	}
}
