// Package prompt renders the instruction templates sent to the model.
// The templates are business data (taxonomy, brand rules, tone) and are
// shipped embedded; a deployment can replace them from a directory.
package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"text/template"

	"github.com/leon37/NetoLedger/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	categoryTemplate = "category.tmpl"
	networthTemplate = "networth.tmpl"
)

// CategoryData fills category.tmpl.
type CategoryData struct {
	Description string
	Locale      string
}

// NetworthData fills networth.tmpl.
type NetworthData struct {
	AssetDataJSON string
	UserQuestion  string
	Locale        string
}

// Builder holds the parsed templates. It is safe for concurrent use.
type Builder struct {
	templates map[string]*template.Template
}

// NewBuilder parses the embedded templates.
func NewBuilder() (*Builder, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	return NewBuilderFS(sub)
}

// NewBuilderFromDir parses templates from dir, falling back to the embedded
// copy for any template the directory does not provide.
func NewBuilderFromDir(dir string) (*Builder, error) {
	if dir == "" {
		return NewBuilder()
	}
	b, err := NewBuilder()
	if err != nil {
		return nil, err
	}
	override := os.DirFS(dir)
	for _, name := range []string{categoryTemplate, networthTemplate} {
		if _, err := fs.Stat(override, name); err != nil {
			continue
		}
		tmpl, err := parse(override, name)
		if err != nil {
			return nil, err
		}
		b.templates[name] = tmpl
	}
	return b, nil
}

// NewBuilderFS parses both templates from fsys.
func NewBuilderFS(fsys fs.FS) (*Builder, error) {
	b := &Builder{templates: make(map[string]*template.Template)}
	for _, name := range []string{categoryTemplate, networthTemplate} {
		tmpl, err := parse(fsys, name)
		if err != nil {
			return nil, err
		}
		b.templates[name] = tmpl
	}
	return b, nil
}

var sampleData = map[string]any{
	categoryTemplate: CategoryData{Description: "sample", Locale: model.DefaultLocale},
	networthTemplate: NetworthData{AssetDataJSON: "[]", UserQuestion: "sample", Locale: model.DefaultLocale},
}

// parse also executes the template once so that references to unknown
// fields are reported at load time rather than on a request.
func parse(fsys fs.FS, name string) (*template.Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").ParseFS(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	if err := tmpl.Execute(io.Discard, sampleData[name]); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return tmpl, nil
}

// Category renders the transaction classification prompt.
func (b *Builder) Category(description, locale string) string {
	return b.render(categoryTemplate, CategoryData{
		Description: description,
		Locale:      NormalizeLocale(locale),
	})
}

// Networth renders the net-worth summary prompt.
func (b *Builder) Networth(assetDataJSON, userQuestion, locale string) string {
	return b.render(networthTemplate, NetworthData{
		AssetDataJSON: assetDataJSON,
		UserQuestion:  strings.TrimSpace(userQuestion),
		Locale:        NormalizeLocale(locale),
	})
}

// render cannot fail once parse has executed the template with the same data type.
func (b *Builder) render(name string, data any) string {
	var buf bytes.Buffer
	if err := b.templates[name].Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("prompt: execute %s: %v", name, err))
	}
	return buf.String()
}

// NormalizeLocale trims the locale and defaults it to Spanish.
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return model.DefaultLocale
	}
	return locale
}
