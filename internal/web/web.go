// Package web serves the browser greeting consumer. The page is a single
// embedded template rendered once from the theme; its script fetches the
// greeting on load and shows an alert when the button is clicked.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/janisto/huma-greeter/internal/consumer"
	"github.com/janisto/huma-greeter/internal/theme"
)

//go:embed index.html.tmpl
var files embed.FS

var pageTemplate = template.Must(template.ParseFS(files, "index.html.tmpl"))

type pageData struct {
	Title          string
	Heading        string
	ButtonLabel    string
	Acknowledgment string
	Endpoint       string
	PageCSS        template.CSS
	ButtonCSS      template.CSS
	DangerColor    template.CSS
	Padding        template.CSS
}

// Render executes the page template for t. endpoint is the URL the page
// fetches the greeting from, usually "/hello".
func Render(t theme.Theme, endpoint string) ([]byte, error) {
	data := pageData{
		Title:          consumer.Heading,
		Heading:        consumer.Heading,
		ButtonLabel:    consumer.ButtonLabel,
		Acknowledgment: consumer.Acknowledgment,
		Endpoint:       endpoint,
		PageCSS:        template.CSS(t.PageCSS()),
		ButtonCSS:      template.CSS(theme.ButtonStyle(t, theme.Primary).CSS("button")),
		DangerColor:    template.CSS(t.Colors.Danger),
		Padding:        template.CSS(t.Spacing(4)),
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

// Handler returns a handler serving the rendered page. The page is rendered
// once since the theme is read-only.
func Handler(t theme.Theme, endpoint string) (http.HandlerFunc, error) {
	page, err := Render(t, endpoint)
	if err != nil {
		return nil, err
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}, nil
}
