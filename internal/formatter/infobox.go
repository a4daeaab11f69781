// Package formatter renders candidates as wikitext infobox snippets.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"candidates/internal/models"
	"candidates/pkg/metadata"
)

// DefaultTemplate is the infobox template used when none is configured.
const DefaultTemplate = "Infobox Officeholder"

var valueEscaper = strings.NewReplacer(
	"|", "{{!}}",
	"\r\n", "<br />",
	"\n", "<br />",
	"\r", "<br />",
)

// Formatter renders candidates into infobox wikitext.
type Formatter struct {
	Template  string
	Source    string
	AlignKeys bool
}

// NewFormatter creates a formatter for the default template.
func NewFormatter() *Formatter {
	return &Formatter{Template: DefaultTemplate}
}

// Render returns the infobox for c, one "| key = value" line per non-empty
// field, in the candidate's field order.
func (f *Formatter) Render(c *models.Candidate) string {
	fields := c.Fields()

	width := 0
	if f.AlignKeys {
		for _, field := range fields {
			width = max(width, runewidth.StringWidth(field.Key))
		}
	}

	var b strings.Builder

	b.WriteString("{{")
	b.WriteString(f.template())
	b.WriteString("\n")

	for _, field := range fields {
		b.WriteString("| ")
		b.WriteString(runewidth.FillRight(field.Key, width))
		b.WriteString(" = ")
		b.WriteString(valueEscaper.Replace(field.Value))
		b.WriteString("\n")
	}

	b.WriteString("}}")

	return b.String()
}

// RenderAll renders every candidate, separating infoboxes with a blank line.
func (f *Formatter) RenderAll(candidates []*models.Candidate) string {
	snippets := make([]string, 0, len(candidates))
	for _, c := range candidates {
		snippets = append(snippets, f.Render(c))
	}

	return strings.Join(snippets, "\n\n")
}

// Sign appends a provenance block to rendered content. The record count is
// the number of infoboxes in content.
func (f *Formatter) Sign(content string, validated bool) string {
	_, clean := metadata.Extract(content)

	return metadata.Sign(clean, metadata.Metadata{
		Source:     f.Source,
		Records:    strings.Count(clean, "{{"+f.template()+"\n"),
		Validation: validated,
	})
}

func (f *Formatter) template() string {
	if f.Template == "" {
		return DefaultTemplate
	}

	return f.Template
}
