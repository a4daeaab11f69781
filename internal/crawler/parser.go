// Package crawler extracts candidate records from election tables in saved HTML pages.
package crawler

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"candidates/internal/config"
	"candidates/internal/logger"
	"candidates/internal/models"
	"candidates/internal/normalizer"
	"candidates/pkg/utils"
)

// Default selectors for Wikipedia election pages.
const (
	DefaultTableSelector     = "table.wikitable"
	DefaultReferenceSelector = "ol.references li[id]"
)

// Pass-through field names for scraped rows.
const (
	FieldRepresentative = "representative"
	FieldFirstElected   = "first_elected"
	FieldPVI            = "pvi"
	FieldStatus         = "status"
	FieldCandidates     = "candidates"
	FieldReferenceName  = "reference_name"
	FieldReferenceURL   = "reference_url"
)

// Parser errors.
var (
	ErrInsufficientCells = errors.New("row cell count does not match header")
	ErrNoCandidates      = errors.New("row has no candidate entries")
	ErrUnsupportedOffice = errors.New("no table layout for office")
)

// Parser turns election tables into candidate records.
type Parser struct {
	processor         *normalizer.Processor
	strings           *utils.StringHelper
	log               *logger.Logger
	partyPattern      *regexp.Regexp
	footnotePattern   *regexp.Regexp
	tableSelector     string
	referenceSelector string
}

// NewParser creates a parser with the default selectors and no logging.
func NewParser() *Parser {
	return NewParserWithConfig(config.ExtractorConfig{}, nil)
}

// NewParserWithConfig creates a parser using the configured selectors.
// Empty selectors fall back to the defaults; a nil log discards output.
func NewParserWithConfig(cfg config.ExtractorConfig, log *logger.Logger) *Parser {
	if log == nil {
		log = logger.Nop()
	}

	p := &Parser{
		processor:         normalizer.NewProcessor(),
		strings:           utils.NewStringHelper(),
		log:               log.With("component", "crawler"),
		partyPattern:      regexp.MustCompile(`\(([^()]*)\)`),
		footnotePattern:   regexp.MustCompile(`\[[^\]]*\]`),
		tableSelector:     cfg.TableSelector,
		referenceSelector: cfg.ReferenceSelector,
	}

	if p.tableSelector == "" {
		p.tableSelector = DefaultTableSelector
	}

	if p.referenceSelector == "" {
		p.referenceSelector = DefaultReferenceSelector
	}

	return p
}

// ParseHTML parses a page into a document.
func ParseHTML(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}

// Extract yields a candidate for every usable row of every election table
// for office, in document order. Rows that cannot be parsed or fail
// validation are skipped. The sequence makes a single pass over doc.
func (p *Parser) Extract(doc *goquery.Document, office models.Office) iter.Seq[*models.Candidate] {
	return func(yield func(*models.Candidate) bool) {
		layout, ok := layouts[office]
		if !ok {
			p.log.Warn("no table layout for office", "office", office)

			return
		}

		refs := p.indexReferences(doc)
		tables := doc.Find(p.tableSelector)

		for i := range tables.Length() {
			table := tables.Eq(i)

			columns, rows := p.splitTable(table)
			if !layout.accepts(columns) {
				p.log.Debug("skipping table", "table", i, "columns", strings.Join(columns, ","))

				continue
			}

			for j, row := range rows {
				candidate, err := p.parseRow(row, columns, office, refs)
				if err != nil {
					if p.log.Enabled(slog.LevelDebug) {
						p.log.Debug("skipping row", "table", i, "row", j,
							"text", p.strings.TruncateString(p.strings.NormalizeWhitespace(row.Text()), 60),
							"error", err)
					}

					continue
				}

				if !yield(candidate) {
					return
				}
			}
		}
	}
}

// ExtractAll collects Extract into a slice.
func (p *Parser) ExtractAll(doc *goquery.Document, office models.Office) []*models.Candidate {
	return slices.Collect(p.Extract(doc, office))
}

// parseRow builds a candidate from one data row.
func (p *Parser) parseRow(row *goquery.Selection, columns []string, office models.Office, refs map[string]models.Reference) (*models.Candidate, error) {
	cells := row.ChildrenFiltered("th, td")
	if cells.Length() != len(columns) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInsufficientCells, cells.Length(), len(columns))
	}

	values := make(map[string]string, len(columns))

	var entries []candidateEntry

	for i, column := range columns {
		cell := cells.Eq(i)

		switch column {
		case "":
			continue
		case FieldCandidates:
			entries = p.candidateEntries(cell)
		default:
			values[column] = p.strings.NormalizeWhitespace(cell.Text())
		}
	}

	if len(entries) == 0 {
		return nil, ErrNoCandidates
	}

	chosen := pickEntry(entries, values[FieldRepresentative])

	party := chosen.party
	if party == "" {
		party = values[models.FieldParty]
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.text)
	}

	raw := models.NewRawRecord()
	raw.Set(models.FieldName, chosen.name)
	raw.Set(models.FieldOffice, office.String())
	raw.Set(models.FieldParty, party)

	for _, column := range []string{models.FieldState, models.FieldDistrict, FieldRepresentative, FieldFirstElected, FieldPVI, FieldStatus} {
		if slices.Contains(columns, column) {
			raw.Set(column, values[column])
		}
	}

	raw.Set(FieldCandidates, strings.Join(lines, "\n"))

	for _, id := range chosen.refs {
		if ref, ok := refs[id]; ok {
			raw.Set(FieldReferenceName, ref.Name)
			raw.Set(FieldReferenceURL, ref.URL)

			break
		}
	}

	candidate, err := p.processor.Build(raw)
	if err != nil {
		return nil, fmt.Errorf("building candidate: %w", err)
	}

	return candidate, nil
}

// candidateEntry is one "Name (Party)[ref]" line of a candidates cell.
type candidateEntry struct {
	text  string
	name  string
	party string
	refs  []string
}

// candidateEntries splits a candidates cell into entries.
func (p *Parser) candidateEntries(cell *goquery.Selection) []candidateEntry {
	if cell.Length() == 0 {
		return nil
	}

	var entries []candidateEntry

	for _, line := range cellLines(cell.Get(0)) {
		name := line.text
		if i := strings.IndexAny(name, "(["); i >= 0 {
			name = name[:i]
		}

		name = p.strings.NormalizeWhitespace(name)
		if name == "" {
			continue
		}

		entry := candidateEntry{text: line.text, name: name, refs: line.refs}
		if m := p.partyPattern.FindStringSubmatch(p.footnotePattern.ReplaceAllString(line.text, "")); m != nil {
			entry.party = p.strings.NormalizeWhitespace(m[1])
		}

		entries = append(entries, entry)
	}

	return entries
}

// pickEntry returns the first entry that is not the incumbent, or the first
// entry when everyone listed is the incumbent.
func pickEntry(entries []candidateEntry, incumbent string) candidateEntry {
	folded := normalizer.Fold(incumbent)

	for _, e := range entries {
		if normalizer.Fold(e.name) != folded {
			return e
		}
	}

	return entries[0]
}
