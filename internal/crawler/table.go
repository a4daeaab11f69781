package crawler

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"candidates/internal/models"
)

// headerAliases maps normalized header text to field names.
var headerAliases = map[string]string{
	"district":       models.FieldDistrict,
	"location":       models.FieldDistrict,
	"state":          models.FieldState,
	"representative": FieldRepresentative,
	"incumbent":      FieldRepresentative,
	"member":         FieldRepresentative,
	"senator":        FieldRepresentative,
	"party":          models.FieldParty,
	"pvi":            FieldPVI,
	"cook pvi":       FieldPVI,
	"first elected":  FieldFirstElected,
	"elected":        FieldFirstElected,
	"status":         FieldStatus,
	"result":         FieldStatus,
	"results":        FieldStatus,
	"candidates":     FieldCandidates,
}

// maxColspan is the largest span browsers honor.
const maxColspan = 1000

var headerNoise = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)

// tableLayout lists the columns a table must have to be read for an office.
type tableLayout struct {
	required []string
}

var layouts = map[models.Office]tableLayout{
	models.OfficeHouse:  {required: []string{models.FieldDistrict, FieldCandidates}},
	models.OfficeSenate: {required: []string{models.FieldState, FieldCandidates}},
}

func (l tableLayout) accepts(columns []string) bool {
	for _, field := range l.required {
		if !slices.Contains(columns, field) {
			return false
		}
	}

	return true
}

// splitTable returns the column field names of a table and its data rows.
// Unrecognized columns are named "". Header rows are the leading rows made
// up of th cells only.
func (p *Parser) splitTable(table *goquery.Selection) ([]string, []*goquery.Selection) {
	rows := table.ChildrenFiltered("thead, tbody, tfoot").ChildrenFiltered("tr")

	var header, data []*goquery.Selection

	for i := range rows.Length() {
		row := rows.Eq(i)
		cells := row.ChildrenFiltered("th, td")

		if len(data) == 0 && cells.Length() > 0 && cells.Length() == cells.Filter("th").Length() {
			header = append(header, row)

			continue
		}

		data = append(data, row)
	}

	if len(header) == 0 {
		return nil, data
	}

	return p.headerColumns(header), data
}

// headerColumns names the columns of a one- or two-row header. Cells of the
// first row spanning several columns are named by the second row.
func (p *Parser) headerColumns(header []*goquery.Selection) []string {
	var sub []string

	if len(header) > 1 {
		header[1].ChildrenFiltered("th").Each(func(_ int, s *goquery.Selection) {
			sub = append(sub, p.headerName(s))
		})
	}

	var columns []string

	next := 0

	header[0].ChildrenFiltered("th").Each(func(_ int, s *goquery.Selection) {
		span := 1
		if v, ok := s.Attr("colspan"); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 1 {
				span = min(n, maxColspan)
			}
		}

		if span == 1 {
			columns = append(columns, p.headerName(s))

			return
		}

		for range span {
			if next < len(sub) {
				columns = append(columns, sub[next])
				next++

				continue
			}

			columns = append(columns, p.headerName(s))
		}
	})

	return columns
}

// headerName maps a header cell to a field name, or "" when unknown.
func (p *Parser) headerName(s *goquery.Selection) string {
	text := strings.ToLower(headerNoise.ReplaceAllString(s.Text(), ""))

	return headerAliases[p.strings.NormalizeWhitespace(text)]
}
