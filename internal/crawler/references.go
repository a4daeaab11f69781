package crawler

import (
	"github.com/PuerkitoBio/goquery"

	"candidates/internal/models"
)

// indexReferences maps footnote ids to their citation. The citation name is
// the text of the first external link, quotes included, and falls back to
// the whole reference text when the footnote has no link.
func (p *Parser) indexReferences(doc *goquery.Document) map[string]models.Reference {
	refs := make(map[string]models.Reference)

	doc.Find(p.referenceSelector).Each(func(_ int, li *goquery.Selection) {
		id, ok := li.Attr("id")
		if !ok || id == "" {
			return
		}

		body := li.Find(".reference-text")
		if body.Length() == 0 {
			body = li
		}

		var ref models.Reference

		link := body.Find("a.external").First()
		if link.Length() == 0 {
			link = body.Find("a[href^='http']").First()
		}

		if link.Length() > 0 {
			ref.Name = p.strings.NormalizeWhitespace(link.Text())
			ref.URL, _ = link.Attr("href")
		} else {
			ref.Name = p.strings.NormalizeWhitespace(body.Text())
		}

		if ref.Name == "" && ref.URL == "" {
			return
		}

		refs[id] = ref
	})

	p.log.Debug("indexed references", "count", len(refs))

	return refs
}
