package formatter

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"candidates/internal/models"
	"candidates/internal/normalizer"
	"candidates/pkg/metadata"
)

func mustCandidate(t *testing.T, raw map[string]string) *models.Candidate {
	t.Helper()

	c, err := normalizer.MakeCandidate(raw)
	if err != nil {
		t.Fatalf("MakeCandidate failed: %v", err)
	}

	return c
}

func TestFormatter_Render(t *testing.T) {
	c := mustCandidate(t, map[string]string{
		"can_nam":     "Some Person",
		"office":      "house",
		"party":       "DEM",
		"can_off_sta": "NM",
		"can_off_dis": "New Mexico 7",
	})

	got := NewFormatter().Render(c)

	expected := "{{Infobox Officeholder\n" +
		"| name = Some Person\n" +
		"| office = house\n" +
		"| party = DEM\n" +
		"| state = New Mexico\n" +
		"| district = 7th\n" +
		"}}"

	if got != expected {
		t.Errorf("Render() =\n%s\nwant\n%s", got, expected)
	}

	pattern := regexp.MustCompile("^{{Infobox Officeholder\n(?s:.*)\\| name = Some Person\n(?s:.*)}}$")
	if !pattern.MatchString(got) {
		t.Errorf("Render() output does not look like an infobox:\n%s", got)
	}
}

func TestFormatter_Render_OmitsEmptyFieldsAndKeepsExtras(t *testing.T) {
	c := mustCandidate(t, map[string]string{
		"can_nam": "DOE, JANE",
		"office":  "senate",
		"state":   "oh",
		"website": "https://example.org",
	})

	got := NewFormatter().Render(c)

	expected := "{{Infobox Officeholder\n" +
		"| name = Jane Doe\n" +
		"| office = senate\n" +
		"| state = Ohio\n" +
		"| website = https://example.org\n" +
		"}}"

	if got != expected {
		t.Errorf("Render() =\n%s\nwant\n%s", got, expected)
	}
}

func TestFormatter_Render_EscapesValues(t *testing.T) {
	c := mustCandidate(t, map[string]string{
		"name":       "A Person",
		"office":     "senate",
		"candidates": "A Person (Democratic)\nB | Person (Green)",
	})

	got := NewFormatter().Render(c)

	if want := "| candidates = A Person (Democratic)<br />B {{!}} Person (Green)\n"; !strings.Contains(got, want) {
		t.Errorf("Render() = %s, missing %q", got, want)
	}

	if n := strings.Count(got, "\n"); n != 4 {
		t.Errorf("Render() has %d newlines, want 4", n)
	}
}

func TestFormatter_Render_AlignKeys(t *testing.T) {
	c := mustCandidate(t, map[string]string{
		"name":     "Some Person",
		"office":   "house",
		"district": "Utah 1",
	})

	f := &Formatter{Template: "Infobox candidate", AlignKeys: true}
	got := f.Render(c)

	expected := "{{Infobox candidate\n" +
		"| name     = Some Person\n" +
		"| office   = house\n" +
		"| state    = Utah\n" +
		"| district = 1st\n" +
		"}}"

	if got != expected {
		t.Errorf("Render() =\n%s\nwant\n%s", got, expected)
	}
}

func TestFormatter_RenderAll(t *testing.T) {
	f := NewFormatter()

	a := mustCandidate(t, map[string]string{"name": "A", "office": "senate"})
	b := mustCandidate(t, map[string]string{"name": "B", "office": "senate"})

	got := f.RenderAll([]*models.Candidate{a, b})
	if want := f.Render(a) + "\n\n" + f.Render(b); got != want {
		t.Errorf("RenderAll() =\n%s\nwant\n%s", got, want)
	}

	if got := f.RenderAll(nil); got != "" {
		t.Errorf("RenderAll(nil) = %q, want empty", got)
	}
}

func TestFormatter_Sign(t *testing.T) {
	f := NewFormatter()
	f.Source = "test_house.html"

	a := mustCandidate(t, map[string]string{"name": "A", "office": "senate"})
	b := mustCandidate(t, map[string]string{"name": "B", "office": "senate"})

	signed := f.Sign(f.RenderAll([]*models.Candidate{a, b}), true)

	meta, err := metadata.Verify(signed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if meta.Records != 2 || !meta.Validation || meta.Source != "test_house.html" {
		t.Errorf("unexpected metadata: %+v", meta)
	}

	// signing again replaces the block instead of stacking a second one
	resigned := f.Sign(signed, false)
	if n := strings.Count(resigned, metadata.TagStart); n != 1 {
		t.Errorf("found %d provenance blocks, want 1", n)
	}

	tampered := strings.Replace(signed, "| name = A", "| name = Z", 1)
	if _, err := metadata.Verify(tampered); !errors.Is(err, metadata.ErrHashMismatch) {
		t.Errorf("Verify(tampered) = %v, want ErrHashMismatch", err)
	}
}
