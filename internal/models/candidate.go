// Package models defines data structures shared by the normalizer, crawler and formatter.
package models

import (
	"encoding/json"
	"strings"
)

// Office is the kind of seat a candidate runs for.
type Office string

// Known offices.
const (
	OfficeHouse  Office = "house"
	OfficeSenate Office = "senate"
	OfficeOther  Office = "other"
)

// Canonical field names.
const (
	FieldName     = "name"
	FieldOffice   = "office"
	FieldParty    = "party"
	FieldState    = "state"
	FieldDistrict = "district"
)

var officeAliases = map[string]Office{
	"house":          OfficeHouse,
	"h":              OfficeHouse,
	"rep":            OfficeHouse,
	"representative": OfficeHouse,
	"us house":       OfficeHouse,
	"u.s. house":     OfficeHouse,
	"senate":         OfficeSenate,
	"s":              OfficeSenate,
	"senator":        OfficeSenate,
	"us senate":      OfficeSenate,
	"u.s. senate":    OfficeSenate,
}

// ParseOffice resolves a raw office value. Unknown non-empty values resolve
// to OfficeOther; an empty value is not resolvable.
func ParseOffice(raw string) (Office, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	if key == "" {
		return "", false
	}

	if office, ok := officeAliases[key]; ok {
		return office, true
	}

	return OfficeOther, true
}

// String returns the canonical office name.
func (o Office) String() string {
	return string(o)
}

// Candidate is a normalized candidate record.
// Use normalizer.Processor to build one; the zero value is not valid.
type Candidate struct {
	Name     string `json:"name"`
	Office   Office `json:"office"`
	Party    string `json:"party"`
	State    string `json:"state"`
	District string `json:"district"`

	extra []Field
}

// NewCandidate assembles a candidate from already normalized values.
// extras are copied, so later changes by the caller are not visible.
func NewCandidate(name string, office Office, party, state, district string, extras []Field) *Candidate {
	c := &Candidate{
		Name:     name,
		Office:   office,
		Party:    party,
		State:    state,
		District: district,
	}

	if len(extras) > 0 {
		c.extra = append([]Field(nil), extras...)
	}

	return c
}

// Extra returns a pass-through field.
func (c *Candidate) Extra(key string) (string, bool) {
	for _, f := range c.extra {
		if f.Key == key {
			return f.Value, true
		}
	}

	return "", false
}

// Extras returns a copy of the pass-through fields in their original order.
func (c *Candidate) Extras() []Field {
	return append([]Field(nil), c.extra...)
}

// Fields returns recognized fields that are set, followed by pass-through fields.
func (c *Candidate) Fields() []Field {
	fields := make([]Field, 0, 5+len(c.extra))

	add := func(key, value string) {
		if value != "" {
			fields = append(fields, Field{Key: key, Value: value})
		}
	}

	add(FieldName, c.Name)
	add(FieldOffice, c.Office.String())
	add(FieldParty, c.Party)
	add(FieldState, c.State)
	add(FieldDistrict, c.District)

	return append(fields, c.extra...)
}

// Data returns the candidate as a plain mapping.
func (c *Candidate) Data() map[string]string {
	fields := c.Fields()

	data := make(map[string]string, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}

	return data
}

// MarshalJSON encodes the candidate as its Data mapping.
func (c *Candidate) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Data())
}

// Reference is a footnote citation attached to a scraped row.
type Reference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
