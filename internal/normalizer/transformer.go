package normalizer

import (
	"strings"

	"candidates/internal/models"
)

// fieldAliases maps abbreviated source keys to canonical field names.
var fieldAliases = map[string]string{
	"can_nam":     models.FieldName,
	"can_off":     models.FieldOffice,
	"can_par_aff": models.FieldParty,
	"can_off_sta": models.FieldState,
	"can_off_dis": models.FieldDistrict,
}

// canonicalFields is the set of recognized field names.
var canonicalFields = map[string]bool{
	models.FieldName:     true,
	models.FieldOffice:   true,
	models.FieldParty:    true,
	models.FieldState:    true,
	models.FieldDistrict: true,
}

// Transformer maps raw source fields onto a candidate.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform resolves recognized fields and copies everything else through.
// The result is not validated.
func (t *Transformer) Transform(raw *models.RawRecord) *models.Candidate {
	named := make(map[string]string, len(canonicalFields))
	abbreviated := make(map[string]string, len(fieldAliases))

	var extras []models.Field

	for _, f := range raw.Fields() {
		key := strings.ToLower(strings.TrimSpace(f.Key))
		value := strings.TrimSpace(f.Value)

		switch {
		case canonicalFields[key]:
			named[key] = value
		case fieldAliases[key] != "":
			abbreviated[fieldAliases[key]] = value
		default:
			extras = append(extras, f)
		}
	}

	// an already-named key wins over its abbreviated form unless blank
	pick := func(field string) string {
		if v := named[field]; v != "" {
			return v
		}

		return abbreviated[field]
	}

	// only the abbreviated form is "LAST, FIRST"; a named value is kept as written
	name := named[models.FieldName]
	if name == "" {
		name = NormalizeName(abbreviated[models.FieldName])
	}

	office, _ := models.ParseOffice(pick(models.FieldOffice))
	state, district := NormalizeLocation(pick(models.FieldState), pick(models.FieldDistrict))

	return models.NewCandidate(
		name,
		office,
		pick(models.FieldParty),
		state,
		district,
		extras,
	)
}
