// Package normalizer turns raw scraped candidate fields into canonical candidate records.
package normalizer

import (
	"candidates/internal/models"
)

// Processor builds validated candidates from raw records.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
	}
}

// Build normalizes raw into a candidate. It returns a *ValidationError when
// no office resolves or a house candidate has no district.
func (p *Processor) Build(raw *models.RawRecord) (*models.Candidate, error) {
	c := p.transformer.Transform(raw)

	if err := p.validator.Validate(c); err != nil {
		return nil, err
	}

	return c, nil
}

// BuildMap is Build for a plain map.
func (p *Processor) BuildMap(raw map[string]string) (*models.Candidate, error) {
	return p.Build(models.RawRecordFromMap(raw))
}

// MakeCandidate builds a candidate with a default processor.
func MakeCandidate(raw map[string]string) (*models.Candidate, error) {
	return NewProcessor().BuildMap(raw)
}
