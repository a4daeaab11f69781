package normalizer

import (
	"strings"
	"testing"

	"candidates/internal/models"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()
	if v == nil {
		t.Fatal("NewValidator returned nil")
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		data    *models.Candidate
		wantErr string
	}{
		{
			name: "Senate without district",
			data: models.NewCandidate("A B", models.OfficeSenate, "", "Ohio", "", nil),
		},
		{
			name: "House with district",
			data: models.NewCandidate("A B", models.OfficeHouse, "", "Ohio", "3rd", nil),
		},
		{
			name: "Other office without state",
			data: models.NewCandidate("A B", models.OfficeOther, "", "", "", nil),
		},
		{
			name:    "Missing office",
			data:    models.NewCandidate("A B", "", "", "Ohio", "3rd", nil),
			wantErr: `invalid candidate "A B": office: no office present`,
		},
		{
			name:    "House without district",
			data:    models.NewCandidate("", models.OfficeHouse, "", "Ohio", "", nil),
			wantErr: "invalid candidate: district: house candidate has no resolvable district",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.data)

			switch {
			case tt.wantErr == "" && err != nil:
				t.Errorf("Validate returned unexpected error: %v", err)
			case tt.wantErr != "" && err == nil:
				t.Error("Validate expected error but got nil")
			case tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr):
				t.Errorf("Validate error = %v, want substring %v", err, tt.wantErr)
			}
		})
	}
}
