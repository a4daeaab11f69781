package normalizer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"candidates/internal/models"
)

func TestNewProcessor(t *testing.T) {
	p := NewProcessor()
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestProcessor_BuildMap(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]string
		expected map[string]string
	}{
		{
			name:     "Senate candidate",
			input:    map[string]string{"can_nam": "Some Person", "office": "senate", "party": "DEM", "can_off_sta": "NM"},
			expected: map[string]string{"name": "Some Person", "office": "senate", "party": "DEM", "state": "New Mexico"},
		},
		{
			name:     "Differently formatted name",
			input:    map[string]string{"can_nam": "PERSON, SOME", "office": "senate", "party": "DEM", "can_off_sta": "NM"},
			expected: map[string]string{"name": "Some Person", "office": "senate", "party": "DEM", "state": "New Mexico"},
		},
		{
			name:     "House candidate with a district",
			input:    map[string]string{"can_nam": "Some Person", "party": "Democratic", "office": "house", "district": "West Virginia 2"},
			expected: map[string]string{"name": "Some Person", "party": "Democratic", "office": "house", "state": "West Virginia", "district": "2nd"},
		},
		{
			name:  "Unrecognized fields are retained",
			input: map[string]string{"can_nam": "PERSON, SOME", "office": "senate", "party": "DEM", "state": "AL", "icecream_flavor": "banana"},
			expected: map[string]string{
				"name": "Some Person", "office": "senate", "party": "DEM", "state": "Alabama", "icecream_flavor": "banana",
			},
		},
		{
			name:     "FEC abbreviated keys",
			input:    map[string]string{"can_nam": "DOE, JANE", "can_off": "H", "can_par_aff": "REP", "can_off_sta": "TX", "can_off_dis": "07"},
			expected: map[string]string{"name": "Jane Doe", "office": "house", "party": "REP", "state": "Texas", "district": "7th"},
		},
		{
			name:     "Named key wins over abbreviated key",
			input:    map[string]string{"can_nam": "DOE, JANE", "name": "Janie Doe", "office": "senate", "state": "Ohio", "can_off_sta": "NM"},
			expected: map[string]string{"name": "Janie Doe", "office": "senate", "state": "Ohio"},
		},
		{
			name:     "Blank named key falls back to abbreviated key",
			input:    map[string]string{"can_nam": "Some Person", "office": "senate", "state": " ", "can_off_sta": "NM"},
			expected: map[string]string{"name": "Some Person", "office": "senate", "state": "New Mexico"},
		},
		{
			name:     "Named name is kept as written",
			input:    map[string]string{"name": "Donald Payne, Jr.", "office": "house", "district": "New Jersey 10"},
			expected: map[string]string{"name": "Donald Payne, Jr.", "office": "house", "state": "New Jersey", "district": "10th"},
		},
		{
			name:     "Abbreviated name with only a suffix after the comma",
			input:    map[string]string{"can_nam": "PAYNE, JR.", "office": "senate"},
			expected: map[string]string{"name": "Payne Jr", "office": "senate"},
		},
		{
			name:     "Unknown office resolves to other",
			input:    map[string]string{"can_nam": "Some Person", "can_off": "P"},
			expected: map[string]string{"name": "Some Person", "office": "other"},
		},
		{
			name:     "Keys are matched case-insensitively",
			input:    map[string]string{"CAN_NAM": "Some Person", " Office ": "House", "District": "Iowa 1"},
			expected: map[string]string{"name": "Some Person", "office": "house", "state": "Iowa", "district": "1st"},
		},
	}

	p := NewProcessor()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.BuildMap(tt.input)
			if err != nil {
				t.Fatalf("BuildMap returned unexpected error: %v", err)
			}

			if diff := cmp.Diff(tt.expected, got.Data()); diff != "" {
				t.Errorf("Data() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProcessor_BuildMap_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]string
		wantErr error
		field   string
	}{
		{
			name:    "No specified office",
			input:   map[string]string{"can_nam": "Some Person", "party": "DEM", "can_off_sta": "NM"},
			wantErr: ErrMissingOffice,
			field:   models.FieldOffice,
		},
		{
			name:    "Blank office",
			input:   map[string]string{"can_nam": "Some Person", "office": "  "},
			wantErr: ErrMissingOffice,
			field:   models.FieldOffice,
		},
		{
			name:    "House candidate without a district",
			input:   map[string]string{"can_nam": "Some Person", "party": "DEM", "can_off_sta": "NM", "office": "house"},
			wantErr: ErrMissingDistrict,
			field:   models.FieldDistrict,
		},
		{
			name:    "House candidate with an unparseable district",
			input:   map[string]string{"can_nam": "Some Person", "party": "DEM", "office": "house", "district": "not real"},
			wantErr: ErrMissingDistrict,
			field:   models.FieldDistrict,
		},
	}

	p := NewProcessor()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.BuildMap(tt.input)
			if err == nil {
				t.Fatalf("BuildMap expected error, got %v", got.Data())
			}

			if got != nil {
				t.Error("BuildMap expected nil candidate on error")
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("BuildMap error = %v, want %v", err, tt.wantErr)
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("BuildMap error %T is not a *ValidationError", err)
			}

			if ve.Field != tt.field {
				t.Errorf("ValidationError.Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestProcessor_Build_KeepsExtraOrder(t *testing.T) {
	raw := models.NewRawRecord()
	raw.Set("zeta", "1")
	raw.Set("can_nam", "Some Person")
	raw.Set("alpha", "2")
	raw.Set("office", "senate")
	raw.Set("mid", "3")

	c, err := NewProcessor().Build(raw)
	if err != nil {
		t.Fatalf("Build returned unexpected error: %v", err)
	}

	want := []models.Field{
		{Key: "name", Value: "Some Person"},
		{Key: "office", Value: "senate"},
		{Key: "zeta", Value: "1"},
		{Key: "alpha", Value: "2"},
		{Key: "mid", Value: "3"},
	}

	if diff := cmp.Diff(want, c.Fields()); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
}

func TestMakeCandidate(t *testing.T) {
	c, err := MakeCandidate(map[string]string{"can_nam": "Some Person", "office": "house", "can_off_sta": "NM", "can_off_dis": "New Mexico 7"})
	if err != nil {
		t.Fatalf("MakeCandidate returned unexpected error: %v", err)
	}

	if c.State != "New Mexico" || c.District != "7th" {
		t.Errorf("location = (%q, %q), want (New Mexico, 7th)", c.State, c.District)
	}
}
