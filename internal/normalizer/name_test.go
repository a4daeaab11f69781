package normalizer

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"CATFACE, ALEX", "Alex Catface"},
		{"BANANA, MABEL JR.", "Mabel Banana Jr"},
		{"SLEEPERSOFA, LUCY DR", "Lucy Sleepersofa"},
		{"BEAR, P III", "P Bear III"},
		{"Some Ok Name", "Some Ok Name"},
		{"SMITH, JOHN MICHAEL", "John Michael Smith"},
		{"SMITH, DR. JANE", "Jane Smith"},
		{"SMITH-JONES, ANNA SR", "Anna Smith-Jones Sr"},
		{"DOE, V", "V Doe"},
		{"DOE, JOHN, JR.", "John Doe Jr"},
		{"DOE,", "Doe"},
		{"SMITH, JR", "Smith Jr"},
		{"PAYNE, JR.", "Payne Jr"},
		{"DOE, II", "Doe II"},
		{"DOE, I", "I Doe"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	for _, input := range []string{"CATFACE, ALEX", "BANANA, MABEL JR.", "BEAR, P III"} {
		once := NormalizeName(input)
		if twice := NormalizeName(once); twice != once {
			t.Errorf("NormalizeName(%q) = %q, want unchanged %q", once, twice, once)
		}
	}
}
