package parse

import "testing"

func TestFirstNumber(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		want      float64
		wantFound bool
	}{
		{
			name:      "plain integer",
			input:     "450",
			want:      450,
			wantFound: true,
		},
		{
			name:      "integer with unit suffix",
			input:     "450 kcal",
			want:      450,
			wantFound: true,
		},
		{
			name:      "decimal value",
			input:     "about 12.5 grams",
			want:      12.5,
			wantFound: true,
		},
		{
			name:      "first of several numbers wins",
			input:     "10-12 reps, rest 60s",
			want:      10,
			wantFound: true,
		},
		{
			name:      "trailing decimal point is not consumed",
			input:     "3. stretch",
			want:      3,
			wantFound: true,
		},
		{
			name:      "no digits at all",
			input:     "as needed",
			wantFound: false,
		},
		{
			name:      "empty string",
			input:     "",
			wantFound: false,
		},
		{
			name:      "punctuation only",
			input:     "n/a - none",
			wantFound: false,
		},
		{
			name:      "explicit zero is found",
			input:     "Fat: 0g",
			want:      0,
			wantFound: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := FirstNumber(tc.input)
			if found != tc.wantFound {
				t.Fatalf("FirstNumber(%q) found = %v, want %v", tc.input, found, tc.wantFound)
			}
			if found && got != tc.want {
				t.Errorf("FirstNumber(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestFirstNumberOrZero(t *testing.T) {
	t.Run("returns zero sentinel for text without digits", func(t *testing.T) {
		if got := FirstNumberOrZero("no digits here"); got != 0 {
			t.Errorf("FirstNumberOrZero = %v, want 0", got)
		}
	})

	t.Run("returns the first number otherwise", func(t *testing.T) {
		if got := FirstNumberOrZero("Protein: 20.5g"); got != 20.5 {
			t.Errorf("FirstNumberOrZero = %v, want 20.5", got)
		}
	})
}
