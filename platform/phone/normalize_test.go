package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"local argentine number", "011 4567-8901", "+541145678901"},
		{"already e164", "+541145678901", "+541145678901"},
		{"international with spaces", "+54 11 4567 8901", "+541145678901"},
		{"garbage stays as typed", "no es un teléfono", "no es un teléfono"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeE164(tc.input); got != tc.want {
				t.Errorf("NormalizeE164(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
