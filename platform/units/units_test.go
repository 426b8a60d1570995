package units

import "testing"

func TestCurrencyRoundTrip(t *testing.T) {
	cases := []struct {
		amount float64
		cents  int64
	}{
		{0, 0},
		{100.00, 10000},
		{120.50, 12050},
		{0.01, 1},
		{1234.56, 123456},
	}

	for _, tc := range cases {
		if got := CentsFromFloat(tc.amount); got != tc.cents {
			t.Errorf("CentsFromFloat(%v) = %d, want %d", tc.amount, got, tc.cents)
		}
		if got := FloatFromCents(tc.cents); got != tc.amount {
			t.Errorf("FloatFromCents(%d) = %v, want %v", tc.cents, got, tc.amount)
		}
	}
}

func TestCentsFromFloatRounds(t *testing.T) {
	// Binary float artifacts like 0.1+0.2 must not lose a cent.
	if got := CentsFromFloat(0.1 + 0.2); got != 30 {
		t.Errorf("CentsFromFloat(0.1+0.2) = %d, want 30", got)
	}
	if got := CentsFromFloat(19.99); got != 1999 {
		t.Errorf("CentsFromFloat(19.99) = %d, want 1999", got)
	}
}

func TestLengthRoundTrip(t *testing.T) {
	cases := []struct {
		meters float64
		mm     int64
	}{
		{0, 0},
		{6.0, 6000},
		{4.5, 4500},
		{0.001, 1},
		{7.25, 7250},
	}

	for _, tc := range cases {
		if got := MillimetersFromMeters(tc.meters); got != tc.mm {
			t.Errorf("MillimetersFromMeters(%v) = %d, want %d", tc.meters, got, tc.mm)
		}
		if got := MetersFromMillimeters(tc.mm); got != tc.meters {
			t.Errorf("MetersFromMillimeters(%d) = %v, want %v", tc.mm, got, tc.meters)
		}
	}
}
