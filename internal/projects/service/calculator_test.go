package service

import (
	"testing"

	"ironmanage_backend/platform/apperr"
)

func TestComputeLineRoundsBarsUp(t *testing.T) {
	cases := []struct {
		name       string
		requiredMm int64
		barMm      int64
		priceCents int64
		wantBars   int
		wantCost   int64
		wantOffcut int64
	}{
		{"partial bar", 4500, 6000, 10000, 1, 10000, 1500},
		{"exact bar", 6000, 6000, 10000, 1, 10000, 0},
		{"just over one bar", 7000, 6000, 10000, 2, 20000, 5000},
		{"zintro price", 7000, 6000, 12000, 2, 24000, 5000},
		{"exact multiple", 12000, 6000, 10000, 2, 20000, 0},
		{"one millimeter", 1, 6000, 10000, 1, 10000, 5999},
		{"free material", 4500, 6000, 0, 1, 0, 1500},
		{"short bar stock", 4500, 3000, 5000, 2, 10000, 1500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeLine(tc.requiredMm, tc.barMm, tc.priceCents)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.BarsNeeded != tc.wantBars {
				t.Errorf("bars = %d, want %d", got.BarsNeeded, tc.wantBars)
			}
			if got.CostCents != tc.wantCost {
				t.Errorf("cost = %d, want %d", got.CostCents, tc.wantCost)
			}
			if got.OffcutMm != tc.wantOffcut {
				t.Errorf("offcut = %d, want %d", got.OffcutMm, tc.wantOffcut)
			}
		})
	}
}

func TestComputeLineBarsAlwaysCoverRequirement(t *testing.T) {
	barMm := int64(6000)
	for requiredMm := int64(1); requiredMm <= 30000; requiredMm += 137 {
		got, err := ComputeLine(requiredMm, barMm, 10000)
		if err != nil {
			t.Fatalf("requiredMm=%d: unexpected error: %v", requiredMm, err)
		}
		total := int64(got.BarsNeeded) * barMm
		if total < requiredMm {
			t.Fatalf("requiredMm=%d: %d bars cover only %dmm", requiredMm, got.BarsNeeded, total)
		}
		if total-barMm >= requiredMm {
			t.Fatalf("requiredMm=%d: %d bars is one more than needed", requiredMm, got.BarsNeeded)
		}
		if got.OffcutMm != total-requiredMm {
			t.Fatalf("requiredMm=%d: offcut %dmm, want %dmm", requiredMm, got.OffcutMm, total-requiredMm)
		}
	}
}

func TestComputeLineDeterministic(t *testing.T) {
	first, err := ComputeLine(7500, 6000, 12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeLine(7500, 6000, 12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("identical inputs gave %+v and %+v", first, second)
	}
}

func TestComputeLineRejectsInvalidInputs(t *testing.T) {
	cases := []struct {
		name       string
		requiredMm int64
		barMm      int64
		priceCents int64
	}{
		{"zero meters", 0, 6000, 10000},
		{"negative meters", -4500, 6000, 10000},
		{"zero bar length", 4500, 0, 10000},
		{"negative bar length", 4500, -6000, 10000},
		{"negative price", 4500, 6000, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeLine(tc.requiredMm, tc.barMm, tc.priceCents)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if apperr.GetKind(err) != apperr.KindValidation {
				t.Errorf("kind = %v, want validation", apperr.GetKind(err))
			}
		})
	}
}
