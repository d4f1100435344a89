package domain

import "testing"

func TestKindValid(t *testing.T) {
	for _, kind := range []Kind{KindStockIn, KindIssue, KindReturn, KindAdjust} {
		if !kind.Valid() {
			t.Errorf("%q should be valid", kind)
		}
	}
	for _, kind := range []Kind{"", "restock", "ISSUE", "stock-in"} {
		if kind.Valid() {
			t.Errorf("%q should not be valid", kind)
		}
	}
}

func TestSignedQuantity(t *testing.T) {
	cases := []struct {
		kind      Kind
		requested int
		want      int
	}{
		{KindIssue, 5, -5},
		{KindIssue, -5, -5},
		{KindStockIn, 50, 50},
		{KindStockIn, -50, 50},
		{KindReturn, 5, 5},
		{KindReturn, -5, 5},
		{KindAdjust, -3, -3},
		{KindAdjust, 4, 4},
		{KindAdjust, 0, 0},
	}
	for _, tc := range cases {
		if got := SignedQuantity(tc.kind, tc.requested); got != tc.want {
			t.Errorf("SignedQuantity(%s, %d) = %d, want %d", tc.kind, tc.requested, got, tc.want)
		}
	}
}

func TestKindLabel(t *testing.T) {
	if got := KindStockIn.Label(); got != "stock in" {
		t.Errorf("label = %q, want %q", got, "stock in")
	}
	// Unknown kinds fall back to the raw value instead of an empty label.
	if got := Kind("mystery").Label(); got != "mystery" {
		t.Errorf("label = %q, want %q", got, "mystery")
	}
}
