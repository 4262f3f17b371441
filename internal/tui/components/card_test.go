package components

import (
	"strings"
	"testing"
)

func TestLayoutRowSumsToTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 3},
		{97, 4},
		{10, 1},
		{7, 5},
	}
	for _, c := range cases {
		widths := LayoutRow(c.total, c.n)
		if len(widths) != c.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", c.total, c.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != c.total {
			t.Fatalf("LayoutRow(%d, %d) sums to %d", c.total, c.n, sum)
		}
	}
}

func TestLayoutRowZeroItems(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Fatalf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if idx := TabIdxByKey('p'); idx != 0 {
		t.Fatalf("TabIdxByKey('p') = %d, want 0", idx)
	}
	if idx := TabIdxByKey('x'); idx != 3 {
		t.Fatalf("TabIdxByKey('x') = %d, want 3", idx)
	}
	if idx := TabIdxByKey('9'); idx != -1 {
		t.Fatalf("TabIdxByKey('9') = %d, want -1", idx)
	}
}

func TestShareBarsOneLinePerRow(t *testing.T) {
	rows := []ShareRow{
		{Label: "Housing", Value: 1100, Share: 59.6, Detail: "$1,100"},
		{Label: "Food", Value: 320, Share: 17.3, Detail: "$320"},
		{Label: "Misc", Value: 220, Share: 11.9, Detail: "$220"},
	}
	out := ShareBars(rows, 60)
	if got := len(strings.Split(out, "\n")); got != len(rows) {
		t.Fatalf("ShareBars lines = %d, want %d", got, len(rows))
	}
}

func TestShareBarsEmpty(t *testing.T) {
	if out := ShareBars(nil, 60); out != "" {
		t.Fatalf("ShareBars(nil) = %q, want empty", out)
	}
}
