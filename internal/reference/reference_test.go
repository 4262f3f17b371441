package reference

import "testing"

func TestLookupTexasTotal(t *testing.T) {
	tx, ok := Lookup("Texas")
	if !ok {
		t.Fatal("Lookup(Texas) returned !ok")
	}
	if got := tx.Total(); got != 1845 {
		t.Fatalf("Texas total = %d, want 1845", got)
	}
}

func TestLookupUnknownState(t *testing.T) {
	if _, ok := Lookup("Atlantis"); ok {
		t.Fatal("Lookup(Atlantis) returned ok for unknown state")
	}
}

func TestStateNamesSortedAndComplete(t *testing.T) {
	names := StateNames()
	if len(names) != len(Costs) {
		t.Fatalf("StateNames len = %d, want %d", len(names), len(Costs))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("StateNames not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestCostsAreNonNegative(t *testing.T) {
	for state, c := range Costs {
		for _, v := range []int{c.Rent, c.Food, c.Utilities, c.Transportation, c.Misc} {
			if v < 0 {
				t.Fatalf("%s has negative cost entry %d", state, v)
			}
		}
		if c.Total() <= 0 {
			t.Fatalf("%s has zero reference total", state)
		}
	}
}

func TestCurrencyByCode(t *testing.T) {
	eur, ok := CurrencyByCode("EUR")
	if !ok {
		t.Fatal("CurrencyByCode(EUR) returned !ok")
	}
	if eur.Symbol != "€" {
		t.Fatalf("EUR symbol = %q, want €", eur.Symbol)
	}
	if _, ok := CurrencyByCode("XYZ"); ok {
		t.Fatal("CurrencyByCode(XYZ) returned ok for unknown code")
	}
}

func TestSymbolFallsBackToCode(t *testing.T) {
	if got := Symbol("XYZ"); got != "XYZ" {
		t.Fatalf("Symbol(XYZ) = %q, want XYZ", got)
	}
}

func TestCurrencyCodes(t *testing.T) {
	codes := CurrencyCodes()
	if len(codes) != 10 {
		t.Fatalf("CurrencyCodes len = %d, want 10", len(codes))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("CurrencyCodes not sorted: %q before %q", codes[i-1], codes[i])
		}
	}
	if !IsCurrency("KRW") {
		t.Fatal("IsCurrency(KRW) = false")
	}
}
