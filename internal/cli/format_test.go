package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney("$", 1845); got != "$1,845" {
		t.Fatalf("FormatMoney = %q, want $1,845", got)
	}
	if got := FormatMoney("₩", 2398500.4); got != "₩2,398,500" {
		t.Fatalf("FormatMoney = %q, want ₩2,398,500", got)
	}
	if got := FormatMoney("$", -300); got != "-$300" {
		t.Fatalf("FormatMoney = %q, want -$300", got)
	}
}

func TestFormatMoneyPrecise(t *testing.T) {
	if got := FormatMoneyPrecise("€", 1234.567); got != "€1,234.57" {
		t.Fatalf("FormatMoneyPrecise = %q, want €1,234.57", got)
	}
	if got := FormatMoneyPrecise("$", 999.999); got != "$1,000.00" {
		t.Fatalf("FormatMoneyPrecise rounding = %q, want $1,000.00", got)
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(0.85); got != "0.8500" {
		t.Fatalf("FormatRate = %q, want 0.8500", got)
	}
}

func TestFormatSignedPercent(t *testing.T) {
	if got := FormatSignedPercent(5.3); got != "+5%" {
		t.Fatalf("FormatSignedPercent = %q, want +5%%", got)
	}
	if got := FormatSignedPercent(-16.3); got != "-16%" {
		t.Fatalf("FormatSignedPercent = %q, want -16%%", got)
	}
	if got := FormatSignedPercent(0); got != "+0%" {
		t.Fatalf("FormatSignedPercent = %q, want +0%%", got)
	}
}

func TestFormatShare(t *testing.T) {
	if got := FormatShare(30); got != "30.0%" {
		t.Fatalf("FormatShare = %q, want 30.0%%", got)
	}
}
