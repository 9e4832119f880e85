package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}

	if got := NewMoneyFromInt(300).String(); got != "300.00" {
		t.Fatalf("NewMoneyFromInt got %s", got)
	}
}

func TestRoundEuro(t *testing.T) {
	cases := []struct{ in, out string }{
		{"1624.8", "1625"},
		{"1624.5", "1625"},
		{"1624.49", "1624"},
		{"372.5", "373"},
		{"0", "0"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		if got := m.RoundEuro().Decimal.String(); got != c.out {
			t.Fatalf("RoundEuro(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestAnnual(t *testing.T) {
	m := NewMoney(100)
	if got := m.Annual().String(); got != "1200.00" {
		t.Fatalf("Annual got %s", got)
	}
}

func TestClampAndComparisons(t *testing.T) {
	lower, upper := NewMoneyFromInt(300), NewMoneyFromInt(1800)
	if got := NewMoneyFromInt(0).Clamp(lower, upper); !got.Equal(lower) {
		t.Fatalf("clamp below got %s", got)
	}
	if got := NewMoneyFromInt(2500).Clamp(lower, upper); !got.Equal(upper) {
		t.Fatalf("clamp above got %s", got)
	}
	if got := NewMoney(670).Clamp(lower, upper); got.String() != "670.00" {
		t.Fatalf("clamp inside got %s", got)
	}
	if !Max(NewMoney(737), NewMoney(745)).Equal(NewMoney(745)) {
		t.Fatalf("Max mismatch")
	}
	if !Min(NewMoney(737), NewMoney(745)).Equal(NewMoney(737)) {
		t.Fatalf("Min mismatch")
	}
	if !NewMoney(-1).IsNegative() || Zero().IsNegative() {
		t.Fatalf("IsNegative mismatch")
	}
}

func TestArithmetic(t *testing.T) {
	a, b := NewMoney(1000), NewMoney(250.5)
	if got := a.Add(b).String(); got != "1250.50" {
		t.Fatalf("Add got %s", got)
	}
	if got := a.Sub(b).String(); got != "749.50" {
		t.Fatalf("Sub got %s", got)
	}
	if got := a.Mul(stddec.NewFromFloat(1.1)).String(); got != "1100.00" {
		t.Fatalf("Mul got %s", got)
	}
	if got := a.Div(stddec.NewFromInt(4)).String(); got != "250.00" {
		t.Fatalf("Div got %s", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "0,00 €"},
		{300, "300,00 €"},
		{1624.8, "1.624,80 €"},
		{1234567.891, "1.234.567,89 €"},
		{-75, "-75,00 €"},
	}
	for _, c := range cases {
		if got := NewMoney(c.in).Format(); got != c.out {
			t.Fatalf("Format(%v) got %q want %q", c.in, got, c.out)
		}
	}
}
