package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Rounds up", 1234.56, "$1,235"},
		{"Whole thousands", 9200, "$9,200"},
		{"Small value", 42.4, "$42"},
		{"Half rounds away from zero", 2.5, "$3"},
		{"Zero", 0, "$0"},
		{"Millions", 1234567.89, "$1,234,568"},
		{"Negative", -1234.56, "-$1,235"},
		{"Negative rounds to zero", -0.4, "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestCurrencyCents(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{1234.56, "$1,234.56"},
		{793.8, "$793.80"},
		{-1234.5, "-$1,234.50"},
		{-0.001, "$0.00"},
	}

	for _, tt := range tests {
		if got := CurrencyCents(tt.amount); got != tt.expected {
			t.Errorf("CurrencyCents(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		rate     float64
		expected string
	}{
		{6.5, "6.50%"},
		{0, "0.00%"},
		{12.345, "12.35%"},
		{50, "50.00%"},
	}

	for _, tt := range tests {
		if got := Percentage(tt.rate); got != tt.expected {
			t.Errorf("Percentage(%v) = %q, expected %q", tt.rate, got, tt.expected)
		}
	}
}

func TestAmount(t *testing.T) {
	if got := Amount(9200); got != "9200.00" {
		t.Errorf("Amount(9200) = %q, expected 9200.00", got)
	}
	if got := Amount(1563.456); got != "1563.46" {
		t.Errorf("Amount(1563.456) = %q, expected 1563.46", got)
	}
}
