package services

import "testing"

func TestFormatRand(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "R 0.00"},
		{"small", 5, "R 5.00"},
		{"cents", 12.5, "R 12.50"},
		{"rounds half up", 2370.005, "R 2,370.01"},
		{"worked example", 2370, "R 2,370.00"},
		{"thousands", 12345.67, "R 12,345.67"},
		{"millions", 1234567.89, "R 1,234,567.89"},
		{"exactly three digits", 999.99, "R 999.99"},
		{"four digits", 1000, "R 1,000.00"},
		{"negative", -380, "-R 380.00"},
		{"negative thousands", -12345.67, "-R 12,345.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRand(tt.amount)
			if got != tt.want {
				t.Errorf("FormatRand(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"123456789", "123,456,789"},
	}

	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{2.5, "2.5"},
		{2.25, "2.25"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := formatQty(tt.in); got != tt.want {
			t.Errorf("formatQty(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMM(t *testing.T) {
	if got := formatMM(1200); got != "1200 mm" {
		t.Errorf("formatMM(1200) = %q, want %q", got, "1200 mm")
	}
	if got := formatMM(6.5); got != "6.5 mm" {
		t.Errorf("formatMM(6.5) = %q, want %q", got, "6.5 mm")
	}
}
