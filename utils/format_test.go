package utils

import "testing"

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		want   string
	}{
		{name: "zero", amount: 0, want: "Rp 0"},
		{name: "under a thousand", amount: 500, want: "Rp 500"},
		{name: "thousands", amount: 18000, want: "Rp 18.000"},
		{name: "hundreds of thousands", amount: 105000, want: "Rp 105.000"},
		{name: "millions", amount: 1250000, want: "Rp 1.250.000"},
		{name: "negative adjustment", amount: -5000, want: "Rp -5.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatIDR(tt.amount); got != tt.want {
				t.Errorf("FormatIDR(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
