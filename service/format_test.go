package service

import (
	"math"
	"testing"
)

func TestToFixed2(t *testing.T) {

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{1, "1.00"},
		{0.125, "0.13"},
		{-0.125, "-0.13"},
		{1.005, "1.00"},
		{2.675, "2.67"},
		{1e-9, "0.00"},
		{-0.001, "-0.00"},
		{1234567.891, "1234567.89"},
		{905976.0242521937, "905976.02"},
		{-1125088.3385555358, "-1125088.34"},
		{1e21, "1e+21"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		if got := ToFixed2(tt.in); got != tt.want {
			t.Errorf("ToFixed2(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
