package utils

import (
	"math"
	"testing"
	"time"
)

func TestFormatCompact(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1_250_000_000, "$1.3B"},
		{3_400_000, "$3.4M"},
		{56_700, "$56.7K"},
		{1500, "$1.5K"},
		{999, "$999"},
		{12.346, "$12.35"},
		{0, "$0"},
	}

	for _, tc := range cases {
		if got := FormatCompact(tc.in); got != tc.want {
			t.Errorf("FormatCompact(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCompact_GuardsInvalidValues(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := FormatCompact(v); got != "—" {
			t.Errorf("FormatCompact(%v) = %q, want dash", v, got)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234567.891, "$1,234,567.89"},
		{999.5, "$999.50"},
		{0, "$0.00"},
	}

	for _, tc := range cases {
		if got := FormatUSD(tc.in); got != tc.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if got := FormatUSD(math.NaN()); got != "—" {
		t.Errorf("FormatUSD(NaN) = %q, want dash", got)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{12.3456, "$12.35"},
		{0.0456, "$0.0456"},
		{0.00000412, "$0.00000412"},
		{1, "$1"},
	}

	for _, tc := range cases {
		if got := FormatPrice(tc.in); got != tc.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPrice_GuardsInvalidValues(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), 0, -3} {
		if got := FormatPrice(v); got != "—" {
			t.Errorf("FormatPrice(%v) = %q, want dash", v, got)
		}
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ago  time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{12 * time.Minute, "12m"},
		{3 * time.Hour, "3h"},
		{49 * time.Hour, "2d"},
	}

	for _, tc := range cases {
		launched := now.Add(-tc.ago).UnixMilli()
		if got := Age(launched, now); got != tc.want {
			t.Errorf("Age(-%v) = %q, want %q", tc.ago, got, tc.want)
		}
	}

	if got := Age(0, now); got != "—" {
		t.Errorf("Age(0) = %q, want dash", got)
	}
}
