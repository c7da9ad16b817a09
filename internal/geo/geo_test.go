package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		expected               float64
		tolerance              float64
	}{
		{
			name: "Same point is zero",
			lat1: 23.7465, lng1: 90.3742,
			lat2: 23.7465, lng2: 90.3742,
			expected:  0,
			tolerance: 0.001,
		},
		{
			name: "Dhanmondi to Gulshan",
			lat1: 23.7465, lng1: 90.3742,
			lat2: 23.7925, lng2: 90.4147,
			expected:  6.5,
			tolerance: 0.5,
		},
		{
			name: "Antipodal points are half the circumference",
			lat1: 0, lng1: 0,
			lat2: 0, lng2: 180,
			expected:  20015,
			tolerance: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("Expected ~%.1f km, got %.3f km", tt.expected, got)
			}
		})
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	forward := DistanceKm(23.7465, 90.3742, 23.7925, 90.4147)
	backward := DistanceKm(23.7925, 90.4147, 23.7465, 90.3742)

	if math.Abs(forward-backward) > 1e-9 {
		t.Errorf("Expected symmetric distance, got %.9f vs %.9f", forward, backward)
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name     string
		km       float64
		expected string
	}{
		{name: "Sub-kilometer shows meters", km: 0.45, expected: "450m"},
		{name: "Kilometers with one decimal", km: 3.24, expected: "3.2km"},
		{name: "Exactly one kilometer", km: 1.0, expected: "1.0km"},
		{name: "Very close", km: 0.0123, expected: "12m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDistance(tt.km); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
