// Package geo provides great-circle distance math for service ranking.
package geo

import (
	"fmt"
	"math"
)

// earthRadiusKm is the mean Earth radius.
const earthRadiusKm = 6371.0

// DistanceKm calculates the haversine distance between two coordinates in
// kilometers.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FormatDistance renders a distance for display: meters with no decimal below
// one kilometer ("450m"), kilometers to one decimal otherwise ("3.2km").
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0fm", km*1000)
	}
	return fmt.Sprintf("%.1fkm", km)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
