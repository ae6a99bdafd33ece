package route

import (
	"math"

	"github.com/bgraf/kmroute/geotrack"
	"github.com/jftuga/geodist"
)

// EarthRadiusKm is the sphere radius used for all route distances.
const EarthRadiusKm = 6371.0

// Distance is the haversine great-circle distance between a and b in
// kilometers on a sphere of radius EarthRadiusKm.
func Distance(a, b geotrack.GeoPoint) float64 {
	return haversineKm(coord(a), coord(b))
}

func coord(p geotrack.GeoPoint) geodist.Coord {
	return geodist.Coord{Lat: p.Lat, Lon: p.Lon}
}

// geodist.HaversineDistance uses a 6378.1 km radius, so only its coordinate
// type is used here.
func haversineKm(p, q geodist.Coord) float64 {
	lat1 := degreesToRadians(p.Lat)
	lat2 := degreesToRadians(q.Lat)
	dLat := lat2 - lat1
	dLon := degreesToRadians(q.Lon - p.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
