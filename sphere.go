package earthcoord

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
)

const meanEarthRadius = 6371000.0

// MeanEarth is a sphere with the mean radius of the Earth.
var MeanEarth = Sphere{radius: meanEarthRadius}

// Sphere is a spherical Earth model. It trades the ellipsoid's accuracy for
// plain trigonometry; altitudes from MeanEarth differ from WGS84 by up to ~15 km
// and latitudes by up to ~0.2 degrees.
type Sphere struct {
	radius float64
}

// NewSphere constructs a sphere of the given radius in meters.
func NewSphere(radius float64) (Sphere, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0.0 {
		return Sphere{}, errors.New("Radius must be greater than zero")
	}
	return Sphere{radius: radius}, nil
}

// Radius returns the sphere radius in meters.
func (s Sphere) Radius() float64 { return s.radius }

// ToECEF converts a latitude, longitude and altitude above the sphere to ECEF.
func (s Sphere) ToECEF(g Geodetic) ECEF {
	return Spherical{Lat: g.Lat, Lng: g.Lng, Radius: g.Alt + s.radius}.ECEF()
}

// ToGeodetic approximates geodetic coordinates by treating the Earth as the
// sphere s. The altitude is the distance from the center minus the radius.
func (s Sphere) ToGeodetic(p ECEF) Geodetic {
	sp := SphericalFromECEF(p)
	return Geodetic{Lat: sp.Lat, Lng: sp.Lng, Alt: sp.Radius - s.radius}
}

// ECEF converts spherical coordinates to ECEF.
func (sp Spherical) ECEF() ECEF {
	coslat := math.Cos(sp.Lat.Radians())
	return ECEF{
		X: coslat * math.Cos(sp.Lng.Radians()) * sp.Radius,
		Y: coslat * math.Sin(sp.Lng.Radians()) * sp.Radius,
		Z: math.Sin(sp.Lat.Radians()) * sp.Radius,
	}
}

// SphericalFromECEF converts ECEF coordinates to spherical coordinates. The
// origin maps to latitude and longitude zero.
func SphericalFromECEF(p ECEF) Spherical {
	return Spherical{
		Lat:    s1.Angle(math.Atan2(p.Z, math.Hypot(p.X, p.Y))),
		Lng:    s1.Angle(math.Atan2(p.Y, p.X)),
		Radius: p.Norm(),
	}
}
