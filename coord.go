package earthcoord

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// ECEF is an Earth-Centered Earth-Fixed position or displacement in meters.
// Z points through the north pole, X through latitude 0 longitude 0.
type ECEF struct {
	X, Y, Z float64
}

// ECEFFromVector converts an r3 vector in meters to ECEF.
func ECEFFromVector(v r3.Vector) ECEF {
	return ECEF{X: v.X, Y: v.Y, Z: v.Z}
}

// Vector returns p as an r3 vector.
func (p ECEF) Vector() r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// Add returns p + q.
func (p ECEF) Add(q ECEF) ECEF { return ECEFFromVector(p.Vector().Add(q.Vector())) }

// Sub returns p - q.
func (p ECEF) Sub(q ECEF) ECEF { return ECEFFromVector(p.Vector().Sub(q.Vector())) }

// Mul returns p scaled by m.
func (p ECEF) Mul(m float64) ECEF { return ECEFFromVector(p.Vector().Mul(m)) }

// Dot returns the dot product of p and q.
func (p ECEF) Dot(q ECEF) float64 { return p.Vector().Dot(q.Vector()) }

// Cross returns the cross product of p and q.
func (p ECEF) Cross(q ECEF) ECEF { return ECEFFromVector(p.Vector().Cross(q.Vector())) }

// Norm returns the distance of p from the origin.
func (p ECEF) Norm() float64 { return p.Vector().Norm() }

// Distance returns the distance between p and q.
func (p ECEF) Distance(q ECEF) float64 { return p.Sub(q).Norm() }

// IsFinite reports whether no component of p is NaN or infinite.
func (p ECEF) IsFinite() bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if !finite(c) {
			return false
		}
	}
	return true
}

func (p ECEF) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", p.X, p.Y, p.Z)
}

// Geodetic is a position relative to a reference ellipsoid: latitude and
// longitude of the surface normal and altitude in meters along it.
type Geodetic struct {
	Lat s1.Angle
	Lng s1.Angle
	Alt float64
}

// GeodeticFromDegrees returns a Geodetic for latitude and longitude in
// degrees and altitude in meters.
func GeodeticFromDegrees(lat, lng, alt float64) Geodetic {
	return Geodetic{
		Lat: s1.Angle(lat) * s1.Degree,
		Lng: s1.Angle(lng) * s1.Degree,
		Alt: alt,
	}
}

// GeodeticFromLatLng pairs an s2.LatLng with an altitude in meters.
func GeodeticFromLatLng(ll s2.LatLng, alt float64) Geodetic {
	return Geodetic{Lat: ll.Lat, Lng: ll.Lng, Alt: alt}
}

// LatLng drops the altitude.
func (g Geodetic) LatLng() s2.LatLng {
	return s2.LatLng{Lat: g.Lat, Lng: g.Lng}
}

func (g Geodetic) String() string {
	ns, ew := 'N', 'E'
	if g.Lat < 0 {
		ns = 'S'
	}
	if g.Lng < 0 {
		ew = 'W'
	}
	return fmt.Sprintf("%.6f° %c, %.6f° %c, %.0f m",
		math.Abs(g.Lat.Degrees()), ns, math.Abs(g.Lng.Degrees()), ew, g.Alt)
}

// Spherical is a position on a perfect sphere centered at the ECEF origin.
// Radius is the distance from the center in meters.
type Spherical struct {
	Lat    s1.Angle
	Lng    s1.Angle
	Radius float64
}

// SphericalFromDegrees returns a Spherical for latitude and longitude in
// degrees and radius in meters.
func SphericalFromDegrees(lat, lng, radius float64) Spherical {
	return Spherical{
		Lat:    s1.Angle(lat) * s1.Degree,
		Lng:    s1.Angle(lng) * s1.Degree,
		Radius: radius,
	}
}

func (s Spherical) String() string {
	return fmt.Sprintf("%.6f° %.6f° %.0f m", s.Lat.Degrees(), s.Lng.Degrees(), s.Radius)
}

// Horizon is a direction and distance in a local horizon frame. Altitude is
// the angle above the horizon, azimuth is measured from north towards east.
type Horizon struct {
	Altitude s1.Angle
	Azimuth  s1.Angle
	Distance float64
}

// HorizonFromDegrees returns a Horizon for altitude and azimuth in degrees
// and distance in meters.
func HorizonFromDegrees(altitude, azimuth, distance float64) Horizon {
	return Horizon{
		Altitude: s1.Angle(altitude) * s1.Degree,
		Azimuth:  s1.Angle(azimuth) * s1.Degree,
		Distance: distance,
	}
}

func (h Horizon) String() string {
	return fmt.Sprintf("alt %.6f° az %.6f° %.0f m", h.Altitude.Degrees(), h.Azimuth.Degrees(), h.Distance)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}
