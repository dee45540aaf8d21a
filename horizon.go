package earthcoord

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// ECEF places h in a frame whose X axis points north (azimuth 0), Y axis
// east (azimuth 90) and Z axis up, with the observer at the origin.
func (h Horizon) ECEF() ECEF {
	cosalt := math.Cos(h.Altitude.Radians())
	return ECEF{
		X: cosalt * math.Cos(h.Azimuth.Radians()) * h.Distance,
		Y: cosalt * math.Sin(h.Azimuth.Radians()) * h.Distance,
		Z: math.Sin(h.Altitude.Radians()) * h.Distance,
	}
}

// HorizonFromECEF is the inverse of Horizon.ECEF. Azimuth is in [0, 2pi).
func HorizonFromECEF(v ECEF) Horizon {
	az := math.Atan2(v.Y, v.X)
	if az < 0 {
		az += 2 * math.Pi
	}
	return Horizon{
		Altitude: s1.Angle(math.Atan2(v.Z, math.Hypot(v.X, v.Y))),
		Azimuth:  s1.Angle(az),
		Distance: v.Norm(),
	}
}

// LocalFrame is a north/east/up frame anchored at a point on or above an
// ellipsoid. Up is the ellipsoid normal at the origin.
type LocalFrame struct {
	origin Geodetic
	center ECEF
	north  r3.Vector
	east   r3.Vector
	up     r3.Vector
}

// NewLocalFrame returns the local frame at origin.
func NewLocalFrame(e Ellipsoid, origin Geodetic) LocalFrame {
	sinlat, coslat := math.Sin(origin.Lat.Radians()), math.Cos(origin.Lat.Radians())
	sinlon, coslon := math.Sin(origin.Lng.Radians()), math.Cos(origin.Lng.Radians())

	return LocalFrame{
		origin: origin,
		center: e.ToECEF(origin),
		north:  r3.Vector{X: -sinlat * coslon, Y: -sinlat * sinlon, Z: coslat},
		east:   r3.Vector{X: -sinlon, Y: coslon, Z: 0},
		up:     r3.Vector{X: coslat * coslon, Y: coslat * sinlon, Z: sinlat},
	}
}

// Origin returns the geodetic position the frame is anchored at.
func (f LocalFrame) Origin() Geodetic { return f.origin }

// OriginECEF returns the frame origin in ECEF.
func (f LocalFrame) OriginECEF() ECEF { return f.center }

// FromLocal rotates a north/east/up vector into ECEF axes. The result is a
// displacement, not a position.
func (f LocalFrame) FromLocal(v ECEF) ECEF {
	return ECEFFromVector(f.north.Mul(v.X).Add(f.east.Mul(v.Y)).Add(f.up.Mul(v.Z)))
}

// ToLocal rotates an ECEF displacement into north/east/up axes.
func (f LocalFrame) ToLocal(d ECEF) ECEF {
	v := d.Vector()
	return ECEF{X: v.Dot(f.north), Y: v.Dot(f.east), Z: v.Dot(f.up)}
}

// HorizonToECEF returns the ECEF position seen from the frame origin in
// direction h at distance h.Distance.
func (f LocalFrame) HorizonToECEF(h Horizon) ECEF {
	return f.center.Add(f.FromLocal(h.ECEF()))
}

// ECEFToHorizon returns the look angles and range from the frame origin to p.
func (f LocalFrame) ECEFToHorizon(p ECEF) Horizon {
	return HorizonFromECEF(f.ToLocal(p.Sub(f.center)))
}
