// Package earthcoord converts positions between ECEF, geodetic, spherical
// and local horizon coordinates.
package earthcoord

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

// ErrDegenerate is returned by the inverse transform for positions so close
// to the center of the ellipsoid that the resolvent has no meaningful root.
var ErrDegenerate = errors.New("position too close to the center of the ellipsoid")

// ErrNonFinite is returned by the inverse transform for positions with a NaN
// or infinite component, and for positions so far from the center that the
// resolvent overflows.
var ErrNonFinite = errors.New("position has a non-finite component")

// Ellipsoid is a reference ellipsoid together with the scalars the forward
// and inverse transforms derive from it. The zero value is not usable, build
// one with NewEllipsoid.
type Ellipsoid struct {
	semiMajorAxis float64
	flattening    float64

	e2          float64 // first eccentricity squared
	aaDc        float64 // a^2 / c, c being the linear eccentricity
	bbDcc       float64 // b^2 / c^2
	p1mee       float64 // 1 - e^2
	invAA       float64 // 1 / a^2
	p1meeDAA    float64 // (1 - e^2) / a^2
	eeee        float64 // e^4
	eeeeD4      float64 // e^4 / 4
	eeD2        float64 // e^2 / 2
	hMin        float64 // e^12 / 4
	semiMinorAx float64
}

const (
	inv3      = 1.0 / 3
	inv6      = 1.0 / 6
	invCbrt2  = 0.79370052598409973737585281963615
	minInvFla = 250
	maxInvFla = 350
)

// NewEllipsoid receives the ellipsoid semi-major axis in meters and its
// flattening and precomputes the constants used by the transforms.
func NewEllipsoid(semiMajorAxis, flattening float64) (Ellipsoid, error) {
	if math.IsNaN(semiMajorAxis) || math.IsInf(semiMajorAxis, 0) || semiMajorAxis <= 0.0 {
		return Ellipsoid{}, errors.New("Semi-major axis must be greater than zero")
	}
	invF := 1 / flattening
	if math.IsNaN(invF) || (invF < minInvFla) || (invF > maxInvFla) {
		return Ellipsoid{}, errors.New("Inverse flattening must be between 250 and 350")
	}

	a := semiMajorAxis
	b := a * (1 - flattening)
	e2 := flattening * (2 - flattening)
	c := math.Sqrt(a*a - b*b)
	ee := e2 * e2

	return Ellipsoid{
		semiMajorAxis: a,
		flattening:    flattening,
		e2:            e2,
		aaDc:          a * a / c,
		bbDcc:         (b * b) / (c * c),
		p1mee:         1 - e2,
		invAA:         1 / (a * a),
		p1meeDAA:      (1 - e2) / (a * a),
		eeee:          ee,
		eeeeD4:        ee / 4,
		eeD2:          e2 / 2,
		hMin:          ee * ee * ee / 4,
		semiMinorAx:   b,
	}, nil
}

// SemiMajorAxis returns the equatorial radius in meters.
func (e Ellipsoid) SemiMajorAxis() float64 { return e.semiMajorAxis }

// SemiMinorAxis returns the polar radius in meters.
func (e Ellipsoid) SemiMinorAxis() float64 { return e.semiMinorAx }

// Flattening returns the ellipsoid flattening.
func (e Ellipsoid) Flattening() float64 { return e.flattening }

// EccentricitySquared returns the first eccentricity squared.
func (e Ellipsoid) EccentricitySquared() float64 { return e.e2 }

// ToECEF converts geodetic coordinates to ECEF coordinates. Latitudes outside
// [-90, 90] degrees are not rejected.
func (e Ellipsoid) ToECEF(g Geodetic) ECEF {
	coslat := math.Cos(g.Lat.Radians())
	sinlat := math.Sin(g.Lat.Radians())
	coslon := math.Cos(g.Lng.Radians())
	sinlon := math.Sin(g.Lng.Radians())

	// radius of curvature in the prime vertical
	N := e.aaDc / math.Sqrt(coslat*coslat+e.bbDcc)
	d := (N + g.Alt) * coslat

	return ECEF{
		X: d * coslon,
		Y: d * sinlon,
		Z: (e.p1mee*N + g.Alt) * sinlat,
	}
}

// ToGeodetic converts ECEF coordinates to geodetic coordinates using the
// closed form solution of K. Osen, "Accurate Conversion of Earth-Fixed
// Earth-Centered Coordinates to Geodetic Coordinates" (2019): the quartic
// for the ellipsoid normal is reduced to a depressed cubic, solved with
// Cardano's method, and the root is refined with a single Newton-Raphson
// step.
//
// Longitude is atan2(y, x), in [-pi, pi], and zero on the polar axis.
// Altitude is negative inside the ellipsoid. Positions within the resolvent
// floor around the center return ErrDegenerate.
func (e Ellipsoid) ToGeodetic(p ECEF) (Geodetic, error) {
	x, y, z := p.X, p.Y, p.Z
	if !p.IsFinite() {
		return Geodetic{}, fmt.Errorf("%w: %s", ErrNonFinite, p)
	}

	wSquared := x*x + y*y
	m := wSquared * e.invAA
	n := z * z * e.p1meeDAA
	mpn := m + n
	pp := inv6 * (mpn - e.eeee)
	G := m * n * e.eeeeD4
	H := 2*pp*pp*pp + G

	if H < e.hMin {
		return Geodetic{}, fmt.Errorf("%w: %s", ErrDegenerate, p)
	}

	C := math.Cbrt(H+G+2*math.Sqrt(H*G)) * invCbrt2
	i := -e.eeeeD4 - 0.5*mpn
	beta := inv3*i - C - pp*pp/C
	k := e.eeeeD4 * (e.eeeeD4 - mpn)

	tLeft := math.Sqrt(math.Sqrt(beta*beta-k) - 0.5*(beta+i))
	// (beta-i)/2 drops just below zero from rounding near +-45.3 degrees
	tRight := math.Sqrt(math.Abs(0.5 * (beta - i)))
	if m >= n {
		tRight = -tRight
	}
	t := tLeft + tRight

	// one Newton-Raphson correction
	g := 2 * e.eeD2 * (m - n)
	tt := t * t
	F := tt*tt + 2*i*tt + g*t + k
	t -= F / (4*tt*t + 4*i*t + g)

	u := t + e.eeD2
	v := t - e.eeD2
	w := math.Sqrt(wSquared)
	zu := z * u
	wv := w * v

	uv := u * v
	invuv := 1 / uv
	dw := w - wv*invuv
	dz := z - zu*e.p1mee*invuv
	da := math.Sqrt(dw*dw + dz*dz)
	if u < 1 {
		da = -da
	}

	lat := math.Atan2(zu, wv)
	// H*G overflows from around 1e39 m
	if !finite(t) || !finite(uv) || !finite(lat) || !finite(da) {
		return Geodetic{}, fmt.Errorf("%w: %s is out of range", ErrNonFinite, p)
	}

	return Geodetic{
		Lat: s1.Angle(lat),
		Lng: s1.Angle(math.Atan2(y, x)),
		Alt: da,
	}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
