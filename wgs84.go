package earthcoord

import "fmt"

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 Ellipsoid

// DefaultConverter is a WGS84 ellipsoid based converter using MeanEarth for
// the spherical conversions, without logging or metrics.
var DefaultConverter *Converter

func init() {
	const semiMajorAxis = 6378137
	const flattening = 1 / 298.257223563
	var err error
	WGS84, err = NewEllipsoid(semiMajorAxis, flattening)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 ellipsoid: %s", err))
	}
	DefaultConverter = NewConverter(WGS84)
}
