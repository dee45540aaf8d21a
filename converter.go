package earthcoord

import (
	"errors"

	"go.uber.org/zap"
)

// Converter bundles an ellipsoid and a sphere with optional logging and
// metrics. A Converter is immutable after construction and safe for
// concurrent use.
type Converter struct {
	ellipsoid Ellipsoid
	sphere    Sphere
	logger    *zap.Logger
	metrics   *Metrics
}

// Option configures a Converter.
type Option func(*Converter)

// WithSphere replaces MeanEarth as the sphere used by the spherical
// conversions.
func WithSphere(s Sphere) Option {
	return func(c *Converter) { c.sphere = s }
}

// WithLogger sets the logger. Rejected inverse inputs are logged at debug
// level.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics enables conversion counters.
func WithMetrics(m *Metrics) Option {
	return func(c *Converter) { c.metrics = m }
}

// NewConverter constructs a converter for ellipsoid e.
func NewConverter(e Ellipsoid, opts ...Option) *Converter {
	c := &Converter{
		ellipsoid: e,
		sphere:    MeanEarth,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ellipsoid returns the converter's reference ellipsoid.
func (c *Converter) Ellipsoid() Ellipsoid { return c.ellipsoid }

// Sphere returns the converter's sphere.
func (c *Converter) Sphere() Sphere { return c.sphere }

// GeodeticToECEF converts geodetic coordinates on the converter's ellipsoid
// to ECEF.
func (c *Converter) GeodeticToECEF(g Geodetic) ECEF {
	c.metrics.observe(OpGeodeticToECEF, StatusOK)
	return c.ellipsoid.ToECEF(g)
}

// ECEFToGeodetic converts ECEF to geodetic coordinates on the converter's
// ellipsoid. See Ellipsoid.ToGeodetic.
func (c *Converter) ECEFToGeodetic(p ECEF) (Geodetic, error) {
	g, err := c.ellipsoid.ToGeodetic(p)
	if err != nil {
		status := StatusDegenerate
		if errors.Is(err, ErrNonFinite) {
			status = StatusNonFinite
		}
		c.logger.Debug("Rejected ECEF position",
			zap.Float64("x", p.X),
			zap.Float64("y", p.Y),
			zap.Float64("z", p.Z),
			zap.String("status", status),
		)
		c.metrics.observe(OpECEFToGeodetic, status)
		return Geodetic{}, err
	}
	c.metrics.observe(OpECEFToGeodetic, StatusOK)
	return g, nil
}

// SphericalToECEF converts a latitude, longitude and altitude above the
// converter's sphere to ECEF.
func (c *Converter) SphericalToECEF(g Geodetic) ECEF {
	c.metrics.observe(OpSphericalToECEF, StatusOK)
	return c.sphere.ToECEF(g)
}

// ECEFToSpherical converts ECEF to spherical coordinates.
func (c *Converter) ECEFToSpherical(p ECEF) Spherical {
	c.metrics.observe(OpECEFToSpherical, StatusOK)
	return SphericalFromECEF(p)
}

// ECEFToGeodeticApprox approximates geodetic coordinates using the
// converter's sphere instead of the ellipsoid. It never fails.
func (c *Converter) ECEFToGeodeticApprox(p ECEF) Geodetic {
	c.metrics.observe(OpECEFToGeodeticApprox, StatusOK)
	return c.sphere.ToGeodetic(p)
}

// HorizonToECEF converts a horizon direction and distance to a vector in the
// observer-centered frame described by Horizon.ECEF.
func (c *Converter) HorizonToECEF(h Horizon) ECEF {
	c.metrics.observe(OpHorizonToECEF, StatusOK)
	return h.ECEF()
}

// LocalFrame returns the north/east/up frame at origin on the converter's
// ellipsoid.
func (c *Converter) LocalFrame(origin Geodetic) LocalFrame {
	return NewLocalFrame(c.ellipsoid, origin)
}
