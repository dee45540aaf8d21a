package earthcoord

import "github.com/prometheus/client_golang/prometheus"

// Operation labels used by Metrics.
const (
	OpGeodeticToECEF       = "geodetic_to_ecef"
	OpECEFToGeodetic       = "ecef_to_geodetic"
	OpSphericalToECEF      = "spherical_to_ecef"
	OpECEFToSpherical      = "ecef_to_spherical"
	OpECEFToGeodeticApprox = "ecef_to_geodetic_approx"
	OpHorizonToECEF        = "horizon_to_ecef"
)

// Status labels used by Metrics.
const (
	StatusOK         = "ok"
	StatusDegenerate = "degenerate"
	StatusNonFinite  = "non_finite"
)

// Metrics counts conversions performed by a Converter.
type Metrics struct {
	conversions *prometheus.CounterVec
}

// NewMetrics creates the conversion counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "earthcoord",
				Name:      "conversions_total",
				Help:      "Total number of coordinate conversions",
			},
			[]string{"op", "status"},
		),
	}
	if err := reg.Register(m.conversions); err != nil {
		return nil, err
	}
	return m, nil
}

// Conversions returns the counter for op and status.
func (m *Metrics) Conversions(op, status string) prometheus.Counter {
	return m.conversions.WithLabelValues(op, status)
}

func (m *Metrics) observe(op, status string) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(op, status).Inc()
}
