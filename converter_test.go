package earthcoord_test

import (
	"errors"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tzneal/earthcoord"
)

func TestDefaultConverter(t *testing.T) {
	c := earthcoord.DefaultConverter
	if c.Ellipsoid() != earthcoord.WGS84 {
		t.Fatalf("expected the WGS84 ellipsoid")
	}
	if c.Sphere() != earthcoord.MeanEarth {
		t.Fatalf("expected the mean earth sphere")
	}

	geo := earthcoord.GeodeticFromDegrees(48.352, 17.313, 531)
	p := c.GeodeticToECEF(geo)
	if p != earthcoord.WGS84.ToECEF(geo) {
		t.Fatalf("GeodeticToECEF differs from WGS84.ToECEF")
	}
	geo2, err := c.ECEFToGeodetic(p)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if math.Abs(geo2.Lat.Degrees()-48.352) > 1e-8 || math.Abs(geo2.Lng.Degrees()-17.313) > 1e-8 || math.Abs(geo2.Alt-531) > 1e-6 {
		t.Fatalf("expected %s, got %s", geo, geo2)
	}

	if c.SphericalToECEF(geo) != earthcoord.MeanEarth.ToECEF(geo) {
		t.Fatalf("SphericalToECEF differs from MeanEarth.ToECEF")
	}
	if c.ECEFToSpherical(p) != earthcoord.SphericalFromECEF(p) {
		t.Fatalf("ECEFToSpherical differs from SphericalFromECEF")
	}
	if c.ECEFToGeodeticApprox(p) != earthcoord.MeanEarth.ToGeodetic(p) {
		t.Fatalf("ECEFToGeodeticApprox differs from MeanEarth.ToGeodetic")
	}
	h := earthcoord.HorizonFromDegrees(15.2645, 231.8453, 36256)
	if c.HorizonToECEF(h) != h.ECEF() {
		t.Fatalf("HorizonToECEF differs from Horizon.ECEF")
	}

	if _, err := c.ECEFToGeodetic(earthcoord.ECEF{}); !errors.Is(err, earthcoord.ErrDegenerate) {
		t.Fatalf("expected ErrDegenerate, got %v", err)
	}
}

func TestConverterWithSphere(t *testing.T) {
	moon, err := earthcoord.NewSphere(1737400)
	if err != nil {
		t.Fatalf("error creating sphere: %s", err)
	}
	c := earthcoord.NewConverter(earthcoord.WGS84, earthcoord.WithSphere(moon))
	p := c.SphericalToECEF(earthcoord.GeodeticFromDegrees(0, 0, 100))
	if math.Abs(p.X-1737500) > 1e-6 {
		t.Fatalf("expected x 1737500, got %s", p)
	}
	g := c.ECEFToGeodeticApprox(p)
	if math.Abs(g.Alt-100) > 1e-6 {
		t.Fatalf("expected altitude 100, got %s", g)
	}
}

func TestConverterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := earthcoord.NewMetrics(reg)
	if err != nil {
		t.Fatalf("error creating metrics: %s", err)
	}
	if _, err := earthcoord.NewMetrics(reg); err == nil {
		t.Fatalf("expected an error registering the metrics twice")
	}

	c := earthcoord.NewConverter(earthcoord.WGS84, earthcoord.WithMetrics(m))
	p := c.GeodeticToECEF(earthcoord.GeodeticFromDegrees(10, 20, 30))
	for i := 0; i < 3; i++ {
		if _, err := c.ECEFToGeodetic(p); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	}
	c.ECEFToGeodetic(earthcoord.ECEF{})
	c.ECEFToGeodetic(earthcoord.ECEF{X: math.NaN()})
	c.ECEFToGeodetic(earthcoord.ECEF{X: 1e40, Z: 1e40})
	c.SphericalToECEF(earthcoord.GeodeticFromDegrees(10, 20, 30))
	c.ECEFToSpherical(p)
	c.ECEFToGeodeticApprox(p)
	c.HorizonToECEF(earthcoord.HorizonFromDegrees(10, 20, 30))

	tests := []struct {
		op, status string
		want       float64
	}{
		{earthcoord.OpGeodeticToECEF, earthcoord.StatusOK, 1},
		{earthcoord.OpECEFToGeodetic, earthcoord.StatusOK, 3},
		{earthcoord.OpECEFToGeodetic, earthcoord.StatusDegenerate, 1},
		{earthcoord.OpECEFToGeodetic, earthcoord.StatusNonFinite, 2},
		{earthcoord.OpSphericalToECEF, earthcoord.StatusOK, 1},
		{earthcoord.OpECEFToSpherical, earthcoord.StatusOK, 1},
		{earthcoord.OpECEFToGeodeticApprox, earthcoord.StatusOK, 1},
		{earthcoord.OpHorizonToECEF, earthcoord.StatusOK, 1},
	}
	for _, tc := range tests {
		if got := testutil.ToFloat64(m.Conversions(tc.op, tc.status)); got != tc.want {
			t.Errorf("%s/%s: expected %v, got %v", tc.op, tc.status, tc.want, got)
		}
	}
}

func TestConverterLogsRejectedInput(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := earthcoord.NewConverter(earthcoord.WGS84, earthcoord.WithLogger(zap.New(core)))

	if _, err := c.ECEFToGeodetic(earthcoord.WGS84.ToECEF(earthcoord.GeodeticFromDegrees(1, 2, 3))); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no log entries, got %d", logs.Len())
	}

	if _, err := c.ECEFToGeodetic(earthcoord.ECEF{X: 1, Y: 2, Z: 3}); err == nil {
		t.Fatalf("expected an error")
	}
	entries := logs.FilterMessage("Rejected ECEF position").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["x"] != 1.0 || fields["y"] != 2.0 || fields["z"] != 3.0 {
		t.Fatalf("unexpected position fields %v", fields)
	}
	if fields["status"] != earthcoord.StatusDegenerate {
		t.Fatalf("expected status %s, got %v", earthcoord.StatusDegenerate, fields["status"])
	}
}

func TestConverterNilLogger(t *testing.T) {
	c := earthcoord.NewConverter(earthcoord.WGS84, earthcoord.WithLogger(nil))
	if _, err := c.ECEFToGeodetic(earthcoord.ECEF{}); !errors.Is(err, earthcoord.ErrDegenerate) {
		t.Fatalf("expected ErrDegenerate, got %v", err)
	}
}
