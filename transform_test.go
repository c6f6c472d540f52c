/*
Copyright (C) 2018 the GCTP-Go authors.
This file is part of GCTP-Go.

GCTP-Go is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GCTP-Go is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GCTP-Go.  If not, see <http://www.gnu.org/licenses/>.
*/

package gctp

import (
	"errors"
	"strings"
	"testing"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

// absDifferent reports whether a and b differ by more than tolerance.
func absDifferent(a, b, tolerance float64) bool {
	return !floats.EqualWithinAbs(a, b, tolerance)
}

func geoProjection(units Unit) *Projection {
	return &Projection{Code: Geo, Units: units, Spheroid: WGS84}
}

func utmProjection(zone int) *Projection {
	return &Projection{Code: UTM, Zone: zone, Units: Meter, Spheroid: WGS84}
}

func TestUTMRoundTrip(t *testing.T) {
	const (
		lon = -122.0
		lat = 37.0
	)

	forward, err := NewTransformation(geoProjection(Degree), utmProjection(10))
	if err != nil {
		t.Fatal(err)
	}
	defer forward.Close()
	x, y, err := forward.Transform(lon, lat)
	if err != nil {
		t.Fatal(err)
	}
	// Zone 10 has its central meridian at 123 degrees west, so the
	// point lands east of the 500 km false easting and about 4100 km
	// north of the equator.
	if x < 500000 || x > 650000 {
		t.Errorf("easting %f out of range", x)
	}
	if y < 4050000 || y > 4150000 {
		t.Errorf("northing %f out of range", y)
	}

	inverse, err := NewTransformation(utmProjection(10), geoProjection(Degree))
	if err != nil {
		t.Fatal(err)
	}
	defer inverse.Close()
	lon2, lat2, err := inverse.Transform(x, y)
	if err != nil {
		t.Fatal(err)
	}
	const testTolerance = 1.e-6 // degrees
	if absDifferent(lon2, lon, testTolerance) || absDifferent(lat2, lat, testTolerance) {
		t.Errorf("round trip gave (%f, %f), want (%f, %f)", lon2, lat2, lon, lat)
	}
}

func TestUTMZoneFromCoordinates(t *testing.T) {
	// A zero zone derives the zone from a lon/lat pair packed into the
	// first two parameters.
	derived := &Projection{Code: UTM, Units: Meter, Spheroid: WGS84}
	derived.Parameters[0] = -122000000 // 122 degrees west
	derived.Parameters[1] = 37000000   // 37 degrees north

	td, err := NewTransformation(geoProjection(Degree), derived)
	if err != nil {
		t.Fatal(err)
	}
	defer td.Close()
	xd, yd, err := td.Transform(-122, 37)
	if err != nil {
		t.Fatal(err)
	}

	te, err := NewTransformation(geoProjection(Degree), utmProjection(10))
	if err != nil {
		t.Fatal(err)
	}
	defer te.Close()
	xe, ye, err := te.Transform(-122, 37)
	if err != nil {
		t.Fatal(err)
	}

	if absDifferent(xd, xe, 1.e-6) || absDifferent(yd, ye, 1.e-6) {
		t.Errorf("derived zone gave (%f, %f), explicit zone 10 gave (%f, %f)",
			xd, yd, xe, ye)
	}
}

func TestUTMInvalidZone(t *testing.T) {
	_, err := NewTransformation(geoProjection(Degree), utmProjection(61))
	if !errors.Is(err, ErrProjectionInit) {
		t.Errorf("zone 61: want projection init error, got %v", err)
	}
}

func TestCalcUTMZone(t *testing.T) {
	tests := []struct {
		lon  float64
		zone int
	}{
		{-180, 1},
		{-122, 10},
		{-0.5, 30},
		{0.5, 31},
		{179, 60},
	}
	for _, test := range tests {
		if got := CalcUTMZone(test.lon); got != test.zone {
			t.Errorf("CalcUTMZone(%g) = %d, want %d", test.lon, got, test.zone)
		}
	}
}

func TestGeoPassthroughUnits(t *testing.T) {
	const testTolerance = 1.e-9

	trans, err := NewTransformation(geoProjection(Degree), geoProjection(Second))
	if err != nil {
		t.Fatal(err)
	}
	defer trans.Close()
	x, y, err := trans.Transform(-122.5, 37.25)
	if err != nil {
		t.Fatal(err)
	}
	if absDifferent(x, -122.5*3600, testTolerance*3600) ||
		absDifferent(y, 37.25*3600, testTolerance*3600) {
		t.Errorf("degree to second conversion gave (%f, %f)", x, y)
	}
}

func TestIncompatibleUnits(t *testing.T) {
	// Linear units make no sense for geographic coordinates.
	_, err := NewTransformation(geoProjection(Meter), utmProjection(10))
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("meter-unit geographic input: want invalid input error, got %v", err)
	}
}

func TestInvalidProjectionCode(t *testing.T) {
	bad := &Projection{Code: 9999, Units: Meter}
	if _, err := NewTransformation(bad, geoProjection(Degree)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("input code 9999: want invalid input error, got %v", err)
	}
	if _, err := NewTransformation(geoProjection(Degree), bad); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("output code 9999: want invalid input error, got %v", err)
	}
}

func TestUnsupportedProjection(t *testing.T) {
	robinson := &Projection{Code: Robinson, Units: Meter, Spheroid: NormalSphere}
	trans, err := NewTransformationWithRegistry(geoProjection(Degree), robinson,
		NewLegacyRegistry())
	if err != nil {
		t.Fatal(err)
	}
	defer trans.Close()
	if _, _, err := trans.Transform(0, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Robinson: want invalid input error, got %v", err)
	}
}

func TestNilTransformation(t *testing.T) {
	var trans *Transformation
	trans.Close() // must not panic
	if _, _, err := trans.Transform(0, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil transformation: want invalid input error, got %v", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	trans, err := NewTransformation(geoProjection(Degree), utmProjection(10))
	if err != nil {
		t.Fatal(err)
	}
	trans.Close()
	trans.Close()
}

func TestProjectionAccessors(t *testing.T) {
	in := geoProjection(Degree)
	out := utmProjection(10)
	trans, err := NewTransformation(in, out)
	if err != nil {
		t.Fatal(err)
	}
	defer trans.Close()
	if got := trans.InputProjection(); got != *in {
		t.Errorf("InputProjection() = %+v, want %+v", got, *in)
	}
	if got := trans.OutputProjection(); got != *out {
		t.Errorf("OutputProjection() = %+v, want %+v", got, *out)
	}
}

func TestReportParameters(t *testing.T) {
	var messages []string
	SetMessageCallback(func(_ MessageType, message string) {
		messages = append(messages, message)
	})
	defer SetMessageCallback(nil)

	trans, err := NewTransformation(geoProjection(Degree), utmProjection(10))
	if err != nil {
		t.Fatal(err)
	}
	defer trans.Close()
	trans.ReportParameters()

	if len(messages) == 0 {
		t.Fatal("no parameter report messages")
	}
	report := strings.Join(messages, "\n")
	for _, want := range []string{"UNIVERSAL TRANSVERSE MERCATOR", "GEOGRAPHIC", "Scale Factor"} {
		if !strings.Contains(report, want) {
			t.Errorf("parameter report missing %q:\n%s", want, report)
		}
	}
}

func TestTransformErrorMessages(t *testing.T) {
	var errorMessages []string
	SetMessageCallback(func(messageType MessageType, message string) {
		if messageType == ErrorMessage {
			errorMessages = append(errorMessages, message)
		}
	})
	defer SetMessageCallback(nil)

	trans, err := NewTransformation(geoProjection(Degree), projWithParams(Mercator, WGS84, nil))
	if err != nil {
		t.Fatal(err)
	}
	defer trans.Close()

	if _, _, err := trans.Transform(0, 90); !errors.Is(err, ErrComputationFailure) {
		t.Fatalf("pole transform: want computation error, got %v", err)
	}
	if len(errorMessages) == 0 {
		t.Fatal("transform failure sent no error message to the callback")
	}
	if !strings.Contains(errorMessages[0], "forward transformation") {
		t.Errorf("unexpected error message %q", errorMessages[0])
	}
}

func TestTransformer(t *testing.T) {
	trans, err := NewTransformation(geoProjection(Degree), utmProjection(10))
	if err != nil {
		t.Fatal(err)
	}
	defer trans.Close()

	g, err := geom.LineString{
		geom.Point{X: -122, Y: 37},
		geom.Point{X: -121.5, Y: 37.5},
	}.Transform(trans.Transformer())
	if err != nil {
		t.Fatal(err)
	}
	ls := g.(geom.LineString)
	x, y, err := trans.Transform(-122, 37)
	if err != nil {
		t.Fatal(err)
	}
	if ls[0].X != x || ls[0].Y != y {
		t.Errorf("geometry transform gave (%f, %f), want (%f, %f)",
			ls[0].X, ls[0].Y, x, y)
	}
}

func TestTransformPoints(t *testing.T) {
	trans, err := NewTransformation(geoProjection(Degree), utmProjection(10))
	if err != nil {
		t.Fatal(err)
	}
	defer trans.Close()

	points := []geom.Point{{X: -122, Y: 37}, {X: -123, Y: 38}, {X: -121, Y: 36}}
	out, err := trans.TransformPoints(points)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(points) {
		t.Fatalf("got %d points, want %d", len(out), len(points))
	}
	for i, p := range points {
		x, y, err := trans.Transform(p.X, p.Y)
		if err != nil {
			t.Fatal(err)
		}
		if out[i].X != x || out[i].Y != y {
			t.Errorf("point %d: got (%f, %f), want (%f, %f)", i, out[i].X, out[i].Y, x, y)
		}
	}
}
