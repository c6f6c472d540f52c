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
	"testing"
)

// projWithParams builds a meter-unit projection descriptor with the
// given parameter slots set.  Parameter angles are in packed DMS form.
func projWithParams(code ProjCode, spheroid Spheroid, params map[int]float64) *Projection {
	p := &Projection{Code: code, Units: Meter, Spheroid: spheroid}
	for i, v := range params {
		p.Parameters[i] = v
	}
	return p
}

// TestProjectionRoundTrips projects a representative interior point
// forward and back through each projection and checks that the
// longitude and latitude survive.
func TestProjectionRoundTrips(t *testing.T) {
	tests := []struct {
		name      string
		proj      *Projection
		lon, lat  float64
		tolerance float64 // degrees
	}{
		{
			name: "albers",
			proj: projWithParams(Albers, WGS84, map[int]float64{
				2: 29030000, 3: 45030000, 4: -96000000, 5: 23000000,
			}),
			lon: -100, lat: 35, tolerance: 1.e-6,
		},
		{
			name: "lambert conformal conic",
			proj: projWithParams(LambertCC, WGS84, map[int]float64{
				2: 33000000, 3: 45000000, 4: -95000000, 5: 23000000,
			}),
			lon: -100, lat: 40, tolerance: 1.e-6,
		},
		{
			name: "mercator",
			proj: projWithParams(Mercator, WGS84, map[int]float64{
				4: -90000000, 5: 0,
			}),
			lon: -75, lat: 35, tolerance: 1.e-6,
		},
		{
			name: "polar stereographic",
			proj: projWithParams(PolarStereo, WGS84, map[int]float64{
				4: -100000000, 5: 71000000,
			}),
			lon: -110, lat: 75, tolerance: 1.e-6,
		},
		{
			name: "polyconic",
			proj: projWithParams(Polyconic, WGS84, map[int]float64{
				4: -96000000, 5: 23000000,
			}),
			lon: -100, lat: 35, tolerance: 1.e-6,
		},
		{
			name: "equidistant conic",
			proj: projWithParams(EquidistantC, WGS84, map[int]float64{
				2: 29030000, 3: 45030000, 4: -96000000, 5: 23000000, 8: 1,
			}),
			lon: -100, lat: 35, tolerance: 1.e-6,
		},
		{
			name: "equidistant conic one parallel",
			proj: projWithParams(EquidistantC, WGS84, map[int]float64{
				2: 37000000, 4: -96000000, 5: 23000000,
			}),
			lon: -100, lat: 35, tolerance: 1.e-6,
		},
		{
			name: "transverse mercator",
			proj: projWithParams(TM, WGS84, map[int]float64{
				2: 0.9996, 4: -75000000, 5: 0,
			}),
			lon: -73, lat: 40, tolerance: 1.e-6,
		},
		{
			name: "stereographic",
			proj: projWithParams(Stereographic, NormalSphere, map[int]float64{
				4: -100000000, 5: 40000000,
			}),
			lon: -90, lat: 30, tolerance: 1.e-6,
		},
		{
			name: "lambert azimuthal",
			proj: projWithParams(LambertAz, NormalSphere, map[int]float64{
				4: -100000000, 5: 40000000,
			}),
			lon: -110, lat: 50, tolerance: 1.e-6,
		},
		{
			name: "azimuthal equidistant",
			proj: projWithParams(AzEquidistant, NormalSphere, map[int]float64{
				4: -100000000, 5: 40000000,
			}),
			lon: -90, lat: 30, tolerance: 1.e-6,
		},
		{
			name: "gnomonic",
			proj: projWithParams(Gnomonic, NormalSphere, map[int]float64{
				4: -100000000, 5: 40000000,
			}),
			lon: -95, lat: 35, tolerance: 1.e-6,
		},
		{
			name: "orthographic",
			proj: projWithParams(Orthographic, NormalSphere, map[int]float64{
				4: -100000000, 5: 40000000,
			}),
			lon: -95, lat: 35, tolerance: 1.e-6,
		},
		{
			name: "sinusoidal",
			proj: projWithParams(Sinusoidal, NormalSphere, map[int]float64{
				4: -90000000,
			}),
			lon: -75, lat: -20, tolerance: 1.e-6,
		},
		{
			name: "equirectangular",
			proj: projWithParams(Equirect, NormalSphere, map[int]float64{
				4: -90000000, 5: 30000000,
			}),
			lon: -75, lat: 20, tolerance: 1.e-6,
		},
		{
			name: "miller",
			proj: projWithParams(Miller, NormalSphere, map[int]float64{
				4: -90000000,
			}),
			lon: -75, lat: 20, tolerance: 1.e-6,
		},
		{
			name: "oblique mercator azimuth",
			proj: projWithParams(ObMercator, WGS84, map[int]float64{
				2: 1.0, 3: 45000000, 4: -80000000, 5: 40000000, 12: 1,
			}),
			lon: -78, lat: 42, tolerance: 1.e-6,
		},
		{
			name: "oblique mercator two point",
			proj: projWithParams(ObMercator, WGS84, map[int]float64{
				2: 1.0, 5: 40000000,
				8: -90000000, 9: 30000000, 10: -70000000, 11: 50000000,
			}),
			lon: -80, lat: 41, tolerance: 1.e-6,
		},
		{
			name: "space oblique mercator",
			proj: projWithParams(SOM, WGS84, map[int]float64{
				2: 5, 3: 148, 12: 1,
			}),
			lon: -99, lat: 35, tolerance: 1.e-3,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			forward, err := NewTransformation(geoProjection(Degree), test.proj)
			if err != nil {
				t.Fatal(err)
			}
			defer forward.Close()
			inverse, err := NewTransformation(test.proj, geoProjection(Degree))
			if err != nil {
				t.Fatal(err)
			}
			defer inverse.Close()

			x, y, err := forward.Transform(test.lon, test.lat)
			if err != nil {
				t.Fatal(err)
			}
			lon, lat, err := inverse.Transform(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if absDifferent(lon, test.lon, test.tolerance) ||
				absDifferent(lat, test.lat, test.tolerance) {
				t.Errorf("round trip of (%f, %f) gave (%f, %f)",
					test.lon, test.lat, lon, lat)
			}
		})
	}
}

// TestBreakRegions checks that unprojectable points report the
// in-break outcome rather than an ordinary failure.
func TestBreakRegions(t *testing.T) {
	tests := []struct {
		name     string
		proj     *Projection
		lon, lat float64
	}{
		{
			name: "azimuthal equidistant antipode",
			proj: projWithParams(AzEquidistant, NormalSphere, map[int]float64{
				4: 0, 5: 0,
			}),
			lon: 180, lat: 0,
		},
		{
			name: "gnomonic far hemisphere",
			proj: projWithParams(Gnomonic, NormalSphere, map[int]float64{
				4: 0, 5: 0,
			}),
			lon: 120, lat: 0,
		},
		{
			name: "orthographic far hemisphere",
			proj: projWithParams(Orthographic, NormalSphere, map[int]float64{
				4: 0, 5: 0,
			}),
			lon: 120, lat: 0,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			trans, err := NewTransformation(geoProjection(Degree), test.proj)
			if err != nil {
				t.Fatal(err)
			}
			defer trans.Close()
			_, _, err = trans.Transform(test.lon, test.lat)
			if !errors.Is(err, ErrInBreakRegion) {
				t.Errorf("want in-break outcome, got %v", err)
			}
		})
	}
}

func TestMercatorPole(t *testing.T) {
	proj := projWithParams(Mercator, WGS84, map[int]float64{4: 0, 5: 0})
	trans, err := NewTransformation(geoProjection(Degree), proj)
	if err != nil {
		t.Fatal(err)
	}
	defer trans.Close()
	if _, _, err := trans.Transform(0, 90); !errors.Is(err, ErrComputationFailure) {
		t.Errorf("north pole: want computation error, got %v", err)
	}
}

func TestPolyconicConvergenceFailure(t *testing.T) {
	proj := projWithParams(Polyconic, WGS84, map[int]float64{
		4: -96000000, 5: 23000000,
	})
	trans, err := NewTransformation(proj, geoProjection(Degree))
	if err != nil {
		t.Fatal(err)
	}
	defer trans.Close()
	// A northing absurdly far outside the mapped region never settles.
	if _, _, err := trans.Transform(0, 1.e12); !errors.Is(err, ErrConvergence) {
		t.Errorf("want convergence failure, got %v", err)
	}
}

func TestLambertCCInitError(t *testing.T) {
	// Standard parallels of equal magnitude on opposite sides of the
	// equator do not define a cone.
	proj := projWithParams(LambertCC, WGS84, map[int]float64{
		2: -33000000, 3: 33000000, 4: -95000000, 5: 23000000,
	})
	if _, err := NewTransformation(geoProjection(Degree), proj); !errors.Is(err, ErrProjectionInit) {
		t.Errorf("want projection init error, got %v", err)
	}
}

func TestObliqueMercatorInitError(t *testing.T) {
	// Format B with the center on the equator is rejected.
	proj := projWithParams(ObMercator, WGS84, map[int]float64{
		2: 1.0, 3: 45000000, 4: -80000000, 5: 0, 12: 1,
	})
	if _, err := NewTransformation(geoProjection(Degree), proj); !errors.Is(err, ErrProjectionInit) {
		t.Errorf("want projection init error, got %v", err)
	}
}
