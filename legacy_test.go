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

func TestLegacyRoundTrips(t *testing.T) {
	tests := []struct {
		name      string
		proj      *Projection
		lon, lat  float64
		tolerance float64 // degrees
	}{
		{
			name: "van der grinten",
			proj: projWithParams(VanDerGrinten, NormalSphere, map[int]float64{
				4: -90000000,
			}),
			lon: -75, lat: 35, tolerance: 1.e-6,
		},
		{
			name: "hammer",
			proj: projWithParams(Hammer, NormalSphere, map[int]float64{
				4: -90000000,
			}),
			lon: -75, lat: 35, tolerance: 1.e-6,
		},
		{
			name: "mollweide",
			proj: projWithParams(Mollweide, NormalSphere, map[int]float64{
				4: -90000000,
			}),
			lon: -75, lat: 35, tolerance: 1.e-6,
		},
		{
			name: "wagner iv",
			proj: projWithParams(WagnerIV, NormalSphere, map[int]float64{
				4: -90000000,
			}),
			lon: -75, lat: 35, tolerance: 1.e-6,
		},
		{
			name: "wagner vii",
			proj: projWithParams(WagnerVII, NormalSphere, map[int]float64{
				4: -90000000,
			}),
			lon: -75, lat: 35, tolerance: 1.e-5,
		},
		{
			name: "near-side perspective",
			proj: projWithParams(GVNSP, NormalSphere, map[int]float64{
				2: 35786000, 4: -100000000, 5: 40000000,
			}),
			lon: -95, lat: 35, tolerance: 1.e-6,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			registry := NewLegacyRegistry()
			forward, err := NewTransformationWithRegistry(
				geoProjection(Degree), test.proj, registry)
			if err != nil {
				t.Fatal(err)
			}
			defer forward.Close()
			inverse, err := NewTransformationWithRegistry(
				test.proj, geoProjection(Degree), registry)
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

func TestLegacyInitCount(t *testing.T) {
	registry := NewLegacyRegistry()
	proj := projWithParams(VanDerGrinten, NormalSphere, map[int]float64{
		4: -90000000,
	})
	trans, err := NewTransformationWithRegistry(geoProjection(Degree), proj, registry)
	if err != nil {
		t.Fatal(err)
	}
	defer trans.Close()

	if _, _, err := trans.Transform(-75, 35); err != nil {
		t.Fatal(err)
	}
	if got := registry.InitCount(); got != 1 {
		t.Errorf("after first transform: InitCount() = %d, want 1", got)
	}

	// An unchanged fingerprint skips re-initialization.
	if _, _, err := trans.Transform(-80, 30); err != nil {
		t.Fatal(err)
	}
	if got := registry.InitCount(); got != 1 {
		t.Errorf("after repeated transform: InitCount() = %d, want 1", got)
	}

	// A second transformation with the same setup reuses the cache.
	trans2, err := NewTransformationWithRegistry(geoProjection(Degree), proj, registry)
	if err != nil {
		t.Fatal(err)
	}
	defer trans2.Close()
	if _, _, err := trans2.Transform(-75, 35); err != nil {
		t.Fatal(err)
	}
	if got := registry.InitCount(); got != 1 {
		t.Errorf("after shared-setup transform: InitCount() = %d, want 1", got)
	}

	// Changing a fingerprinted parameter forces re-initialization.
	changed := *proj
	changed.Parameters[6] = 2000000 // false easting
	trans3, err := NewTransformationWithRegistry(geoProjection(Degree), &changed, registry)
	if err != nil {
		t.Fatal(err)
	}
	defer trans3.Close()
	if _, _, err := trans3.Transform(-75, 35); err != nil {
		t.Fatal(err)
	}
	if got := registry.InitCount(); got != 2 {
		t.Errorf("after changed parameters: InitCount() = %d, want 2", got)
	}

	registry.Reset()
	if got := registry.InitCount(); got != 0 {
		t.Errorf("after Reset: InitCount() = %d, want 0", got)
	}
	if _, _, err := trans.Transform(-75, 35); err != nil {
		t.Fatal(err)
	}
	if got := registry.InitCount(); got != 1 {
		t.Errorf("after Reset and transform: InitCount() = %d, want 1", got)
	}
}

func TestLegacyMigratedProjectionRejected(t *testing.T) {
	proj := projWithParams(Albers, WGS84, map[int]float64{
		2: 29030000, 3: 45030000, 4: -96000000, 5: 23000000,
	})
	if _, err := legacyForwardInit(proj); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("forward: want invalid input error, got %v", err)
	}
	if _, err := legacyInverseInit(proj); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("inverse: want invalid input error, got %v", err)
	}
}

func TestLegacyBreakRegions(t *testing.T) {
	registry := NewLegacyRegistry()

	// A point off the disk of the Hammer projection.
	hammer := projWithParams(Hammer, NormalSphere, map[int]float64{4: 0})
	inverse, err := NewTransformationWithRegistry(hammer, geoProjection(Degree), registry)
	if err != nil {
		t.Fatal(err)
	}
	defer inverse.Close()
	if _, _, err := inverse.Transform(5.e7, 0); !errors.Is(err, ErrInBreakRegion) {
		t.Errorf("hammer off-disk point: want in-break outcome, got %v", err)
	}

	// A point beyond the horizon of the near-side perspective.
	gvnsp := projWithParams(GVNSP, NormalSphere, map[int]float64{
		2: 2000000, 4: 0, 5: 0,
	})
	forward, err := NewTransformationWithRegistry(geoProjection(Degree), gvnsp, registry)
	if err != nil {
		t.Fatal(err)
	}
	defer forward.Close()
	if _, _, err := forward.Transform(90, 0); !errors.Is(err, ErrInBreakRegion) {
		t.Errorf("perspective far point: want in-break outcome, got %v", err)
	}
}

func TestOnlyAllowThreadsafeTransforms(t *testing.T) {
	OnlyAllowThreadsafeTransforms()

	// Migrated projections still work.
	trans, err := NewTransformation(geoProjection(Degree), utmProjection(10))
	if err != nil {
		t.Fatal(err)
	}
	trans.Close()

	// Legacy-path projections are refused.
	vandg := projWithParams(VanDerGrinten, NormalSphere, map[int]float64{
		4: -90000000,
	})
	if _, err := NewTransformation(geoProjection(Degree), vandg); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("want invalid input error, got %v", err)
	}
}
