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
	"math"
	"testing"
)

func TestDMSToDegrees(t *testing.T) {
	const testTolerance = 1.e-9

	tests := []struct {
		dms  float64
		want float64
	}{
		{0, 0},
		{45030000, 45.5},
		{-45030000, -45.5},
		{120025045.25, 120.0 + 25.0/60.0 + 45.25/3600.0},
		{-122000000, -122},
		{90000000, 90},
		{360000000, 360},
	}
	for _, test := range tests {
		got, err := DMSToDegrees(test.dms)
		if err != nil {
			t.Errorf("DMSToDegrees(%g): %v", test.dms, err)
			continue
		}
		if absDifferent(got, test.want, testTolerance) {
			t.Errorf("DMSToDegrees(%g) = %g, want %g", test.dms, got, test.want)
		}
	}
}

func TestDMSToDegreesInvalid(t *testing.T) {
	badAngles := []float64{
		361000000, // degrees field too large
		45061000,  // minutes field too large
		45030061,  // seconds field too large
	}
	for _, angle := range badAngles {
		if _, err := DMSToDegrees(angle); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("DMSToDegrees(%g): want invalid input error, got %v", angle, err)
		}
	}
}

func TestDegreesToDMS(t *testing.T) {
	tests := []struct {
		deg   float64
		usage AngleUsage
		want  float64
	}{
		{45.5, LatitudeAngle, 45030000},
		{-45.5, LatitudeAngle, -45030000},
		{0, LatitudeAngle, 0},
		{-122.4194, LongitudeAngle, -122025009.839},
		{359.5, DegreesAngle, 359030000},
	}
	for _, test := range tests {
		got, err := DegreesToDMS(test.deg, test.usage)
		if err != nil {
			t.Errorf("DegreesToDMS(%g): %v", test.deg, err)
			continue
		}
		// Packed seconds are truncated to a thousandth, so allow one
		// thousandth of a second of slack.
		if absDifferent(got, test.want, 0.001) {
			t.Errorf("DegreesToDMS(%g) = %f, want %f", test.deg, got, test.want)
		}
	}
}

func TestDegreesToDMSRoundTrip(t *testing.T) {
	const testTolerance = 1.e-6 // packing truncates below a thousandth of a second

	// Angles between -1 and 0 degrees are left out: the packed form
	// takes its sign from the integer degrees field, which is zero
	// there, so the sign does not survive the trip.
	for _, deg := range []float64{-89.999, -45.5, 0, 33.75, 89.999} {
		dms, err := DegreesToDMS(deg, LatitudeAngle)
		if err != nil {
			t.Fatal(err)
		}
		back, err := DMSToDegrees(dms)
		if err != nil {
			t.Fatal(err)
		}
		if absDifferent(back, deg, testTolerance) {
			t.Errorf("round trip of %g degrees gave %g", deg, back)
		}
	}
}

func TestDegreesToDMSBounds(t *testing.T) {
	tests := []struct {
		deg   float64
		usage AngleUsage
	}{
		{91, LatitudeAngle},
		{-91, LatitudeAngle},
		{181, LongitudeAngle},
		{361, DegreesAngle},
	}
	for _, test := range tests {
		if _, err := DegreesToDMS(test.deg, test.usage); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("DegreesToDMS(%g, %d): want invalid input error, got %v",
				test.deg, test.usage, err)
		}
	}
}

func TestUnitConversionFactor(t *testing.T) {
	const testTolerance = 1.e-12

	tests := []struct {
		from, to Unit
		want     float64
	}{
		{Degree, Radian, 0.01745329251994329},
		{Radian, Degree, 57.295779513082323},
		{Degree, Second, 3600},
		{Meter, Meter, 1},
		{Feet, Meter, 0.3048006096012192},
	}
	for _, test := range tests {
		got, err := unitConversionFactor(test.from, test.to)
		if err != nil {
			t.Errorf("unitConversionFactor(%d, %d): %v", test.from, test.to, err)
			continue
		}
		if absDifferent(got, test.want, testTolerance) {
			t.Errorf("unitConversionFactor(%d, %d) = %g, want %g",
				test.from, test.to, got, test.want)
		}
	}

	// Angle and length units do not convert.
	if _, err := unitConversionFactor(Meter, Degree); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("meter to degree: want invalid input error, got %v", err)
	}
	if _, err := unitConversionFactor(Radian, Feet); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("radian to feet: want invalid input error, got %v", err)
	}
	if _, err := unitConversionFactor(-1, Meter); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("illegal unit code: want invalid input error, got %v", err)
	}
}

func TestResolveSpheroid(t *testing.T) {
	const testTolerance = 1.e-6

	var noParams [ParameterCount]float64
	major, minor, radius, err := resolveSpheroid(WGS84, noParams)
	if err != nil {
		t.Fatal(err)
	}
	if absDifferent(major, 6378137.0, testTolerance) ||
		absDifferent(minor, 6356752.314245, testTolerance) ||
		absDifferent(radius, 6370997.0, testTolerance) {
		t.Errorf("WGS84 axes = %f, %f, %f", major, minor, radius)
	}

	// User-defined axes from the parameter array.
	var params [ParameterCount]float64
	params[0] = 6378137.0
	params[1] = 6356752.314245
	major, minor, _, err = resolveSpheroid(UserDefined, params)
	if err != nil {
		t.Fatal(err)
	}
	if absDifferent(major, params[0], testTolerance) ||
		absDifferent(minor, params[1], testTolerance) {
		t.Errorf("user-defined axes = %f, %f", major, minor)
	}

	// A second parameter no greater than one is an eccentricity squared.
	params[1] = 0.00669438
	_, minor, _, err = resolveSpheroid(UserDefined, params)
	if err != nil {
		t.Fatal(err)
	}
	want := params[0] * math.Sqrt(1.0-params[1])
	if absDifferent(minor, want, testTolerance) {
		t.Errorf("eccentricity-derived minor axis = %f, want %f", minor, want)
	}

	// Zero parameters give the 6370997 m sphere.
	major, minor, _, err = resolveSpheroid(UserDefined, noParams)
	if err != nil {
		t.Fatal(err)
	}
	if major != normalSphereRadius || minor != normalSphereRadius {
		t.Errorf("default sphere axes = %f, %f", major, minor)
	}

	if _, _, _, err := resolveSpheroid(20, noParams); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("spheroid code 20: want invalid input error, got %v", err)
	}
}
