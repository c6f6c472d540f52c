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

import "math"

// Spheroid identifies a reference ellipsoid.  A negative value means the
// semi-major and semi-minor axes are supplied through the first two
// projection parameters instead of the built-in table.
type Spheroid int

// The supported reference ellipsoids.
const (
	Clarke1866 Spheroid = iota
	Clarke1880
	Bessel
	International1967
	International1909
	WGS72
	Everest
	WGS66
	GRS80
	Airy
	ModifiedEverest
	ModifiedAiry
	WGS84
	SoutheastAsia
	AustralianNational
	Krassovsky
	Hough
	Mercury1960
	ModifiedMercury1968
	NormalSphere

	// UserDefined reads the axes from parameters 0 and 1.
	UserDefined Spheroid = -1
)

// normalSphereRadius is the radius of the sphere of nominal earth size
// used whenever a projection needs a single spherical radius.
const normalSphereRadius = 6370997.0

var spheroidMajor = [...]float64{
	6378206.4,    // 0: Clarke 1866
	6378249.145,  // 1: Clarke 1880
	6377397.155,  // 2: Bessel
	6378157.5,    // 3: International 1967
	6378388.0,    // 4: International 1909
	6378135.0,    // 5: WGS 72
	6377276.3452, // 6: Everest
	6378145.0,    // 7: WGS 66
	6378137.0,    // 8: GRS 1980
	6377563.396,  // 9: Airy
	6377304.063,  // 10: Modified Everest
	6377340.189,  // 11: Modified Airy
	6378137.0,    // 12: WGS 84
	6378155.0,    // 13: Southeast Asia
	6378160.0,    // 14: Australian National
	6378245.0,    // 15: Krassovsky
	6378270.0,    // 16: Hough
	6378166.0,    // 17: Mercury 1960
	6378150.0,    // 18: Modified Mercury 1968
	6370997.0,    // 19: sphere of radius 6370997 m
}

var spheroidMinor = [...]float64{
	6356583.8,      // Clarke 1866
	6356514.86955,  // Clarke 1880
	6356078.96284,  // Bessel
	6356772.2,      // International 1967
	6356911.94613,  // International 1909
	6356750.519915, // WGS 72
	6356075.4133,   // Everest
	6356759.769356, // WGS 66
	6356752.31414,  // GRS 1980
	6356256.91,     // Airy
	6356103.039,    // Modified Everest
	6356034.448,    // Modified Airy
	6356752.314245, // WGS 84
	6356773.3205,   // Southeast Asia
	6356774.719,    // Australian National
	6356863.0188,   // Krassovsky
	6356794.343479, // Hough
	6356784.283666, // Mercury 1960
	6356768.337303, // Modified Mercury 1968
	6370997.0,      // sphere of radius 6370997 m
}

// resolveSpheroid turns a spheroid code and parameter array into
// semi-major axis, semi-minor axis, and sphere radius in meters.
//
// For a negative (user-defined) code the axes come from parameters 0
// and 1: a second value greater than one is taken as the semi-minor
// axis, a positive value no greater than one as the eccentricity
// squared, and zero selects a sphere of the semi-major radius.
func resolveSpheroid(code Spheroid, parameters [ParameterCount]float64) (major, minor, radius float64, err error) {
	radius = normalSphereRadius
	if code < 0 {
		tMajor := math.Abs(parameters[0])
		tMinor := math.Abs(parameters[1])
		if tMajor > 0 {
			major = tMajor
			radius = tMajor
			switch {
			case tMinor > 1:
				minor = tMinor
			case tMinor > 0:
				minor = tMajor * math.Sqrt(1.0-tMinor)
			default:
				minor = tMajor
			}
			return major, minor, radius, nil
		}
		if tMinor > 0 {
			return spheroidMajor[Clarke1866], spheroidMinor[Clarke1866], radius, nil
		}
		return normalSphereRadius, normalSphereRadius, radius, nil
	}
	if int(code) >= len(spheroidMajor) {
		return 0, 0, 0, newError(InvalidInput, "unsupported spheroid code %d", code)
	}
	return spheroidMajor[code], spheroidMinor[code], radius, nil
}
