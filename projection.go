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

// ProjCode is an enumerated cartographic projection family.
type ProjCode int

// Supported projection codes. The numeric values match the classic GCTP
// projection numbers so descriptors from existing metadata can be used
// directly.
const (
	Geo           ProjCode = 0  // Geographic (longitude/latitude)
	UTM           ProjCode = 1  // Universal Transverse Mercator
	SPCS          ProjCode = 2  // State Plane Coordinates
	Albers        ProjCode = 3  // Albers Conical Equal Area
	LambertCC     ProjCode = 4  // Lambert Conformal Conic
	Mercator      ProjCode = 5  // Mercator
	PolarStereo   ProjCode = 6  // Polar Stereographic
	Polyconic     ProjCode = 7  // Polyconic
	EquidistantC  ProjCode = 8  // Equidistant Conic
	TM            ProjCode = 9  // Transverse Mercator
	Stereographic ProjCode = 10 // Stereographic
	LambertAz     ProjCode = 11 // Lambert Azimuthal Equal Area
	AzEquidistant ProjCode = 12 // Azimuthal Equidistant
	Gnomonic      ProjCode = 13 // Gnomonic
	Orthographic  ProjCode = 14 // Orthographic
	GVNSP         ProjCode = 15 // General Vertical Near-Side Perspective
	Sinusoidal    ProjCode = 16 // Sinusoidal
	Equirect      ProjCode = 17 // Equirectangular
	Miller        ProjCode = 18 // Miller Cylindrical
	VanDerGrinten ProjCode = 19 // Van der Grinten
	ObMercator    ProjCode = 20 // (Hotine) Oblique Mercator
	Robinson      ProjCode = 21 // Robinson
	SOM           ProjCode = 22 // Space Oblique Mercator
	Alaska        ProjCode = 23 // Alaska Conformal
	Goode         ProjCode = 24 // Interrupted Goode Homolosine
	Mollweide     ProjCode = 25 // Mollweide
	IntMollweide  ProjCode = 26 // Interrupted Mollweide
	Hammer        ProjCode = 27 // Hammer
	WagnerIV      ProjCode = 28 // Wagner IV
	WagnerVII     ProjCode = 29 // Wagner VII
	OblatedEqArea ProjCode = 30 // Oblated Equal Area
	ISIN          ProjCode = 31 // Integerized Sinusoidal

	maxProjCode = 31
)

// ParameterCount is the fixed size of the projection parameter array.
// Descriptors must always carry a fully populated (zero-filled) array
// regardless of how many slots the projection code actually uses.
const ParameterCount = 15

// Unit is a linear or angular unit code for projection coordinates.
type Unit int

// Supported unit codes. DMS is packed degrees-minutes-seconds:
// sign(deg)*(|deg|*1e6 + min*1e3 + sec).
const (
	Radian Unit = 0
	Feet   Unit = 1
	Meter  Unit = 2
	Second Unit = 3
	Degree Unit = 4
	DMS    Unit = 5

	maxUnit = 5
)

// Projection describes one projected coordinate system: the projection
// family, the zone (only meaningful for zoned systems such as UTM), the
// units of its coordinates, the reference spheroid, and the array of
// projection parameters whose meaning depends on the projection code.
// Descriptors are read-only inputs to the transformation factory.
type Projection struct {
	Code       ProjCode
	Zone       int
	Units      Unit
	Spheroid   Spheroid
	Parameters [ParameterCount]float64
}

// CalcUTMZone returns the UTM zone (1-60) containing the given
// longitude (in degrees).
func CalcUTMZone(lon float64) int {
	return int((lon+180.0)/6.0 + 1.0)
}
