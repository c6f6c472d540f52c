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

// unitFactors holds the multiplicative conversion factors between unit
// codes, indexed [from][to].  A zero entry marks an incompatible pair
// (angle units can not be converted to length units).
var unitFactors = [6][6]float64{
	{1.0, 0.0, 0.0, 206264.8062470963, 57.295779513082323, 0.0},
	{0.0, 1.0, 0.3048006096012192, 0.0, 0.0, 1.000002000004},
	{0.0, 3.280833333333333, 1.0, 0.0, 0.0, 3.280839895013124},
	{0.484813681109536e-5, 0.0, 0.0, 1.0, 0.27777777777778e-3, 0.0},
	{0.01745329251994329, 0.0, 0.0, 3600, 1.0, 0.0},
	{0.0, 0.999998, 0.3048, 0.0, 0.0, 1.0},
}

// unitConversionFactor returns the factor that converts a value in the
// from units into the to units.
func unitConversionFactor(from, to Unit) (float64, error) {
	if from < 0 || from > maxUnit || to < 0 || to > maxUnit {
		return 0, newError(InvalidInput,
			"illegal source or target unit code: %d and %d", from, to)
	}
	factor := unitFactors[from][to]
	if factor == 0 {
		return 0, newError(InvalidInput,
			"incompatible unit codes: %d and %d", from, to)
	}
	return factor, nil
}

// AngleUsage selects the bounds check applied when packing an angle
// into DMS form.
type AngleUsage int

// The angle usage classes.
const (
	LatitudeAngle  AngleUsage = iota // -90 to 90 degrees
	LongitudeAngle                   // -180 to 180 degrees
	DegreesAngle                     // 0 to 360 degrees
)

// DMSToDegrees converts a packed DMS angle to degrees.  The packed
// format is degrees*1000000 + minutes*1000 + seconds, carrying the sign
// of the whole angle.  For example 120025045.25 is 120 degrees, 25
// minutes, 45.25 seconds.
func DMSToDegrees(angle float64) (float64, error) {
	fac := 1.0
	if angle < 0 {
		fac = -1
	}

	sec := math.Abs(angle)
	deg := math.Trunc(sec / 1000000.0)
	if deg > 360 {
		return 0, newError(InvalidInput, "illegal DMS degrees field: %f", deg)
	}

	sec -= deg * 1000000.0
	min := math.Trunc(sec / 1000.0)
	if min > 60 {
		return 0, newError(InvalidInput, "illegal DMS minutes field: %f", min)
	}

	sec -= min * 1000.0
	if sec > 60 {
		return 0, newError(InvalidInput, "illegal DMS seconds field: %f", sec)
	}

	return fac * (deg*3600.0 + min*60.0 + sec) / 3600.0, nil
}

// DegreesToDMS converts an angle in degrees to the packed DMS format,
// truncating seconds to a thousandth, and validates the result against
// the bounds for the given usage class.
func DegreesToDMS(deg float64, usage AngleUsage) (float64, error) {
	var minDMS, maxDMS float64
	switch usage {
	case LatitudeAngle:
		minDMS, maxDMS = -90000000, 90000000
	case LongitudeAngle:
		minDMS, maxDMS = -180000000, 180000000
	default:
		minDMS, maxDMS = 0, 360000000
	}

	tdeg := dmsDegrees(deg)
	tmin := dmsMinutes(deg)
	tsec := dmsSeconds(deg)

	sign := 1.0
	if tdeg < 0 {
		sign = -1
	}
	dms := (math.Abs(float64(tdeg))*1000000 + float64(tmin)*1000 + tsec) * sign

	if dms > maxDMS || dms < minDMS {
		return 0, newError(InvalidInput,
			"DMS value %f outside bounds of %f to %f", dms, minDMS, maxDMS)
	}
	return dms, nil
}

// dmsDegrees extracts the degree portion of an angle, carrying the
// 60-rollover of the minutes and seconds fields.
func dmsDegrees(angle float64) int {
	sign := 1
	if int(angle) < 0 {
		sign = -1
	}
	abs := math.Abs(angle)
	degree := int(abs)
	minute := int((abs - float64(degree)) * 60.0)
	sec := ((abs-float64(degree))*60.0 - float64(minute)) * 60.0
	if sec >= 60.0 {
		minute++
	}
	if minute >= 60 {
		degree++
	}
	return degree * sign
}

// dmsMinutes extracts the minute portion of an angle.
func dmsMinutes(angle float64) int {
	frac := math.Abs(angle)
	frac -= math.Trunc(frac)
	minute := int(frac * 60.0)
	sec := (frac*60.0 - float64(minute)) * 60.0
	if sec > 60.0 {
		minute++
	}
	if minute >= 60 {
		minute -= 60
	}
	return minute
}

// dmsSeconds extracts the second portion of an angle, truncated to a
// thousandth of a second.
func dmsSeconds(angle float64) float64 {
	sec := math.Abs(angle)
	sec -= math.Trunc(sec)
	sec *= 60.0
	sec -= math.Trunc(sec)
	sec *= 60.0
	if sec > 60.0 {
		sec -= 60.0
	}
	return math.Trunc(sec*1000) / 1000.0
}
