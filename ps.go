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

// Polar Stereographic.

package gctp

import "math"

// psProj holds the precomputed constants for a Polar Stereographic leg.
type psProj struct {
	rMajor        float64
	rMinor        float64
	e             float64
	e4            float64
	centerLon     float64
	centerLat     float64
	fac           float64 // +1 for the north pole, -1 for the south
	ind           bool    // true when the center latitude is off the pole
	mcs           float64
	tcs           float64
	falseEasting  float64
	falseNorthing float64
}

func psCommonInit(l *leg) (*psProj, error) {
	proj := &l.proj

	rMajor, rMinor, _, err := resolveSpheroid(proj.Spheroid, proj.Parameters)
	if err != nil {
		return nil, err
	}
	falseEasting := proj.Parameters[6]
	falseNorthing := proj.Parameters[7]

	centerLon, err := dmsParam(proj.Parameters[4])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting center longitude in parameter 4 from DMS to degrees: %f",
			proj.Parameters[4])
	}
	centerLat, err := dmsParam(proj.Parameters[5])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting center latitude in parameter 5 from DMS to degrees: %f",
			proj.Parameters[5])
	}

	cache := &psProj{
		rMajor:        rMajor,
		rMinor:        rMinor,
		centerLon:     centerLon,
		centerLat:     centerLat,
		falseEasting:  falseEasting,
		falseNorthing: falseNorthing,
	}
	temp := rMinor / rMajor
	es := 1.0 - temp*temp
	cache.e = math.Sqrt(es)
	cache.e4 = e4fn(cache.e)
	cache.fac = 1.0
	if centerLat < 0 {
		cache.fac = -1.0
	}
	if math.Abs(math.Abs(centerLat)-halfPi) > epsln {
		cache.ind = true
		con1 := cache.fac * centerLat
		sinphi, cosphi := math.Sincos(con1)
		cache.mcs = msfnz(cache.e, sinphi, cosphi)
		cache.tcs = tsfnz(cache.e, con1, sinphi)
	}

	l.describe = func(l *leg) {
		reportTitle("POLAR STEREOGRAPHIC")
		reportRadius2(cache.rMajor, cache.rMinor)
		reportCenterLonMer(cache.centerLon)
		reportCenterLat(cache.centerLat)
		reportFalseOffsets(cache.falseEasting, cache.falseNorthing)
	}
	return cache, nil
}

// forward transforms lon/lat to x/y.
func (c *psProj) forward(lon, lat float64) (x, y float64, err error) {
	con1 := c.fac * adjustLon(lon-c.centerLon)
	con2 := c.fac * lat
	sinphi := math.Sin(con2)
	ts := tsfnz(c.e, con2, sinphi)
	var rh float64
	if c.ind {
		rh = c.rMajor * c.mcs * ts / c.tcs
	} else {
		rh = 2.0 * c.rMajor * ts / c.e4
	}
	x = c.fac*rh*math.Sin(con1) + c.falseEasting
	y = -c.fac*rh*math.Cos(con1) + c.falseNorthing
	return x, y, nil
}

// inverse transforms x/y to lon/lat.
func (c *psProj) inverse(x, y float64) (lon, lat float64, err error) {
	x = (x - c.falseEasting) * c.fac
	y = (y - c.falseNorthing) * c.fac
	rh := math.Sqrt(x*x + y*y)
	var ts float64
	if c.ind {
		ts = rh * c.tcs / (c.rMajor * c.mcs)
	} else {
		ts = rh * c.e4 / (c.rMajor * 2.0)
	}
	phi2, err := phi2z(c.e, ts)
	if err != nil {
		return 0, 0, err
	}

	lat = c.fac * phi2
	if rh == 0 {
		lon = c.fac * c.centerLon
	} else {
		lon = adjustLon(c.fac*math.Atan2(x, -y) + c.centerLon)
	}
	return lon, lat, nil
}

func psForwardInit(l *leg) error {
	cache, err := psCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing polar stereographic forward projection: %v", err)
	}
	l.transform = cache.forward
	return nil
}

func psInverseInit(l *leg) error {
	cache, err := psCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing polar stereographic inverse projection: %v", err)
	}
	l.transform = cache.inverse
	return nil
}
