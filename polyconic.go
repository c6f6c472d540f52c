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

// Polyconic.

package gctp

import "math"

// polyProj holds the precomputed constants for a Polyconic leg.
type polyProj struct {
	rMajor         float64
	rMinor         float64
	centerLon      float64
	latOrigin      float64
	e              float64
	e0, e1, e2, e3 float64
	es             float64
	ml0            float64
	falseEasting   float64
	falseNorthing  float64
}

func polyCommonInit(l *leg) (*polyProj, error) {
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
	latOrigin, err := dmsParam(proj.Parameters[5])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting center latitude in parameter 5 from DMS to degrees: %f",
			proj.Parameters[5])
	}

	cache := &polyProj{
		rMajor:        rMajor,
		rMinor:        rMinor,
		centerLon:     centerLon,
		latOrigin:     latOrigin,
		falseEasting:  falseEasting,
		falseNorthing: falseNorthing,
	}
	temp := rMinor / rMajor
	cache.es = 1.0 - temp*temp
	cache.e = math.Sqrt(cache.es)
	cache.e0 = e0fn(cache.es)
	cache.e1 = e1fn(cache.es)
	cache.e2 = e2fn(cache.es)
	cache.e3 = e3fn(cache.es)
	cache.ml0 = mlfn(cache.e0, cache.e1, cache.e2, cache.e3, latOrigin)

	l.describe = func(l *leg) {
		reportTitle("POLYCONIC")
		reportRadius2(cache.rMajor, cache.rMinor)
		reportCenterLonMer(cache.centerLon)
		reportOrigin(cache.latOrigin)
		reportFalseOffsets(cache.falseEasting, cache.falseNorthing)
	}
	return cache, nil
}

// forward transforms lon/lat to x/y.
func (c *polyProj) forward(lon, lat float64) (x, y float64, err error) {
	con := adjustLon(lon - c.centerLon)
	if math.Abs(lat) <= 0.0000001 {
		x = c.falseEasting + c.rMajor*con
		y = c.falseNorthing - c.rMajor*c.ml0
		return x, y, nil
	}
	sinphi, cosphi := math.Sincos(lat)
	ml := mlfn(c.e0, c.e1, c.e2, c.e3, lat)
	ms := msfnz(c.e, sinphi, cosphi)
	con *= sinphi
	x = c.falseEasting + c.rMajor*ms*math.Sin(con)/sinphi
	y = c.falseNorthing + c.rMajor*(ml-c.ml0+ms*(1.0-math.Cos(con))/sinphi)
	return x, y, nil
}

// inverse transforms x/y to lon/lat.
func (c *polyProj) inverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y -= c.falseNorthing
	al := c.ml0 + y/c.rMajor
	if math.Abs(al) <= 0.0000001 {
		lon = x/c.rMajor + c.centerLon
		lat = 0.0
		return lon, lat, nil
	}
	b := al*al + (x/c.rMajor)*(x/c.rMajor)
	phi, cc, err := phi4z(c.es, c.e0, c.e1, c.e2, c.e3, al, b)
	if err != nil {
		return 0, 0, err
	}
	lat = phi
	lon = adjustLon(asinz(x*cc/c.rMajor)/math.Sin(lat) + c.centerLon)
	return lon, lat, nil
}

func polyForwardInit(l *leg) error {
	cache, err := polyCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing polyconic forward projection: %v", err)
	}
	l.transform = cache.forward
	return nil
}

func polyInverseInit(l *leg) error {
	cache, err := polyCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing polyconic inverse projection: %v", err)
	}
	l.transform = cache.inverse
	return nil
}
