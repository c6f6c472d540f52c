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

// Equidistant Conic.

package gctp

import "math"

// eqconProj holds the precomputed constants for an Equidistant Conic
// leg. When modeB is false only the first standard parallel is used.
type eqconProj struct {
	rMajor         float64
	rMinor         float64
	centerLon      float64
	latOrigin      float64
	falseEasting   float64
	falseNorthing  float64
	e              float64
	es             float64
	e0, e1, e2, e3 float64
	ns             float64
	g              float64
	rh             float64
	modeB          bool
}

func eqconCommonInit(l *leg) (*eqconProj, error) {
	proj := &l.proj

	rMajor, rMinor, _, err := resolveSpheroid(proj.Spheroid, proj.Parameters)
	if err != nil {
		return nil, err
	}
	lat1, err := dmsParam(proj.Parameters[2])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting first standard parallel parameter from DMS to degrees: %f",
			proj.Parameters[2])
	}
	lat2, err := dmsParam(proj.Parameters[3])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting second standard parallel parameter from DMS to degrees: %f",
			proj.Parameters[3])
	}
	centerLon, err := dmsParam(proj.Parameters[4])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting center longitude parameter from DMS to degrees: %f",
			proj.Parameters[4])
	}
	latOrigin, err := dmsParam(proj.Parameters[5])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting origin latitude parameter from DMS to degrees: %f",
			proj.Parameters[5])
	}
	modeB := proj.Parameters[8] != 0
	if modeB && math.Abs(lat1+lat2) < epsln {
		return nil, newError(ProjectionInitError,
			"equal latitudes for standard parallels on opposite sides of equator")
	}

	cache := &eqconProj{
		rMajor:        rMajor,
		rMinor:        rMinor,
		centerLon:     centerLon,
		latOrigin:     latOrigin,
		falseEasting:  proj.Parameters[6],
		falseNorthing: proj.Parameters[7],
		modeB:         modeB,
	}
	temp := rMinor / rMajor
	cache.es = 1.0 - temp*temp
	cache.e = math.Sqrt(cache.es)
	cache.e0 = e0fn(cache.es)
	cache.e1 = e1fn(cache.es)
	cache.e2 = e2fn(cache.es)
	cache.e3 = e3fn(cache.es)

	sinphi, cosphi := math.Sincos(lat1)
	ms1 := msfnz(cache.e, sinphi, cosphi)
	ml1 := mlfn(cache.e0, cache.e1, cache.e2, cache.e3, lat1)

	if !modeB {
		cache.ns = sinphi
	} else {
		sinphi, cosphi = math.Sincos(lat2)
		ms2 := msfnz(cache.e, sinphi, cosphi)
		ml2 := mlfn(cache.e0, cache.e1, cache.e2, cache.e3, lat2)
		if math.Abs(lat1-lat2) >= epsln {
			cache.ns = (ms1 - ms2) / (ml2 - ml1)
		} else {
			cache.ns = sinphi
		}
	}
	cache.g = ml1 + ms1/cache.ns
	ml0 := mlfn(cache.e0, cache.e1, cache.e2, cache.e3, latOrigin)
	cache.rh = rMajor * (cache.g - ml0)

	l.describe = func(l *leg) {
		reportTitle("EQUIDISTANT CONIC")
		reportRadius2(cache.rMajor, cache.rMinor)
		if cache.modeB {
			reportStandardParallels(lat1, lat2)
		} else {
			reportStandardParallel(lat1)
		}
		reportCenterLon(cache.centerLon)
		reportOrigin(cache.latOrigin)
		reportFalseOffsets(cache.falseEasting, cache.falseNorthing)
	}
	return cache, nil
}

// forward transforms lon/lat to Equidistant Conic x/y.
func (c *eqconProj) forward(lon, lat float64) (x, y float64, err error) {
	ml := mlfn(c.e0, c.e1, c.e2, c.e3, lat)
	rh1 := c.rMajor * (c.g - ml)
	theta := c.ns * adjustLon(lon-c.centerLon)
	x = c.falseEasting + rh1*math.Sin(theta)
	y = c.falseNorthing + c.rh - rh1*math.Cos(theta)
	return x, y, nil
}

// inverse transforms Equidistant Conic x/y to lon/lat.
func (c *eqconProj) inverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y = c.rh - y + c.falseNorthing
	var rh1, con float64
	if c.ns >= 0 {
		rh1 = math.Sqrt(x*x + y*y)
		con = 1.0
	} else {
		rh1 = -math.Sqrt(x*x + y*y)
		con = -1.0
	}
	theta := 0.0
	if rh1 != 0.0 {
		theta = math.Atan2(con*x, con*y)
	}
	ml := c.g - rh1/c.rMajor
	lat, err = phi3z(ml, c.e0, c.e1, c.e2, c.e3)
	if err != nil {
		return 0, 0, err
	}
	lon = adjustLon(c.centerLon + theta/c.ns)
	return lon, lat, nil
}

func eqconForwardInit(l *leg) error {
	cache, err := eqconCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing Equidistant Conic forward projection: %v", err)
	}
	l.transform = cache.forward
	return nil
}

func eqconInverseInit(l *leg) error {
	cache, err := eqconCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing Equidistant Conic inverse projection: %v", err)
	}
	l.transform = cache.inverse
	return nil
}
