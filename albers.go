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

// Albers Conical Equal Area.

package gctp

import "math"

// albersProj holds the precomputed constants for an Albers leg.
type albersProj struct {
	rMajor        float64
	rMinor        float64
	centerLon     float64
	latOrigin     float64
	falseEasting  float64
	falseNorthing float64
	e3            float64 // eccentricity
	es            float64 // eccentricity squared
	ns0           float64 // ratio between meridians
	c             float64 // constant c
	rh            float64 // height above ellipsoid
}

func albersCommonInit(l *leg) (*albersProj, error) {
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

	if math.Abs(lat1+lat2) < epsln {
		return nil, newError(ProjectionInitError,
			"equal latitudes for standard parallels on opposite sides of equator")
	}

	cache := &albersProj{
		rMajor:        rMajor,
		rMinor:        rMinor,
		centerLon:     centerLon,
		latOrigin:     latOrigin,
		falseEasting:  proj.Parameters[6],
		falseNorthing: proj.Parameters[7],
	}
	temp := rMinor / rMajor
	cache.es = 1.0 - temp*temp
	cache.e3 = math.Sqrt(cache.es)

	sinPo, cosPo := math.Sincos(lat1)
	con := sinPo
	ms1 := msfnz(cache.e3, sinPo, cosPo)
	qs1 := qsfnz(cache.e3, sinPo)

	sinPo, cosPo = math.Sincos(lat2)
	ms2 := msfnz(cache.e3, sinPo, cosPo)
	qs2 := qsfnz(cache.e3, sinPo)

	sinPo, _ = math.Sincos(latOrigin)
	qs0 := qsfnz(cache.e3, sinPo)

	if math.Abs(lat1-lat2) > epsln {
		cache.ns0 = (ms1*ms1 - ms2*ms2) / (qs2 - qs1)
	} else {
		cache.ns0 = con
	}
	cache.c = ms1*ms1 + cache.ns0*qs1
	cache.rh = rMajor * math.Sqrt(cache.c-cache.ns0*qs0) / cache.ns0

	l.describe = func(l *leg) {
		reportTitle("ALBERS CONICAL EQUAL-AREA")
		reportRadius2(cache.rMajor, cache.rMinor)
		reportStandardParallels(lat1, lat2)
		reportCenterLon(cache.centerLon)
		reportOrigin(cache.latOrigin)
		reportFalseOffsets(cache.falseEasting, cache.falseNorthing)
	}
	return cache, nil
}

// forward transforms lon/lat to Albers x/y.
func (c *albersProj) forward(lon, lat float64) (x, y float64, err error) {
	sinPhi, _ := math.Sincos(lat)
	qs := qsfnz(c.e3, sinPhi)
	rh1 := c.rMajor * math.Sqrt(c.c-c.ns0*qs) / c.ns0
	theta := c.ns0 * adjustLon(lon-c.centerLon)
	x = rh1*math.Sin(theta) + c.falseEasting
	y = c.rh - rh1*math.Cos(theta) + c.falseNorthing
	return x, y, nil
}

// inverse transforms Albers x/y to lon/lat.
func (c *albersProj) inverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y = c.rh - y + c.falseNorthing
	var rh1, con float64
	if c.ns0 >= 0 {
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
	con = rh1 * c.ns0 / c.rMajor
	qs := (c.c - con*con) / c.ns0
	if c.e3 >= 1e-10 {
		con = 1.0 - 0.5*(1.0-c.es)*math.Log((1.0-c.e3)/(1.0+c.e3))/c.e3
		if math.Abs(math.Abs(con)-math.Abs(qs)) > 0.0000000001 {
			lat, err = phi1z(c.e3, qs)
			if err != nil {
				return 0, 0, err
			}
		} else {
			if qs >= 0 {
				lat = 0.5 * math.Pi
			} else {
				lat = -0.5 * math.Pi
			}
		}
	} else {
		lat, err = phi1z(c.e3, qs)
		if err != nil {
			return 0, 0, err
		}
	}
	lon = adjustLon(theta/c.ns0 + c.centerLon)
	return lon, lat, nil
}

func albersForwardInit(l *leg) error {
	cache, err := albersCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing Albers forward projection: %v", err)
	}
	l.transform = cache.forward
	return nil
}

func albersInverseInit(l *leg) error {
	cache, err := albersCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing Albers inverse projection: %v", err)
	}
	l.transform = cache.inverse
	return nil
}
