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

// Mercator.

package gctp

import "math"

// mercatorProj holds the precomputed constants for a Mercator leg.
type mercatorProj struct {
	rMajor        float64
	rMinor        float64
	centerLon     float64
	latOrigin     float64
	falseEasting  float64
	falseNorthing float64
	e             float64 // eccentricity
	es            float64 // eccentricity squared
	m1            float64 // small value m
}

func mercatorCommonInit(l *leg) (*mercatorProj, error) {
	proj := &l.proj

	rMajor, rMinor, _, err := resolveSpheroid(proj.Spheroid, proj.Parameters)
	if err != nil {
		return nil, err
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

	cache := &mercatorProj{
		rMajor:        rMajor,
		rMinor:        rMinor,
		centerLon:     centerLon,
		latOrigin:     latOrigin,
		falseEasting:  proj.Parameters[6],
		falseNorthing: proj.Parameters[7],
	}
	temp := rMinor / rMajor
	cache.es = 1.0 - temp*temp
	cache.e = math.Sqrt(cache.es)
	cache.m1 = math.Cos(latOrigin) /
		math.Sqrt(1.0-cache.es*math.Sin(latOrigin)*math.Sin(latOrigin))

	l.describe = func(l *leg) {
		reportTitle("MERCATOR")
		reportRadius2(cache.rMajor, cache.rMinor)
		reportCenterLonMer(cache.centerLon)
		reportOrigin(cache.latOrigin)
		reportFalseOffsets(cache.falseEasting, cache.falseNorthing)
	}
	return cache, nil
}

// forward transforms lon/lat to Mercator x/y.
func (c *mercatorProj) forward(lon, lat float64) (x, y float64, err error) {
	// The poles project into infinity.
	if math.Abs(math.Abs(lat)-halfPi) <= epsln {
		return 0, 0, newError(ComputationError,
			"transformation cannot be computed at the poles")
	}
	sinphi := math.Sin(lat)
	ts := tsfnz(c.e, lat, sinphi)
	x = c.falseEasting + c.rMajor*c.m1*adjustLon(lon-c.centerLon)
	y = c.falseNorthing - c.rMajor*c.m1*math.Log(ts)
	return x, y, nil
}

// inverse transforms Mercator x/y to lon/lat.
func (c *mercatorProj) inverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y -= c.falseNorthing
	ts := math.Exp(-y / (c.rMajor * c.m1))
	lat, err = phi2z(c.e, ts)
	if err != nil {
		return 0, 0, err
	}
	lon = adjustLon(c.centerLon + x/(c.rMajor*c.m1))
	return lon, lat, nil
}

func mercatorForwardInit(l *leg) error {
	cache, err := mercatorCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing Mercator forward projection: %v", err)
	}
	l.transform = cache.forward
	return nil
}

func mercatorInverseInit(l *leg) error {
	cache, err := mercatorCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing Mercator inverse projection: %v", err)
	}
	l.transform = cache.inverse
	return nil
}
