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

// Lambert Conformal Conic.

package gctp

import "math"

// lamccProj holds the precomputed constants for a Lambert Conformal
// Conic leg.
type lamccProj struct {
	rMajor        float64
	rMinor        float64
	es            float64
	e             float64
	lat1          float64 // first standard parallel
	lat2          float64 // second standard parallel
	centerLon     float64
	latOrigin     float64
	ns            float64 // ratio of angle between meridians
	f0            float64
	rh            float64
	falseEasting  float64
	falseNorthing float64
}

func lamccCommonInit(l *leg) (*lamccProj, error) {
	proj := &l.proj

	rMajor, rMinor, _, err := resolveSpheroid(proj.Spheroid, proj.Parameters)
	if err != nil {
		return nil, err
	}
	falseEasting := proj.Parameters[6]
	falseNorthing := proj.Parameters[7]

	lat1, err := dmsParam(proj.Parameters[2])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting standard parallel 1 in parameter 2 from DMS to degrees: %f",
			proj.Parameters[2])
	}
	lat2, err := dmsParam(proj.Parameters[3])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting standard parallel 2 in parameter 3 from DMS to degrees: %f",
			proj.Parameters[3])
	}
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

	// Standard parallels can not be equal and on opposite sides of the
	// equator.
	if math.Abs(lat1+lat2) < epsln {
		return nil, newError(ProjectionInitError,
			"equal latitudes for standard parallels on opposite sides of equator")
	}

	cache := &lamccProj{
		rMajor:        rMajor,
		rMinor:        rMinor,
		lat1:          lat1,
		lat2:          lat2,
		centerLon:     centerLon,
		latOrigin:     latOrigin,
		falseEasting:  falseEasting,
		falseNorthing: falseNorthing,
	}
	temp := rMinor / rMajor
	cache.es = 1.0 - temp*temp
	cache.e = math.Sqrt(cache.es)

	sinPo, cosPo := math.Sincos(lat1)
	con := sinPo
	ms1 := msfnz(cache.e, sinPo, cosPo)
	ts1 := tsfnz(cache.e, lat1, sinPo)
	sinPo, cosPo = math.Sincos(lat2)
	ms2 := msfnz(cache.e, sinPo, cosPo)
	ts2 := tsfnz(cache.e, lat2, sinPo)
	sinPo = math.Sin(latOrigin)
	ts0 := tsfnz(cache.e, latOrigin, sinPo)

	if math.Abs(lat1-lat2) > epsln {
		cache.ns = math.Log(ms1/ms2) / math.Log(ts1/ts2)
	} else {
		cache.ns = con
	}
	cache.f0 = ms1 / (cache.ns * math.Pow(ts1, cache.ns))
	cache.rh = rMajor * cache.f0 * math.Pow(ts0, cache.ns)

	l.describe = func(l *leg) {
		reportTitle("LAMBERT CONFORMAL CONIC")
		reportRadius2(cache.rMajor, cache.rMinor)
		reportStandardParallels(cache.lat1, cache.lat2)
		reportCenterLonMer(cache.centerLon)
		reportOrigin(cache.latOrigin)
		reportFalseOffsets(cache.falseEasting, cache.falseNorthing)
	}
	return cache, nil
}

// forward transforms lon/lat to x/y.
func (c *lamccProj) forward(lon, lat float64) (x, y float64, err error) {
	var rh1 float64
	con := math.Abs(math.Abs(lat) - halfPi)
	if con > epsln {
		sinphi := math.Sin(lat)
		ts := tsfnz(c.e, lat, sinphi)
		rh1 = c.rMajor * c.f0 * math.Pow(ts, c.ns)
	} else {
		con = lat * c.ns
		if con <= 0 {
			return 0, 0, newError(ComputationError, "point can not be projected")
		}
		rh1 = 0
	}
	theta := c.ns * adjustLon(lon-c.centerLon)
	x = rh1*math.Sin(theta) + c.falseEasting
	y = c.rh - rh1*math.Cos(theta) + c.falseNorthing
	return x, y, nil
}

// inverse transforms x/y to lon/lat.
func (c *lamccProj) inverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y = c.rh - y + c.falseNorthing

	var rh1, con float64
	if c.ns > 0 {
		rh1 = math.Sqrt(x*x + y*y)
		con = 1.0
	} else {
		rh1 = -math.Sqrt(x*x + y*y)
		con = -1.0
	}
	theta := 0.0
	if rh1 != 0 {
		theta = math.Atan2(con*x, con*y)
	}

	if rh1 != 0 || c.ns > 0 {
		con = 1.0 / c.ns
		ts := math.Pow(rh1/(c.rMajor*c.f0), con)
		lat, err = phi2z(c.e, ts)
		if err != nil {
			return 0, 0, err
		}
	} else {
		lat = -halfPi
	}

	lon = adjustLon(theta/c.ns + c.centerLon)
	return lon, lat, nil
}

func lamccForwardInit(l *leg) error {
	cache, err := lamccCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing lambert conformal conic forward projection: %v", err)
	}
	l.transform = cache.forward
	return nil
}

func lamccInverseInit(l *leg) error {
	cache, err := lamccCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing lambert conformal conic inverse projection: %v", err)
	}
	l.transform = cache.inverse
	return nil
}
