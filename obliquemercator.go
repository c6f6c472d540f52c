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

// Oblique Mercator (Hotine).  The central line is defined either by
// two points on it (format A) or by an azimuth through a center point
// (format B, selected by a nonzero parameter 12).

package gctp

import "math"

// omProj holds the precomputed constants for an Oblique Mercator leg.
type omProj struct {
	rMajor        float64
	rMinor        float64
	scaleFactor   float64
	lonOrigin     float64
	latOrigin     float64
	lon1, lat1    float64 // first point on the central line (format A)
	lon2, lat2    float64 // second point on the central line (format A)
	azimuth       float64 // azimuth east of north (format B)
	falseEasting  float64
	falseNorthing float64
	e             float64
	es            float64
	sinP20        float64
	cosP20        float64
	bl, al        float64
	d, el         float64
	u             float64
	singam        float64
	cosgam        float64
	sinaz, cosaz  float64
	azimuthMode   bool
}

func omCommonInit(l *leg) (*omProj, error) {
	proj := &l.proj

	rMajor, rMinor, _, err := resolveSpheroid(proj.Spheroid, proj.Parameters)
	if err != nil {
		return nil, err
	}
	scaleFactor := proj.Parameters[2]
	falseEasting := proj.Parameters[6]
	falseNorthing := proj.Parameters[7]

	latOrigin, err := dmsParam(proj.Parameters[5])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting center latitude in parameter 5 from DMS to degrees: %f",
			proj.Parameters[5])
	}

	azimuthMode := proj.Parameters[12] != 0

	var azimuth, lonOrigin, lon1, lat1, lon2, lat2 float64
	if azimuthMode {
		azimuth, err = dmsParam(proj.Parameters[3])
		if err != nil {
			return nil, newError(InvalidInput,
				"error converting central line azimuth in parameter 3 from DMS to degrees: %f",
				proj.Parameters[3])
		}
		lonOrigin, err = dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, newError(InvalidInput,
				"error converting azimuth point in parameter 4 from DMS to degrees: %f",
				proj.Parameters[4])
		}
	} else {
		lon1, err = dmsParam(proj.Parameters[8])
		if err != nil {
			return nil, newError(InvalidInput,
				"error converting first point longitude in parameter 8 from DMS to degrees: %f",
				proj.Parameters[8])
		}
		lat1, err = dmsParam(proj.Parameters[9])
		if err != nil {
			return nil, newError(InvalidInput,
				"error converting first point latitude in parameter 9 from DMS to degrees: %f",
				proj.Parameters[9])
		}
		lon2, err = dmsParam(proj.Parameters[10])
		if err != nil {
			return nil, newError(InvalidInput,
				"error converting second point longitude in parameter 10 from DMS to degrees: %f",
				proj.Parameters[10])
		}
		lat2, err = dmsParam(proj.Parameters[11])
		if err != nil {
			return nil, newError(InvalidInput,
				"error converting second point latitude in parameter 11 from DMS to degrees: %f",
				proj.Parameters[11])
		}
	}

	cache := &omProj{
		rMajor:        rMajor,
		rMinor:        rMinor,
		scaleFactor:   scaleFactor,
		latOrigin:     latOrigin,
		lon1:          lon1,
		lat1:          lat1,
		lon2:          lon2,
		lat2:          lat2,
		falseEasting:  falseEasting,
		falseNorthing: falseNorthing,
		azimuthMode:   azimuthMode,
	}
	temp := rMinor / rMajor
	cache.es = 1.0 - temp*temp
	cache.e = math.Sqrt(cache.es)

	cache.sinP20, cache.cosP20 = math.Sincos(latOrigin)
	con := 1.0 - cache.es*cache.sinP20*cache.sinP20
	com := math.Sqrt(1.0 - cache.es)
	cache.bl = math.Sqrt(1.0 + cache.es*math.Pow(cache.cosP20, 4.0)/(1.0-cache.es))
	cache.al = rMajor * cache.bl * scaleFactor * com / con
	var f float64
	if math.Abs(latOrigin) < epsln {
		cache.d = 1.0
		cache.el = 1.0
	} else {
		ts := tsfnz(cache.e, latOrigin, cache.sinP20)
		con = math.Sqrt(con)
		cache.d = cache.bl * com / (cache.cosP20 * con)
		if cache.d*cache.d-1.0 > 0.0 {
			if latOrigin >= 0 {
				f = cache.d + math.Sqrt(cache.d*cache.d-1.0)
			} else {
				f = cache.d - math.Sqrt(cache.d*cache.d-1.0)
			}
		} else {
			f = cache.d
		}
		cache.el = f * math.Pow(ts, cache.bl)
	}

	if azimuthMode {
		g := 0.5 * (f - 1.0/f)
		gama := asinz(math.Sin(azimuth) / cache.d)
		lonOrigin -= asinz(g*math.Tan(gama)) / cache.bl

		con = math.Abs(latOrigin)
		if con <= epsln || math.Abs(con-halfPi) <= epsln {
			return nil, newError(ProjectionInitError,
				"center latitude may not be at the equator or a pole")
		}
		cache.singam, cache.cosgam = math.Sincos(gama)
		cache.sinaz, cache.cosaz = math.Sincos(azimuth)
		cache.u = (cache.al / cache.bl) *
			math.Atan(math.Sqrt(cache.d*cache.d-1.0)/cache.cosaz)
		if latOrigin < 0 {
			cache.u = -cache.u
		}
	} else {
		sinphi := math.Sin(lat1)
		ts1 := tsfnz(cache.e, lat1, sinphi)
		sinphi = math.Sin(lat2)
		ts2 := tsfnz(cache.e, lat2, sinphi)
		h := math.Pow(ts1, cache.bl)
		ll := math.Pow(ts2, cache.bl)
		f = cache.el / h
		g := 0.5 * (f - 1.0/f)
		j := (cache.el*cache.el - ll*h) / (cache.el*cache.el + ll*h)
		p := (ll - h) / (ll + h)
		dlon := lon1 - lon2
		if dlon < -math.Pi {
			lon2 -= twoPi
		}
		if dlon > math.Pi {
			lon2 += twoPi
		}
		dlon = lon1 - lon2
		lonOrigin = 0.5*(lon1+lon2) -
			math.Atan(j*math.Tan(0.5*cache.bl*dlon)/p)/cache.bl
		dlon = adjustLon(lon1 - lonOrigin)
		gama := math.Atan(math.Sin(cache.bl*dlon) / g)
		azimuth = asinz(cache.d * math.Sin(gama))

		if math.Abs(lat1-lat2) <= epsln {
			return nil, newError(ProjectionInitError,
				"the two points on the central line have equal latitudes")
		}
		con = math.Abs(lat1)
		if con <= epsln || math.Abs(con-halfPi) <= epsln {
			return nil, newError(ProjectionInitError,
				"the first point may not be at the equator or a pole")
		}
		if math.Abs(math.Abs(latOrigin)-halfPi) <= epsln {
			return nil, newError(ProjectionInitError,
				"the center latitude may not be at a pole")
		}

		cache.singam, cache.cosgam = math.Sincos(gama)
		cache.sinaz, cache.cosaz = math.Sincos(azimuth)
		cache.u = (cache.al / cache.bl) *
			math.Atan(math.Sqrt(cache.d*cache.d-1.0)/cache.cosaz)
		if latOrigin < 0 {
			cache.u = -cache.u
		}
	}

	cache.lonOrigin = lonOrigin
	cache.azimuth = azimuth

	l.describe = func(l *leg) {
		reportTitle("OBLIQUE MERCATOR (HOTINE)")
		reportRadius2(cache.rMajor, cache.rMinor)
		reportValue(cache.scaleFactor, "Scale Factor at C. Meridian:    ")
		reportFalseOffsets(cache.falseEasting, cache.falseNorthing)
		if cache.azimuthMode {
			reportValue(cache.azimuth*r2d, "Azimuth of Central Line:    ")
			reportCenterLon(cache.lonOrigin)
			reportCenterLat(cache.latOrigin)
		} else {
			reportValue(cache.lon1*r2d, "Longitude of First Point:    ")
			reportValue(cache.lat1*r2d, "Latitude of First Point:    ")
			reportValue(cache.lon2*r2d, "Longitude of Second Point:    ")
			reportValue(cache.lat2*r2d, "Latitude of Second Point:    ")
		}
	}
	return cache, nil
}

// forward transforms lon/lat to x/y.
func (c *omProj) forward(lon, lat float64) (x, y float64, err error) {
	sinPhi := math.Sin(lat)
	dlon := adjustLon(lon - c.lonOrigin)
	vl := math.Sin(c.bl * dlon)
	var ul, us float64
	if math.Abs(math.Abs(lat)-halfPi) > epsln {
		ts1 := tsfnz(c.e, lat, sinPhi)
		q := c.el / math.Pow(ts1, c.bl)
		s := 0.5 * (q - 1.0/q)
		t := 0.5 * (q + 1.0/q)
		ul = (s*c.singam - vl*c.cosgam) / t
		con := math.Cos(c.bl * dlon)
		if math.Abs(con) < 0.0000001 {
			us = c.al * dlon
		} else {
			us = c.al * math.Atan((s*c.cosgam+vl*c.singam)/con) / c.bl
			if con < 0 {
				us += math.Pi * c.al / c.bl
			}
		}
	} else {
		ul = c.singam
		if lat < 0 {
			ul = -c.singam
		}
		us = c.al * lat / c.bl
	}
	if math.Abs(math.Abs(ul)-1.0) <= epsln {
		return 0, 0, newError(ComputationError, "point projects into infinity")
	}
	vs := 0.5 * c.al * math.Log((1.0-ul)/(1.0+ul)) / c.bl
	us -= c.u
	x = c.falseEasting + vs*c.cosaz + us*c.sinaz
	y = c.falseNorthing + us*c.cosaz - vs*c.sinaz
	return x, y, nil
}

// inverse transforms x/y to lon/lat.
func (c *omProj) inverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y -= c.falseNorthing
	vs := x*c.cosaz - y*c.sinaz
	us := y*c.cosaz + x*c.sinaz
	us += c.u
	q := math.Exp(-c.bl * vs / c.al)
	s := 0.5 * (q - 1.0/q)
	t := 0.5 * (q + 1.0/q)
	vl := math.Sin(c.bl * us / c.al)
	ul := (vl*c.cosgam + s*c.singam) / t
	if math.Abs(math.Abs(ul)-1.0) <= epsln {
		lon = c.lonOrigin
		lat = halfPi
		if ul < 0 {
			lat = -halfPi
		}
		return lon, lat, nil
	}
	con := 1.0 / c.bl
	ts1 := math.Pow(c.el/math.Sqrt((1.0+ul)/(1.0-ul)), con)
	lat, err = phi2z(c.e, ts1)
	if err != nil {
		return 0, 0, err
	}
	con = math.Cos(c.bl * us / c.al)
	theta := c.lonOrigin - math.Atan2(s*c.cosgam-vl*c.singam, con)/c.bl
	lon = adjustLon(theta)
	return lon, lat, nil
}

func omForwardInit(l *leg) error {
	cache, err := omCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing oblique mercator forward projection: %v", err)
	}
	l.transform = cache.forward
	return nil
}

func omInverseInit(l *leg) error {
	cache, err := omCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing oblique mercator inverse projection: %v", err)
	}
	l.transform = cache.inverse
	return nil
}
