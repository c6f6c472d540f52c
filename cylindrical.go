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

// The spherical pseudo-cylindrical and cylindrical projections:
// Sinusoidal, Equirectangular, and Miller Cylindrical.

package gctp

import "math"

// cylSphereProj holds the precomputed constants shared by the
// spherical cylindrical projection legs. lat1/cosLat1 are only
// meaningful for the Equirectangular projection.
type cylSphereProj struct {
	radius        float64
	centerLon     float64
	lat1          float64
	cosLat1       float64
	falseEasting  float64
	falseNorthing float64
}

func cylSphereCommonInit(l *leg, title string, wantLat1 bool) (*cylSphereProj, error) {
	proj := &l.proj

	_, _, radius, err := resolveSpheroid(proj.Spheroid, proj.Parameters)
	if err != nil {
		return nil, err
	}
	centerLon, err := dmsParam(proj.Parameters[4])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting center longitude parameter from DMS to degrees: %f",
			proj.Parameters[4])
	}
	cache := &cylSphereProj{
		radius:        radius,
		centerLon:     centerLon,
		falseEasting:  proj.Parameters[6],
		falseNorthing: proj.Parameters[7],
	}
	if wantLat1 {
		cache.lat1, err = dmsParam(proj.Parameters[5])
		if err != nil {
			return nil, newError(InvalidInput,
				"error converting latitude of true scale parameter from DMS to degrees: %f",
				proj.Parameters[5])
		}
		cache.cosLat1 = math.Cos(cache.lat1)
		if cache.cosLat1 < epsln {
			return nil, newError(ProjectionInitError,
				"latitude of true scale is at a pole")
		}
	}

	l.describe = func(l *leg) {
		reportTitle(title)
		reportRadius(cache.radius)
		reportCenterLonMer(cache.centerLon)
		if wantLat1 {
			reportStandardParallel(cache.lat1)
		}
		reportFalseOffsets(cache.falseEasting, cache.falseNorthing)
	}
	return cache, nil
}

// Sinusoidal.

func (c *cylSphereProj) sinusoidalForward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - c.centerLon)
	x = c.falseEasting + c.radius*dlon*math.Cos(lat)
	y = c.falseNorthing + c.radius*lat
	return x, y, nil
}

func (c *cylSphereProj) sinusoidalInverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y -= c.falseNorthing
	lat = y / c.radius
	if math.Abs(lat) > halfPi {
		return 0, 0, newError(InvalidInput,
			"point (%f, %f) is outside the map extent", x, y)
	}
	temp := math.Abs(lat) - halfPi
	if math.Abs(temp) > epsln {
		lon = adjustLon(c.centerLon + x/(c.radius*math.Cos(lat)))
	} else {
		lon = c.centerLon
	}
	return lon, lat, nil
}

// Equirectangular.

func (c *cylSphereProj) equirectForward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - c.centerLon)
	x = c.falseEasting + c.radius*dlon*c.cosLat1
	y = c.falseNorthing + c.radius*lat
	return x, y, nil
}

func (c *cylSphereProj) equirectInverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y -= c.falseNorthing
	lat = y / c.radius
	if math.Abs(lat) > halfPi {
		return 0, 0, newError(InvalidInput,
			"point (%f, %f) is outside the map extent", x, y)
	}
	lon = adjustLon(c.centerLon + x/(c.radius*c.cosLat1))
	return lon, lat, nil
}

// Miller Cylindrical.

func (c *cylSphereProj) millerForward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - c.centerLon)
	x = c.falseEasting + c.radius*dlon
	y = c.falseNorthing + c.radius*math.Log(math.Tan(math.Pi/4.0+lat/2.5))*1.25
	return x, y, nil
}

func (c *cylSphereProj) millerInverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y -= c.falseNorthing
	lon = adjustLon(c.centerLon + x/c.radius)
	lat = 2.5 * (math.Atan(math.Exp(y/c.radius/1.25)) - math.Pi/4.0)
	return lon, lat, nil
}

func sinusoidalForwardInit(l *leg) error {
	cache, err := cylSphereCommonInit(l, "SINUSOIDAL", false)
	if err != nil {
		return newError(errKind(err),
			"error initializing Sinusoidal forward projection: %v", err)
	}
	l.transform = cache.sinusoidalForward
	return nil
}

func sinusoidalInverseInit(l *leg) error {
	cache, err := cylSphereCommonInit(l, "SINUSOIDAL", false)
	if err != nil {
		return newError(errKind(err),
			"error initializing Sinusoidal inverse projection: %v", err)
	}
	l.transform = cache.sinusoidalInverse
	return nil
}

func equirectForwardInit(l *leg) error {
	cache, err := cylSphereCommonInit(l, "EQUIRECTANGULAR", true)
	if err != nil {
		return newError(errKind(err),
			"error initializing Equirectangular forward projection: %v", err)
	}
	l.transform = cache.equirectForward
	return nil
}

func equirectInverseInit(l *leg) error {
	cache, err := cylSphereCommonInit(l, "EQUIRECTANGULAR", true)
	if err != nil {
		return newError(errKind(err),
			"error initializing Equirectangular inverse projection: %v", err)
	}
	l.transform = cache.equirectInverse
	return nil
}

func millerForwardInit(l *leg) error {
	cache, err := cylSphereCommonInit(l, "MILLER CYLINDRICAL", false)
	if err != nil {
		return newError(errKind(err),
			"error initializing Miller Cylindrical forward projection: %v", err)
	}
	l.transform = cache.millerForward
	return nil
}

func millerInverseInit(l *leg) error {
	cache, err := cylSphereCommonInit(l, "MILLER CYLINDRICAL", false)
	if err != nil {
		return newError(errKind(err),
			"error initializing Miller Cylindrical inverse projection: %v", err)
	}
	l.transform = cache.millerInverse
	return nil
}
