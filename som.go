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

// Space Oblique Mercator (SOM).
//
// The X axis is in the direction of satellite motion, which for most
// other projections is roughly the negative Y axis, so the false
// northing is applied to the X coordinate and the false easting to the
// Y coordinate.

package gctp

import "math"

const landsatRatio = 0.5201613

// somProj holds the precomputed constants for an SOM leg.
type somProj struct {
	lonCenter     float64
	a             float64
	b             float64
	a2, a4        float64
	c1, c3        float64
	q, t, u, w    float64
	xj            float64
	p21           float64
	sa, ca        float64
	es            float64
	falseEasting  float64
	falseNorthing float64
	isSOMB        bool
	path          int
	satnum        int
	inclination   float64 // inclination angle in radians
	start         int
}

// series evaluates the Snyder series terms used to convert from
// transformed latitude/longitude to SOM rectangular coordinates, for a
// sample longitude dlam given in degrees.
func (c *somProj) series(dlam float64) (fb, fa2, fa4, fc1, fc3 float64) {
	dlam = dlam * 0.0174532925
	sd := math.Sin(dlam)
	sdsq := sd * sd
	qTerm := 1.0 + c.q*sdsq
	wTerm := 1.0 + c.w*sdsq
	s := c.p21 * c.sa * math.Cos(dlam) *
		math.Sqrt((1.0+c.t*sdsq)/(wTerm*qTerm))
	h := math.Sqrt(qTerm/wTerm) * (wTerm/(qTerm*qTerm) - c.p21*c.ca)
	sq := math.Sqrt(c.xj*c.xj + s*s)
	fb = (h*c.xj - s*s) / sq
	fa2 = fb * math.Cos(2.0*dlam)
	fa4 = fb * math.Cos(4.0*dlam)
	fc := s * (h + c.xj) / sq
	fc1 = fc * math.Cos(dlam)
	fc3 = fc * math.Cos(3.0*dlam)
	return fb, fa2, fa4, fc1, fc3
}

func somCommonInit(l *leg) (*somProj, error) {
	proj := &l.proj

	rMajor, rMinor, _, err := resolveSpheroid(proj.Spheroid, proj.Parameters)
	if err != nil {
		return nil, err
	}
	falseEasting := proj.Parameters[6]
	falseNorthing := proj.Parameters[7]
	start := int(proj.Parameters[10])
	isSOMB := proj.Parameters[12] != 0

	var satnum, path int
	var inclination, lonCenter, p21 float64
	if !isSOMB {
		inclination, err = dmsParam(proj.Parameters[3])
		if err != nil {
			return nil, newError(InvalidInput,
				"error converting inclination angle parameter from DMS to degrees: %f",
				proj.Parameters[3])
		}
		lonCenter, err = dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, newError(InvalidInput,
				"error converting longitude of ascending orbit parameter from DMS to degrees: %f",
				proj.Parameters[4])
		}
		time := proj.Parameters[8]
		p21 = time / 1440.0
	} else {
		// Format B derives the orbit from the Landsat satellite and
		// path numbers.
		satnum = int(proj.Parameters[2])
		path = int(proj.Parameters[3])
		if satnum < 4 {
			inclination = 99.092 * d2r
			p21 = 103.2669323 / 1440.0
			lonCenter = (128.87 - 360.0/251.0*float64(path)) * d2r
		} else {
			inclination = 98.2 * d2r
			p21 = 98.8841202 / 1440.0
			lonCenter = (129.30 - 360.0/233.0*float64(path)) * d2r
		}
	}

	cache := &somProj{
		lonCenter:     lonCenter,
		a:             rMajor,
		b:             rMinor,
		falseEasting:  falseEasting,
		falseNorthing: falseNorthing,
		isSOMB:        isSOMB,
		path:          path,
		satnum:        satnum,
		inclination:   inclination,
		start:         start,
		p21:           p21,
	}
	temp := rMinor / rMajor
	cache.es = 1.0 - temp*temp

	cache.ca = math.Cos(inclination)
	if math.Abs(cache.ca) < 1.e-9 {
		cache.ca = 1.e-9
	}
	cache.sa = math.Sin(inclination)
	e2c := cache.es * cache.ca * cache.ca
	e2s := cache.es * cache.sa * cache.sa
	cache.w = (1.0 - e2c) / (1.0 - cache.es)
	cache.w = cache.w*cache.w - 1.0
	oneEs := 1.0 - cache.es
	cache.q = e2s / oneEs
	cache.t = (e2s * (2.0 - cache.es)) / (oneEs * oneEs)
	cache.u = e2c / oneEs
	cache.xj = oneEs * oneEs * oneEs

	// Simpson integration of the series coefficients over a quarter
	// orbit at nine degree intervals.
	fb, fa2, fa4, fc1, fc3 := cache.series(0.0)
	suma2 := fa2
	suma4 := fa4
	sumb := fb
	sumc1 := fc1
	sumc3 := fc3
	for i := 9; i <= 81; i += 18 {
		fb, fa2, fa4, fc1, fc3 = cache.series(float64(i))
		suma2 += 4.0 * fa2
		suma4 += 4.0 * fa4
		sumb += 4.0 * fb
		sumc1 += 4.0 * fc1
		sumc3 += 4.0 * fc3
	}
	for i := 18; i <= 72; i += 18 {
		fb, fa2, fa4, fc1, fc3 = cache.series(float64(i))
		suma2 += 2.0 * fa2
		suma4 += 2.0 * fa4
		sumb += 2.0 * fb
		sumc1 += 2.0 * fc1
		sumc3 += 2.0 * fc3
	}
	fb, fa2, fa4, fc1, fc3 = cache.series(90.0)
	suma2 += fa2
	suma4 += fa4
	sumb += fb
	sumc1 += fc1
	sumc3 += fc3
	cache.a2 = suma2 / 30.0
	cache.a4 = suma4 / 60.0
	cache.b = sumb / 30.0
	cache.c1 = sumc1 / 15.0
	cache.c3 = sumc3 / 45.0

	l.describe = func(l *leg) {
		reportTitle("SPACE OBLIQUE MERCATOR")
		reportRadius2(cache.a, cache.b)
		if cache.isSOMB {
			reportIntValue(cache.path, "Path Number:    ")
			reportIntValue(cache.satnum, "Satellite Number:    ")
		}
		reportValue(cache.inclination*r2d, "Inclination of Orbit:    ")
		reportValue(cache.lonCenter*r2d, "Longitude of Ascending Orbit:    ")
		reportFalseOffsets(cache.falseEasting, cache.falseNorthing)
	}
	return cache, nil
}

// forward transforms lon/lat to SOM x/y.
func (c *somProj) forward(lon, lat float64) (x, y float64, err error) {
	const conv = 1.e-7
	deltaLat := lat
	deltaLon := lon - c.lonCenter

	// Test for latitude and longitude approaching 90 degrees.
	if deltaLat > 1.570796 {
		deltaLat = 1.570796
	}
	if deltaLat < -1.570796 {
		deltaLat = -1.570796
	}
	radlt := deltaLat
	radln := deltaLon
	tlamp := 0.0
	if deltaLat >= 0 {
		tlamp = math.Pi / 2.0
	}
	if c.start == 1 {
		tlamp = 2.5 * math.Pi
	} else if c.start == 0 {
		tlamp = halfPi
	}
	if deltaLat < 0 {
		tlamp = 1.5 * math.Pi
	}

	var xlamt, tlam float64
	n := 0
	done := false
	for !done {
		sav := tlamp
		l := 0
		xlamp := radln + c.p21*tlamp
		ab1 := math.Cos(xlamp)
		if math.Abs(ab1) < conv {
			xlamp -= 1.e-7
		}
		scl := 1.0
		if ab1 < 0 {
			scl = -1.0
		}
		ab2 := tlamp - scl*math.Sin(tlamp)*halfPi

		for l <= 50 {
			xlamt = radln + c.p21*sav
			cc := math.Cos(xlamt)
			if math.Abs(cc) < 1.e-7 {
				xlamt -= 1.e-7
			}
			xlam := ((1.0-c.es)*math.Tan(radlt)*c.sa +
				math.Sin(xlamt)*c.ca) / cc
			tlam = math.Atan(xlam)
			tlam += ab2
			tabs := math.Abs(sav) - math.Abs(tlam)
			if math.Abs(tabs) < conv {
				// Adjust for confusion at the beginning and end of
				// landsat orbits.
				rlm := math.Pi * landsatRatio
				rlm2 := rlm + twoPi
				n++
				if n >= 3 || (tlam > rlm && tlam < rlm2) {
					done = true
					break
				}
				if tlam < rlm {
					tlamp = 2.50 * math.Pi
					if c.start == 0 {
						tlamp = halfPi
					}
				}
				if tlam >= rlm2 {
					tlamp = halfPi
					if c.start == 1 {
						tlamp = 2.50 * math.Pi
					}
				}
				break
			}
			l++
			sav = tlam
		}
		if !done && l > 50 {
			return 0, 0, newError(ConvergenceFailure,
				"max iterations reached without converging")
		}
	}

	// tlam computed, now compute tphi.
	dp := math.Sin(radlt)
	tphi := math.Asin(((1.0-c.es)*c.ca*dp -
		c.sa*math.Cos(radlt)*math.Sin(xlamt)) /
		math.Sqrt(1.0-c.es*dp*dp))

	xtan := math.Pi/4.0 + tphi/2.0
	tanlg := math.Log(math.Tan(xtan))
	sd := math.Sin(tlam)
	sdsq := sd * sd
	s := c.p21 * c.sa * math.Cos(tlam) *
		math.Sqrt((1.0+c.t*sdsq)/((1.0+c.w*sdsq)*(1.0+c.q*sdsq)))
	d := math.Sqrt(c.xj*c.xj + s*s)
	x = c.a * (c.b*tlam + c.a2*math.Sin(2.0*tlam) +
		c.a4*math.Sin(4.0*tlam) - tanlg*s/d)
	y = c.a * (c.c1*sd + c.c3*math.Sin(3.0*tlam) + tanlg*c.xj/d)

	x += c.falseNorthing
	y += c.falseEasting
	return x, y, nil
}

// inverse transforms SOM x/y to lon/lat.
func (c *somProj) inverse(x, y float64) (lon, lat float64, err error) {
	y -= c.falseEasting
	x -= c.falseNorthing

	// Begin the inverse computation with an approximation for the
	// transformed longitude.
	tlon := x / (c.a * c.b)
	const conv = 1.e-9
	var s float64
	converged := false
	for inumb := 0; inumb < 50; inumb++ {
		sav := tlon
		sd := math.Sin(tlon)
		sdsq := sd * sd
		s = c.p21 * c.sa * math.Cos(tlon) *
			math.Sqrt((1.0+c.t*sdsq)/((1.0+c.w*sdsq)*(1.0+c.q*sdsq)))
		blon := x/c.a + y/c.a*s/c.xj - c.a2*math.Sin(2.0*tlon) -
			c.a4*math.Sin(4.0*tlon) -
			s/c.xj*(c.c1*math.Sin(tlon)+c.c3*math.Sin(3.0*tlon))
		tlon = blon / c.b
		if math.Abs(tlon-sav) < conv {
			converged = true
			break
		}
	}
	if !converged {
		return 0, 0, newError(ConvergenceFailure,
			"max iterations reached without converging")
	}

	// Compute the transformed latitude.
	st := math.Sin(tlon)
	defac := math.Exp(math.Sqrt(1.0+s*s/c.xj/c.xj) *
		(y/c.a - c.c1*st - c.c3*math.Sin(3.0*tlon)))
	actan := math.Atan(defac)
	tlat := 2.0 * (actan - math.Pi/4.0)

	// Compute the geodetic longitude.
	dd := st * st
	if math.Abs(math.Cos(tlon)) < 1.e-7 {
		tlon -= 1.e-7
	}
	bigk := math.Sin(tlat)
	bigk2 := bigk * bigk
	xlamt := math.Atan(((1.0-bigk2/(1.0-c.es))*math.Tan(tlon)*c.ca -
		bigk*c.sa*math.Sqrt((1.0+c.q*dd)*(1.0-bigk2)-bigk2*c.u)/
			math.Cos(tlon)) / (1.0 - bigk2*(1.0+c.u)))

	// Correct the inverse quadrant.
	sl := 1.0
	if xlamt < 0 {
		sl = -1.0
	}
	scl := 1.0
	if math.Cos(tlon) < 0 {
		scl = -1.0
	}
	xlamt -= halfPi * (1.0 - scl) * sl
	dlon := xlamt - c.p21*tlon

	// Compute the geodetic latitude.
	var dlat float64
	if math.Abs(c.sa) < 1.e-7 {
		dlat = math.Asin(bigk / math.Sqrt((1.0-c.es)*(1.0-c.es)+c.es*bigk2))
	} else {
		dlat = math.Atan((math.Tan(tlon)*math.Cos(xlamt) -
			c.ca*math.Sin(xlamt)) / ((1.0 - c.es) * c.sa))
	}
	lon = adjustLon(dlon + c.lonCenter)
	lat = dlat
	return lon, lat, nil
}

func somForwardInit(l *leg) error {
	cache, err := somCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing SOM forward projection: %v", err)
	}
	l.transform = cache.forward
	return nil
}

func somInverseInit(l *leg) error {
	cache, err := somCommonInit(l)
	if err != nil {
		return newError(errKind(err),
			"error initializing SOM inverse projection: %v", err)
	}
	l.transform = cache.inverse
	return nil
}
