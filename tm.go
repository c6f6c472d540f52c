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

// Transverse Mercator and Universal Transverse Mercator.  UTM is a
// special case of TM with fixed scale factor, zone-derived central
// meridian, and standard false offsets.

package gctp

import "math"

// tmProj holds the precomputed constants for a TM or UTM leg.
type tmProj struct {
	rMajor         float64
	rMinor         float64
	scaleFactor    float64
	lonCenter      float64
	latOrigin      float64
	falseEasting   float64
	falseNorthing  float64
	e0, e1, e2, e3 float64
	es             float64
	esp            float64
	ml0            float64
	isSphere       bool
}

func newTMProj(rMajor, rMinor, scaleFactor, centerLon, latOrigin, falseEasting, falseNorthing float64) *tmProj {
	c := &tmProj{
		rMajor:        rMajor,
		rMinor:        rMinor,
		scaleFactor:   scaleFactor,
		lonCenter:     centerLon,
		latOrigin:     latOrigin,
		falseEasting:  falseEasting,
		falseNorthing: falseNorthing,
	}
	temp := rMinor / rMajor
	c.es = 1.0 - temp*temp
	c.e0 = e0fn(c.es)
	c.e1 = e1fn(c.es)
	c.e2 = e2fn(c.es)
	c.e3 = e3fn(c.es)
	c.ml0 = rMajor * mlfn(c.e0, c.e1, c.e2, c.e3, latOrigin)
	c.esp = c.es / (1.0 - c.es)

	// The spherical form is usable when the eccentricity is small
	// enough.
	c.isSphere = c.es < 0.00001
	return c
}

// tmCommonInit prepares a TM leg from its projection parameters.
func tmCommonInit(l *leg) (*tmProj, error) {
	proj := &l.proj

	scaleFactor := proj.Parameters[2]
	falseEasting := proj.Parameters[6]
	falseNorthing := proj.Parameters[7]
	rMajor, rMinor, _, err := resolveSpheroid(proj.Spheroid, proj.Parameters)
	if err != nil {
		return nil, err
	}

	centerLon, err := dmsParam(proj.Parameters[4])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting longitude in parameter 4 from DMS to degrees: %f",
			proj.Parameters[4])
	}
	latOrigin, err := dmsParam(proj.Parameters[5])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting latitude in parameter 5 from DMS to degrees: %f",
			proj.Parameters[5])
	}

	cache := newTMProj(rMajor, rMinor, scaleFactor, centerLon, latOrigin,
		falseEasting, falseNorthing)
	l.describe = func(l *leg) {
		reportTitle("TRANSVERSE MERCATOR (TM)")
		reportRadius2(cache.rMajor, cache.rMinor)
		reportValue(cache.scaleFactor, "Scale Factor at C. Meridian:     ")
		reportCenterLonMer(cache.lonCenter)
		reportOrigin(cache.latOrigin)
		reportFalseOffsets(cache.falseEasting, cache.falseNorthing)
	}
	return cache, nil
}

// utmCommonInit prepares a UTM leg.  A zero zone is derived from the
// longitude and latitude in the first two parameters, with a negative
// zone selecting the southern hemisphere.
func utmCommonInit(l *leg) (*tmProj, error) {
	proj := &l.proj

	// A negative spheroid code defaults to Clarke 1866.
	spheroid := proj.Spheroid
	if spheroid < 0 {
		spheroid = Clarke1866
	}
	rMajor, rMinor, _, err := resolveSpheroid(spheroid, proj.Parameters)
	if err != nil {
		return nil, err
	}

	zone := proj.Zone
	if zone == 0 {
		lon1, err := dmsParam(proj.Parameters[0])
		if err != nil {
			return nil, newError(InvalidInput,
				"error converting longitude in parameter 0 from DMS to degrees: %f",
				proj.Parameters[0])
		}
		lat1, err := dmsParam(proj.Parameters[1])
		if err != nil {
			return nil, newError(InvalidInput,
				"error converting latitude in parameter 1 from DMS to degrees: %f",
				proj.Parameters[1])
		}
		zone = CalcUTMZone(lon1 * r2d)
		if lat1 < 0 {
			zone = -zone
		}
	}
	absZone := zone
	if absZone < 0 {
		absZone = -absZone
	}
	if absZone < 1 || absZone > 60 {
		return nil, newError(ProjectionInitError, "illegal zone number: %d", zone)
	}

	scaleFactor := 0.9996
	latOrigin := 0.0
	centerLon := float64(6*absZone-183) * d2r
	falseEasting := 500000.0
	falseNorthing := 0.0
	if zone < 0 {
		falseNorthing = 10000000.0
	}

	cache := newTMProj(rMajor, rMinor, scaleFactor, centerLon, latOrigin,
		falseEasting, falseNorthing)
	l.describe = func(l *leg) {
		reportTitle("UNIVERSAL TRANSVERSE MERCATOR (UTM)")
		reportIntValue(l.proj.Zone, "Zone:     ")
		reportRadius2(cache.rMajor, cache.rMinor)
		reportValue(cache.scaleFactor, "Scale Factor at C. Meridian:     ")
		reportCenterLonMer(cache.lonCenter)
	}
	return cache, nil
}

// forward transforms lon/lat to TM/UTM x/y.
func (c *tmProj) forward(lon, lat float64) (x, y float64, err error) {
	deltaLon := adjustLon(lon - c.lonCenter)
	sinPhi, cosPhi := math.Sincos(lat)

	if c.isSphere {
		b := cosPhi * math.Sin(deltaLon)
		if math.Abs(math.Abs(b)-1.0) < 1.0e-10 {
			return 0, 0, newError(ComputationError, "point projects into infinity")
		}
		x = 0.5 * c.rMajor * c.scaleFactor * math.Log((1.0+b)/(1.0-b))
		con := math.Acos(cosPhi * math.Cos(deltaLon) / math.Sqrt(1.0-b*b))
		if lat < 0 {
			con = -con
		}
		y = c.rMajor * c.scaleFactor * (con - c.latOrigin)
		return x, y, nil
	}

	al := cosPhi * deltaLon
	als := al * al
	cc := c.esp * cosPhi * cosPhi
	tq := math.Tan(lat)
	t := tq * tq
	con := 1.0 - c.es*sinPhi*sinPhi
	n := c.rMajor / math.Sqrt(con)
	ml := c.rMajor * mlfn(c.e0, c.e1, c.e2, c.e3, lat)

	x = c.scaleFactor*n*al*(1.0+als/6.0*
		(1.0-t+cc+als/20.0*(5.0-18.0*t+t*t+72.0*cc-58.0*c.esp))) +
		c.falseEasting

	y = c.scaleFactor*(ml-c.ml0+n*tq*(als*
		(0.5+als/24.0*(5.0-t+9.0*cc+4.0*cc*cc+als/30.0*
			(61.0-58.0*t+t*t+600.0*cc-330.0*c.esp))))) +
		c.falseNorthing

	return x, y, nil
}

// inverse transforms TM/UTM x/y to lon/lat.
func (c *tmProj) inverse(x, y float64) (lon, lat float64, err error) {
	if c.isSphere {
		f := math.Exp(x / (c.rMajor * c.scaleFactor))
		g := 0.5 * (f - 1.0/f)
		temp := c.latOrigin + y/(c.rMajor*c.scaleFactor)
		h := math.Cos(temp)
		con := math.Sqrt((1.0 - h*h) / (1.0 + g*g))
		lat = asinz(con)
		if temp < 0 {
			lat = -lat
		}
		if g == 0 && h == 0 {
			return c.lonCenter, lat, nil
		}
		return adjustLon(math.Atan2(g, h) + c.lonCenter), lat, nil
	}

	x -= c.falseEasting
	y -= c.falseNorthing

	con := (c.ml0 + y/c.scaleFactor) / c.rMajor
	phi := con
	const maxIter = 6
	for i := 0; ; i++ {
		deltaPhi := (con+c.e1*math.Sin(2.0*phi)-c.e2*math.Sin(4.0*phi)+
			c.e3*math.Sin(6.0*phi))/c.e0 - phi
		phi += deltaPhi
		if math.Abs(deltaPhi) <= epsln {
			break
		}
		if i >= maxIter {
			return 0, 0, newError(ConvergenceFailure,
				"latitude failed to converge in inverse transform")
		}
	}
	if math.Abs(phi) < halfPi {
		sinPhi, cosPhi := math.Sincos(phi)
		tanPhi := math.Tan(phi)
		cc := c.esp * cosPhi * cosPhi
		cs := cc * cc
		t := tanPhi * tanPhi
		ts := t * t
		con = 1.0 - c.es*sinPhi*sinPhi
		n := c.rMajor / math.Sqrt(con)
		r := n * (1.0 - c.es) / con
		d := x / (n * c.scaleFactor)
		ds := d * d
		lat = phi - (n*tanPhi*ds/r)*(0.5-ds/24.0*(5.0+3.0*t+
			10.0*cc-4.0*cs-9.0*c.esp-ds/30.0*(61.0+90.0*t+298.0*cc+
			45.0*ts-252.0*c.esp-3.0*cs)))
		lon = adjustLon(c.lonCenter + d*(1.0-ds/6.0*
			(1.0+2.0*t+cc-ds/20.0*(5.0-2.0*cc+28.0*t-3.0*cs+
				8.0*c.esp+24.0*ts)))/cosPhi)
	} else {
		lat = halfPi * sign(y)
		lon = c.lonCenter
	}
	return lon, lat, nil
}

func tmForwardInit(l *leg) error {
	cache, err := tmCommonInit(l)
	if err != nil {
		return newError(errKind(err), "error initializing TM forward projection: %v", err)
	}
	l.transform = cache.forward
	return nil
}

func tmInverseInit(l *leg) error {
	cache, err := tmCommonInit(l)
	if err != nil {
		return newError(errKind(err), "error initializing TM inverse projection: %v", err)
	}
	l.transform = cache.inverse
	return nil
}

func utmForwardInit(l *leg) error {
	cache, err := utmCommonInit(l)
	if err != nil {
		return newError(errKind(err), "error initializing UTM forward projection: %v", err)
	}
	l.transform = cache.forward
	return nil
}

func utmInverseInit(l *leg) error {
	cache, err := utmCommonInit(l)
	if err != nil {
		return newError(errKind(err), "error initializing UTM inverse projection: %v", err)
	}
	l.transform = cache.inverse
	return nil
}
