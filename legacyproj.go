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

// Spherical projections reachable only through the legacy dispatch
// path: Van der Grinten, Hammer, Mollweide, Wagner IV, Wagner VII, and
// General Vertical Near-Side Perspective.

package gctp

import "math"

// vandgForward builds the forward Van der Grinten transform.
func vandgForward(r, centerLon, falseEasting, falseNorthing float64) transformFunc {
	return func(lon, lat float64) (float64, float64, error) {
		dlon := adjustLon(lon - centerLon)

		if math.Abs(lat) <= epsln {
			return falseEasting + r*dlon, falseNorthing, nil
		}
		theta := asinz(2.0 * math.Abs(lat/math.Pi))
		if math.Abs(dlon) <= epsln || math.Abs(math.Abs(lat)-halfPi) <= epsln {
			y := falseNorthing + math.Pi*r*sign(lat)*math.Tan(0.5*theta)
			return falseEasting, y, nil
		}
		al := 0.5 * math.Abs(math.Pi/dlon-dlon/math.Pi)
		asq := al * al
		sinth, costh := math.Sincos(theta)
		g := costh / (sinth + costh - 1.0)
		gsq := g * g
		m := g * (2.0/sinth - 1.0)
		msq := m * m
		con := math.Pi * r * (al*(g-msq) +
			math.Sqrt(asq*(g-msq)*(g-msq)-(msq+asq)*(gsq-msq))) / (msq + asq)
		if dlon < 0 {
			con = -con
		}
		x := falseEasting + con

		con = math.Abs(con / (math.Pi * r))
		y := math.Pi * r * math.Sqrt(1.0-con*con-2.0*al*con)
		if lat < 0 {
			y = -y
		}
		return x, falseNorthing + y, nil
	}
}

// vandgInverse builds the inverse Van der Grinten transform.
func vandgInverse(r, centerLon, falseEasting, falseNorthing float64) transformFunc {
	return func(x, y float64) (float64, float64, error) {
		x -= falseEasting
		y -= falseNorthing
		con := math.Pi * r
		xx := x / con
		yy := y / con
		xys := xx*xx + yy*yy
		c1 := -math.Abs(yy) * (1.0 + xys)
		c2 := c1 - 2.0*yy*yy + xx*xx
		c3 := -2.0*c1 + 1.0 + 2.0*yy*yy + xys*xys
		d := yy*yy/c3 + (2.0*c2*c2*c2/c3/c3/c3-9.0*c1*c2/c3/c3)/27.0
		a1 := (c1 - c2*c2/3.0/c3) / c3
		m1 := 2.0 * math.Sqrt(-a1/3.0)
		con = (3.0 * d) / a1 / m1
		if math.Abs(con) > 1.0 {
			con = sign(con)
		}
		th1 := math.Acos(con) / 3.0
		lat := (-m1*math.Cos(th1+math.Pi/3.0) - c2/3.0/c3) * math.Pi
		if y < 0 {
			lat = -lat
		}

		if math.Abs(xx) < epsln {
			return centerLon, lat, nil
		}
		lon := adjustLon(centerLon + math.Pi*(xys-1.0+
			math.Sqrt(1.0+2.0*(xx*xx-yy*yy)+xys*xys))/(2.0*xx))
		return lon, lat, nil
	}
}

// hammerForward builds the forward Hammer transform.
func hammerForward(r, centerLon, falseEasting, falseNorthing float64) transformFunc {
	return func(lon, lat float64) (float64, float64, error) {
		dlon := adjustLon(lon - centerLon)
		sinphi, cosphi := math.Sincos(lat)
		d := math.Sqrt(2.0 / (1.0 + cosphi*math.Cos(dlon/2.0)))
		x := falseEasting + 2.0*r*d*cosphi*math.Sin(dlon/2.0)
		y := falseNorthing + r*d*sinphi
		return x, y, nil
	}
}

// hammerInverse builds the inverse Hammer transform.  Points off the
// elliptical map disk are reported as in-break.
func hammerInverse(r, centerLon, falseEasting, falseNorthing float64) transformFunc {
	return func(x, y float64) (float64, float64, error) {
		x -= falseEasting
		y -= falseNorthing
		con := 4.0*r*r - x*x/4.0 - y*y
		if con < 0 {
			return 0, 0, newError(InBreakRegion,
				"point (%f, %f) is off the map disk", x, y)
		}
		fac := math.Sqrt(con) / 2.0
		lon := adjustLon(centerLon +
			2.0*math.Atan2(x*fac, 2.0*r*r-x*x/4-y*y))
		lat := asinz(y * fac / r / r)
		return lon, lat, nil
	}
}

// mollForward builds the forward Mollweide transform.
func mollForward(r, centerLon, falseEasting, falseNorthing float64) transformFunc {
	return func(lon, lat float64) (float64, float64, error) {
		dlon := adjustLon(lon - centerLon)
		theta := lat
		con := math.Pi * math.Sin(lat)
		for i := 0; ; i++ {
			deltaTheta := -(theta + math.Sin(theta) - con) / (1.0 + math.Cos(theta))
			theta += deltaTheta
			if math.Abs(deltaTheta) < epsln {
				break
			}
			if i >= 50 {
				return 0, 0, newError(ConvergenceFailure,
					"iteration failed to converge")
			}
		}
		theta /= 2.0

		// At the poles cos(theta) suffers precision problems, so pin
		// the x coordinate to the false easting.
		if math.Pi/2-math.Abs(lat) < epsln {
			dlon = 0
		}
		x := 0.900316316158*r*dlon*math.Cos(theta) + falseEasting
		y := 1.4142135623731*r*math.Sin(theta) + falseNorthing
		return x, y, nil
	}
}

// mollInverse builds the inverse Mollweide transform.
func mollInverse(r, centerLon, falseEasting, falseNorthing float64) transformFunc {
	return func(x, y float64) (float64, float64, error) {
		x -= falseEasting
		y -= falseNorthing

		theta := asinz(y / (1.4142135623731 * r))
		lon := adjustLon(centerLon + x/(0.900316316158*r*math.Cos(theta)))
		if lon < -math.Pi {
			lon = -math.Pi
		} else if lon > math.Pi {
			lon = math.Pi
		}
		arg := (2.0*theta + math.Sin(2.0*theta)) / math.Pi
		lat := asinz(arg)
		return lon, lat, nil
	}
}

// wagivForward builds the forward Wagner IV transform.
func wagivForward(r, centerLon, falseEasting, falseNorthing float64) transformFunc {
	return func(lon, lat float64) (float64, float64, error) {
		dlon := adjustLon(lon - centerLon)
		theta := lat
		con := 2.9604205062 * math.Sin(lat)
		for i := 0; ; i++ {
			deltaTheta := -(theta + math.Sin(theta) - con) / (1.0 + math.Cos(theta))
			theta += deltaTheta
			if math.Abs(deltaTheta) < epsln {
				break
			}
			if i >= 50 {
				return 0, 0, newError(ConvergenceFailure,
					"iteration failed to converge")
			}
		}
		theta /= 2.0
		x := 0.8631*r*dlon*math.Cos(theta) + falseEasting
		y := 1.5654*r*math.Sin(theta) + falseNorthing
		return x, y, nil
	}
}

// wagivInverse builds the inverse Wagner IV transform.
func wagivInverse(r, centerLon, falseEasting, falseNorthing float64) transformFunc {
	return func(x, y float64) (float64, float64, error) {
		x -= falseEasting
		y -= falseNorthing
		theta := asinz(y / (1.5654 * r))
		lon := adjustLon(centerLon + x/(0.8631*r*math.Cos(theta)))
		lat := asinz((2.0*theta + math.Sin(2.0*theta)) / 2.9604205062)
		return lon, lat, nil
	}
}

// wagviiForward builds the forward Wagner VII transform.
func wagviiForward(r, centerLon, falseEasting, falseNorthing float64) transformFunc {
	return func(lon, lat float64) (float64, float64, error) {
		dlon := adjustLon(lon - centerLon)
		s := 0.90631 * math.Sin(lat)
		c0 := math.Sqrt(1.0 - s*s)
		c1 := math.Sqrt(2.0 / (1.0 + c0*math.Cos(dlon/3.0)))
		x := 2.66723*r*c0*c1*math.Sin(dlon/3.0) + falseEasting
		y := 1.24104*r*s*c1 + falseNorthing
		return x, y, nil
	}
}

// wagviiInverse builds the inverse Wagner VII transform by inverting
// the forward equations: with X and Y scaled by the forward constants,
// X*X + Y*Y = 2*(1 - c0*cos(dlon/3)) recovers the angular terms.
func wagviiInverse(r, centerLon, falseEasting, falseNorthing float64) transformFunc {
	return func(x, y float64) (float64, float64, error) {
		xs := (x - falseEasting) / (2.66723 * r)
		ys := (y - falseNorthing) / (1.24104 * r)
		w := 1.0 - (xs*xs+ys*ys)/2.0
		if w < -1.0 {
			return 0, 0, newError(InBreakRegion,
				"point (%f, %f) is off the map disk", x, y)
		}
		c1 := math.Sqrt(2.0 / (1.0 + w))
		s := ys / c1
		lat := asinz(s / 0.90631)
		c0 := math.Sqrt(1.0 - s*s)
		if c0 < epsln {
			return centerLon, lat, nil
		}
		lon := adjustLon(centerLon + 3.0*math.Atan2(xs/c1, w))
		return lon, lat, nil
	}
}

// gvnspForward builds the forward General Vertical Near-Side
// Perspective transform for a view from height h above the sphere.
func gvnspForward(r, h, centerLon, centerLat, falseEasting, falseNorthing float64) (transformFunc, error) {
	if h <= 0 {
		return nil, newError(ProjectionInitError,
			"invalid height above surface: %f", h)
	}
	p := 1.0 + h/r
	sinP, cosP := math.Sincos(centerLat)
	return func(lon, lat float64) (float64, float64, error) {
		dlon := adjustLon(lon - centerLon)
		sinphi, cosphi := math.Sincos(lat)
		coslon := math.Cos(dlon)
		g := sinP*sinphi + cosP*cosphi*coslon
		if g < 1.0/p {
			return 0, 0, newError(InBreakRegion,
				"point cannot be projected")
		}
		ksp := (p - 1.0) / (p - g)
		x := falseEasting + r*ksp*cosphi*math.Sin(dlon)
		y := falseNorthing + r*ksp*(cosP*sinphi-sinP*cosphi*coslon)
		return x, y, nil
	}, nil
}

// gvnspInverse builds the inverse General Vertical Near-Side
// Perspective transform.
func gvnspInverse(r, h, centerLon, centerLat, falseEasting, falseNorthing float64) (transformFunc, error) {
	if h <= 0 {
		return nil, newError(ProjectionInitError,
			"invalid height above surface: %f", h)
	}
	p := 1.0 + h/r
	sinP, cosP := math.Sincos(centerLat)
	return func(x, y float64) (float64, float64, error) {
		x -= falseEasting
		y -= falseNorthing
		rh := math.Sqrt(x*x + y*y)
		rs := rh / r
		con := p - 1.0
		com := p + 1.0
		if rs > math.Sqrt(con/com) {
			return 0, 0, newError(InBreakRegion,
				"point is beyond the mapped horizon")
		}
		sinz := (p - math.Sqrt(1.0-(rs*rs*com)/con)) / (con/rs + rs/con)
		z := asinz(sinz)
		sinz, cosz := math.Sincos(z)
		lon := centerLon
		if math.Abs(rh) <= epsln {
			return lon, centerLat, nil
		}
		chi := asinz(cosz*sinP + y*sinz*cosP/rh)
		lat := chi
		con = math.Abs(centerLat) - halfPi
		if math.Abs(con) <= epsln {
			if centerLat >= 0 {
				lon = adjustLon(centerLon + math.Atan2(x, -y))
			} else {
				lon = adjustLon(centerLon - math.Atan2(-x, y))
			}
		} else {
			con = cosz - sinP*math.Sin(chi)
			if math.Abs(con) >= epsln || math.Abs(x) >= epsln {
				lon = adjustLon(centerLon +
					math.Atan2(x*sinz*cosP, con*rh))
			}
		}
		return lon, lat, nil
	}, nil
}
