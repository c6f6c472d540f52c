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

package gctp

import "math"

// Angular constants shared by all of the projection modules.
const (
	halfPi = math.Pi / 2
	twoPi  = math.Pi * 2
	epsln  = 1.0e-10

	d2r = 0.01745329251994329  // degrees to radians
	r2d = 57.295779513082323   // radians to degrees
	s2r = 4.848136811095359e-6 // arc seconds to radians
)

const (
	maxLong = 2147483647.0
	dblLong = 4.61168601e18
)

// sign returns -1 for negative x and 1 otherwise.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// adjustLon wraps a longitude angle in radians into the range -pi to pi.
func adjustLon(x float64) float64 {
	for count := 0; count <= 4; count++ {
		if math.Abs(x) <= math.Pi {
			break
		} else if math.Abs(x/math.Pi) < 2 {
			x -= sign(x) * twoPi
		} else if math.Abs(x/twoPi) < maxLong {
			x -= float64(int64(x/twoPi)) * twoPi
		} else if math.Abs(x/(maxLong*twoPi)) < maxLong {
			x -= float64(int64(x/(maxLong*twoPi))) * (twoPi * maxLong)
		} else if math.Abs(x/(dblLong*twoPi)) < maxLong {
			x -= float64(int64(x/(dblLong*twoPi))) * (twoPi * dblLong)
		} else {
			x -= sign(x) * twoPi
		}
	}
	return x
}

// asinz clamps its argument into [-1, 1] before taking the arc sine,
// eliminating roundoff problems near the domain edges.
func asinz(con float64) float64 {
	if con > 1 {
		con = 1
	} else if con < -1 {
		con = -1
	}
	return math.Asin(con)
}

// msfnz computes the constant small m, the radius of a parallel of
// latitude divided by the semimajor axis.
func msfnz(eccent, sinphi, cosphi float64) float64 {
	con := eccent * sinphi
	return cosphi / math.Sqrt(1.0-con*con)
}

// qsfnz computes the constant small q used by the equal-area projections.
func qsfnz(eccent, sinphi float64) float64 {
	if eccent > 1.0e-7 {
		con := eccent * sinphi
		return (1.0 - eccent*eccent) * (sinphi/(1.0-con*con) -
			(0.5/eccent)*math.Log((1.0-con)/(1.0+con)))
	}
	return 2.0 * sinphi
}

// tsfnz computes the constant small t used in the forward computations of
// the conformal projections.
func tsfnz(eccent, phi, sinphi float64) float64 {
	con := eccent * sinphi
	con = math.Pow((1.0-con)/(1.0+con), 0.5*eccent)
	return math.Tan(0.5*(halfPi-phi)) / con
}

// phi1z iteratively computes the latitude for the inverse of the
// equal-area projections.
func phi1z(eccent, qs float64) (float64, error) {
	phi := asinz(0.5 * qs)
	if eccent < epsln {
		return phi, nil
	}
	eccnts := eccent * eccent
	for i := 1; i <= 25; i++ {
		sinpi, cospi := math.Sincos(phi)
		con := eccent * sinpi
		com := 1.0 - con*con
		dphi := 0.5 * com * com / cospi * (qs/(1.0-eccnts) - sinpi/com +
			0.5/eccent*math.Log((1.0-con)/(1.0+con)))
		phi += dphi
		if math.Abs(dphi) <= 1e-7 {
			return phi, nil
		}
	}
	return 0, newError(ConvergenceFailure,
		"latitude failed to converge after 25 iterations")
}

// phi2z iteratively computes the latitude angle for the inverse of the
// conformal projections.
func phi2z(eccent, ts float64) (float64, error) {
	eccnth := 0.5 * eccent
	phi := halfPi - 2*math.Atan(ts)
	for i := 0; i <= 15; i++ {
		sinpi := math.Sin(phi)
		con := eccent * sinpi
		dphi := halfPi - 2*math.Atan(ts*math.Pow((1.0-con)/(1.0+con), eccnth)) - phi
		phi += dphi
		if math.Abs(dphi) <= 1.0e-10 {
			return phi, nil
		}
	}
	return 0, newError(ConvergenceFailure,
		"failed to converge to a solution for phi2")
}

// phi3z iteratively computes the latitude for the inverse of the
// Equidistant Conic projection.
func phi3z(ml, e0, e1, e2, e3 float64) (float64, error) {
	phi := ml
	for i := 0; i < 15; i++ {
		dphi := (ml+e1*math.Sin(2.0*phi)-e2*math.Sin(4.0*phi)+
			e3*math.Sin(6.0*phi))/e0 - phi
		phi += dphi
		if math.Abs(dphi) <= 1.0e-10 {
			return phi, nil
		}
	}
	return 0, newError(ConvergenceFailure,
		"latitude failed to converge after 15 iterations")
}

// phi4z iteratively computes the latitude for the inverse of the
// Polyconic projection.
func phi4z(eccent, e0, e1, e2, e3, a, b float64) (phi, c float64, err error) {
	phi = a
	for i := 1; i <= 15; i++ {
		sinphi := math.Sin(phi)
		tanphi := math.Tan(phi)
		c = tanphi * math.Sqrt(1.0-eccent*sinphi*sinphi)
		sin2ph := math.Sin(2.0 * phi)
		ml := e0*phi - e1*sin2ph + e2*math.Sin(4.0*phi) - e3*math.Sin(6.0*phi)
		mlp := e0 - 2.0*e1*math.Cos(2.0*phi) + 4.0*e2*math.Cos(4.0*phi) -
			6.0*e3*math.Cos(6.0*phi)
		con1 := 2.0*ml + c*(ml*ml+b) - 2.0*a*(c*ml+1.0)
		con2 := eccent * sin2ph * (ml*ml + b - 2.0*a*ml) / (2.0 * c)
		con3 := 2.0*(a-ml)*(c*mlp-2.0/sin2ph) - 2.0*mlp
		dphi := con1 / (con2 + con3)
		phi += dphi
		if math.Abs(dphi) <= 1.0e-10 {
			return phi, c, nil
		}
	}
	return 0, 0, newError(ConvergenceFailure,
		"latitude failed to converge after 15 iterations")
}

// e0fn, e1fn, e2fn and e3fn compute the constants used in the series for
// the distance along a meridian.  The argument is the eccentricity squared.
func e0fn(x float64) float64 { return 1.0 - 0.25*x*(1.0+x/16.0*(3.0+1.25*x)) }

func e1fn(x float64) float64 { return 0.375 * x * (1.0 + 0.25*x*(1.0+0.46875*x)) }

func e2fn(x float64) float64 { return 0.05859375 * x * x * (1.0 + 0.75*x) }

func e3fn(x float64) float64 { return x * x * x * (35.0 / 3072.0) }

// e4fn computes the constant e4 used by the Polar Stereographic
// projection.  The argument is the eccentricity.
func e4fn(x float64) float64 {
	con := 1.0 + x
	com := 1.0 - x
	return math.Sqrt(math.Pow(con, con) * math.Pow(com, com))
}

// mlfn computes M, the distance along a meridian from the Equator to
// latitude phi.
func mlfn(e0, e1, e2, e3, phi float64) float64 {
	return e0*phi - e1*math.Sin(2.0*phi) + e2*math.Sin(4.0*phi) -
		e3*math.Sin(6.0*phi)
}
