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

// The spherical azimuthal projections: Stereographic, Lambert
// Azimuthal Equal Area, Azimuthal Equidistant, Gnomonic, and
// Orthographic. They share a common center point setup and differ
// only in the radial scale factor.

package gctp

import "math"

// azSphereProj holds the precomputed constants shared by the
// spherical azimuthal projection legs.
type azSphereProj struct {
	radius        float64
	centerLon     float64
	centerLat     float64
	falseEasting  float64
	falseNorthing float64
	sinP          float64
	cosP          float64
}

func azSphereCommonInit(l *leg, title string) (*azSphereProj, error) {
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
	centerLat, err := dmsParam(proj.Parameters[5])
	if err != nil {
		return nil, newError(InvalidInput,
			"error converting center latitude parameter from DMS to degrees: %f",
			proj.Parameters[5])
	}

	cache := &azSphereProj{
		radius:        radius,
		centerLon:     centerLon,
		centerLat:     centerLat,
		falseEasting:  proj.Parameters[6],
		falseNorthing: proj.Parameters[7],
	}
	cache.sinP, cache.cosP = math.Sincos(centerLat)

	l.describe = func(l *leg) {
		reportTitle(title)
		reportRadius(cache.radius)
		reportCenterLon(cache.centerLon)
		reportCenterLat(cache.centerLat)
		reportFalseOffsets(cache.falseEasting, cache.falseNorthing)
	}
	return cache, nil
}

// project applies the shared azimuthal forward equations with radial
// scale factor ksp.
func (c *azSphereProj) project(ksp, sinphi, cosphi, sinlon, coslon float64) (x, y float64) {
	x = c.falseEasting + c.radius*ksp*cosphi*sinlon
	y = c.falseNorthing + c.radius*ksp*(c.cosP*sinphi-c.sinP*cosphi*coslon)
	return x, y
}

// unproject applies the shared azimuthal inverse equations given the
// angular distance z from the projection center.
func (c *azSphereProj) unproject(x, y, rh, z float64) (lon, lat float64) {
	sinz, cosz := math.Sincos(z)
	lon = c.centerLon
	if math.Abs(rh) <= epsln {
		return lon, c.centerLat
	}
	lat = asinz(cosz*c.sinP + y*sinz*c.cosP/rh)
	con := math.Abs(c.centerLat) - halfPi
	if math.Abs(con) <= epsln {
		if c.centerLat >= 0 {
			lon = adjustLon(c.centerLon + math.Atan2(x, -y))
		} else {
			lon = adjustLon(c.centerLon - math.Atan2(-x, y))
		}
		return lon, lat
	}
	con = cosz - c.sinP*math.Sin(lat)
	if math.Abs(con) >= epsln || math.Abs(x) >= epsln {
		lon = adjustLon(c.centerLon + math.Atan2(x*sinz*c.cosP, con*rh))
	}
	return lon, lat
}

// Stereographic.

func (c *azSphereProj) stereoForward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - c.centerLon)
	sinphi, cosphi := math.Sincos(lat)
	sinlon, coslon := math.Sincos(dlon)
	g := c.sinP*sinphi + c.cosP*cosphi*coslon
	if math.Abs(g+1.0) <= epsln {
		return 0, 0, newError(ComputationError, "point projects into infinity")
	}
	ksp := 2.0 / (1.0 + g)
	x, y = c.project(ksp, sinphi, cosphi, sinlon, coslon)
	return x, y, nil
}

func (c *azSphereProj) stereoInverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y -= c.falseNorthing
	rh := math.Sqrt(x*x + y*y)
	z := 2.0 * math.Atan(rh/(2.0*c.radius))
	lon, lat = c.unproject(x, y, rh, z)
	return lon, lat, nil
}

// Lambert Azimuthal Equal Area.

func (c *azSphereProj) lamazForward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - c.centerLon)
	sinphi, cosphi := math.Sincos(lat)
	sinlon, coslon := math.Sincos(dlon)
	g := c.sinP*sinphi + c.cosP*cosphi*coslon
	if g == -1.0 {
		return 0, 0, newError(InBreakRegion,
			"point projects to a circle of radius %f", 2.0*c.radius)
	}
	ksp := math.Sqrt(2.0 / (1.0 + g))
	x, y = c.project(ksp, sinphi, cosphi, sinlon, coslon)
	return x, y, nil
}

func (c *azSphereProj) lamazInverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y -= c.falseNorthing
	rh := math.Sqrt(x*x + y*y)
	temp := rh / (2.0 * c.radius)
	if temp > 1 {
		return 0, 0, newError(InvalidInput,
			"point (%f, %f) is outside the map extent", x, y)
	}
	z := 2.0 * asinz(temp)
	lon, lat = c.unproject(x, y, rh, z)
	return lon, lat, nil
}

// Azimuthal Equidistant.

func (c *azSphereProj) azmeqdForward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - c.centerLon)
	sinphi, cosphi := math.Sincos(lat)
	sinlon, coslon := math.Sincos(dlon)
	g := c.sinP*sinphi + c.cosP*cosphi*coslon
	ksp := 1.0
	if math.Abs(math.Abs(g)-1.0) < epsln {
		if g < 0 {
			// The antipode of the center projects to the bounding
			// circle rather than a point.
			return 0, 0, newError(InBreakRegion,
				"point projects into a circle of radius %f", twoPi*c.radius)
		}
	} else {
		z := math.Acos(g)
		ksp = z / math.Sin(z)
	}
	x, y = c.project(ksp, sinphi, cosphi, sinlon, coslon)
	return x, y, nil
}

func (c *azSphereProj) azmeqdInverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y -= c.falseNorthing
	rh := math.Sqrt(x*x + y*y)
	if rh > math.Pi*c.radius {
		return 0, 0, newError(InvalidInput,
			"point (%f, %f) is outside the map extent", x, y)
	}
	z := rh / c.radius
	lon, lat = c.unproject(x, y, rh, z)
	return lon, lat, nil
}

// Gnomonic.

func (c *azSphereProj) gnomonForward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - c.centerLon)
	sinphi, cosphi := math.Sincos(lat)
	sinlon, coslon := math.Sincos(dlon)
	g := c.sinP*sinphi + c.cosP*cosphi*coslon
	if g <= 0 {
		// Points on or beyond the horizon circle cannot be shown.
		return 0, 0, newError(InBreakRegion, "point projects into infinity")
	}
	ksp := 1.0 / g
	x, y = c.project(ksp, sinphi, cosphi, sinlon, coslon)
	return x, y, nil
}

func (c *azSphereProj) gnomonInverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y -= c.falseNorthing
	rh := math.Sqrt(x*x + y*y)
	z := math.Atan(rh / c.radius)
	lon, lat = c.unproject(x, y, rh, z)
	return lon, lat, nil
}

// Orthographic.

func (c *azSphereProj) orthoForward(lon, lat float64) (x, y float64, err error) {
	dlon := adjustLon(lon - c.centerLon)
	sinphi, cosphi := math.Sincos(lat)
	sinlon, coslon := math.Sincos(dlon)
	g := c.sinP*sinphi + c.cosP*cosphi*coslon
	if g < 0 && math.Abs(g) > epsln {
		// Points in the far hemisphere are not visible.
		return 0, 0, newError(InBreakRegion, "point can not be projected")
	}
	x, y = c.project(1.0, sinphi, cosphi, sinlon, coslon)
	return x, y, nil
}

func (c *azSphereProj) orthoInverse(x, y float64) (lon, lat float64, err error) {
	x -= c.falseEasting
	y -= c.falseNorthing
	rh := math.Sqrt(x*x + y*y)
	if rh > c.radius {
		return 0, 0, newError(InBreakRegion,
			"point (%f, %f) is off the map disk", x, y)
	}
	z := asinz(rh / c.radius)
	lon, lat = c.unproject(x, y, rh, z)
	return lon, lat, nil
}

func stereoForwardInit(l *leg) error {
	cache, err := azSphereCommonInit(l, "STEREOGRAPHIC")
	if err != nil {
		return newError(errKind(err),
			"error initializing Stereographic forward projection: %v", err)
	}
	l.transform = cache.stereoForward
	return nil
}

func stereoInverseInit(l *leg) error {
	cache, err := azSphereCommonInit(l, "STEREOGRAPHIC")
	if err != nil {
		return newError(errKind(err),
			"error initializing Stereographic inverse projection: %v", err)
	}
	l.transform = cache.stereoInverse
	return nil
}

func lamazForwardInit(l *leg) error {
	cache, err := azSphereCommonInit(l, "LAMBERT AZIMUTHAL EQUAL-AREA")
	if err != nil {
		return newError(errKind(err),
			"error initializing Lambert Azimuthal forward projection: %v", err)
	}
	l.transform = cache.lamazForward
	return nil
}

func lamazInverseInit(l *leg) error {
	cache, err := azSphereCommonInit(l, "LAMBERT AZIMUTHAL EQUAL-AREA")
	if err != nil {
		return newError(errKind(err),
			"error initializing Lambert Azimuthal inverse projection: %v", err)
	}
	l.transform = cache.lamazInverse
	return nil
}

func azmeqdForwardInit(l *leg) error {
	cache, err := azSphereCommonInit(l, "AZIMUTHAL EQUIDISTANT")
	if err != nil {
		return newError(errKind(err),
			"error initializing Azimuthal Equidistant forward projection: %v", err)
	}
	l.transform = cache.azmeqdForward
	return nil
}

func azmeqdInverseInit(l *leg) error {
	cache, err := azSphereCommonInit(l, "AZIMUTHAL EQUIDISTANT")
	if err != nil {
		return newError(errKind(err),
			"error initializing Azimuthal Equidistant inverse projection: %v", err)
	}
	l.transform = cache.azmeqdInverse
	return nil
}

func gnomonForwardInit(l *leg) error {
	cache, err := azSphereCommonInit(l, "GNOMONIC")
	if err != nil {
		return newError(errKind(err),
			"error initializing Gnomonic forward projection: %v", err)
	}
	l.transform = cache.gnomonForward
	return nil
}

func gnomonInverseInit(l *leg) error {
	cache, err := azSphereCommonInit(l, "GNOMONIC")
	if err != nil {
		return newError(errKind(err),
			"error initializing Gnomonic inverse projection: %v", err)
	}
	l.transform = cache.gnomonInverse
	return nil
}

func orthoForwardInit(l *leg) error {
	cache, err := azSphereCommonInit(l, "ORTHOGRAPHIC")
	if err != nil {
		return newError(errKind(err),
			"error initializing Orthographic forward projection: %v", err)
	}
	l.transform = cache.orthoForward
	return nil
}

func orthoInverseInit(l *leg) error {
	cache, err := azSphereCommonInit(l, "ORTHOGRAPHIC")
	if err != nil {
		return newError(errKind(err),
			"error initializing Orthographic inverse projection: %v", err)
	}
	l.transform = cache.orthoInverse
	return nil
}
