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

import "errors"

// transformFunc converts one coordinate pair.  For a forward transform
// the inputs are lon/lat in radians and the outputs are x/y in meters;
// for an inverse transform the directions are swapped.
type transformFunc func(inX, inY float64) (outX, outY float64, err error)

// initFunc prepares a transformation leg, precomputing whatever
// projection constants the leg needs and installing its transform and
// describe functions.
type initFunc func(l *leg) error

// leg carries the state for one direction of a transformation.  The
// same structure works for both the forward and inverse legs.
type leg struct {
	proj       Projection
	transform  transformFunc
	describe   func(l *leg)
	unitFactor float64
}

// forwardInit indexes the forward (lat/lon to x/y) init functions by
// projection code.  A nil entry means the projection has not been
// migrated to the per-leg interface and the legacy dispatcher is used
// instead.
var forwardInit = [maxProjCode + 1]initFunc{
	Geo:           geoInit,
	UTM:           utmForwardInit,
	Albers:        albersForwardInit,
	LambertCC:     lamccForwardInit,
	Mercator:      mercatorForwardInit,
	PolarStereo:   psForwardInit,
	Polyconic:     polyForwardInit,
	EquidistantC:  eqconForwardInit,
	TM:            tmForwardInit,
	Stereographic: stereoForwardInit,
	LambertAz:     lamazForwardInit,
	AzEquidistant: azmeqdForwardInit,
	Gnomonic:      gnomonForwardInit,
	Orthographic:  orthoForwardInit,
	Sinusoidal:    sinusoidalForwardInit,
	Equirect:      equirectForwardInit,
	Miller:        millerForwardInit,
	ObMercator:    omForwardInit,
	SOM:           somForwardInit,
}

// inverseInit indexes the inverse (x/y to lat/lon) init functions by
// projection code.
var inverseInit = [maxProjCode + 1]initFunc{
	Geo:           geoInit,
	UTM:           utmInverseInit,
	Albers:        albersInverseInit,
	LambertCC:     lamccInverseInit,
	Mercator:      mercatorInverseInit,
	PolarStereo:   psInverseInit,
	Polyconic:     polyInverseInit,
	EquidistantC:  eqconInverseInit,
	TM:            tmInverseInit,
	Stereographic: stereoInverseInit,
	LambertAz:     lamazInverseInit,
	AzEquidistant: azmeqdInverseInit,
	Gnomonic:      gnomonInverseInit,
	Orthographic:  orthoInverseInit,
	Sinusoidal:    sinusoidalInverseInit,
	Equirect:      equirectInverseInit,
	Miller:        millerInverseInit,
	ObMercator:    omInverseInit,
	SOM:           somInverseInit,
}

// geoInit prepares a geographic leg.  Geographic is the base projection
// everything passes through, so there is no transform to install.
func geoInit(l *leg) error {
	l.describe = func(l *leg) {
		reportTitle("GEOGRAPHIC")
	}
	return nil
}

// Transformation converts coordinates from one projection system to
// another.  It is created once by NewTransformation and may then be
// used for any number of conversions.  A Transformation whose legs have
// both been migrated to the per-leg interface is safe for concurrent
// use; one that fell back to the legacy dispatcher is not.
type Transformation struct {
	inverse   leg
	forward   leg
	useLegacy bool
	registry  *LegacyRegistry
}

// NewTransformation creates a transformation between the input and
// output projections, using the package-wide legacy dispatcher for any
// projection not yet migrated to the per-leg interface.
func NewTransformation(input, output *Projection) (*Transformation, error) {
	return NewTransformationWithRegistry(input, output, defaultRegistry)
}

// NewTransformationWithRegistry is like NewTransformation but dispatches
// legacy projections through the given registry, allowing callers to
// isolate or observe the legacy state.
func NewTransformationWithRegistry(input, output *Projection, registry *LegacyRegistry) (*Transformation, error) {
	if input.Code < 0 || input.Code > maxProjCode {
		return nil, newError(InvalidInput,
			"invalid input projection code: %d", input.Code)
	}
	if output.Code < 0 || output.Code > maxProjCode {
		return nil, newError(InvalidInput,
			"invalid output projection code: %d", output.Code)
	}

	trans := &Transformation{registry: registry}
	trans.inverse.proj = *input
	trans.forward.proj = *output

	inverseInitFunc := inverseInit[input.Code]
	forwardInitFunc := forwardInit[output.Code]

	// Fall back to the legacy dispatcher when either projection has
	// not been migrated to the per-leg interface.
	if inverseInitFunc == nil || forwardInitFunc == nil {
		if registry.onlyThreadsafe() {
			return nil, newError(InvalidInput,
				"projection transformation is not threadsafe")
		}
		trans.useLegacy = true
		return trans, nil
	}

	if err := inverseInitFunc(&trans.inverse); err != nil {
		return nil, wrapInitError(err, "error initializing inverse transformation")
	}
	if err := forwardInitFunc(&trans.forward); err != nil {
		return nil, wrapInitError(err, "error initializing forward transformation")
	}

	// All transforms operate internally in radians or meters; the unit
	// factors convert the caller's units at the boundaries.
	units := Meter
	if input.Code == Geo {
		units = Radian
	}
	factor, err := unitConversionFactor(input.Units, units)
	if err != nil {
		return nil, err
	}
	trans.inverse.unitFactor = factor

	units = Meter
	if output.Code == Geo {
		units = Radian
	}
	factor, err = unitConversionFactor(units, output.Units)
	if err != nil {
		return nil, err
	}
	trans.forward.unitFactor = factor

	return trans, nil
}

// wrapInitError keeps the kind of classified errors while tagging
// unclassified ones as initialization failures.
func wrapInitError(err error, msg string) error {
	var gerr *Error
	if errors.As(err, &gerr) {
		return err
	}
	return newError(ProjectionInitError, "%s: %v", msg, err)
}

// Transform converts a single coordinate pair.  The input is (lon, lat)
// or (x, y) in the input projection's units, and the output likewise for
// the output projection.  An error matching ErrInBreakRegion reports a
// point falling in an interrupted region of the projection rather than
// a failure.
func (t *Transformation) Transform(inX, inY float64) (outX, outY float64, err error) {
	if t == nil {
		return 0, 0, newError(InvalidInput, "invalid transformation provided")
	}

	if t.useLegacy {
		return t.registry.transform(&t.inverse.proj, &t.forward.proj, inX, inY)
	}

	// Convert the input coordinate into radians or meters, run the two
	// legs, and convert the result into the requested units.
	x := inX * t.inverse.unitFactor
	y := inY * t.inverse.unitFactor

	lon, lat := x, y
	if t.inverse.transform != nil {
		lon, lat, err = t.inverse.transform(x, y)
		if err != nil {
			if errors.Is(err, ErrInBreakRegion) {
				return 0, 0, err
			}
			printError("error in inverse transformation: %v", err)
			return 0, 0, newError(errKind(err), "error in inverse transformation: %v", err)
		}
	}

	outX, outY = lon, lat
	if t.forward.transform != nil {
		outX, outY, err = t.forward.transform(lon, lat)
		if err != nil {
			if errors.Is(err, ErrInBreakRegion) {
				return 0, 0, err
			}
			printError("error in forward transformation: %v", err)
			return 0, 0, newError(errKind(err), "error in forward transformation: %v", err)
		}
	}

	outX *= t.forward.unitFactor
	outY *= t.forward.unitFactor
	return outX, outY, nil
}

// errKind extracts the kind of a classified error, defaulting to
// ComputationError.
func errKind(err error) ErrorKind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return ComputationError
}

// InputProjection returns a copy of the input projection descriptor.
func (t *Transformation) InputProjection() Projection {
	return t.inverse.proj
}

// OutputProjection returns a copy of the output projection descriptor.
func (t *Transformation) OutputProjection() Projection {
	return t.forward.proj
}

// ReportParameters sends a description of both projections to the
// message callback.
func (t *Transformation) ReportParameters() {
	if t == nil {
		return
	}
	if t.forward.describe != nil {
		printInfo("Forward projection:")
		t.forward.describe(&t.forward)
	}
	if t.inverse.describe != nil {
		printInfo("Inverse projection:")
		t.inverse.describe(&t.inverse)
	}
}

// Close releases the transformation's resources.  It is safe to call
// on a nil receiver and may be called more than once.
func (t *Transformation) Close() {
	if t == nil {
		return
	}
	t.inverse.transform = nil
	t.inverse.describe = nil
	t.forward.transform = nil
	t.forward.describe = nil
}

// OnlyAllowThreadsafeTransforms makes NewTransformation refuse any
// projection pair that would fall back to the legacy dispatcher, which
// keeps process-wide state.  Threaded applications should call this
// once at startup.
func OnlyAllowThreadsafeTransforms() {
	defaultRegistry.setOnlyThreadsafe()
}
