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

import "sync"

// legacyFingerprintParams is the number of leading projection
// parameters that take part in the legacy re-initialization check.
const legacyFingerprintParams = 13

// legacyEntry records the projection setup last used to initialize one
// projection code for one role of the legacy dispatcher.
type legacyEntry struct {
	code     ProjCode
	zone     int
	spheroid Spheroid
	params   [ParameterCount]float64
	trans    transformFunc
}

// matches reports whether the cached entry fingerprint is identical to
// the given projection, meaning re-initialization can be skipped.
func (e *legacyEntry) matches(proj *Projection) bool {
	if e.code != proj.Code || e.zone != proj.Zone || e.spheroid != proj.Spheroid {
		return false
	}
	for i := 0; i < legacyFingerprintParams; i++ {
		if e.params[i] != proj.Parameters[i] {
			return false
		}
	}
	return true
}

// record stores the projection fingerprint and resolved transform.
func (e *legacyEntry) record(proj *Projection, trans transformFunc) {
	e.code = proj.Code
	e.zone = proj.Zone
	e.spheroid = proj.Spheroid
	e.params = proj.Parameters
	e.trans = trans
}

// LegacyRegistry holds the dispatch state for the projections that have
// not been migrated to the per-leg interface.  It keeps, per projection
// code and separately for the input and output roles, the last-seen
// zone/spheroid/parameter fingerprint and the transform resolved for
// it, skipping re-initialization when a call repeats the fingerprint.
//
// The zero value is ready to use.  A single registry serializes its
// callers with a mutex, but because the cached state is keyed only by
// projection code, interleaved use from multiple transformations churns
// the cache; use OnlyAllowThreadsafeTransforms to forbid the legacy
// path entirely in threaded programs.
type LegacyRegistry struct {
	mu         sync.Mutex
	input      [maxProjCode + 1]legacyEntry
	output     [maxProjCode + 1]legacyEntry
	initCount  int
	threadsafe bool
}

// defaultRegistry backs NewTransformation, mirroring the process-wide
// state of the original dispatcher.
var defaultRegistry = NewLegacyRegistry()

// NewLegacyRegistry returns an empty registry.
func NewLegacyRegistry() *LegacyRegistry {
	return &LegacyRegistry{}
}

// InitCount returns the number of projection initializations the
// registry has run.  Repeating a call with an unchanged fingerprint
// does not increase the count.
func (r *LegacyRegistry) InitCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initCount
}

// Reset clears all cached fingerprints and transforms.
func (r *LegacyRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.input = [maxProjCode + 1]legacyEntry{}
	r.output = [maxProjCode + 1]legacyEntry{}
	r.initCount = 0
}

func (r *LegacyRegistry) setOnlyThreadsafe() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.threadsafe = true
}

func (r *LegacyRegistry) onlyThreadsafe() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.threadsafe
}

// transform converts one coordinate pair through the legacy dispatch
// path: unit conversion, inverse transform of the input projection,
// forward transform of the output projection, unit conversion.
func (r *LegacyRegistry) transform(inProj, outProj *Projection, inX, inY float64) (outX, outY float64, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if inProj.Code < 0 || inProj.Code > maxProjCode {
		return 0, 0, newError(InvalidInput, "input projection code is illegal")
	}
	if outProj.Code < 0 || outProj.Code > maxProjCode {
		return 0, 0, newError(InvalidInput, "output projection code is illegal")
	}

	// The transforms operate in radians or meters.
	units := Meter
	if inProj.Code == Geo {
		units = Radian
	}
	factor, err := unitConversionFactor(inProj.Units, units)
	if err != nil {
		return 0, 0, err
	}
	x := inX * factor
	y := inY * factor

	var lon, lat float64
	if inProj.Code == Geo {
		lon = x
		lat = y
	} else {
		entry := &r.input[inProj.Code]
		if !entry.matches(inProj) {
			trans, err := legacyInverseInit(inProj)
			if err != nil {
				return 0, 0, err
			}
			entry.record(inProj, trans)
			r.initCount++
		}
		lon, lat, err = entry.trans(x, y)
		if err != nil {
			return 0, 0, err
		}
	}

	if outProj.Code == Geo {
		outX = lon
		outY = lat
	} else {
		entry := &r.output[outProj.Code]
		if !entry.matches(outProj) {
			trans, err := legacyForwardInit(outProj)
			if err != nil {
				return 0, 0, err
			}
			entry.record(outProj, trans)
			r.initCount++
		}
		outX, outY, err = entry.trans(lon, lat)
		if err != nil {
			return 0, 0, err
		}
	}

	units = Meter
	if outProj.Code == Geo {
		units = Radian
	}
	factor, err = unitConversionFactor(units, outProj.Units)
	if err != nil {
		return 0, 0, err
	}
	return outX * factor, outY * factor, nil
}

// dmsParam decodes a packed DMS projection parameter into radians.
func dmsParam(p float64) (float64, error) {
	deg, err := DMSToDegrees(p)
	if err != nil {
		return 0, err
	}
	return deg * 3600 * s2r, nil
}

// legacyForwardInit resolves the forward transform for a projection on
// the legacy dispatch path.  Projections migrated to the per-leg
// interface are no longer reachable this way.
func legacyForwardInit(proj *Projection) (transformFunc, error) {
	if forwardInit[proj.Code] != nil {
		return nil, newError(InvalidInput,
			"projection code %d is no longer supported by the legacy interface", proj.Code)
	}

	_, _, radius, err := resolveSpheroid(proj.Spheroid, proj.Parameters)
	if err != nil {
		return nil, err
	}
	falseEasting := proj.Parameters[6]
	falseNorthing := proj.Parameters[7]

	switch proj.Code {
	case VanDerGrinten:
		centerLon, err := dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, err
		}
		return vandgForward(radius, centerLon, falseEasting, falseNorthing), nil
	case Hammer:
		centerLon, err := dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, err
		}
		return hammerForward(radius, centerLon, falseEasting, falseNorthing), nil
	case Mollweide:
		centerLon, err := dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, err
		}
		return mollForward(radius, centerLon, falseEasting, falseNorthing), nil
	case WagnerIV:
		centerLon, err := dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, err
		}
		return wagivForward(radius, centerLon, falseEasting, falseNorthing), nil
	case WagnerVII:
		centerLon, err := dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, err
		}
		return wagviiForward(radius, centerLon, falseEasting, falseNorthing), nil
	case GVNSP:
		centerLon, err := dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, err
		}
		centerLat, err := dmsParam(proj.Parameters[5])
		if err != nil {
			return nil, err
		}
		height := proj.Parameters[2]
		return gvnspForward(radius, height, centerLon, centerLat,
			falseEasting, falseNorthing)
	default:
		return nil, newError(InvalidInput,
			"unsupported projection code: %d", proj.Code)
	}
}

// legacyInverseInit resolves the inverse transform for a projection on
// the legacy dispatch path.
func legacyInverseInit(proj *Projection) (transformFunc, error) {
	if inverseInit[proj.Code] != nil {
		return nil, newError(InvalidInput,
			"projection code %d is no longer supported by the legacy interface", proj.Code)
	}

	_, _, radius, err := resolveSpheroid(proj.Spheroid, proj.Parameters)
	if err != nil {
		return nil, err
	}
	falseEasting := proj.Parameters[6]
	falseNorthing := proj.Parameters[7]

	switch proj.Code {
	case VanDerGrinten:
		centerLon, err := dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, err
		}
		return vandgInverse(radius, centerLon, falseEasting, falseNorthing), nil
	case Hammer:
		centerLon, err := dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, err
		}
		return hammerInverse(radius, centerLon, falseEasting, falseNorthing), nil
	case Mollweide:
		centerLon, err := dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, err
		}
		return mollInverse(radius, centerLon, falseEasting, falseNorthing), nil
	case WagnerIV:
		centerLon, err := dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, err
		}
		return wagivInverse(radius, centerLon, falseEasting, falseNorthing), nil
	case WagnerVII:
		centerLon, err := dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, err
		}
		return wagviiInverse(radius, centerLon, falseEasting, falseNorthing), nil
	case GVNSP:
		centerLon, err := dmsParam(proj.Parameters[4])
		if err != nil {
			return nil, err
		}
		centerLat, err := dmsParam(proj.Parameters[5])
		if err != nil {
			return nil, err
		}
		height := proj.Parameters[2]
		return gvnspInverse(radius, height, centerLon, centerLat,
			falseEasting, falseNorthing)
	default:
		return nil, newError(InvalidInput,
			"unsupported projection code: %d", proj.Code)
	}
}
