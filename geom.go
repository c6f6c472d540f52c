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

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// Transformer adapts t for use with the Transform methods of the geom
// geometry types.
func (t *Transformation) Transformer() proj.Transformer {
	return func(x, y float64) (float64, float64, error) {
		return t.Transform(x, y)
	}
}

// TransformGeom converts the coordinates of g from the input
// projection to the output projection.
func (t *Transformation) TransformGeom(g geom.Geom) (geom.Geom, error) {
	return g.Transform(t.Transformer())
}

// TransformPoints converts a batch of points from the input projection
// to the output projection. A point falling in an interrupted region
// of the projection stops the conversion with an error matching
// ErrInBreakRegion.
func (t *Transformation) TransformPoints(points []geom.Point) ([]geom.Point, error) {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		x, y, err := t.Transform(p.X, p.Y)
		if err != nil {
			return nil, err
		}
		out[i] = geom.Point{X: x, Y: y}
	}
	return out, nil
}
