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

// Package gctp converts geographic coordinates between cartographic
// projection systems for satellite imagery processing.
//
// A Transformation is created once for a pair of projection descriptors
// and then reused for any number of point conversions:
//
//	in := &gctp.Projection{Code: gctp.UTM, Zone: 10, Units: gctp.Meter, Spheroid: gctp.WGS84}
//	out := &gctp.Projection{Code: gctp.Geo, Units: gctp.Degree, Spheroid: gctp.WGS84}
//	trans, err := gctp.NewTransformation(in, out)
//	if err != nil {
//		// handle error
//	}
//	defer trans.Close()
//	lon, lat, err := trans.Transform(easting, northing)
//
// All projection math operates internally in radians and meters; the unit
// codes in the projection descriptors control conversion on entry and exit.
// Points that fall in a break region of an interrupted or bounded projection
// are reported with an error matching ErrInBreakRegion, which callers should
// treat as a routine, recoverable condition rather than a failure.
//
// Algorithm references:
//
// 1. Snyder, John P., "Map Projections--A Working Manual", U.S. Geological
// Survey Professional Paper 1395, United States Government Printing Office,
// Washington D.C., 1987.
//
// 2. "Software Documentation for GCTP General Cartographic Transformation
// Package", U.S. Geological Survey National Mapping Division, May 1982.
package gctp
