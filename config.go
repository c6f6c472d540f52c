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
	"fmt"

	"github.com/BurntSushi/toml"
)

// projectionConfig is the TOML form of a projection descriptor.
type projectionConfig struct {
	Code       int
	Zone       int
	Units      int
	Spheroid   int
	Parameters []float64
}

type projectionsConfig struct {
	Projections map[string]projectionConfig
}

// LoadProjections reads named projection descriptors from a TOML file.
// The file holds a [Projections] table whose sub-tables each describe
// one projection:
//
//	[Projections.utm10]
//	Code = 1
//	Zone = 10
//	Units = 2
//	Spheroid = 12
//
// Parameters may list up to 15 values; missing trailing values are
// zero.
func LoadProjections(filename string) (map[string]*Projection, error) {
	var config projectionsConfig
	if _, err := toml.DecodeFile(filename, &config); err != nil {
		return nil, fmt.Errorf("gctp: loading projection file %s: %v", filename, err)
	}
	projections := make(map[string]*Projection, len(config.Projections))
	for name, pc := range config.Projections {
		p, err := pc.projection()
		if err != nil {
			return nil, fmt.Errorf("gctp: projection %s in file %s: %v", name, filename, err)
		}
		projections[name] = p
	}
	return projections, nil
}

func (pc projectionConfig) projection() (*Projection, error) {
	if pc.Code < 0 || pc.Code > maxProjCode {
		return nil, newError(InvalidInput, "invalid projection code: %d", pc.Code)
	}
	if pc.Units < 0 || pc.Units > maxUnit {
		return nil, newError(InvalidInput, "invalid unit code: %d", pc.Units)
	}
	if len(pc.Parameters) > ParameterCount {
		return nil, newError(InvalidInput,
			"too many projection parameters: %d", len(pc.Parameters))
	}
	p := &Projection{
		Code:     ProjCode(pc.Code),
		Zone:     pc.Zone,
		Units:    Unit(pc.Units),
		Spheroid: Spheroid(pc.Spheroid),
	}
	copy(p.Parameters[:], pc.Parameters)
	return p, nil
}
