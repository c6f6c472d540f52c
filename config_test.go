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
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

const testProjectionConfig = `
[Projections.latlon]
Code = 0
Units = 4
Spheroid = 12

[Projections.utm10]
Code = 1
Zone = 10
Units = 2
Spheroid = 12

[Projections.albersConus]
Code = 3
Units = 2
Spheroid = 8
Parameters = [0, 0, 29030000, 45030000, -96000000, 23000000]
`

func writeProjectionConfig(t *testing.T, contents string) (file string, cleanup func()) {
	dir, err := ioutil.TempDir("", "gctp")
	if err != nil {
		t.Fatal(err)
	}
	file = filepath.Join(dir, "projections.toml")
	if err := ioutil.WriteFile(file, []byte(contents), 0644); err != nil {
		os.RemoveAll(dir)
		t.Fatal(err)
	}
	return file, func() { os.RemoveAll(dir) }
}

func TestLoadProjections(t *testing.T) {
	file, cleanup := writeProjectionConfig(t, testProjectionConfig)
	defer cleanup()
	projections, err := LoadProjections(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(projections) != 3 {
		t.Fatalf("got %d projections, want 3", len(projections))
	}

	utm, ok := projections["utm10"]
	if !ok {
		t.Fatal("missing utm10 projection")
	}
	if utm.Code != UTM || utm.Zone != 10 || utm.Units != Meter || utm.Spheroid != WGS84 {
		t.Errorf("utm10 = %+v", utm)
	}

	albers, ok := projections["albersConus"]
	if !ok {
		t.Fatal("missing albersConus projection")
	}
	if albers.Parameters[4] != -96000000 || albers.Parameters[14] != 0 {
		t.Errorf("albersConus parameters = %v", albers.Parameters)
	}

	// The loaded descriptors work with the transformation factory.
	trans, err := NewTransformation(projections["latlon"], albers)
	if err != nil {
		t.Fatal(err)
	}
	trans.Close()
}

func TestLoadProjectionsInvalid(t *testing.T) {
	badConfigs := []string{
		"[Projections.bad]\nCode = 99\n",
		"[Projections.bad]\nCode = 0\nUnits = 9\n",
		"[Projections.bad]\nCode = 0\nParameters = [0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]\n",
	}
	for _, config := range badConfigs {
		file, cleanup := writeProjectionConfig(t, config)
		if _, err := LoadProjections(file); err == nil {
			t.Errorf("config %q: want error, got nil", config)
		}
		cleanup()
	}

	if _, err := LoadProjections("nonexistent.toml"); err == nil {
		t.Error("missing file: want error, got nil")
	}
}
