// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package permgrouptest loads named permutation-group test scenarios from
// YAML fixtures, the way SnellerInc-sneller/tests drives its suites from
// testdata rather than inlining every case as Go literals.
package permgrouptest

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Scenario is one named test case: a list of generators to add (in order),
// an optional base to pre-seed before calling SchreierSims, and the
// expected group order once SchreierSims has converged.
type Scenario struct {
	Name          string   `yaml:"name"`
	Generators    []string `yaml:"generators"`
	Base          []int    `yaml:"base"`
	ExpectedOrder int64    `yaml:"expected_order"`
}

// LoadScenarios reads a YAML document containing a top-level "scenarios"
// list from path.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Scenarios, nil
}
