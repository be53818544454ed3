// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package permgroup

import "testing"

func TestAllocatorInternDeduplicates(t *testing.T) {
	a := NewAllocator()
	p1, err := a.Intern("(0 1 2)")
	if err != nil {
		t.Fatal(err)
	}
	p2, err := a.Intern("(1 2 0)") // same permutation, different cycle start
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Fatal("Intern should return the same pointer for equal permutations")
	}

	p3, err := a.Intern("(0 2 1)") // the inverse, not equal
	if err != nil {
		t.Fatal(err)
	}
	if p3 == p1 {
		t.Fatal("Intern should not dedup distinct permutations")
	}
}

func TestAllocatorInternPropagatesParseError(t *testing.T) {
	a := NewAllocator()
	if _, err := a.Intern("not a cycle"); err == nil {
		t.Fatal("Intern should propagate the parse error")
	}
}

func TestAllocatorResetChangesGeneration(t *testing.T) {
	a := NewAllocator()
	g1 := a.Generation()
	a.New()
	g2 := a.Reset()
	if g1 == g2 {
		t.Fatal("Reset should produce a new generation id")
	}
	if a.Generation() != g2 {
		t.Fatal("Generation should reflect the most recent Reset")
	}
}
