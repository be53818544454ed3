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

func TestCycleIdentityRoundTrip(t *testing.T) {
	var p AtomicPermutation
	if err := p.FromString("()"); err != nil {
		t.Fatal(err)
	}
	if !p.IsIdentity() {
		t.Fatal("\"()\" must parse to the identity")
	}
	if p.String() != "()" {
		t.Fatalf("identity should print as (), got %q", p.String())
	}
}

func TestCycleRoundTripCanonicalString(t *testing.T) {
	cases := []string{
		"(0 1 2)",
		"(0 1)(2 3)",
		"(3 4)(7 8)",
		"(1 5)(2 6)(3 7)(4 8)",
	}
	for _, s := range cases {
		var p AtomicPermutation
		if err := p.FromString(s); err != nil {
			t.Fatalf("FromString(%q): %v", s, err)
		}
		var q AtomicPermutation
		if err := q.FromString(p.String()); err != nil {
			t.Fatalf("FromString(%q) (round trip of %q): %v", p.String(), s, err)
		}
		if !p.IsEqual(&q) {
			t.Fatalf("round trip mismatch: %q -> %q -> not equal", s, p.String())
		}
	}
}

func TestCycleCanonicalOrderAndStart(t *testing.T) {
	var p AtomicPermutation
	// (2 0 1) denotes 2->0, 0->1, 1->2 i.e. the same permutation as (0 1 2).
	if err := p.FromString("(2 0 1)"); err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "(0 1 2)" {
		t.Fatalf("canonical form should start at the smallest element: got %q", got)
	}
}

func TestCycleFixedPointsOmitted(t *testing.T) {
	var p AtomicPermutation
	if err := p.FromString("(1)(0 2)"); err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "(0 2)" {
		t.Fatalf("length-1 cycles should be dropped: got %q", got)
	}
}

func TestCycleWhitespaceInsideAndOutside(t *testing.T) {
	var p AtomicPermutation
	if err := p.FromString("  (0 1 2)\t(3 4)\n"); err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "(0 1 2)(3 4)" {
		t.Fatalf("got %q", got)
	}
}

func TestCycleParseErrors(t *testing.T) {
	cases := []string{
		"",
		"(",
		"(0 1",
		"0 1)",
		"(0 1) garbage",
		"(0 1 0)",
		"(0 1)(1 2)",
		"(a)",
		"(0  1)",
	}
	for _, s := range cases {
		var p AtomicPermutation
		p.SetImage(5, 6) // poison the permutation so we can check it gets cleared
		err := p.FromString(s)
		if err == nil {
			t.Fatalf("FromString(%q) should have failed", s)
		}
		if !p.IsIdentity() {
			t.Fatalf("FromString(%q) failed but left p non-identity: %s", s, p.String())
		}
	}
}

func TestCycleDuplicatePointAcrossCycles(t *testing.T) {
	var p AtomicPermutation
	err := p.FromString("(0 1)(2 0)")
	if err == nil {
		t.Fatal("a point repeated across cycles must be a parse error")
	}
}

func TestCycleLengthOneAcceptedAndNoop(t *testing.T) {
	var p AtomicPermutation
	if err := p.FromString("(5)"); err != nil {
		t.Fatal(err)
	}
	if !p.IsIdentity() {
		t.Fatalf("a length-1 cycle contributes nothing, got %s", p.String())
	}
}
