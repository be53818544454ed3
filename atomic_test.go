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

func TestAtomicGetImageIdentity(t *testing.T) {
	var p AtomicPermutation
	for a := Point(0); a < 5; a++ {
		if p.GetImage(a) != a || p.GetInverseImage(a) != a {
			t.Fatalf("identity permutation must fix %d", a)
		}
	}
}

func TestAtomicSetImage(t *testing.T) {
	var p AtomicPermutation
	p.SetImage(0, 1)
	p.SetImage(1, 0)

	if p.GetImage(0) != 1 || p.GetImage(1) != 0 {
		t.Fatalf("unexpected images: %s", p.String())
	}
	if p.GetInverseImage(1) != 0 || p.GetInverseImage(0) != 1 {
		t.Fatalf("unexpected inverse images: %s", p.String())
	}

	// a == b removes any existing mapping for a.
	p.SetImage(0, 0)
	if p.GetImage(0) != 0 {
		t.Fatalf("SetImage(a, a) should clear a's image")
	}
	if p.GetInverseImage(0) != 0 {
		t.Fatalf("SetImage(a, a) should clear a's inverse-image key too")
	}
}

func TestAtomicInverseRoundTrip(t *testing.T) {
	var p AtomicPermutation
	if err := p.FromString("(0 1 2)(3 4)"); err != nil {
		t.Fatal(err)
	}
	for a := Point(0); a < 6; a++ {
		if p.GetInverseImage(p.GetImage(a)) != a {
			t.Fatalf("inverse image did not round-trip for %d", a)
		}
		if p.GetImage(p.GetInverseImage(a)) != a {
			t.Fatalf("image did not round-trip for %d", a)
		}
	}
}

func TestAtomicComposeAssociative(t *testing.T) {
	mk := func(s string) *AtomicPermutation {
		p := &AtomicPermutation{}
		if err := p.FromString(s); err != nil {
			t.Fatal(err)
		}
		return p
	}

	left := func(s1, s2, s3 string) string {
		pq := mk(s1)
		pq.Compose(mk(s2))
		pq.Compose(mk(s3))
		return pq.String()
	}
	right := func(s1, s2, s3 string) string {
		qr := mk(s2)
		qr.Compose(mk(s3))
		p := mk(s1)
		p.Compose(qr)
		return p.String()
	}

	cases := [][3]string{
		{"(0 1 2)", "(0 1)", "(1 2)"},
		{"()", "(0 2 1)", "(0 3)(1 2)"},
		{"(0 1)(2 3)", "(0 2)(1 3)", "(0 1 2 3)"},
	}
	for _, c := range cases {
		if left(c[0], c[1], c[2]) != right(c[0], c[1], c[2]) {
			t.Fatalf("composition not associative for %v", c)
		}
	}
}

func TestAtomicComposeInverseUndoesCompose(t *testing.T) {
	p := &AtomicPermutation{}
	if err := p.FromString("(0 1 2 3)"); err != nil {
		t.Fatal(err)
	}
	g := &AtomicPermutation{}
	if err := g.FromString("(0 2)(1 3)"); err != nil {
		t.Fatal(err)
	}

	orig := p.String()
	p.Compose(g)
	p.ComposeInverse(g)
	if p.String() != orig {
		t.Fatalf("compose then compose-inverse should restore original: got %s want %s", p.String(), orig)
	}
}

func TestAtomicIsEqual(t *testing.T) {
	a := &AtomicPermutation{}
	a.FromString("(0 1 2)")
	b := &AtomicPermutation{}
	b.FromString("(1 2 0)")
	if !a.IsEqual(b) {
		t.Fatalf("(0 1 2) and (1 2 0) denote the same permutation")
	}

	c := &AtomicPermutation{}
	c.FromString("(0 2 1)")
	if a.IsEqual(c) {
		t.Fatalf("(0 1 2) and (0 2 1) are inverse, not equal")
	}
}
