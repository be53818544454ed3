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

package permgroup

// Point is an element of the nonnegative integers that a permutation acts
// on. Any point not explicitly recorded in a permutation's mapping is fixed.
type Point int

// Permutation is the capability shared by AtomicPermutation and
// PermutationWord: something that can report where it sends a point and
// where it sends a point under its inverse. FundamentalSchreierTrees.Strip
// accepts either so that both a raw generator and a composite Schreier
// generator can be sifted through the stabilizer chain the same way.
type Permutation interface {
	GetImage(a Point) Point
	GetInverseImage(a Point) Point
}

// AtomicPermutation is a finite partial mapping from points to their images,
// with the inverse mapping kept in lockstep. The zero value is the identity.
type AtomicPermutation struct {
	images        map[Point]Point
	inverseImages map[Point]Point
}

// GetImage returns the image of a, or a itself if a is fixed.
func (p *AtomicPermutation) GetImage(a Point) Point {
	if b, ok := p.images[a]; ok {
		return b
	}
	return a
}

// GetInverseImage returns the preimage of a, or a itself if a is fixed.
func (p *AtomicPermutation) GetInverseImage(a Point) Point {
	if b, ok := p.inverseImages[a]; ok {
		return b
	}
	return a
}

// SetImage establishes the single-point assignment a -> b.
//
// If a == b, any existing key a is removed from both maps. Otherwise the
// maps are updated to record a -> b. SetImage does not clean up a prior
// images[a] = b' with b' != b, nor a prior inverseImages[b] = a': it is the
// caller's responsibility to call SetImage only starting from a clean slate
// or cumulatively on an already-consistent mapping (Compose and the cycle
// parser both satisfy this by construction). This mirrors the contract of
// the original MapPermutation::set_image exactly; it is a documented
// precondition, not a bug to be defended against here.
func (p *AtomicPermutation) SetImage(a, b Point) {
	if a == b {
		delete(p.images, a)
		delete(p.inverseImages, a)
		return
	}
	if p.images == nil {
		p.images = make(map[Point]Point)
		p.inverseImages = make(map[Point]Point)
	}
	p.images[a] = b
	p.inverseImages[b] = a
}

// Clear resets p to the identity.
func (p *AtomicPermutation) Clear() {
	p.images = nil
	p.inverseImages = nil
}

// IsIdentity reports whether p fixes every point.
func (p *AtomicPermutation) IsIdentity() bool {
	return len(p.images) == 0
}

// IsEqual reports whether p and g have the same image for every point.
func (p *AtomicPermutation) IsEqual(g *AtomicPermutation) bool {
	if len(p.images) != len(g.images) {
		return false
	}
	for a, b := range p.images {
		if g.GetImage(a) != b {
			return false
		}
	}
	return true
}

// Compose replaces p with the mapping a -> g(p(a)).
func (p *AtomicPermutation) Compose(g *AtomicPermutation) {
	p.composeWithMapping(g.images)
}

// ComposeInverse replaces p with the mapping a -> g^-1(p(a)).
func (p *AtomicPermutation) ComposeInverse(g *AtomicPermutation) {
	p.composeWithMapping(g.inverseImages)
}

// composeWithMapping implements the composition algorithm from
// original_source/src/MapPermutation.cc's compose_with_mapping: fold the
// receiver's own images through the right-hand mapping, then pick up any
// point the right-hand mapping moves that the receiver only fixed implicitly.
func (p *AtomicPermutation) composeWithMapping(mapping map[Point]Point) {
	var result AtomicPermutation
	seen := make(map[Point]struct{}, len(p.images))

	for a, b := range p.images {
		seen[b] = struct{}{}
		c, ok := mapping[b]
		if !ok {
			c = b
		}
		if a != c {
			result.SetImage(a, c)
		}
	}

	for a, b := range mapping {
		if _, ok := seen[a]; !ok {
			result.SetImage(a, b)
		}
	}

	p.images = result.images
	p.inverseImages = result.inverseImages
}

// Allocator is a process-scoped arena of AtomicPermutations. Words and
// Schreier trees hold non-owning pointers into permutations an Allocator
// produced, so Reset must only be called once every such pointer has been
// dropped (there is no reference counting, by design: discipline is
// enforced by call-site ordering, exactly as spec.md's resource model
// describes).
type Allocator struct {
	generation   genID
	perms        []*AtomicPermutation
	fingerprints map[uint64][]*AtomicPermutation
}

// NewAllocator returns a ready-to-use Allocator.
func NewAllocator() *Allocator {
	a := &Allocator{}
	a.Reset()
	return a
}

// Reset discards every permutation the allocator has handed out and starts
// a fresh generation. Every PermutationWord and SchreierTree built against
// the previous generation must be dropped before calling Reset again.
func (a *Allocator) Reset() genID {
	a.generation = newGenID()
	a.perms = a.perms[:0]
	a.fingerprints = make(map[uint64][]*AtomicPermutation)
	return a.generation
}

// Generation identifies the arena epoch produced by the most recent Reset;
// it is surfaced purely for diagnostics (see FundamentalSchreierTrees.String).
func (a *Allocator) Generation() genID {
	return a.generation
}

// New returns a fresh identity permutation owned by the allocator.
func (a *Allocator) New() *AtomicPermutation {
	p := &AtomicPermutation{}
	a.perms = append(a.perms, p)
	return p
}

// Intern parses s (see FromString) into an AtomicPermutation, reusing a
// permutation that an earlier Intern call on this allocator returned with
// the same canonical cycle notation instead of allocating a duplicate.
// Permutations obtained from New are never reused by Intern.
// This is purely a performance/dedup convenience: callers who need a
// private, independently mutable permutation should use New and FromString
// directly instead.
func (a *Allocator) Intern(s string) (*AtomicPermutation, error) {
	p := &AtomicPermutation{}
	if err := p.FromString(s); err != nil {
		return nil, err
	}
	fp := fingerprint(p.String())
	for _, candidate := range a.fingerprints[fp] {
		if candidate.IsEqual(p) {
			return candidate, nil
		}
	}
	a.perms = append(a.perms, p)
	a.fingerprints[fp] = append(a.fingerprints[fp], p)
	return p, nil
}
