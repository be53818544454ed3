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

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/slices"
)

// FundamentalSchreierTrees is the Schreier-Sims driver: it owns the base,
// the global generator pool, and one SchreierTree per base point.
type FundamentalSchreierTrees struct {
	alloc      *Allocator
	base       []Point
	generators []*PermutationWord
	trees      []*SchreierTree

	// MaxRestarts bounds the number of times SchreierSims may adopt a new
	// strong generator or extend the base before giving up and returning
	// false. Zero or a negative value means "use the default", recomputed
	// from the live base length at every restart (spec.md leaves this cap
	// implementation-defined; see SPEC_FULL.md's Open Questions).
	MaxRestarts int
}

// NewFundamentalSchreierTrees returns an empty driver. A nil alloc creates a
// private Allocator; passing one lets several driver instances share a
// single arena and its single explicit Reset point.
func NewFundamentalSchreierTrees(alloc *Allocator) *FundamentalSchreierTrees {
	if alloc == nil {
		alloc = NewAllocator()
	}
	return &FundamentalSchreierTrees{alloc: alloc}
}

// Alloc returns the driver's allocator, for callers that want to intern
// additional permutations against the same arena.
func (d *FundamentalSchreierTrees) Alloc() *Allocator {
	return d.alloc
}

// AppendToBase appends a to the base and creates a fresh SchreierTree rooted
// at a, failing if a is already present. Any already-owned generator that
// fixes the entire existing base also belongs in the new tree (it would
// have been distributed there had the tree existed when the generator was
// added), so it is backfilled here; the new tree is not built yet.
func (d *FundamentalSchreierTrees) AppendToBase(a Point) error {
	if slices.Contains(d.base, a) {
		err := fmt.Errorf("%w: %d", ErrPointInBase, a)
		diagf("permgroup: %v", err)
		return err
	}

	prefix := d.base
	d.base = append(d.base, a)
	tree := NewSchreierTree(a)
	d.trees = append(d.trees, tree)

	for _, w := range d.generators {
		if fixesAll(w, prefix) {
			tree.AddGenerator(w)
		}
	}
	return nil
}

func fixesAll(w *PermutationWord, pts []Point) bool {
	for _, p := range pts {
		if w.GetImage(p) != p {
			return false
		}
	}
	return true
}

// GetBase returns the i-th base point, or -1 if i is past the end.
func (d *FundamentalSchreierTrees) GetBase(i int) Point {
	if i < 0 || i >= len(d.base) {
		return -1
	}
	return d.base[i]
}

// BaseLength returns the number of base points.
func (d *FundamentalSchreierTrees) BaseLength() int {
	return len(d.base)
}

// GetTree returns the i-th SchreierTree. It panics for i outside
// [0, BaseLength()), the same invariant-violation-is-a-panic policy
// spec.md's error handling design reserves for out-of-range indices.
func (d *FundamentalSchreierTrees) GetTree(i int) *SchreierTree {
	if i < 0 || i >= len(d.trees) {
		panic(fmt.Sprintf("permgroup: tree index %d out of range (base length %d)", i, len(d.trees)))
	}
	return d.trees[i]
}

// AddGenerator installs w into the owned generator pool and distributes it
// to every tree whose level it belongs at: for each base point b[i] in
// order, if w fixes b[0..i-1] it is added to tree i; distribution stops at
// the first base point w moves.
func (d *FundamentalSchreierTrees) AddGenerator(w *PermutationWord) *PermutationWord {
	d.generators = append(d.generators, w)
	d.distribute(w)
	return w
}

// AddGeneratorAtomic wraps ref as a single-factor word and installs it.
func (d *FundamentalSchreierTrees) AddGeneratorAtomic(ref *AtomicPermutation) *PermutationWord {
	return d.AddGenerator(NewWordFromAtomic(ref))
}

// AddGeneratorString parses s as cycle notation (interning it against the
// driver's allocator) and installs the result as a generator.
func (d *FundamentalSchreierTrees) AddGeneratorString(s string) (*PermutationWord, error) {
	atom, err := d.alloc.Intern(s)
	if err != nil {
		return nil, err
	}
	return d.AddGeneratorAtomic(atom), nil
}

func (d *FundamentalSchreierTrees) distribute(w *PermutationWord) {
	for i, tree := range d.trees {
		for k := 0; k < i; k++ {
			if w.GetImage(d.base[k]) != d.base[k] {
				return
			}
		}
		tree.AddGenerator(w)
		if w.GetImage(d.base[i]) != d.base[i] {
			return
		}
	}
}

// BuildTrees calls BuildTree on every tree and reports whether any changed.
func (d *FundamentalSchreierTrees) BuildTrees() bool {
	changed := false
	for _, t := range d.trees {
		if t.BuildTree() {
			changed = true
		}
	}
	return changed
}

// DoesEachGeneratorMoveBase reports whether every owned generator moves at
// least one base point.
func (d *FundamentalSchreierTrees) DoesEachGeneratorMoveBase() bool {
	for _, w := range d.generators {
		if !movesAny(w, d.base) {
			return false
		}
	}
	return true
}

func movesAny(w *PermutationWord, pts []Point) bool {
	for _, p := range pts {
		if w.GetImage(p) != p {
			return true
		}
	}
	return false
}

// smallestMovedPoint returns the smallest point w moves, or ok=false if w is
// the identity.
func smallestMovedPoint(w *PermutationWord) (p Point, ok bool) {
	ev := w.Evaluate()
	if ev.IsIdentity() {
		return 0, false
	}
	keys := make([]Point, 0, len(ev.images))
	for k := range ev.images {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys[0], true
}

// EnsureEachGeneratorMovesBase appends, for every generator that fixes the
// entire base, the smallest point it moves, creating a new tree (and
// backfilling it per AppendToBase) for each such extension.
func (d *FundamentalSchreierTrees) EnsureEachGeneratorMovesBase() {
	for _, w := range d.generators {
		if movesAny(w, d.base) {
			continue
		}
		p, ok := smallestMovedPoint(w)
		if !ok {
			continue
		}
		d.AppendToBase(p)
	}
}

// Strip sifts elem through the stabilizer chain, returning the residue in h
// and the depth at which sifting stopped. Depth == BaseLength() means h
// fixes every base point (in a strong generating set this forces h to be
// the identity); a smaller depth j means h moves base[j] to a point outside
// tree j's orbit.
func (d *FundamentalSchreierTrees) Strip(elem Permutation, h *PermutationWord) int {
	h.adoptFrom(elem)
	for i, tree := range d.trees {
		p := h.GetImage(d.base[i])
		if !tree.IsInOrbit(p) {
			return i
		}
		var u PermutationWord
		tree.PathFromRoot(p, &u)
		h.ComposeInverse(&u)
	}
	return len(d.base)
}

// schreierGenerator forms path_from_root(x) . s . path_from_root(s(x))^-1,
// the canonical element of the next-deeper stabilizer derived from
// generator s and orbit point x.
func schreierGenerator(tree *SchreierTree, x Point, s *PermutationWord) *PermutationWord {
	sx := s.GetImage(x)
	w := &PermutationWord{}
	tree.PathFromRoot(x, w)
	w.Compose(s)
	var pathToSx PermutationWord
	tree.PathFromRoot(sx, &pathToSx)
	w.ComposeInverse(&pathToSx)
	return w
}

// IsStronglyGenerated reports whether every Schreier generator, at every
// level and orbit point, sifts to the identity at full depth. It returns
// false for an empty base with a non-identity generator, since there is no
// stabilizer chain yet to certify anything against.
func (d *FundamentalSchreierTrees) IsStronglyGenerated() bool {
	if len(d.base) == 0 {
		for _, w := range d.generators {
			if !w.IsIdentity() {
				return false
			}
		}
		return true
	}

	var h PermutationWord
	for _, tree := range d.trees {
		for _, x := range tree.OrbitPoints() {
			for _, s := range tree.Generators() {
				sg := schreierGenerator(tree, x, s)
				depth := d.Strip(sg, &h)
				if depth != len(d.base) || !h.IsIdentity() {
					return false
				}
			}
		}
	}
	return true
}

func defaultMaxRestarts(baseLen int) int {
	return 1024 * (baseLen + 1)
}

// SchreierSims runs the Schreier-Sims procedure: it ensures every generator
// moves the base, builds the trees, and repeatedly hunts for a Schreier
// generator that sifts non-trivially, either adopting the residue as a new
// strong generator or extending the base, until a full pass finds nothing
// left to do. It returns false if the iteration cap (MaxRestarts, or a
// generous default derived from the base length) is exceeded first.
//
// The returned bool is not "is the result a valid strong generating set" —
// Order and Strip are trustworthy regardless of it, matching
// original_source/test/FundamentalSchreierTrees_unittest.cc's OrderSymmetric,
// which never inspects the return value yet still checks order() after every
// call. Per that suite's SchreierSimsSmall, the bool instead reports whether
// this call actually had to adopt a new strong generator or extend the base
// while sifting Schreier generators: a call that converges without finding
// any non-trivial sift (the generators it started with already were a
// strong generating set for the base built just now) returns false, even
// though the stabilizer chain it built is perfectly usable.
func (d *FundamentalSchreierTrees) SchreierSims() bool {
	d.EnsureEachGeneratorMovesBase()
	d.BuildTrees()

	restarts := 0
	changed := false
	for {
		progressed := false

		maxRestarts := d.MaxRestarts
		if maxRestarts <= 0 {
			maxRestarts = defaultMaxRestarts(len(d.base))
		}

	levelScan:
		for i := len(d.trees) - 1; i >= 0; i-- {
			tree := d.trees[i]
			for _, x := range tree.OrbitPoints() {
				for _, s := range tree.Generators() {
					sg := schreierGenerator(tree, x, s)
					var h PermutationWord
					depth := d.Strip(sg, &h)
					if depth == len(d.base) && h.IsIdentity() {
						continue
					}

					restarts++
					if restarts > maxRestarts {
						diagf("permgroup: %v (cap %d)", ErrNonConvergent, maxRestarts)
						return false
					}

					if depth == len(d.base) {
						if p, ok := smallestMovedPoint(&h); ok {
							d.AppendToBase(p)
						}
					} else {
						d.AddGenerator(&h)
					}
					d.BuildTrees()
					changed = true
					progressed = true
					break levelScan
				}
			}
		}

		if !progressed {
			return changed
		}
	}
}

// Order returns the product of the trees' orbit sizes, i.e. the order of
// the group generated by the strong generating set. It returns -1 if the
// running product would overflow the signed 64-bit range.
func (d *FundamentalSchreierTrees) Order() int64 {
	var order int64 = 1
	for _, t := range d.trees {
		sz := int64(t.Size())
		if sz != 0 && order > math.MaxInt64/sz {
			diagf("permgroup: %v", ErrOrderOverflow)
			return -1
		}
		order *= sz
	}
	return order
}

// String is a debug dump of the base, generator pool, and per-level trees.
func (d *FundamentalSchreierTrees) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "allocator generation: %s\n", d.alloc.Generation())

	sb.WriteString("base: [")
	for i, b := range d.base {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", b)
	}
	sb.WriteString("]\n")

	sb.WriteString("generators: ")
	for i, w := range d.generators {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(w.ToEvaluatedString())
	}
	sb.WriteString("\n")

	for i, t := range d.trees {
		fmt.Fprintf(&sb, "tree %d:\n%s\n", i, t.String())
	}
	return sb.String()
}
