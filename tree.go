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
	"sort"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SchreierTree maintains the orbit of root under the generators it has been
// given and, for every non-root orbit member, the single generator that
// brought it into the orbit (the edge is stored on the child).
type SchreierTree struct {
	root       Point
	generators []*PermutationWord
	tree       map[Point]*PermutationWord
}

// NewSchreierTree returns a tree rooted at root with no generators yet.
func NewSchreierTree(root Point) *SchreierTree {
	return &SchreierTree{root: root, tree: make(map[Point]*PermutationWord)}
}

// Root returns the tree's root point.
func (t *SchreierTree) Root() Point { return t.root }

// AddGenerator appends a non-owning reference to w. Adding the same word
// twice is allowed but redundant; callers are not required to deduplicate.
func (t *SchreierTree) AddGenerator(w *PermutationWord) {
	t.generators = append(t.generators, w)
}

// Generators returns the tree's generator list.
func (t *SchreierTree) Generators() []*PermutationWord {
	return t.generators
}

// IsInOrbit reports whether a is the root or a known orbit member.
func (t *SchreierTree) IsInOrbit(a Point) bool {
	if a == t.root {
		return true
	}
	_, ok := t.tree[a]
	return ok
}

// Size returns 1 (for the root) plus the number of non-root orbit members.
func (t *SchreierTree) Size() int {
	return 1 + len(t.tree)
}

// OrbitPoints returns {root} union keys(tree).
func (t *SchreierTree) OrbitPoints() []Point {
	pts := make([]Point, 0, t.Size())
	pts = append(pts, t.root)
	pts = append(pts, maps.Keys(t.tree)...)
	return pts
}

// HasGenerator reports whether some generator of t evaluates to exactly g,
// compared by canonical cycle-notation string.
func (t *SchreierTree) HasGenerator(g *AtomicPermutation) bool {
	s := g.String()
	for _, w := range t.generators {
		if w.ToEvaluatedString() == s {
			return true
		}
	}
	return false
}

// orbitIterator is the two-source traversal described in spec.md's
// "Orbit iteration contract": a cursor over the tree's points in ascending
// order, plus a FIFO side queue for points discovered after the cursor has
// already passed where they would sort. The root is always emitted first,
// via the queue. Go maps have no ordering and no iterator-stability
// guarantee across insertion, so orderedKeys stands in for the teacher
// C++'s live std::map iterator: points that sort at or after the cursor are
// inserted into orderedKeys so the cursor reaches them naturally; points
// that sort before the cursor go to the queue instead, exactly as
// original_source/src/SchreierTree.cc's OrbitIterator::append does.
type orbitIterator struct {
	orderedKeys []Point
	cursor      int
	pending     []Point
	fromQueue   bool
}

func newOrbitIterator(t *SchreierTree) *orbitIterator {
	keys := maps.Keys(t.tree)
	slices.Sort(keys)
	return &orbitIterator{
		orderedKeys: keys,
		pending:     []Point{t.root},
		fromQueue:   true,
	}
}

func (it *orbitIterator) notAtEnd() bool {
	return len(it.pending) > 0 || it.cursor < len(it.orderedKeys)
}

func (it *orbitIterator) current() Point {
	if it.fromQueue {
		return it.pending[0]
	}
	return it.orderedKeys[it.cursor]
}

// append records a newly discovered orbit point for future visitation.
func (it *orbitIterator) append(a Point) {
	if it.cursor >= len(it.orderedKeys) {
		it.pending = append(it.pending, a)
		it.fromQueue = true
		return
	}
	if a < it.orderedKeys[it.cursor] {
		it.pending = append(it.pending, a)
		return
	}
	rest := it.orderedKeys[it.cursor:]
	pos := it.cursor + sort.Search(len(rest), func(i int) bool { return rest[i] >= a })
	it.orderedKeys = append(it.orderedKeys, 0)
	copy(it.orderedKeys[pos+1:], it.orderedKeys[pos:])
	it.orderedKeys[pos] = a
}

func (it *orbitIterator) advance() {
	if it.fromQueue {
		it.pending = it.pending[1:]
		if len(it.pending) == 0 {
			it.fromQueue = false
		}
	} else {
		it.cursor++
		if len(it.pending) > 0 {
			it.fromQueue = true
		}
	}
}

// BuildTree expands the orbit: for every point currently in the orbit and
// every generator g, the inverse image of the point under g is checked, and
// if it is not already in the orbit it is recorded with g as its edge.
// Using the inverse image is deliberate: tree[b] = g means g maps b toward
// the root, so a path to the root is built by repeatedly applying the edge
// word. BuildTree reports whether the tree grew.
func (t *SchreierTree) BuildTree() bool {
	changed := false
	it := newOrbitIterator(t)
	for it.notAtEnd() {
		a := it.current()
		for _, g := range t.generators {
			b := g.GetInverseImage(a)
			if !t.IsInOrbit(b) {
				changed = true
				t.tree[b] = g
				it.append(b)
			}
		}
		it.advance()
	}
	return changed
}

// PathToRoot fills w with a word that maps a to root, by repeatedly
// composing w with the edge word at the current point and following that
// edge toward the root. It fails (and clears w) if a is not in the orbit.
func (t *SchreierTree) PathToRoot(a Point, w *PermutationWord) bool {
	w.Clear()
	if !t.IsInOrbit(a) {
		return false
	}
	for a != t.root {
		edge := t.tree[a]
		w.Compose(edge)
		a = edge.GetImage(a)
	}
	return true
}

// PathFromRoot appends to w (without clearing it first, matching the
// original's path_from_root) a word that maps root to a, by computing the
// path to root and composing its inverse.
func (t *SchreierTree) PathFromRoot(a Point, w *PermutationWord) bool {
	var toRoot PermutationWord
	ok := t.PathToRoot(a, &toRoot)
	w.ComposeInverse(&toRoot)
	return ok
}

// String is a debug dump of the root, generators, and tree edges.
func (t *SchreierTree) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "root: %d\n", t.root)

	sb.WriteString("generators: ")
	for i, g := range t.generators {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s [%s]", g.String(), g.ToEvaluatedString())
	}

	sb.WriteString("\ntree: { ")
	keys := maps.Keys(t.tree)
	slices.Sort(keys)
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d: %s", k, t.tree[k].ToEvaluatedString())
	}
	sb.WriteString(" }")
	return sb.String()
}
