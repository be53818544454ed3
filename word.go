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

import "strings"

// wordFactor is one term of a PermutationWord: a reference to an
// allocator-owned AtomicPermutation, plus whether it's applied inverted.
type wordFactor struct {
	ref      *AtomicPermutation
	inverted bool
}

// PermutationWord is a product f1 . f2 . ... . fn of atomic permutations or
// their inverses, evaluated lazily: no factor is ever rewritten, and the
// word shares its atomics with any number of other words. The zero value is
// the identity word.
type PermutationWord struct {
	factors []wordFactor
}

// NewWordFromAtomic returns a single-factor word wrapping ref.
func NewWordFromAtomic(ref *AtomicPermutation) *PermutationWord {
	return &PermutationWord{factors: []wordFactor{{ref: ref}}}
}

// GetImage folds left: a <- fi(a) for i = 1..n.
func (w *PermutationWord) GetImage(a Point) Point {
	for _, f := range w.factors {
		if f.inverted {
			a = f.ref.GetInverseImage(a)
		} else {
			a = f.ref.GetImage(a)
		}
	}
	return a
}

// GetInverseImage folds right with each factor's direction flipped. This
// ordering is the critical correctness point spec.md calls out: inverse
// evaluation reverses factor order, it does not merely flip each factor.
func (w *PermutationWord) GetInverseImage(a Point) Point {
	for i := len(w.factors) - 1; i >= 0; i-- {
		f := w.factors[i]
		if f.inverted {
			a = f.ref.GetImage(a)
		} else {
			a = f.ref.GetInverseImage(a)
		}
	}
	return a
}

// Compose appends other's factors in order, so the receiver becomes
// (receiver) . (other).
func (w *PermutationWord) Compose(other *PermutationWord) {
	w.factors = append(w.factors, other.factors...)
}

// ComposeInverse appends other's factors in reverse order with each
// direction flipped, so the receiver becomes (receiver) . (other)^-1.
func (w *PermutationWord) ComposeInverse(other *PermutationWord) {
	for i := len(other.factors) - 1; i >= 0; i-- {
		f := other.factors[i]
		w.factors = append(w.factors, wordFactor{ref: f.ref, inverted: !f.inverted})
	}
}

// Clear resets w to the identity word.
func (w *PermutationWord) Clear() {
	w.factors = w.factors[:0]
}

// adoptFrom resets w to the same factors elem is made of: a PermutationWord
// has its factor slice copied in, an AtomicPermutation becomes a single factor.
// FundamentalSchreierTrees.Strip uses this so it can sift either a raw
// generator or a composite Schreier generator through the stabilizer chain
// uniformly.
func (w *PermutationWord) adoptFrom(elem Permutation) {
	w.Clear()
	switch v := elem.(type) {
	case *PermutationWord:
		w.factors = append(w.factors, v.factors...)
	case *AtomicPermutation:
		w.factors = append(w.factors, wordFactor{ref: v})
	}
}

// Evaluate materializes the word's product into a fresh AtomicPermutation.
// Implementations are not required to detect the identity word cheaply
// without materializing; this is the on-demand materialization spec.md
// allows.
func (w *PermutationWord) Evaluate() *AtomicPermutation {
	var acc AtomicPermutation
	for _, f := range w.factors {
		if f.inverted {
			acc.ComposeInverse(f.ref)
		} else {
			acc.Compose(f.ref)
		}
	}
	return &acc
}

// IsIdentity reports whether the evaluated word is the identity.
func (w *PermutationWord) IsIdentity() bool {
	return w.Evaluate().IsIdentity()
}

// ToEvaluatedString materializes the word and prints its canonical cycle
// notation. Word equality is defined by this string, not by factor
// structure: two words built from entirely different factors are equal
// exactly when they evaluate to the same canonical string.
func (w *PermutationWord) ToEvaluatedString() string {
	return w.Evaluate().String()
}

// Equal reports whether w and other evaluate to the same permutation.
func (w *PermutationWord) Equal(other *PermutationWord) bool {
	return w.ToEvaluatedString() == other.ToEvaluatedString()
}

// String is a debug view listing factors in order, e.g. "(0 1) (0 1 2)^-1".
func (w *PermutationWord) String() string {
	parts := make([]string, len(w.factors))
	for i, f := range w.factors {
		if f.inverted {
			parts[i] = f.ref.String() + "^-1"
		} else {
			parts[i] = f.ref.String()
		}
	}
	return strings.Join(parts, " ")
}
