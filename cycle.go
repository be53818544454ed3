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
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// FromString parses cycle notation into p, clearing p first.
//
//	perm    := WS* ( "()" | cycle ( WS* cycle )* ) WS*
//	cycle   := "(" int ( " " int)* ")"
//	int     := [0-9]+
//	WS      := " " | "\t" | "\n" | "\r"
//
// A point repeated across cycles in the same string, an unterminated cycle,
// or trailing non-whitespace is a parse error; p is left cleared in every
// error case.
func (p *AtomicPermutation) FromString(s string) error {
	p.Clear()
	cycles, err := parseCycles(s)
	if err != nil {
		diagf("permgroup: %v", err)
		return err
	}
	for _, cycle := range cycles {
		for i := 0; i+1 < len(cycle); i++ {
			p.SetImage(cycle[i], cycle[i+1])
		}
		p.SetImage(cycle[len(cycle)-1], cycle[0])
	}
	return nil
}

// parseCycles implements the grammar above, following the single-pass
// byte-scanning style of expr.ParsePath/ParseBindings rather than reaching
// for a parser-combinator or regexp library for a grammar this small.
func parseCycles(s string) ([][]Point, error) {
	i, n := 0, len(s)
	skipWS := func() {
		for i < n && isSpace(s[i]) {
			i++
		}
	}

	skipWS()
	if strings.HasPrefix(s[i:], "()") {
		i += 2
		skipWS()
		if i != n {
			return nil, fmt.Errorf("unexpected trailing characters at position %d in %q", i, s)
		}
		return nil, nil
	}

	if i >= n || s[i] != '(' {
		return nil, fmt.Errorf("expected '(' or identity \"()\" at position %d in %q", i, s)
	}

	var cycles [][]Point
	seen := make(map[Point]bool)
	for i < n && s[i] == '(' {
		i++
		var cycle []Point
		for {
			start := i
			for i < n && isDigit(s[i]) {
				i++
			}
			if i == start {
				return nil, fmt.Errorf("expected integer at position %d in %q", start, s)
			}
			v, err := strconv.Atoi(s[start:i])
			if err != nil {
				return nil, fmt.Errorf("invalid integer at position %d in %q: %w", start, s, err)
			}
			pt := Point(v)
			if seen[pt] {
				return nil, fmt.Errorf("point %d repeated in %q", v, s)
			}
			seen[pt] = true
			cycle = append(cycle, pt)

			if i < n && s[i] == ' ' {
				i++
				continue
			}
			break
		}
		if i >= n || s[i] != ')' {
			return nil, fmt.Errorf("expected closing parenthesis at position %d in %q", i, s)
		}
		i++
		if len(cycle) > 1 {
			cycles = append(cycles, cycle)
		}
		skipWS()
	}

	skipWS()
	if i != n {
		return nil, fmt.Errorf("unexpected trailing characters at position %d in %q", i, s)
	}
	return cycles, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// String renders p in canonical cycle notation: cycles in the order induced
// by walking moved points in ascending order, each cycle starting at its
// smallest element, fixed points omitted, the identity printed as "()".
func (p *AtomicPermutation) String() string {
	if p.IsIdentity() {
		return "()"
	}

	keys := make([]Point, 0, len(p.images))
	for a := range p.images {
		keys = append(keys, a)
	}
	slices.Sort(keys)

	var sb strings.Builder
	seen := make(map[Point]bool, len(keys))
	for _, a := range keys {
		if seen[a] {
			continue
		}
		cur := a
		first := true
		for !seen[cur] {
			seen[cur] = true
			if first {
				sb.WriteByte('(')
				first = false
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(cur)))
			cur = p.GetImage(cur)
		}
		sb.WriteByte(')')
	}
	return sb.String()
}
