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

import "errors"

var (
	// ErrPointInBase is returned by AppendToBase when the point is already
	// present in the base.
	ErrPointInBase = errors.New("permgroup: point already present in base")

	// ErrNonConvergent is reported (via the diagnostic sink) when
	// SchreierSims's restart loop exceeds its iteration cap without reaching
	// a fixed point; SchreierSims itself then returns false.
	ErrNonConvergent = errors.New("permgroup: schreier-sims did not converge within the iteration cap")

	// ErrOrderOverflow is reported (via the diagnostic sink) when Order's
	// running product would exceed the signed 64-bit range. Order itself
	// has no error return (spec.md fixes its signature as returning -1 on
	// overflow), so this sentinel exists purely so diagf callers can match
	// on it with errors.Is the same way they match ErrPointInBase and
	// ErrNonConvergent.
	ErrOrderOverflow = errors.New("permgroup: group order overflowed the signed 64-bit range")
)
