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

// Diagf is a global diagnostic hook that can be set during init() to
// capture human-readable detail on parse errors, non-convergence, and order
// overflow in addition to the boolean/error result every fallible operation
// already returns. It is nil by default, matching vm.Errorf in the teacher.
var Diagf func(format string, args ...any)

func diagf(format string, args ...any) {
	if Diagf != nil {
		Diagf(format, args...)
	}
}
