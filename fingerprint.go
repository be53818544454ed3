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

import "github.com/dchest/siphash"

// fixed, non-secret keys: the fingerprint only needs to bucket candidates
// for Allocator.Intern's exact-match fallback, not resist an adversary.
const (
	fingerprintK0 uint64 = 0x5eed1e55deadbeef
	fingerprintK1 uint64 = 0xc0ffee00baadf00d
)

// fingerprint hashes a canonical cycle-notation string for use as a dedup
// bucket key, the same role siphash-keyed pre-filters play ahead of an
// exact check elsewhere in the teacher's ion symbol table lookups.
func fingerprint(s string) uint64 {
	return siphash.Hash(fingerprintK0, fingerprintK1, []byte(s))
}
