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

import "github.com/google/uuid"

// genID tags an Allocator generation for diagnostics, the same way
// tenant/tnproto tags requests with a uuid.UUID for tracing rather than for
// anything cryptographic.
type genID = uuid.UUID

func newGenID() genID {
	return uuid.New()
}
