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

// Package permgroup computes with finite permutation groups acting on the
// nonnegative integers. Given a set of generating permutations, it builds a
// base and strong generating set with the Schreier-Sims procedure, backed by
// one Schreier tree per base point, and answers membership, group order, and
// canonical element queries against the resulting stabilizer chain.
package permgroup
