// utils.go
// Copyright (C) 2024 The scrabble-solver contributors

// This file contains general utility functions, generalized from
// rune-slice helpers (RemoveRune/ContainsRune) to the combinatorial
// helper the move materializer needs.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package solver

// combinations returns every way to choose k distinct elements of
// indices, each as a slice of the chosen indices in ascending order.
// Used by the move materializer (§9's combinatorial alternative to
// recursive branching) to choose which occurrences of a missing
// letter are stood in for by a blank.
func combinations(indices []int, k int) [][]int {
	n := len(indices)
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}
	var out [][]int
	combo := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			picked := make([]int, k)
			copy(picked, combo)
			out = append(out, picked)
			return
		}
		for i := start; i < n; i++ {
			combo[depth] = indices[i]
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}
