package lattice

import "sort"

// CubicRotations returns the 48 signed-permutation matrices of the full
// cubic point group, sorted lexicographically by their flattened entries.
// The order is deterministic, so "first equivalent" selections downstream
// are reproducible.
func CubicRotations() [][3][3]int {
	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	out := make([][3][3]int, 0, 48)
	for _, p := range perms {
		for signs := 0; signs < 8; signs++ {
			var m [3][3]int
			for i := 0; i < 3; i++ {
				s := 1
				if signs&(1<<i) != 0 {
					s = -1
				}
				m[i][p[i]] = s
			}
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return flattenLess(out[i], out[j])
	})

	return out
}

func flattenLess(a, b [3][3]int) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if a[i][j] != b[i][j] {
				return a[i][j] < b[i][j]
			}
		}
	}

	return false
}

// RotateVec applies m to v (row i of the result is dot(m[i], v)).
func RotateVec(m [3][3]int, v [3]int) [3]int {
	var out [3]int
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}

	return out
}
