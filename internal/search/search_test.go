package search

import "testing"

// TestClampWorkers exercises spec §4.6's worker-count boundary:
// [1, 2*numCPU], defaulting to numCPU when unspecified.
func TestClampWorkers(t *testing.T) {
	cases := []struct {
		name      string
		requested int
		numCPU    int
		want      int
	}{
		{"zero requests default", 0, 4, 4},
		{"negative requests default", -1, 4, 4},
		{"within range passes through", 3, 4, 3},
		{"at upper bound passes through", 8, 4, 8},
		{"over upper bound clamps to 2*numCPU", 9, 4, 8},
		{"far over upper bound clamps", 1000, 4, 8},
		{"single-core default", 0, 1, 1},
		{"single-core over bound clamps to 2", 5, 1, 2},
		{"non-positive numCPU treated as 1", 0, 0, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampWorkers(tc.requested, tc.numCPU); got != tc.want {
				t.Fatalf("ClampWorkers(%d, %d) = %d, want %d", tc.requested, tc.numCPU, got, tc.want)
			}
		})
	}
}
