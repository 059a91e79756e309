package main

import (
	"runtime"
	"sync"
	"sync/atomic"
)

func isAdjacent(a, b Triangle) (bool, [2]uint32) {
	shared := [2]uint32{}
	count := 0

	for _, va := range a {
		for _, vb := range b {
			if va == vb {
				if count < 2 {
					shared[count] = va
				}
				count++
			}
		}
	}

	return count == 2, shared
}

// sameWindingOrder reports whether two triangles sharing an edge walk it in
// opposite directions, which is what consistently wound neighbours do.
func sameWindingOrder(triangleA, triangleB Triangle, shared [2]uint32) bool {
	for i, a := range triangleA {
		if a != shared[0] {
			continue
		}

		// A walks shared[0] -> shared[1], so B must walk shared[1] -> shared[0]
		forward := triangleA[(i+1)%3] == shared[1]

		for j, b := range triangleB {
			if b == shared[0] {
				if forward {
					return triangleB[(j+2)%3] == shared[1]
				}
				return triangleB[(j+1)%3] == shared[1]
			}
		}
	}

	return false
}

/*
InconsistentWindings counts pairs of adjacent triangles that disagree on
which side is the front. Zero for a consistently wound mesh.
*/
func (m *Mesh) InconsistentWindings() int {
	var wg sync.WaitGroup
	var inverted atomic.Int64

	n := runtime.NumCPU()
	chunk := (len(m.Triangles) + n - 1) / n

	for start := 0; start < len(m.Triangles); start += chunk {
		end := min(start+chunk, len(m.Triangles))

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			for a := start; a < end; a++ {
				for b := a + 1; b < len(m.Triangles); b++ {
					adjacent, shared := isAdjacent(m.Triangles[a], m.Triangles[b])
					if !adjacent {
						continue
					}

					if !sameWindingOrder(m.Triangles[a], m.Triangles[b], shared) {
						inverted.Add(1)
					}
				}
			}
		}(start, end)
	}

	wg.Wait()

	return int(inverted.Load())
}
