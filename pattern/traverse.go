// File: traverse.go
// Role: Connected-component enumeration over the crease graph, used to
//       spot disconnected fragments in a pattern.
package pattern

// Component is one connected piece of the crease graph. Vertices are in
// breadth-first discovery order from the component's root (the earliest
// first-seen vertex in it); Creases are in global insertion order.
type Component struct {
	Vertices []Point
	Creases  []Crease
}

// Components enumerates the connected components of the crease graph.
//
// Roots are taken in vertex first-seen order and neighbors are explored
// in per-vertex crease insertion order, so the result is deterministic
// for a given mutation history. An empty pattern has no components.
//
// Complexity: O(V + C) time, O(V) extra space.
func (pt *Pattern) Components() []Component {
	visited := make(map[Point]bool, len(pt.vertices))
	owner := make(map[Point]int, len(pt.vertices))
	var comps []Component

	for _, root := range pt.vertices {
		if visited[root] {
			continue
		}

		// 1. Breadth-first walk from the earliest unvisited vertex.
		idx := len(comps)
		order := make([]Point, 0, 4)
		queue := []Point{root}
		visited[root] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)
			owner[v] = idx

			for _, k := range pt.incident[v] {
				next := k.a
				if next == v {
					next = k.b
				}
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		comps = append(comps, Component{Vertices: order})
	}

	// 2. Distribute creases, keeping global insertion order per component.
	for _, k := range pt.order {
		idx := owner[k.a]
		comps[idx].Creases = append(comps[idx].Creases, pt.crease(k))
	}

	pt.log.Debug("components enumerated", "count", len(comps))

	return comps
}
