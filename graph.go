package aoc

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// ErrCycle is matched by errors.Is for every *CycleError.
var ErrCycle = errors.New("cycle")

// CycleError reports a cycle found while walking a Digraph. Path starts and
// ends with the same node.
type CycleError[K comparable] struct {
	Path []K
}

func (e *CycleError[K]) Error() string {
	parts := make([]string, len(e.Path))
	for i, k := range e.Path {
		parts[i] = fmt.Sprint(k)
	}
	return "cycle: " + strings.Join(parts, " -> ")
}

func (e *CycleError[K]) Is(target error) bool {
	return target == ErrCycle
}

// Digraph is a directed graph with integer edge weights. Edges[a][b] is the
// weight of the edge a->b.
type Digraph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Digraph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddEdge adds an edge a->b. Adding the same edge twice adds the weights;
// if the sum does not fit in an int the edge is left unchanged and
// ErrOverflow is returned.
func (g *Digraph[K]) AddEdge(a, b K, w int) error {
	InitMap(&g.Edges)
	g.AddNode(a)
	g.AddNode(b)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	sum, ok := CheckedAdd(g.Edges[a][b], w)
	if !ok {
		return fmt.Errorf("edge %v -> %v: %w", a, b, ErrOverflow)
	}
	g.Edges[a][b] = sum
	return nil
}

// Reverse returns a copy of g with every edge flipped.
func (g *Digraph[K]) Reverse() *Digraph[K] {
	var out Digraph[K]
	for k := range g.Nodes {
		out.AddNode(k)
	}
	for a, e := range g.Edges {
		for b, w := range e {
			// Each flipped edge is new, so nothing accumulates.
			out.AddEdge(b, a, w)
		}
	}
	return &out
}

// Ancestors returns every node from which a can be reached through at least
// one edge. a itself is only included when it lies on a cycle.
func (g *Digraph[K]) Ancestors(a K) Set[K] {
	return g.Reverse().Descendants(a)
}

// Descendants returns every node reachable from a through at least one edge.
// a itself is only included when it lies on a cycle.
func (g *Digraph[K]) Descendants(a K) Set[K] {
	visited := make(Set[K])
	q := NewQueue(maps.Keys(g.Edges[a])...)
	q.While(func(v K) bool {
		if visited.Has(v) {
			return true
		}
		visited.Add(v)
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

type sizeFrame[K comparable] struct {
	node     K
	from     K
	expanded bool
}

// WeightedSize returns size(a), where size(n) is 1 plus the sum of w*size(m)
// over every edge n->m with weight w. Nodes with no outgoing edges, including
// nodes not in g, have size 1.
//
// It walks the graph with an explicit stack and memoizes each node, so shared
// subgraphs are only sized once. It returns a *CycleError if a cycle is
// reachable from a and ErrOverflow if a size does not fit in an int64.
func (g *Digraph[K]) WeightedSize(a K) (int64, error) {
	const (
		unseen = iota
		onPath
		done
	)
	var (
		state = map[K]int{}
		from  = map[K]K{} // node -> predecessor on the current path
		size  = map[K]int64{}
		s     Stack[sizeFrame[K]]
	)
	s.Push(sizeFrame[K]{node: a})
	for s.Len() > 0 {
		f, _ := s.Pop()
		n := f.node
		if f.expanded {
			total := int64(1)
			for m, w := range g.Edges[n] {
				v, ok := CheckedMul(int64(w), size[m])
				if ok {
					total, ok = CheckedAdd(total, v)
				}
				if !ok {
					return 0, fmt.Errorf("sizing %v: %w", n, ErrOverflow)
				}
			}
			size[n] = total
			state[n] = done
			continue
		}
		switch state[n] {
		case done:
			continue
		case onPath:
			return 0, &CycleError[K]{Path: cyclePath(from, f.from, n)}
		}
		state[n] = onPath
		if n != a {
			from[n] = f.from
		}
		s.Push(sizeFrame[K]{node: n, expanded: true})
		for m := range g.Edges[n] {
			switch state[m] {
			case done:
			case onPath:
				return 0, &CycleError[K]{Path: cyclePath(from, n, m)}
			default:
				s.Push(sizeFrame[K]{node: m, from: n})
			}
		}
	}
	return size[a], nil
}

// cyclePath returns the path head -> ... -> tail -> head, following from
// backwards from tail.
func cyclePath[K comparable](from map[K]K, tail, head K) []K {
	path := []K{head}
	for n := tail; n != head; n = from[n] {
		path = append(path, n)
	}
	path = append(path, head)
	// path is head, tail, ..., head; flip the middle.
	slices.Reverse(path[1 : len(path)-1])
	return path
}
