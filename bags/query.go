package bags

import (
	"fmt"

	aoc "github.com/maisem/advent"
)

// Holders returns every color that can hold a target bag, directly or
// nested, sorted. target is only its own holder if the rules contain a cycle
// through it. Unknown colors have no holders.
func (g *Graph) Holders(target string) []string {
	return aoc.Sorted(g.edges.Ancestors(target))
}

// Inside returns every distinct color nested somewhere inside a target bag,
// sorted.
func (g *Graph) Inside(target string) []string {
	return aoc.Sorted(g.edges.Descendants(target))
}

// CountContents returns how many bags a single target bag must hold,
// counting nested bags with their multiplicities and not counting the target
// itself. Colors without a rule are empty bags.
//
// Cyclic rules make the count infinite; the error then wraps aoc.ErrCycle.
// Counts that do not fit in an int64 wrap aoc.ErrOverflow.
func (g *Graph) CountContents(target string) (int64, error) {
	size, err := g.edges.WeightedSize(target)
	if err != nil {
		return 0, fmt.Errorf("bags: counting contents of %q: %w", target, err)
	}
	return size - 1, nil
}

// CountHolders parses text and returns how many colors can eventually hold a
// target bag.
func CountHolders(target, text string, opts ...Option) (int, error) {
	g, err := Parse(text, opts...)
	if err != nil {
		return 0, err
	}
	return len(g.Holders(target)), nil
}

// CountContents parses text and returns how many bags a target bag must
// hold.
func CountContents(target, text string, opts ...Option) (int64, error) {
	g, err := Parse(text, opts...)
	if err != nil {
		return 0, err
	}
	return g.CountContents(target)
}
