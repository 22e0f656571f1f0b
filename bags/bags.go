// Package bags solves the luggage containment rules puzzle: colored bags
// must contain fixed quantities of other colored bags.
//
// A Graph is built once from the rule text with Parse and is read-only
// afterwards, so any number of queries may share it, concurrently or not.
package bags

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/advent"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// ErrDangling is reported by Validate for colors that are referenced as
// contents but never get a rule of their own.
var ErrDangling = errors.New("no rule for bag")

// Content is one entry of a rule's right-hand side.
type Content struct {
	Color    string
	Quantity int
}

// Bag is a parsed containment rule. Contains is in rule order; it is empty
// for bags that contain no other bags.
type Bag struct {
	Color    string
	Contains []Content
}

func (b *Bag) IsLeaf() bool {
	return len(b.Contains) == 0
}

// Direct returns the number of bags held directly by b.
func (b *Bag) Direct() int {
	qs := make([]int, len(b.Contains))
	for i, c := range b.Contains {
		qs[i] = c.Quantity
	}
	return aoc.Sum(qs...)
}

// String formats b back into rule syntax.
func (b *Bag) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s bags contain ", b.Color)
	if b.IsLeaf() {
		sb.WriteString("no other bags.")
		return sb.String()
	}
	for i, c := range b.Contains {
		if i > 0 {
			sb.WriteString(", ")
		}
		noun := "bags"
		if c.Quantity == 1 {
			noun = "bag"
		}
		fmt.Fprintf(&sb, "%d %s %s", c.Quantity, c.Color, noun)
	}
	sb.WriteString(".")
	return sb.String()
}

// Graph maps each color to its rule, with an edge container->contained
// weighted by quantity.
type Graph struct {
	bags  map[string]*Bag
	edges aoc.Digraph[string]
	log   zerolog.Logger
}

// Option configures Parse.
type Option func(*Graph)

// WithLogger sets the logger used while parsing and for lookups that fall
// back to an empty bag. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Graph) {
		g.log = l
	}
}

// Parse builds a Graph from text holding one rule per line. Blank lines are
// skipped. A later rule for an already seen color replaces the earlier one.
//
// If any line is malformed, Parse returns no graph and an error combining a
// *ParseError for every bad line; use multierr.Errors to list them.
func Parse(text string, opts ...Option) (*Graph, error) {
	g := &Graph{
		bags: make(map[string]*Bag),
		log:  zerolog.Nop(),
	}
	for _, o := range opts {
		o(g)
	}

	var errs error
	for _, l := range aoc.Lines(text) {
		b, err := ParseRule(l.Text)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = l.Num
			}
			errs = multierr.Append(errs, err)
			continue
		}
		if _, ok := g.bags[b.Color]; ok {
			g.log.Debug().Str("color", b.Color).Int("line", l.Num).Msg("rule replaces earlier rule")
		}
		g.bags[b.Color] = &b
	}
	if errs != nil {
		return nil, errs
	}

	for color, b := range g.bags {
		g.edges.AddNode(color)
		for _, c := range b.Contains {
			if err := g.edges.AddEdge(color, c.Color, c.Quantity); err != nil {
				return nil, fmt.Errorf("bags: rule for %q: %w", color, err)
			}
		}
	}
	dangling := g.Dangling()
	for _, c := range dangling {
		g.log.Warn().Str("color", c).Msg("bag has no rule; treating it as empty")
	}
	g.log.Debug().Int("bags", g.Len()).Int("dangling", len(dangling)).Msg("parsed containment rules")
	return g, nil
}

// Len returns the number of distinct colors that have a rule.
func (g *Graph) Len() int {
	return len(g.bags)
}

// Lookup returns the rule for color.
func (g *Graph) Lookup(color string) (*Bag, bool) {
	b, ok := g.bags[color]
	return b, ok
}

// Bag returns the rule for color. Colors without a rule get a new empty bag,
// matching how the counting queries treat them.
func (g *Graph) Bag(color string) *Bag {
	if b, ok := g.bags[color]; ok {
		return b
	}
	g.log.Debug().Str("color", color).Msg("no rule for bag; substituting empty bag")
	return &Bag{Color: color}
}

// Colors returns every color with a rule, sorted.
func (g *Graph) Colors() []string {
	cs := maps.Keys(g.bags)
	slices.Sort(cs)
	return cs
}

// Dangling returns the colors that appear as contents but have no rule,
// sorted.
func (g *Graph) Dangling() []string {
	s := make(aoc.Set[string])
	for c := range g.edges.Nodes {
		if _, ok := g.bags[c]; !ok {
			s.Add(c)
		}
	}
	return aoc.Sorted(s)
}

// Validate reports every dangling color as an error wrapping ErrDangling.
// Queries never require a valid graph; unknown colors count as empty bags.
func (g *Graph) Validate() error {
	var errs error
	for _, c := range g.Dangling() {
		errs = multierr.Append(errs, fmt.Errorf("bags: %q: %w", c, ErrDangling))
	}
	return errs
}

// Fingerprint returns a hash of the rule set. It does not depend on the
// order the rules were given in.
func (g *Graph) Fingerprint() deephash.Sum {
	return deephash.Hash(&g.bags)
}
