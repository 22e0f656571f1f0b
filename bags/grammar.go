package bags

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseError describes a containment rule that does not match the rule
// grammar.
type ParseError struct {
	Line int // 1-based; 0 when the rule was parsed on its own
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("bags: %s: %q", e.Msg, e.Text)
	}
	return fmt.Sprintf("bags: line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// ParseRule parses a single containment rule:
//
//	rule     = color "bags" "contain" ( "no" "other" "bags" | items ) "."
//	items    = item { "," item }
//	item     = quantity color ( "bag" | "bags" )
//	color    = word { word }
//	quantity = positive decimal integer
//
// Surrounding whitespace is ignored. Errors are of type *ParseError.
func ParseRule(rule string) (Bag, error) {
	text := strings.TrimSpace(rule)
	p := &parser{text: text, toks: tokenize(text)}
	b, err := p.rule()
	if err != nil {
		return Bag{}, err
	}
	return b, nil
}

// tokenize splits s into words and the punctuation tokens "," and ".".
func tokenize(s string) []string {
	var (
		toks []string
		cur  strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			flush()
		case r == ',' || r == '.':
			flush()
			toks = append(toks, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

type parser struct {
	text string
	toks []string
	pos  int
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Text: p.text, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) next() string {
	t := p.peek()
	if t != "" {
		p.pos++
	}
	return t
}

func (p *parser) expect(want ...string) error {
	got := p.next()
	for _, w := range want {
		if got == w {
			return nil
		}
	}
	if got == "" {
		got = "end of rule"
	}
	return p.errorf("expected %s, got %q", strings.Join(want, " or "), got)
}

func (p *parser) rule() (Bag, error) {
	var b Bag
	color, err := p.color()
	if err != nil {
		return b, err
	}
	b.Color = color
	if err := p.expect("bags"); err != nil {
		return b, err
	}
	if err := p.expect("contain"); err != nil {
		return b, err
	}
	if p.peek() == "no" {
		for _, w := range []string{"no", "other", "bags"} {
			if err := p.expect(w); err != nil {
				return b, err
			}
		}
	} else {
		for {
			c, err := p.item()
			if err != nil {
				return b, err
			}
			b.Contains = append(b.Contains, c)
			if p.peek() != "," {
				break
			}
			p.next()
		}
	}
	if err := p.expect("."); err != nil {
		return b, err
	}
	if t := p.peek(); t != "" {
		return b, p.errorf("unexpected %q after end of rule", t)
	}
	return b, nil
}

func (p *parser) item() (Content, error) {
	var c Content
	tok := p.next()
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 || !isDecimal(tok) {
		if tok == "" {
			tok = "end of rule"
		}
		return c, p.errorf("expected positive quantity, got %q", tok)
	}
	c.Quantity = n
	if c.Color, err = p.color(); err != nil {
		return c, err
	}
	if err := p.expect("bag", "bags"); err != nil {
		return c, err
	}
	return c, nil
}

// color consumes words up to, but not including, "bag" or "bags".
func (p *parser) color() (string, error) {
	var words []string
	for {
		switch t := p.peek(); t {
		case "bag", "bags":
			if len(words) == 0 {
				return "", p.errorf("missing color before %q", t)
			}
			return strings.Join(words, " "), nil
		case "", ",", ".":
			if t == "" {
				t = "end of rule"
			}
			return "", p.errorf("expected color followed by bag(s), got %q", t)
		default:
			words = append(words, p.next())
		}
	}
}

// isDecimal reports whether s is a plain run of ASCII digits without a sign
// or leading zero.
func isDecimal(s string) bool {
	if s == "" || s[0] == '0' {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
