package dnd

import (
	"fmt"
	"strings"
)

type simpleKind uint8

const (
	simpleAny simpleKind = iota // *
	simpleClass                 // .name
	simpleName                  // #name
)

type simpleSelector struct {
	kind  simpleKind
	value string
}

// Selector is a compiled CSS-like selector over nodes. It supports the
// universal selector "*", classes ".item", names "#handle", compounds
// ".item.big#first" and comma-separated alternatives ".a, .b". The zero
// Selector matches nothing.
type Selector struct {
	src    string
	groups [][]simpleSelector
}

// ParseSelector compiles src. Errors wrap ErrInvalidSelector, or
// ErrEmptySelector for a blank src.
func ParseSelector(src string) (Selector, error) {
	if strings.TrimSpace(src) == "" {
		return Selector{}, ErrEmptySelector
	}
	sel := Selector{src: src}
	for _, part := range strings.Split(src, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return Selector{}, fmt.Errorf("%w %q: empty alternative", ErrInvalidSelector, src)
		}
		group, err := parseCompound(part)
		if err != nil {
			return Selector{}, fmt.Errorf("%w %q: %s", ErrInvalidSelector, src, err.Error())
		}
		sel.groups = append(sel.groups, group)
	}
	return sel, nil
}

// MustParseSelector is like ParseSelector but panics on error.
func MustParseSelector(src string) Selector {
	sel, err := ParseSelector(src)
	if err != nil {
		panic(err)
	}
	return sel
}

func parseCompound(s string) ([]simpleSelector, error) {
	if s == "*" {
		return []simpleSelector{{kind: simpleAny}}, nil
	}
	var out []simpleSelector
	for i := 0; i < len(s); {
		var kind simpleKind
		switch s[i] {
		case '.':
			kind = simpleClass
		case '#':
			kind = simpleName
		default:
			return nil, fmt.Errorf("unexpected %q at offset %d", s[i], i)
		}
		j := i + 1
		for j < len(s) && isIdentByte(s[j]) {
			j++
		}
		if j == i+1 {
			return nil, fmt.Errorf("missing identifier at offset %d", i+1)
		}
		out = append(out, simpleSelector{kind: kind, value: s[i+1 : j]})
		i = j
	}
	return out, nil
}

func isIdentByte(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// IsZero reports whether the selector was never compiled.
func (s Selector) IsZero() bool {
	return len(s.groups) == 0
}

// String returns the source text.
func (s Selector) String() string {
	return s.src
}

// Match reports whether n satisfies any alternative.
func (s Selector) Match(n *Node) bool {
	if n == nil {
		return false
	}
	for _, group := range s.groups {
		if matchCompound(group, n) {
			return true
		}
	}
	return false
}

func matchCompound(group []simpleSelector, n *Node) bool {
	for _, ss := range group {
		switch ss.kind {
		case simpleClass:
			if !n.HasClass(ss.value) {
				return false
			}
		case simpleName:
			if n.Name != ss.value {
				return false
			}
		}
	}
	return true
}

// Closest climbs from n through its ancestors and returns the first node the
// selector matches. The climb includes stop and ends there; when n is not
// inside stop the result is nil. A nil stop climbs to the root.
func (s Selector) Closest(n, stop *Node) *Node {
	if stop != nil && !stop.Contains(n) {
		return nil
	}
	for p := n; p != nil; p = p.Parent {
		if s.Match(p) {
			return p
		}
		if p == stop {
			break
		}
	}
	return nil
}
