// Package selector compiles the small selector language used by element
// lookup into a list of typed rules and evaluates it against elements.
//
// The grammar is an optional tag name followed by any number of simple
// predicates with no separators:
//
//	div.card#main[title][lang=en]
//
// Every predicate must hold for an element to match. There are no
// combinators and no pseudo-classes; a ":name" token tests attribute
// presence, exactly like "[name]".
package selector

import "strings"

// Any is the tag filter that matches every element.
const Any = "*"

// RuleKind says which predicate a Rule evaluates.
type RuleKind uint8

const (
	// ClassRule holds when Key is one of the element's class tokens.
	ClassRule RuleKind = iota + 1
	// IDRule holds when the element's id equals Key.
	IDRule
	// AttributeRule holds when the attribute Key is present, and, if
	// HasValue is set, equal to Value.
	AttributeRule
)

func (k RuleKind) String() string {
	switch k {
	case ClassRule:
		return "class"
	case IDRule:
		return "id"
	case AttributeRule:
		return "attribute"
	default:
		return "unknown"
	}
}

// Rule is one compiled predicate.
type Rule struct {
	Kind     RuleKind
	Key      string
	Value    string
	HasValue bool
}

// Subject is what a selector is evaluated against.
type Subject interface {
	LookupAttribute(name string) (string, bool)
}

// Selector is a compiled selector: a tag filter and a conjunction of rules.
type Selector struct {
	Tag   string
	Rules []Rule

	source string
}

// String returns the selector text the Selector was compiled from.
func (s *Selector) String() string {
	return s.source
}

// MatchTag reports whether an element with the given tag name passes the
// tag filter. Tag names compare case-insensitively.
func (s *Selector) MatchTag(tagName string) bool {
	return s.Tag == Any || strings.EqualFold(s.Tag, tagName)
}

// Match evaluates the rules against e. The tag filter is not part of Match;
// callers apply it while scanning so whole subtrees of other tags are cheap.
// A selector without rules matches everything.
func (s *Selector) Match(e Subject) bool {
	for _, r := range s.Rules {
		if !r.match(e) {
			return false
		}
	}
	return true
}

func (r Rule) match(e Subject) bool {
	switch r.Kind {
	case ClassRule:
		class, _ := e.LookupAttribute("class")
		return hasToken(class, r.Key)
	case IDRule:
		id, ok := e.LookupAttribute("id")
		return ok && id == r.Key
	case AttributeRule:
		v, ok := e.LookupAttribute(r.Key)
		if !ok {
			return false
		}
		return !r.HasValue || v == r.Value
	default:
		return false
	}
}

// ClassTokens splits a class string on spaces, dropping empty tokens. Tabs
// and other whitespace are part of a token.
func ClassTokens(list string) []string {
	var tokens []string
	for _, t := range strings.Split(list, " ") {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func hasToken(list, token string) bool {
	for _, t := range ClassTokens(list) {
		if t == token {
			return true
		}
	}
	return false
}
