package dom

import "github.com/heathj/minidom/selector"

// QuerySelector returns the first descendant element, in document order,
// matched by sel, or nil. A document searches its body.
func (n *Node) QuerySelector(sel string) *Node {
	found := n.query(selector.Compile(sel), true)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// QuerySelectorAll returns every descendant element matched by sel in
// document order.
func (n *Node) QuerySelectorAll(sel string) []*Node {
	return n.query(selector.Compile(sel), false)
}

// Matches reports whether n is an element matched by sel.
func (n *Node) Matches(sel string) bool {
	if n.NodeType != ElementNode {
		return false
	}
	return matches(selector.Compile(sel), n)
}

// GetElementsByClassName returns the descendant elements that carry every
// class in the space separated list names.
func (n *Node) GetElementsByClassName(names string) []*Node {
	classes := selector.ClassTokens(names)
	if len(classes) == 0 {
		return nil
	}
	s := &selector.Selector{Tag: selector.Any}
	for _, c := range classes {
		s.Rules = append(s.Rules, selector.Rule{Kind: selector.ClassRule, Key: c})
	}
	return n.query(s, false)
}

func (n *Node) query(s *selector.Selector, first bool) []*Node {
	return n.searchRoot().scan(func(el *Node) bool {
		return matches(s, el)
	}, first)
}

func matches(s *selector.Selector, el *Node) bool {
	return s.MatchTag(el.TagName) && s.Match(el)
}
