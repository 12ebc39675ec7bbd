// Package blueprint builds dom documents from a YAML description.
//
// A blueprint names the body element and a tree of nodes below it:
//
//	body:
//	  attrs: {id: main}
//	  children:
//	    - tag: div
//	      class: card
//	      style: {color: red}
//	      data: {role: panel}
//	      children:
//	        - text: hi
//	    - fragment:
//	        - tag: br
//
// Every node is exactly one of an element (tag), a text node (text) or a
// fragment whose children are spliced into the parent. Mapping order in the
// YAML source is the order attributes, style properties and dataset entries
// are set in.
package blueprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/heathj/minidom/dom"
	"github.com/heathj/minidom/selector"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidNode is returned by Build for a node that is not exactly one of
// an element, a text node or a fragment.
var ErrInvalidNode = errors.New("invalid blueprint node")

// Blueprint is a decoded document description.
type Blueprint struct {
	Body Node `yaml:"body"`
}

// Node describes one node of the tree.
type Node struct {
	Tag      string     `yaml:"tag"`
	Text     *string    `yaml:"text"`
	Fragment []Node     `yaml:"fragment"`
	ID       string     `yaml:"id"`
	Class    string     `yaml:"class"`
	Attrs    OrderedMap `yaml:"attrs"`
	Style    OrderedMap `yaml:"style"`
	Data     OrderedMap `yaml:"data"`
	Children []Node     `yaml:"children"`
}

// Pair is one entry of an OrderedMap.
type Pair struct {
	Key, Value string
}

// OrderedMap is a YAML mapping of scalars that keeps source order.
type OrderedMap []Pair

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *OrderedMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return errors.Errorf("line %d: expected a mapping", value.Line)
	}
	pairs := make(OrderedMap, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return errors.Errorf("line %d: mapping entries must be scalars", k.Line)
		}
		val := v.Value
		if v.Tag == "!!null" {
			val = ""
		}
		pairs = append(pairs, Pair{Key: k.Value, Value: val})
	}
	*m = pairs
	return nil
}

// Decode reads a single blueprint document from r. Unknown keys are
// rejected.
func Decode(r io.Reader) (*Blueprint, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var bp Blueprint
	if err := dec.Decode(&bp); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode blueprint: empty input")
		}
		return nil, errors.Wrap(err, "decode blueprint")
	}
	return &bp, nil
}

// Build returns a new document holding the described tree.
func (bp *Blueprint) Build() (*dom.Node, error) {
	if bp.Body.Text != nil || bp.Body.Fragment != nil {
		return nil, errors.Wrap(ErrInvalidNode, "body: must be an element")
	}
	if bp.Body.Tag != "" && !strings.EqualFold(bp.Body.Tag, "body") {
		return nil, errors.Wrapf(ErrInvalidNode, "body: tag %q is not body", bp.Body.Tag)
	}

	doc := dom.NewDocument()
	b := builder{doc: doc}
	b.apply(doc.Body, &bp.Body)
	if err := b.children(doc.Body, bp.Body.Children, "body"); err != nil {
		return nil, err
	}
	dom.Logger().WithField("nodes", b.count).Debug("built blueprint")
	return doc, nil
}

type builder struct {
	doc   *dom.Node
	count int
}

func (b *builder) children(parent *dom.Node, nodes []Node, path string) error {
	for i := range nodes {
		p := fmt.Sprintf("%s/children[%d]", path, i)
		child, err := b.node(&nodes[i], p)
		if err != nil {
			return err
		}
		if _, err := parent.AppendChild(child); err != nil {
			return errors.Wrap(err, p)
		}
	}
	return nil
}

func (b *builder) node(n *Node, path string) (*dom.Node, error) {
	kinds := 0
	if n.Tag != "" {
		kinds++
	}
	if n.Text != nil {
		kinds++
	}
	if n.Fragment != nil {
		kinds++
	}
	if kinds != 1 {
		return nil, errors.Wrapf(ErrInvalidNode, "%s: need exactly one of tag, text or fragment", path)
	}

	switch {
	case n.Text != nil:
		if n.hasElementFields() {
			return nil, errors.Wrapf(ErrInvalidNode, "%s: text nodes take no attributes or children", path)
		}
		b.count++
		return b.doc.CreateTextNode(*n.Text), nil
	case n.Fragment != nil:
		if n.hasElementFields() {
			return nil, errors.Wrapf(ErrInvalidNode, "%s: fragments take no attributes or children", path)
		}
		frag := b.doc.CreateDocumentFragment()
		for i := range n.Fragment {
			p := fmt.Sprintf("%s/fragment[%d]", path, i)
			child, err := b.node(&n.Fragment[i], p)
			if err != nil {
				return nil, err
			}
			if _, err := frag.AppendChild(child); err != nil {
				return nil, errors.Wrap(err, p)
			}
		}
		return frag, nil
	}

	el := b.doc.CreateElement(n.Tag)
	b.count++
	b.apply(el, n)
	if err := b.children(el, n.Children, path); err != nil {
		return nil, err
	}
	return el, nil
}

func (b *builder) apply(el *dom.Node, n *Node) {
	for _, a := range n.Attrs {
		el.SetAttribute(a.Key, a.Value)
	}
	if n.ID != "" {
		el.SetAttribute("id", n.ID)
	}
	if n.Class != "" {
		el.AddClass(selector.ClassTokens(n.Class)...)
	}
	for _, p := range n.Style {
		el.Style.SetProperty(p.Key, p.Value)
	}
	for _, d := range n.Data {
		el.Dataset.Set(d.Key, d.Value)
	}
}

func (n *Node) hasElementFields() bool {
	return n.ID != "" || n.Class != "" || len(n.Attrs) > 0 || len(n.Style) > 0 ||
		len(n.Data) > 0 || len(n.Children) > 0
}
