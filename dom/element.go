package dom

import (
	"strings"

	"github.com/heathj/minidom/selector"
)

const (
	dataPrefix = "data-"
	styleAttr  = "style"
)

// Element is the kind record of element nodes.
//
// Three attribute names are reserved and their values stored outside
// Attributes: "class" lives in ClassName, "style" in Style and every "data-*"
// name in Dataset. The attribute methods route those names, so
// GetAttribute("class") and SetAttribute("data-role", "x") behave as
// expected. SetAttribute("style", ...) also leaves an empty "style" entry in
// Attributes that marks where the style is serialized; a style built only
// through Style goes after the other attributes.
type Element struct {
	TagName    string
	ClassName  string
	Attributes *NamedNodeMap
	Style      *CSSStyleDeclaration
	Dataset    *DOMStringMap

	void bool
}

func newElement(tagName string) *Element {
	return &Element{
		TagName:    tagName,
		Attributes: NewNamedNodeMap(),
		Style:      &CSSStyleDeclaration{},
		Dataset:    &DOMStringMap{},
		void:       isVoidElement(tagName),
	}
}

// IsVoid reports whether the element's tag never has content and is
// serialized self-closing.
func (e *Element) IsVoid() bool {
	return e != nil && e.void
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return e.GetAttribute("id")
}

// GetAttribute returns the value of the named attribute, or "" if it is not
// set.
func (e *Element) GetAttribute(name string) string {
	v, _ := e.LookupAttribute(name)
	return v
}

// LookupAttribute returns the value of the named attribute and whether it is
// set. An empty class or style counts as not set.
func (e *Element) LookupAttribute(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	switch {
	case name == "class":
		return e.ClassName, e.ClassName != ""
	case name == styleAttr:
		if e.Style.Length() == 0 {
			return "", false
		}
		return e.Style.CSSText(), true
	case isDataAttribute(name):
		return e.Dataset.Get(name[len(dataPrefix):])
	}
	if a := e.Attributes.GetNamedItem(name); a != nil {
		return a.Value, true
	}
	return "", false
}

// HasAttribute reports whether the named attribute is set.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.LookupAttribute(name)
	return ok
}

// SetAttribute sets the named attribute. A style value is parsed into Style.
func (e *Element) SetAttribute(name, value string) {
	switch {
	case name == "class":
		e.ClassName = value
	case name == styleAttr:
		e.Style.SetCSSText(value)
		if e.Attributes.GetNamedItem(styleAttr) == nil {
			e.Attributes.SetNamedItem(&Attr{Name: styleAttr})
		}
	case isDataAttribute(name):
		e.Dataset.Set(name[len(dataPrefix):], value)
	default:
		e.Attributes.SetNamedItem(&Attr{Name: name, Value: value})
	}
}

// RemoveAttribute removes the named attribute. Removing an attribute that is
// not set does nothing.
func (e *Element) RemoveAttribute(name string) {
	switch {
	case name == "class":
		e.ClassName = ""
	case name == styleAttr:
		e.Style.props.clear()
		e.Attributes.RemoveNamedItem(styleAttr)
	case isDataAttribute(name):
		e.Dataset.Delete(name[len(dataPrefix):])
	default:
		e.Attributes.RemoveNamedItem(name)
	}
}

// GetAttributeNames returns every set attribute name in serialization order.
func (e *Element) GetAttributeNames() []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, e.Attributes.Length()+e.Dataset.Len()+2)
	e.eachAttribute(func(name, _ string) {
		names = append(names, name)
	})
	if e.ClassName != "" {
		names = append(names, "class")
	}
	for _, k := range e.Dataset.Keys() {
		names = append(names, dataPrefix+k)
	}
	return names
}

// eachAttribute calls fn for the entries of Attributes and the style in
// serialization order, skipping an empty style.
func (e *Element) eachAttribute(fn func(name, value string)) {
	styled := false
	for i := 0; i < e.Attributes.Length(); i++ {
		a := e.Attributes.Item(i)
		if a.Name != styleAttr {
			fn(a.Name, a.Value)
			continue
		}
		styled = true
		if e.Style.Length() > 0 {
			fn(styleAttr, e.Style.CSSText())
		}
	}
	if !styled && e.Style.Length() > 0 {
		fn(styleAttr, e.Style.CSSText())
	}
}

// ContainsClass reports whether name is one of the element's class tokens.
func (e *Element) ContainsClass(name string) bool {
	if e == nil {
		return false
	}
	for _, c := range selector.ClassTokens(e.ClassName) {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass adds each name that is not yet a class token.
func (e *Element) AddClass(names ...string) {
	classes := selector.ClassTokens(e.ClassName)
	for _, name := range names {
		if name != "" && !e.ContainsClass(name) {
			classes = append(classes, name)
			e.ClassName = strings.Join(classes, " ")
		}
	}
}

// RemoveClass removes every occurrence of each name from the class tokens.
func (e *Element) RemoveClass(names ...string) {
	classes := selector.ClassTokens(e.ClassName)
	kept := classes[:0]
	for _, c := range classes {
		if !containsString(names, c) {
			kept = append(kept, c)
		}
	}
	e.ClassName = strings.Join(kept, " ")
}

// ToggleClass removes name if present and adds it otherwise. It reports
// whether name is present afterwards.
func (e *Element) ToggleClass(name string) bool {
	if e.ContainsClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

func isDataAttribute(name string) bool {
	return len(name) > len(dataPrefix) && strings.HasPrefix(name, dataPrefix)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
