package dom

import "strings"

// stringMap is a string map that remembers insertion order.
type stringMap struct {
	keys   []string
	values map[string]string
}

// Get returns the value stored under key.
func (m *stringMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key. A new key goes last; an existing key keeps
// its position.
func (m *stringMap) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key and reports whether it was present.
func (m *stringMap) Delete(key string) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (m *stringMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of entries.
func (m *stringMap) Len() int {
	return len(m.keys)
}

func (m *stringMap) clear() {
	m.keys = nil
	m.values = nil
}

// DOMStringMap is an element's dataset: the data-* attributes keyed without
// their "data-" prefix.
type DOMStringMap struct {
	stringMap
}

// CSSStyleDeclaration holds an element's inline style properties in the
// order they were set.
type CSSStyleDeclaration struct {
	props stringMap
}

// GetPropertyValue returns the value of a property, or "".
func (s *CSSStyleDeclaration) GetPropertyValue(name string) string {
	v, _ := s.props.Get(name)
	return v
}

// SetProperty sets a property. An empty value removes it.
func (s *CSSStyleDeclaration) SetProperty(name, value string) {
	if value == "" {
		s.props.Delete(name)
		return
	}
	s.props.Set(name, value)
}

// RemoveProperty removes a property and returns its old value.
func (s *CSSStyleDeclaration) RemoveProperty(name string) string {
	old, _ := s.props.Get(name)
	s.props.Delete(name)
	return old
}

// Length returns the number of properties.
func (s *CSSStyleDeclaration) Length() int {
	if s == nil {
		return 0
	}
	return s.props.Len()
}

// Properties returns the property names in order.
func (s *CSSStyleDeclaration) Properties() []string {
	return s.props.Keys()
}

// CSSText renders the declaration as "name:value;" pairs with no spaces.
func (s *CSSStyleDeclaration) CSSText() string {
	var sb strings.Builder
	for _, k := range s.props.keys {
		sb.WriteString(k)
		sb.WriteByte(':')
		sb.WriteString(s.props.values[k])
		sb.WriteByte(';')
	}
	return sb.String()
}

// SetCSSText replaces every property with the ones listed in text, which is
// read as "name: value; name: value". Entries without a colon are dropped.
func (s *CSSStyleDeclaration) SetCSSText(text string) {
	s.props.clear()
	for _, decl := range strings.Split(text, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if name == "" {
			continue
		}
		s.SetProperty(name, value)
	}
}
