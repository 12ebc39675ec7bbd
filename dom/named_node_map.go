package dom

// Attr is a single element attribute.
type Attr struct {
	Name, Value string
}

// NamedNodeMap holds an element's plain attributes in the order they were
// first set. Setting an existing name keeps its position.
type NamedNodeMap struct {
	attrs []*Attr
}

// NewNamedNodeMap returns a map holding attrs in the given order. Later
// duplicates overwrite the value of the first occurrence.
func NewNamedNodeMap(attrs ...Attr) *NamedNodeMap {
	m := &NamedNodeMap{}
	for _, a := range attrs {
		a := a
		m.SetNamedItem(&a)
	}
	return m
}

// Length returns the number of attributes.
func (m *NamedNodeMap) Length() int {
	if m == nil {
		return 0
	}
	return len(m.attrs)
}

// Item returns the attribute at index i, or nil when out of range.
func (m *NamedNodeMap) Item(i int) *Attr {
	if m == nil || i < 0 || i >= len(m.attrs) {
		return nil
	}
	return m.attrs[i]
}

// GetNamedItem returns the attribute called name, or nil.
func (m *NamedNodeMap) GetNamedItem(name string) *Attr {
	if i := m.index(name); i >= 0 {
		return m.attrs[i]
	}
	return nil
}

// SetNamedItem stores a. If an attribute with the same name exists it is
// replaced in place and returned.
func (m *NamedNodeMap) SetNamedItem(a *Attr) *Attr {
	if i := m.index(a.Name); i >= 0 {
		old := m.attrs[i]
		m.attrs[i] = a
		return old
	}
	m.attrs = append(m.attrs, a)
	return nil
}

// RemoveNamedItem removes and returns the attribute called name, or returns
// nil if there is none.
func (m *NamedNodeMap) RemoveNamedItem(name string) *Attr {
	i := m.index(name)
	if i < 0 {
		return nil
	}
	old := m.attrs[i]
	m.attrs = append(m.attrs[:i], m.attrs[i+1:]...)
	return old
}

func (m *NamedNodeMap) index(name string) int {
	if m == nil {
		return -1
	}
	for i, a := range m.attrs {
		if a.Name == name {
			return i
		}
	}
	return -1
}
