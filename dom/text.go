package dom

// Text is the kind record of text nodes.
type Text struct {
	Data string
}

// Length returns the length of the data in bytes.
func (t *Text) Length() int {
	if t == nil {
		return 0
	}
	return len(t.Data)
}

// AppendData adds data to the end of the text.
func (t *Text) AppendData(data string) {
	t.Data += data
}
