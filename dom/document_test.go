package dom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, DocumentNode, doc.NodeType)
	assert.Equal(t, "#document", doc.NodeName)
	require.NotNil(t, doc.Body)
	assert.Equal(t, "BODY", doc.Body.TagName)
	assert.Same(t, doc, doc.Body.ParentNode)
	assert.Same(t, doc.Body, doc.FirstChild)
	assert.Same(t, doc, doc.Body.OwnerDocument)
	checkTree(t, doc)

	// Documents are independent values.
	other := NewDocument()
	assert.NotSame(t, doc.Body, other.Body)
}

func TestDocumentFactories(t *testing.T) {
	doc := NewDocument()

	el := doc.CreateElement("section")
	assert.Equal(t, "SECTION", el.TagName)
	assert.Same(t, doc, el.OwnerDocument)
	assert.Nil(t, el.ParentNode)

	txt := doc.CreateTextNode("hello")
	assert.Equal(t, TextNode, txt.NodeType)
	assert.Equal(t, "#text", txt.NodeName)
	assert.Equal(t, "hello", txt.Data)
	assert.Same(t, doc, txt.OwnerDocument)

	frag := doc.CreateDocumentFragment()
	assert.Equal(t, DocumentFragmentNode, frag.NodeType)
	assert.Same(t, doc, frag.OwnerDocument)
	assert.False(t, frag.HasChildNodes())
}

func TestInsertSetsOwnerDocument(t *testing.T) {
	doc := NewDocument()
	el := NewElement("div")
	mustAppend(t, doc.Body, el)
	assert.Same(t, doc, el.OwnerDocument)
}

func TestDocumentDelegatesToBody(t *testing.T) {
	doc := NewDocument()
	doc.Body.SetAttribute("id", "body")
	section := doc.CreateElement("section")
	section.SetAttribute("id", "s")
	section.ClassName = "card"
	mustAppend(t, section, doc.CreateElement("p"))
	mustAppend(t, doc.Body, section)

	assert.Same(t, doc.Body, doc.GetElementById("body"))
	assert.Same(t, section, doc.GetElementById("s"))
	assertNames(t, []string{"SECTION", "P"}, doc.GetElementsByTagName("*"))
	assert.Same(t, section, doc.QuerySelector(".card"))
	assert.Nil(t, doc.QuerySelector("body"))
	assertNames(t, []string{"P"}, doc.QuerySelectorAll("p"))
	assert.Equal(t, `<BODY id="body"><SECTION id="s" class="card"><P></P></SECTION></BODY>`, doc.String())
}

func TestDocumentKeepsBody(t *testing.T) {
	doc := NewDocument()
	body := doc.Body
	other := NewElement("div")

	tests := []struct {
		name string
		op   func() error
	}{
		{"append to document", func() error {
			_, err := doc.AppendChild(NewElement("x"))
			return err
		}},
		{"insert before body", func() error {
			_, err := doc.InsertBefore(NewElement("x"), body)
			return err
		}},
		{"append fragment to document", func() error {
			frag := NewDocumentFragment()
			mustAppend(t, frag, NewElement("x"))
			_, err := doc.AppendChild(frag)
			return err
		}},
		{"remove body", func() error {
			_, err := doc.RemoveChild(body)
			return err
		}},
		{"replace body", func() error {
			_, err := doc.ReplaceChild(NewElement("x"), body)
			return err
		}},
		{"move body elsewhere", func() error {
			_, err := other.AppendChild(body)
			return err
		}},
		{"replace with body", func() error {
			x := NewElement("x")
			mustAppend(t, other, x)
			_, err := other.ReplaceChild(body, x)
			return err
		}},
	}
	for _, tt := range tests {
		err := tt.op()
		require.Error(t, err, tt.name)
		assert.True(t, errors.Is(err, ErrHierarchyRequest), "%s: %v", tt.name, err)
		assert.Same(t, body, doc.Body, tt.name)
		assert.Same(t, doc, body.ParentNode, tt.name)
		assert.Len(t, doc.ChildNodes, 1, tt.name)
	}
	checkTree(t, doc)

	doc.SetTextContent("x")
	assert.Same(t, doc, body.ParentNode)
	assert.Equal(t, "<BODY></BODY>", doc.String())

	p := doc.CreateElement("p")
	p.SetAttribute("id", "p")
	mustAppend(t, doc.Body, p)
	assert.Same(t, p, doc.GetElementById("p"))
	assert.Equal(t, `<BODY><P id="p"></P></BODY>`, doc.String())
	assert.Equal(t, "", doc.TextContent())

	body.SetTextContent("x")
	assert.Equal(t, "<BODY>x</BODY>", doc.String())
}
