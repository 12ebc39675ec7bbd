package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type serializeTestcase struct {
	name     string
	build    func(t *testing.T) *Node
	expected string
}

var serializeTests = []serializeTestcase{
	{"text", func(t *testing.T) *Node {
		return NewTextNode(`a < "b"`)
	}, `a < "b"`},
	{"empty element", func(t *testing.T) *Node {
		return NewElement("div")
	}, "<DIV></DIV>"},
	{"void element", func(t *testing.T) *Node {
		img := NewElement("img")
		img.SetAttribute("src", "x.png")
		return img
	}, `<IMG src="x.png"/>`},
	{"void element ignores children", func(t *testing.T) *Node {
		img := NewElement("img")
		img.SetAttribute("src", "x.png")
		mustAppend(t, img, NewTextNode("ignored"), NewElement("b"))
		return img
	}, `<IMG src="x.png"/>`},
	{"nested", func(t *testing.T) *Node {
		p := NewElement("p")
		b := NewElement("b")
		mustAppend(t, b, NewTextNode("bold"))
		mustAppend(t, p, NewTextNode("a "), b, NewElement("br"), NewTextNode("z"))
		return p
	}, "<P>a <B>bold</B><BR/>z</P>"},
	{"attribute order", func(t *testing.T) *Node {
		div := NewElement("div")
		div.SetAttribute("data-b", "2")
		div.ClassName = "x y"
		div.SetAttribute("id", "main")
		div.Style.SetProperty("color", "red")
		div.Style.SetProperty("top", "0")
		div.SetAttribute("data-a", "1")
		div.SetAttribute("title", "t")
		return div
	}, `<DIV id="main" title="t" style="color:red;top:0;" class="x y" data-b="2" data-a="1"></DIV>`},
	{"values are not escaped", func(t *testing.T) *Node {
		a := NewElement("a")
		a.SetAttribute("title", `say "hi" & <bye>`)
		return a
	}, `<A title="say "hi" & <bye>"></A>`},
	{"fragment", func(t *testing.T) *Node {
		f := NewDocumentFragment()
		mustAppend(t, f, NewElement("i"), NewTextNode("t"))
		return f
	}, "<I></I>t"},
	{"document", func(t *testing.T) *Node {
		doc := NewDocument()
		mustAppend(t, doc.Body, doc.CreateTextNode("hi"))
		return doc
	}, "<BODY>hi</BODY>"},
}

func TestSerialize(t *testing.T) {
	for _, tt := range serializeTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.build(t).String())
		})
	}
}

func TestSerializeAfterAttributeChanges(t *testing.T) {
	input := NewElement("input")
	input.SetAttribute("type", "text")
	input.SetAttribute("name", "q")
	input.SetAttribute("type", "search")
	input.RemoveAttribute("name")
	input.SetAttribute("name", "query")
	assert.Equal(t, `<INPUT type="search" name="query"/>`, input.String())
}
