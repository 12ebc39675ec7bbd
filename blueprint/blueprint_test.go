package blueprint

import (
	"strings"
	"testing"

	"github.com/heathj/minidom/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `
body:
  attrs: {id: main}
  children:
    - tag: div
      class: card wide
      attrs:
        title: hello
        lang: en
      style:
        top: 0
        color: red
      data:
        role: panel
        b: ~
      children:
        - text: "hi "
        - tag: img
          attrs: {src: x.png}
    - fragment:
        - tag: br
        - text: tail
    - text: ""
`

func build(t *testing.T, src string) (*dom.Node, error) {
	t.Helper()
	bp, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	return bp.Build()
}

func TestBuild(t *testing.T) {
	doc, err := build(t, page)
	require.NoError(t, err)

	assert.Equal(t, dom.DocumentNode, doc.NodeType)
	assert.Equal(t,
		`<BODY id="main"><DIV title="hello" lang="en" style="top:0;color:red;" class="card wide" data-role="panel" data-b="">hi <IMG src="x.png"/></DIV><BR/>tail</BODY>`,
		doc.String())
	assert.Equal(t, "hi tail", doc.TextContent())

	div := doc.QuerySelector("div.card")
	require.NotNil(t, div)
	assert.Same(t, doc, div.OwnerDocument)
	assert.Equal(t, []string{"role", "b"}, div.Dataset.Keys())
	assert.Len(t, doc.Body.ChildNodes, 4, "fragment children are spliced in")
}

func TestBuildLogsThroughDOMLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	dom.SetLogger(logger)
	defer dom.SetLogger(nil)

	_, err := build(t, page)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "built blueprint", entry.Message)
	assert.Equal(t, 6, entry.Data["nodes"])
}

func TestBuildEmptyBody(t *testing.T) {
	doc, err := build(t, "body: {}\n")
	require.NoError(t, err)
	assert.Equal(t, "<BODY></BODY>", doc.String())

	doc, err = build(t, "body:\n  tag: BODY\n  class: dark\n")
	require.NoError(t, err)
	assert.Equal(t, `<BODY class="dark"></BODY>`, doc.String())
}

func TestBuildInvalidNodes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		path string
	}{
		{"no kind", "body:\n  children:\n    - class: x\n", "body/children[0]"},
		{"two kinds", "body:\n  children:\n    - tag: p\n    - {tag: p, text: x}\n", "body/children[1]"},
		{"text with children", "body:\n  children:\n    - text: x\n      children: [{tag: p}]\n", "body/children[0]"},
		{"nested", "body:\n  children:\n    - tag: ul\n      children:\n        - tag: li\n        - {}\n", "body/children[0]/children[1]"},
		{"inside fragment", "body:\n  children:\n    - fragment:\n        - {text: a, class: b}\n", "body/children[0]/fragment[0]"},
		{"body text", "body:\n  text: x\n", "body"},
		{"body tag", "body:\n  tag: div\n", "body"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := build(t, tt.src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidNode), err.Error())
			assert.True(t, strings.HasPrefix(err.Error(), tt.path+":"), err.Error())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"unknown key", "body:\n  colour: red\n"},
		{"nested map value", "body:\n  attrs:\n    a: {b: c}\n"},
		{"list as map", "body:\n  style: [a, b]\n"},
		{"bad yaml", "body: [\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "decode blueprint")
		})
	}
}
