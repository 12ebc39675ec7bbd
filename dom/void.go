package dom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// https://html.spec.whatwg.org/#void-elements, plus the obsolete keygen and
// menuitem.
var voidElements = map[atom.Atom]bool{
	atom.Area:     true,
	atom.Base:     true,
	atom.Br:       true,
	atom.Col:      true,
	atom.Embed:    true,
	atom.Hr:       true,
	atom.Img:      true,
	atom.Input:    true,
	atom.Keygen:   true,
	atom.Link:     true,
	atom.Menuitem: true,
	atom.Meta:     true,
	atom.Param:    true,
	atom.Source:   true,
	atom.Track:    true,
	atom.Wbr:      true,
}

func isVoidElement(tagName string) bool {
	return voidElements[lookupAtom(tagName)]
}

// lookupAtom returns the atom of a tag name in any case, or 0 for names the
// atom table does not know.
func lookupAtom(tagName string) atom.Atom {
	return atom.Lookup([]byte(strings.ToLower(tagName)))
}
