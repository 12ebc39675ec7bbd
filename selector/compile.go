package selector

import "strings"

// Compile turns a selector string into a Selector. It never fails: text that
// does not form a predicate token is left in the tag filter, so a malformed
// selector compiles to one that matches nothing instead of an error.
func Compile(sel string) *Selector {
	var c compiler
	c.parse(sel)

	tag := strings.ToUpper(c.tag.String())
	if tag == "" {
		tag = Any
	}
	return &Selector{
		Tag:    tag,
		Rules:  c.rules,
		source: sel,
	}
}

type compiler struct {
	tag   strings.Builder
	rules []Rule
}

func (c *compiler) parse(s string) {
	for i := 0; i < len(s); {
		if n := c.parseToken(s[i:]); n > 0 {
			i += n
			continue
		}
		c.tag.WriteByte(s[i])
		i++
	}
}

// parseToken tries to read one predicate token at the start of s and returns
// how many bytes it consumed, or 0 if s does not start with a token.
func (c *compiler) parseToken(s string) int {
	if len(s) < 2 {
		return 0
	}
	marker := s[0]
	switch marker {
	case '.', '#', ':', '[':
	default:
		return 0
	}

	name := scanName(s[1:])
	if name == 0 {
		return 0
	}
	key := s[1 : 1+name]
	n := 1 + name

	switch marker {
	case '.':
		c.rules = append(c.rules, Rule{Kind: ClassRule, Key: key})
		return n
	case '#':
		c.rules = append(c.rules, Rule{Kind: IDRule, Key: key})
		return n
	case ':':
		c.rules = append(c.rules, Rule{Kind: AttributeRule, Key: key})
		return n
	}

	rest := s[n:]
	if strings.HasPrefix(rest, "]") {
		c.rules = append(c.rules, Rule{Kind: AttributeRule, Key: key})
		return n + 1
	}
	if strings.HasPrefix(rest, "=") {
		if value, m, ok := scanValue(rest[1:]); ok {
			c.rules = append(c.rules, Rule{Kind: AttributeRule, Key: key, Value: value, HasValue: true})
			return n + 1 + m
		}
	}

	// "[name" without a closing bracket still tests presence.
	c.rules = append(c.rules, Rule{Kind: AttributeRule, Key: key})
	return n
}

// scanValue reads "value]" or a quoted "'value']" and returns the value and
// the number of bytes consumed including the closing bracket.
func scanValue(s string) (string, int, bool) {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		end := strings.IndexByte(s[1:], s[0])
		if end < 0 || !strings.HasPrefix(s[end+2:], "]") {
			return "", 0, false
		}
		return s[1 : end+1], end + 3, true
	}
	n := scanName(s)
	if n == 0 || !strings.HasPrefix(s[n:], "]") {
		return "", 0, false
	}
	return s[:n], n + 1, true
}

func scanName(s string) int {
	i := 0
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	return i
}

func isNameByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-', b == '_':
		return true
	}
	return false
}
