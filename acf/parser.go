package acf

import (
	"fmt"
	"strings"
)

// Parse converts a fragment sequence (from Tokenize) into the document's
// root Block.
//
// The grammar is: a quoted name, followed by either a quoted value or a
// braced sub-section, repeated.  A quoted value that contained whitespace
// arrives split across several fragments and is re-joined here, with a
// single space between pieces regardless of the original spacing.
//
// Brace characters are only recognised in fragments of their own; a brace
// inside a quoted value is not escaped and will confuse the depth scan.
// Steam never writes such values.
//
func Parse(fragments []string) (Block, error) {
	p := &parser{frags: fragments}
	return parseBlock(p, len(fragments))
}

// parser carries the cursor that nested parseBlock calls share, so that a
// nested call's consumption is visible to its caller.
type parser struct {
	frags []string
	pos   int
}

// parseBlock consumes fragments up to (not including) end, alternating
// between names and values, and returns them as a Block.
//
func parseBlock(p *parser, end int) (Block, error) {
	block := make(Block)
	haveName := false
	currentName := ""

	for p.pos < end {
		frag := p.frags[p.pos]
		if !haveName {
			if !strings.Contains(frag, `"`) {
				return nil, parseError(p.pos, `a quoted name`, frag)
			}
			currentName = unquote(frag)
			haveName = true
			p.pos++
			continue
		}

		switch {
		case strings.Contains(frag, `"`):
			if strings.Count(frag, `"`) == 1 {
				// This value contained whitespace and was
				// split across fragments.
				value, err := joinSplitValue(p, end)
				if err != nil {
					return nil, err
				}
				block[currentName] = value
			} else {
				block[currentName] = unquote(frag)
				p.pos++
			}
		case strings.Contains(frag, "{"):
			sub, err := parseNested(p, end)
			if err != nil {
				return nil, err
			}
			block[currentName] = sub
		default:
			return nil, parseError(p.pos, `a value or "{"`, frag)
		}
		haveName = false
	}

	if haveName {
		return nil, parseError(p.pos, `a value for name `+fmt.Sprintf("%q", currentName), "")
	}
	return block, nil
}

// joinSplitValue re-assembles a quoted value that the whitespace split
// broke into several fragments.  p.pos is at the fragment bearing the
// opening quote; on success p.pos is just past the fragment bearing the
// closing quote.
//
func joinSplitValue(p *parser, end int) (string, error) {
	var b strings.Builder
	b.WriteString(strings.TrimPrefix(p.frags[p.pos], `"`))
	p.pos++
	for {
		if p.pos >= end {
			return "", parseError(p.pos, `a closing '"'`, "")
		}
		frag := p.frags[p.pos]
		p.pos++
		if strings.Contains(frag, `"`) {
			b.WriteByte(' ')
			b.WriteString(strings.TrimSuffix(frag, `"`))
			return b.String(), nil
		}
		b.WriteByte(' ')
		b.WriteString(frag)
	}
}

// parseNested parses a braced sub-section.  p.pos is at the opening-brace
// fragment; on success p.pos is just past the matching closing brace.
//
func parseNested(p *parser, end int) (Block, error) {
	p.pos++
	start := p.pos
	depth := 1
	for depth > 0 {
		if p.pos >= end {
			return nil, parseError(p.pos, `"}"`, "")
		}
		frag := p.frags[p.pos]
		if strings.Contains(frag, "{") {
			depth++
		} else if strings.Contains(frag, "}") {
			depth--
		}
		p.pos++
	}
	stop := p.pos - 1 // the closing brace itself is not part of the section

	if stop == start {
		return Block{}, nil
	}
	sub := &parser{frags: p.frags, pos: start}
	return parseBlock(sub, stop)
}

// unquote strips one leading and one trailing quote character, if present.
func unquote(frag string) string {
	return strings.TrimSuffix(strings.TrimPrefix(frag, `"`), `"`)
}

/*================================== Errors ==================================*/

// A ParseError describes a malformed ACF/VDF document: the grammar was
// violated at a particular fragment.
//
type ParseError struct {
	Pos      int    // Index of the offending fragment (zero-origin)
	Expected string // What the grammar called for at that point
	Found    string // The offending fragment; empty at end of input
}

func (e *ParseError) Error() string {
	found := `end of input`
	if e.Found != "" {
		found = fmt.Sprintf("%q", e.Found)
	}
	return fmt.Sprintf("fragment %d: expected %s, found %s",
		e.Pos, e.Expected, found)
}

func parseError(pos int, expected, found string) error {
	return &ParseError{
		Pos:      pos,
		Expected: expected,
		Found:    found}
}
