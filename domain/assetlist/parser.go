package assetlist

import (
	"fmt"
	"strconv"
	"strings"
)

// SyntaxError reports input that does not match the selection grammar. It
// carries the byte offset of the failure and the token that was expected
// there. It is distinct from RangeDirectionError, which reports input that
// parsed but fails validation.
type SyntaxError struct {
	offset   int
	expected string
	found    string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: expected %s, found %s", e.offset, e.expected, e.found)
}

// Offset returns the byte offset in the input where parsing failed.
func (e *SyntaxError) Offset() int { return e.offset }

// Expected describes the token the parser was looking for.
func (e *SyntaxError) Expected() string { return e.expected }

// Found describes what the parser saw instead.
func (e *SyntaxError) Found() string { return e.found }

// Parse parses a selection string into its entries. The grammar anchors to
// both ends of the input:
//
//	input := item ("," item)*
//	item  := id "--" id | id
//	id    := digit{3} "-" digit{3}
//
// ASCII spaces are skipped between tokens but never inside an identifier.
// Parsing is a pure function of the input; it accepts ranges that run
// backwards, which List.Validate rejects afterwards.
func Parse(input string) (List, error) {
	p := &parser{input: input}

	var list List
	entry, err := p.parseEntry()
	if err != nil {
		return nil, err
	}
	list = append(list, entry)

	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return list, nil
		}
		if p.input[p.pos] != ',' {
			return nil, p.errorAt(p.pos, `"," or end of input`)
		}
		p.pos++

		entry, err := p.parseEntry()
		if err != nil {
			return nil, err
		}
		list = append(list, entry)
	}
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseEntry() (Entry, error) {
	from, err := p.parseID()
	if err != nil {
		return Entry{}, err
	}

	p.skipSpaces()
	if !strings.HasPrefix(p.input[p.pos:], "--") {
		return Single(from), nil
	}
	p.pos += 2

	to, err := p.parseID()
	if err != nil {
		return Entry{}, err
	}
	return Range(from, to), nil
}

func (p *parser) parseID() (AssetID, error) {
	p.skipSpaces()

	major, err := p.parseComponent()
	if err != nil {
		return AssetID{}, err
	}
	if p.pos >= len(p.input) || p.input[p.pos] != '-' {
		return AssetID{}, p.errorAt(p.pos, `"-"`)
	}
	p.pos++
	minor, err := p.parseComponent()
	if err != nil {
		return AssetID{}, err
	}

	// Three digits cap each component at 999, inside AssetID's bounds.
	id, err := NewAssetID(major, minor)
	if err != nil {
		return AssetID{}, err
	}
	return id, nil
}

// parseComponent consumes a run of ASCII digits and requires it to be
// exactly three long. No space skipping: components are atomic.
func (p *parser) parseComponent() (int, error) {
	start := p.pos
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}
	if p.pos-start != 3 {
		return 0, p.errorAt(start, "exactly 3 digits")
	}
	v, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return 0, p.errorAt(start, "exactly 3 digits")
	}
	return v, nil
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) errorAt(pos int, expected string) *SyntaxError {
	found := "end of input"
	if pos < len(p.input) {
		found = strconv.Quote(string(p.input[pos]))
	}
	return &SyntaxError{offset: pos, expected: expected, found: found}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
