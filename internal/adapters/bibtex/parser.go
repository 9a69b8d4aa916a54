// Package bibtex counts the entries of BibTeX citation databases.
package bibtex

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"go.trai.ch/zerr"
)

var (
	errUnterminated = zerr.New("unterminated entry")
	errUnbalanced   = zerr.New("unbalanced closing brace")
)

// Parser counts top-level entries the way BibTeX reads a database: text
// outside an @type{...} or @type(...) block is a comment, and the bodies of
// @comment, @string and @preamble blocks are not entries. A Parser holds no
// state between calls.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// CountEntries reads r and returns the number of entries.
// An entry whose body never closes is an error.
func (p *Parser) CountEntries(r io.Reader) (int, error) {
	s := &scanner{r: bufio.NewReader(r), line: 1}
	count := 0

	for {
		c, err := s.next()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return 0, err
		}
		if c != '@' {
			continue
		}

		kind, open, ok, err := s.header()
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}

		if err := s.skipBody(open); err != nil {
			return 0, zerr.With(err, "type", kind)
		}
		if !isMeta(kind) {
			count++
		}
	}
}

func isMeta(kind string) bool {
	return strings.EqualFold(kind, "comment") ||
		strings.EqualFold(kind, "string") ||
		strings.EqualFold(kind, "preamble")
}

type scanner struct {
	r    *bufio.Reader
	line int
	last byte
}

func (s *scanner) next() (byte, error) {
	c, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if c == '\n' {
		s.line++
	}
	s.last = c
	return c, nil
}

func (s *scanner) back() {
	if err := s.r.UnreadByte(); err == nil && s.last == '\n' {
		s.line--
	}
}

func (s *scanner) skipSpace() error {
	for {
		c, err := s.next()
		if err != nil {
			return err
		}
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			s.back()
			return nil
		}
	}
}

// header reads the entry type and opening delimiter following an '@'.
// ok is false when the '@' does not start a block, as in an e-mail address
// written between entries.
func (s *scanner) header() (kind string, open byte, ok bool, err error) {
	if err := s.skipSpace(); err != nil {
		return "", 0, false, eofIsNotBlock(err)
	}

	var b strings.Builder
	for {
		c, err := s.next()
		if err != nil {
			return "", 0, false, eofIsNotBlock(err)
		}
		if !isIdent(c) {
			s.back()
			break
		}
		b.WriteByte(c)
	}
	if b.Len() == 0 {
		return "", 0, false, nil
	}

	if err := s.skipSpace(); err != nil {
		return "", 0, false, eofIsNotBlock(err)
	}
	c, err := s.next()
	if err != nil {
		return "", 0, false, eofIsNotBlock(err)
	}
	if c != '{' && c != '(' {
		s.back()
		return "", 0, false, nil
	}
	return b.String(), c, true, nil
}

// skipBody consumes a block up to its closing delimiter. Braces nest; in a
// parenthesised block a ')' inside a quoted value does not close it.
func (s *scanner) skipBody(open byte) error {
	start := s.line
	depth := 0
	quoted := false

	for {
		c, err := s.next()
		if errors.Is(err, io.EOF) {
			return zerr.With(errUnterminated, "line", start)
		}
		if err != nil {
			return err
		}

		switch c {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				if open == '{' {
					return nil
				}
				return zerr.With(errUnbalanced, "line", s.line)
			}
			depth--
		case '"':
			if open == '(' && depth == 0 {
				quoted = !quoted
			}
		case ')':
			if open == '(' && depth == 0 && !quoted {
				return nil
			}
		}
	}
}

func isIdent(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '-' || c == ':' || c == '.'
}

func eofIsNotBlock(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
