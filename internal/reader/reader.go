// Released under an MIT license. See LICENSE.

// Package reader turns a line of text into a primitive name and its
// arguments.
//
// A line is a sequence of words separated by whitespace. The first word is
// the primitive's name. Each remaining word is a value: a double-quoted
// string, nil, true, false, a number, or otherwise a symbol.
//
// The scanner uses the state function approach described in Rob Pike's
// talk "Lexical Scanning in Go".
package reader

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/prim/internal/common/interface/cell"
	"github.com/michaelmacinnis/prim/internal/common/type/boolean"
	"github.com/michaelmacinnis/prim/internal/common/type/num"
	"github.com/michaelmacinnis/prim/internal/common/type/null"
	"github.com/michaelmacinnis/prim/internal/common/type/str"
	"github.com/michaelmacinnis/prim/internal/common/type/sym"
)

// Line reads the name and arguments from text.
func Line(text string) (string, []cell.I, error) {
	words, err := scan(text)
	if err != nil {
		return "", nil, err
	}

	if len(words) == 0 {
		return "", nil, nil
	}

	if words[0].quoted {
		return "", nil, fmt.Errorf("char %d: expected a name", words[0].char)
	}

	args := make([]cell.I, 0, len(words)-1)

	for _, w := range words[1:] {
		v, err := w.value()
		if err != nil {
			return "", nil, err
		}

		args = append(args, v)
	}

	return words[0].text, args, nil
}

// Values converts each string in ss to a value, as if it were a word.
// A string that is not a valid quoted string is read as a bare word.
func Values(ss []string) []cell.I {
	vs := make([]cell.I, len(ss))

	for i, s := range ss {
		if u, err := strconv.Unquote(s); err == nil && strings.HasPrefix(s, `"`) {
			vs[i] = str.New(u)
		} else {
			vs[i] = atom(s)
		}
	}

	return vs
}

type word struct {
	char   int
	quoted bool
	text   string
}

func (w word) value() (cell.I, error) {
	if !w.quoted {
		return atom(w.text), nil
	}

	s, err := strconv.Unquote(w.text)
	if err != nil {
		return nil, fmt.Errorf("char %d: malformed string %s", w.char, w.text)
	}

	return str.New(s), nil
}

func atom(s string) cell.I {
	switch s {
	case "nil":
		return nul.Nil
	case "true":
		return boolean.True
	case "false":
		return boolean.False
	}

	if n, ok := num.New(s); ok {
		return n
	}

	return sym.New(s)
}

type lexer struct {
	first int
	index int
	text  string
	words []word
}

type action func(*lexer) (action, error)

const eof = -1

func scan(text string) ([]word, error) {
	l := &lexer{text: text}

	var (
		err   error
		state action = skipWhitespace
	)

	for state != nil {
		state, err = state(l)
		if err != nil {
			return nil, err
		}
	}

	return l.words, nil
}

func (l *lexer) emit(quoted bool) {
	l.words = append(l.words, word{
		char:   utf8.RuneCountInString(l.text[:l.first]) + 1,
		quoted: quoted,
		text:   l.text[l.first:l.index],
	})
	l.first = l.index
}

func (l *lexer) next() rune {
	r, w := l.peek()
	l.index += w

	return r
}

func (l *lexer) peek() (rune, int) {
	if l.index >= len(l.text) {
		return eof, 0
	}

	return utf8.DecodeRuneInString(l.text[l.index:])
}

func skipWhitespace(l *lexer) (action, error) {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil, nil
		case r == '"':
			l.first = l.index
			l.index += w

			return scanQuoted, nil
		case !unicode.IsSpace(r):
			l.first = l.index

			return scanWord, nil
		}

		l.index += w
	}
}

func scanQuoted(l *lexer) (action, error) {
	for {
		switch l.next() {
		case eof:
			return nil, fmt.Errorf("char %d: unterminated string", l.first+1)
		case '\\':
			if l.next() == eof {
				return nil, fmt.Errorf("char %d: unterminated string", l.first+1)
			}
		case '"':
			l.emit(true)

			return skipWhitespace, nil
		}
	}
}

func scanWord(l *lexer) (action, error) {
	for {
		r, w := l.peek()
		if r == eof || r == '"' || unicode.IsSpace(r) {
			l.emit(false)

			return skipWhitespace, nil
		}

		l.index += w
	}
}
