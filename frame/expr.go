// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/podata/po/array"
)

// ParseExpr parses an index expression in subscript notation,
// as written between the brackets of tbl[...], and returns the
// corresponding [Index] via [ParseIndex]. Supported forms are:
//
//	'a'                  a single column (bare names like a also work)
//	['a', 'b']           a list of columns
//	1, 'a':'c'           a (row, column) pair
//	:, -2:               slices, with optional step as in ::-1
//	[0, 2], [0, 'b']     lists of rows and columns
//	[True, False], 'a'   a boolean row mask
//
// Errors in the expression itself return [ErrSyntax].
func ParseExpr(s string) (Index, error) {
	v, err := parseExprValue(s)
	if err != nil {
		return nil, err
	}
	return ParseIndex(v)
}

// exprParser is a recursive descent parser for index expressions.
type exprParser struct {
	src string
	sc  scanner.Scanner
	tok rune
	err error
}

func parseExprValue(s string) (any, error) {
	p := &exprParser{src: s}
	p.sc.Init(strings.NewReader(s))
	p.sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings
	p.sc.Error = func(sc *scanner.Scanner, msg string) { p.fail(msg) }
	p.next()
	vals, comma := p.items(scanner.EOF)
	if p.err == nil && len(vals) == 0 {
		p.fail("empty index expression")
	}
	if p.err != nil {
		return nil, p.err
	}
	if len(vals) == 1 && !comma {
		return vals[0], nil
	}
	return Tuple(vals), nil
}

// fail records the first error, at the current token position.
func (p *exprParser) fail(msg string) {
	if p.err != nil {
		return
	}
	p.err = fmt.Errorf("frame.ParseExpr: %s at column %d of %q: %w", msg, p.sc.Position.Column, p.src, ErrSyntax)
}

func (p *exprParser) next() {
	if p.err != nil {
		p.tok = scanner.EOF
		return
	}
	p.tok = p.sc.Scan()
}

// atBoundEnd returns whether the current token ends a slice bound.
func (p *exprParser) atBoundEnd() bool {
	switch p.tok {
	case ',', ']', ':', scanner.EOF:
		return true
	}
	return false
}

// items parses a comma separated list of items up to the given end token,
// returning whether any comma was seen.
func (p *exprParser) items(end rune) ([]any, bool) {
	var vals []any
	comma := false
	for p.err == nil && p.tok != end {
		vals = append(vals, p.item())
		if p.tok == ',' {
			comma = true
			p.next()
			continue
		}
		if p.tok != end {
			p.fail(fmt.Sprintf("unexpected %s", scanner.TokenString(p.tok)))
		}
	}
	return vals, comma
}

// item parses an atom or a slice.
func (p *exprParser) item() any {
	var start any
	if p.tok != ':' {
		start = p.atom()
		if p.tok != ':' {
			return start
		}
	}
	p.next()
	var stop any
	if !p.atBoundEnd() {
		stop = p.atom()
	}
	step := 0
	if p.tok == ':' {
		p.next()
		if !p.atBoundEnd() {
			n, ok := p.atom().(int)
			if !ok {
				p.fail("slice step must be an integer")
			}
			step = n
		}
	}
	return p.slice(start, stop, step)
}

// slice returns an [array.Slice] for integer bounds, or a [ColSlice]
// if either bound is a column name.
func (p *exprParser) slice(start, stop any, step int) any {
	_, ls := start.(string)
	_, le := stop.(string)
	if ls || le {
		cs := ColSlice{Step: step}
		cs.Start = p.key(start)
		cs.Stop = p.key(stop)
		return cs
	}
	sl := array.Slice{Step: step}
	if start != nil {
		sl.Start = array.At(p.bound(start))
	}
	if stop != nil {
		sl.Stop = array.At(p.bound(stop))
	}
	return sl
}

func (p *exprParser) bound(v any) int {
	n, ok := v.(int)
	if !ok {
		p.fail(fmt.Sprintf("slice bound %v must be an integer or a column name", v))
	}
	return n
}

func (p *exprParser) key(v any) Key {
	switch x := v.(type) {
	case nil:
		return Key{}
	case string:
		return Label(x)
	}
	return Pos(p.bound(v))
}

func (p *exprParser) atom() any {
	text := p.sc.TokenText()
	switch p.tok {
	case scanner.Int:
		p.next()
		n, err := strconv.Atoi(text)
		if err != nil {
			p.fail(fmt.Sprintf("invalid integer %s", text))
		}
		return n
	case scanner.Float:
		p.next()
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.fail(fmt.Sprintf("invalid number %s", text))
		}
		return f
	case '-':
		p.next()
		switch v := p.atom().(type) {
		case int:
			return -v
		case float64:
			return -v
		}
		p.fail("minus sign must be followed by a number")
		return nil
	case scanner.String:
		p.next()
		s, err := strconv.Unquote(text)
		if err != nil {
			p.fail(fmt.Sprintf("invalid string %s", text))
		}
		return s
	case '\'':
		s := p.quoted()
		p.next()
		return s
	case scanner.Ident:
		p.next()
		switch text {
		case "True", "true":
			return true
		case "False", "false":
			return false
		}
		return text
	case '[':
		p.next()
		vals, _ := p.items(']')
		p.next()
		if vals == nil {
			vals = []any{}
		}
		return vals
	}
	p.fail(fmt.Sprintf("unexpected %s", scanner.TokenString(p.tok)))
	return nil
}

// quoted reads the rest of a single quoted string, after the opening quote.
func (p *exprParser) quoted() string {
	var b strings.Builder
	for {
		ch := p.sc.Next()
		switch ch {
		case scanner.EOF:
			p.fail("unterminated string")
			return b.String()
		case '\'':
			return b.String()
		case '\\':
			if nc := p.sc.Next(); nc != scanner.EOF {
				ch = nc
			}
		}
		b.WriteRune(ch)
	}
}
