package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/avoronkov/recur/types"
)

type Parser struct {
	scanner *bufio.Scanner
	tokens  *types.Queue[string]
	ints    types.IntMaker
	line    int
}

func NewParser(r io.Reader, ints types.IntMaker) *Parser {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)
	return &Parser{
		scanner: scanner,
		tokens:  types.NewQueue[string](),
		ints:    ints,
	}
}

func (p *Parser) SetIntMaker(ints types.IntMaker) {
	p.ints = ints
}

func (p *Parser) NextExpr() (types.Expr, error) {
	token, err := p.nextToken()
	if err != nil {
		return nil, err
	}
	return p.parseToken(token)
}

func (p *Parser) parseToken(token string) (types.Expr, error) {
	switch token {
	case "(":
		se, err := p.nextSexpr()
		if err != nil {
			return nil, err
		}
		return se, nil
	case "'(":
		l, err := p.nextQuoted()
		if err != nil {
			return nil, err
		}
		return l, nil
	case ")":
		return nil, fmt.Errorf("line %d: unexpected ')'", p.line)
	case "'T":
		return types.Bool(true), nil
	case "'F":
		return types.Bool(false), nil
	}
	if n, ok := p.ints.ParseInt(token); ok {
		return n, nil
	}
	return types.Ident(token), nil
}

func (p *Parser) nextSexpr() (*Sexpr, error) {
	se := &Sexpr{Line: p.line}
	for {
		token, err := p.nextToken()
		if err == io.EOF {
			return nil, fmt.Errorf("line %d: unterminated s-expression", se.Line)
		}
		if err != nil {
			return nil, err
		}
		if token == ")" {
			return se, nil
		}
		item, err := p.parseToken(token)
		if err != nil {
			return nil, err
		}
		se.List = append(se.List, item)
	}
}

// '(4 3 2 1) -> list of integers
func (p *Parser) nextQuoted() (types.List, error) {
	line := p.line
	var values []types.Int
	for {
		token, err := p.nextToken()
		if err == io.EOF {
			return nil, fmt.Errorf("line %d: unterminated list", line)
		}
		if err != nil {
			return nil, err
		}
		if token == ")" {
			return types.FromSlice(values...), nil
		}
		n, ok := p.ints.ParseInt(token)
		if !ok {
			return nil, fmt.Errorf("line %d: list literal expects integers, found %q", p.line, token)
		}
		values = append(values, n)
	}
}

func (p *Parser) nextToken() (string, error) {
	for {
		token, err := p.tokens.Pop()
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, types.ErrEmptyQueue) {
			return "", err
		}
		if err := p.prepareTokens(); err != nil {
			return "", err
		}
	}
}

func (p *Parser) prepareTokens() error {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return err
		}
		return io.EOF
	}
	p.line++
	line := strings.TrimSpace(p.scanner.Text())
	if line == "" || line[0] == '#' {
		return p.prepareTokens()
	}
	for _, field := range strings.Fields(line) {
		for _, token := range p.splitField(field) {
			p.tokens.Push(token)
		}
	}
	return nil
}

// '(foo' -> '(', 'foo'
// 'foo))' -> 'foo', ')', ')'
// `'(x` -> `'(`, `x`
func (p *Parser) splitField(field string) (tokens []string) {
	for {
		if strings.HasPrefix(field, "(") {
			tokens = append(tokens, "(")
			field = field[1:]
		} else if strings.HasPrefix(field, "'(") {
			tokens = append(tokens, "'(")
			field = field[2:]
		} else {
			break
		}
	}
	closing := 0
	for strings.HasSuffix(field, ")") {
		closing++
		field = field[:len(field)-1]
	}
	if len(field) > 0 {
		tokens = append(tokens, field)
	}
	for ; closing > 0; closing-- {
		tokens = append(tokens, ")")
	}
	return
}
