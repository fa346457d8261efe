// Package parser reads the CLI's compact expression syntax and builds
// expression chains. The placeholder is written `_`:
//
//	_ * 2 + 1
//	_.name.upper()
//	_["items"][0] >> _ * 10
//
// `>>` composes pipe segments. Operands are literals (ints, floats,
// strings, true/false); an expression may appear on both sides of an
// operator, which builds a multi-reference node.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/underscore/internal/expr"
	"github.com/funvibe/underscore/internal/object"
)

type tokenType int

const (
	tEOF tokenType = iota
	tIllegal
	tUnderscore
	tInt
	tFloat
	tString
	tIdent
	tPlus
	tMinus
	tStar
	tSlash
	tPercent
	tPow
	tLt
	tGt
	tLe
	tGe
	tEq
	tNe
	tAmp
	tBar
	tCaret
	tShl
	tPipe
	tTilde
	tDot
	tComma
	tLParen
	tRParen
	tLBracket
	tRBracket
)

type token struct {
	typ     tokenType
	literal string
	pos     int
}

type lexer struct {
	input    string
	position int
	ch       byte
}

func newLexer(input string) *lexer {
	l := &lexer{input: input}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.position >= len(l.input) {
		l.ch = 0
		l.position = len(l.input) + 1
		return
	}
	l.ch = l.input[l.position]
	l.position++
}

func (l *lexer) peekChar() byte {
	if l.position >= len(l.input) {
		return 0
	}
	return l.input[l.position]
}

func (l *lexer) nextToken() token {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}

	pos := l.position - 1
	tok := func(t tokenType, lit string) token {
		return token{typ: t, literal: lit, pos: pos}
	}

	switch l.ch {
	case 0:
		return tok(tEOF, "")
	case '+':
		l.readChar()
		return tok(tPlus, "+")
	case '-':
		l.readChar()
		return tok(tMinus, "-")
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			return tok(tPow, "**")
		}
		l.readChar()
		return tok(tStar, "*")
	case '/':
		l.readChar()
		return tok(tSlash, "/")
	case '%':
		l.readChar()
		return tok(tPercent, "%")
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			l.readChar()
			return tok(tLe, "<=")
		case '<':
			l.readChar()
			l.readChar()
			return tok(tShl, "<<")
		}
		l.readChar()
		return tok(tLt, "<")
	case '>':
		switch l.peekChar() {
		case '=':
			l.readChar()
			l.readChar()
			return tok(tGe, ">=")
		case '>':
			l.readChar()
			l.readChar()
			return tok(tPipe, ">>")
		}
		l.readChar()
		return tok(tGt, ">")
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return tok(tEq, "==")
		}
		l.readChar()
		return tok(tIllegal, "=")
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return tok(tNe, "!=")
		}
		l.readChar()
		return tok(tIllegal, "!")
	case '&':
		l.readChar()
		return tok(tAmp, "&")
	case '|':
		l.readChar()
		return tok(tBar, "|")
	case '^':
		l.readChar()
		return tok(tCaret, "^")
	case '~':
		l.readChar()
		return tok(tTilde, "~")
	case '.':
		l.readChar()
		return tok(tDot, ".")
	case ',':
		l.readChar()
		return tok(tComma, ",")
	case '(':
		l.readChar()
		return tok(tLParen, "(")
	case ')':
		l.readChar()
		return tok(tRParen, ")")
	case '[':
		l.readChar()
		return tok(tLBracket, "[")
	case ']':
		l.readChar()
		return tok(tRBracket, "]")
	case '\'', '"':
		quote := l.ch
		l.readChar()
		var sb strings.Builder
		for l.ch != quote && l.ch != 0 {
			sb.WriteByte(l.ch)
			l.readChar()
		}
		if l.ch == 0 {
			return tok(tIllegal, "unterminated string")
		}
		l.readChar()
		return tok(tString, sb.String())
	}

	if l.ch == '_' && !isIdentChar(l.peekChar()) {
		l.readChar()
		return tok(tUnderscore, "_")
	}
	if isDigit(l.ch) {
		var sb strings.Builder
		isFloat := false
		for isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
			if l.ch == '.' {
				isFloat = true
			}
			sb.WriteByte(l.ch)
			l.readChar()
		}
		if isFloat {
			return tok(tFloat, sb.String())
		}
		return tok(tInt, sb.String())
	}
	if isIdentChar(l.ch) {
		var sb strings.Builder
		for isIdentChar(l.ch) || isDigit(l.ch) {
			sb.WriteByte(l.ch)
			l.readChar()
		}
		return tok(tIdent, sb.String())
	}

	illegal := string(l.ch)
	l.readChar()
	return tok(tIllegal, illegal)
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isIdentChar(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// Operator precedence, lowest first. `>>` binds loosest so pipe segments
// read naturally; `**` is right-associative.
const (
	lowest = iota
	pipePrec
	comparePrec
	bitOrPrec
	bitXorPrec
	bitAndPrec
	shiftPrec
	sumPrec
	productPrec
	powerPrec
	prefixPrec
	postfixPrec
)

var precedences = map[tokenType]int{
	tPipe:     pipePrec,
	tLt:       comparePrec,
	tGt:       comparePrec,
	tLe:       comparePrec,
	tGe:       comparePrec,
	tEq:       comparePrec,
	tNe:       comparePrec,
	tBar:      bitOrPrec,
	tCaret:    bitXorPrec,
	tAmp:      bitAndPrec,
	tShl:      shiftPrec,
	tPlus:     sumPrec,
	tMinus:    sumPrec,
	tStar:     productPrec,
	tSlash:    productPrec,
	tPercent:  productPrec,
	tPow:      powerPrec,
	tDot:      postfixPrec,
	tLBracket: postfixPrec,
}

var binaryOps = map[tokenType]expr.Op{
	tPlus: expr.OpAdd, tMinus: expr.OpSub, tStar: expr.OpMul,
	tSlash: expr.OpDiv, tPercent: expr.OpMod, tPow: expr.OpPow,
	tLt: expr.OpLt, tGt: expr.OpGt, tLe: expr.OpLe, tGe: expr.OpGe,
	tEq: expr.OpEq, tNe: expr.OpNe,
	tAmp: expr.OpAnd, tBar: expr.OpOr, tCaret: expr.OpXor, tShl: expr.OpShl,
}

// commutative marks the operators whose literal operand may appear on
// either side; non-commutative ones require the placeholder on the left.
var commutative = map[expr.Op]bool{
	expr.OpAdd: true, expr.OpMul: true,
	expr.OpAnd: true, expr.OpOr: true, expr.OpXor: true,
	expr.OpEq: true, expr.OpNe: true,
}

// operand is either a placeholder-derived expression or a literal constant.
type operand struct {
	node *expr.Node
	lit  object.Object
}

type Parser struct {
	l    *lexer
	cur  token
	peek token
}

func New(input string) *Parser {
	p := &Parser{l: newLexer(input)}
	p.cur = p.l.nextToken()
	p.peek = p.l.nextToken()
	return p
}

// Parse consumes the whole input and returns the expression chain.
func Parse(input string) (*expr.Node, error) {
	p := New(input)
	op, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if p.cur.typ != tEOF {
		return nil, fmt.Errorf("unexpected token '%s' at position %d", p.cur.literal, p.cur.pos)
	}
	if op.node == nil {
		return nil, fmt.Errorf("expression must contain the placeholder '_'")
	}
	return op.node, nil
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.nextToken()
}

func (p *Parser) parseExpression(minPrec int) (operand, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return operand{}, err
	}

	for {
		prec, ok := precedences[p.cur.typ]
		if !ok || prec <= minPrec {
			return left, nil
		}
		switch p.cur.typ {
		case tDot:
			left, err = p.parsePostfixDot(left)
		case tLBracket:
			left, err = p.parsePostfixIndex(left)
		case tPipe:
			left, err = p.parsePipe(left)
		default:
			left, err = p.parseInfix(left, prec)
		}
		if err != nil {
			return operand{}, err
		}
	}
}

func (p *Parser) parsePrefix() (operand, error) {
	switch p.cur.typ {
	case tUnderscore:
		p.advance()
		return operand{node: expr.Identity()}, nil
	case tInt:
		v, err := strconv.ParseInt(p.cur.literal, 10, 64)
		if err != nil {
			return operand{}, fmt.Errorf("bad integer literal '%s'", p.cur.literal)
		}
		p.advance()
		return operand{lit: &object.Integer{Value: v}}, nil
	case tFloat:
		v, err := strconv.ParseFloat(p.cur.literal, 64)
		if err != nil {
			return operand{}, fmt.Errorf("bad float literal '%s'", p.cur.literal)
		}
		p.advance()
		return operand{lit: &object.Float{Value: v}}, nil
	case tString:
		lit := p.cur.literal
		p.advance()
		return operand{lit: &object.String{Value: lit}}, nil
	case tIdent:
		switch p.cur.literal {
		case "true":
			p.advance()
			return operand{lit: object.TRUE}, nil
		case "false":
			p.advance()
			return operand{lit: object.FALSE}, nil
		case "abs":
			return p.parseAbs()
		}
		return operand{}, fmt.Errorf("unexpected identifier '%s' at position %d", p.cur.literal, p.cur.pos)
	case tMinus:
		p.advance()
		inner, err := p.parseExpression(prefixPrec)
		if err != nil {
			return operand{}, err
		}
		if inner.node != nil {
			return operand{node: expr.Unary(inner.node, expr.OpNeg)}, nil
		}
		neg := object.Prefix("-", inner.lit)
		if object.IsError(neg) {
			return operand{}, neg.(*object.Error)
		}
		return operand{lit: neg}, nil
	case tTilde:
		p.advance()
		inner, err := p.parseExpression(prefixPrec)
		if err != nil {
			return operand{}, err
		}
		if inner.node == nil {
			return operand{}, fmt.Errorf("~ expects a placeholder expression")
		}
		return operand{node: expr.Unary(inner.node, expr.OpInvert)}, nil
	case tLParen:
		p.advance()
		inner, err := p.parseExpression(lowest)
		if err != nil {
			return operand{}, err
		}
		if p.cur.typ != tRParen {
			return operand{}, fmt.Errorf("expected ')' at position %d", p.cur.pos)
		}
		p.advance()
		return inner, nil
	case tIllegal:
		return operand{}, fmt.Errorf("illegal token '%s' at position %d", p.cur.literal, p.cur.pos)
	default:
		return operand{}, fmt.Errorf("unexpected token '%s' at position %d", p.cur.literal, p.cur.pos)
	}
}

func (p *Parser) parseAbs() (operand, error) {
	p.advance()
	if p.cur.typ != tLParen {
		return operand{}, fmt.Errorf("abs expects '('")
	}
	p.advance()
	inner, err := p.parseExpression(lowest)
	if err != nil {
		return operand{}, err
	}
	if p.cur.typ != tRParen {
		return operand{}, fmt.Errorf("expected ')' after abs argument")
	}
	p.advance()
	if inner.node == nil {
		return operand{}, fmt.Errorf("abs expects a placeholder expression")
	}
	return operand{node: expr.Unary(inner.node, expr.OpAbs)}, nil
}

func (p *Parser) parseInfix(left operand, prec int) (operand, error) {
	op := binaryOps[p.cur.typ]
	opTok := p.cur.literal
	p.advance()

	// ** is right-associative
	minPrec := prec
	if op == expr.OpPow {
		minPrec = prec - 1
	}
	right, err := p.parseExpression(minPrec)
	if err != nil {
		return operand{}, err
	}

	switch {
	case left.node != nil && right.node != nil:
		return operand{node: expr.MultiRef(left.node, right.node, op)}, nil
	case left.node != nil:
		return operand{node: expr.Combine(left.node, right.lit, op)}, nil
	case right.node != nil:
		if !commutative[op] {
			return operand{}, fmt.Errorf("placeholder must appear on the left of '%s'", opTok)
		}
		return operand{node: expr.Combine(right.node, left.lit, op)}, nil
	default:
		folded := object.Binary(opTok, left.lit, right.lit)
		if object.IsError(folded) {
			return operand{}, folded.(*object.Error)
		}
		return operand{lit: folded}, nil
	}
}

func (p *Parser) parsePipe(left operand) (operand, error) {
	p.advance()
	right, err := p.parseExpression(pipePrec)
	if err != nil {
		return operand{}, err
	}
	if left.node == nil || right.node == nil {
		return operand{}, fmt.Errorf("both sides of '>>' must be placeholder expressions")
	}
	return operand{node: expr.Compose(left.node, right.node)}, nil
}

func (p *Parser) parsePostfixDot(left operand) (operand, error) {
	if left.node == nil {
		return operand{}, fmt.Errorf("attribute access requires a placeholder expression")
	}
	p.advance()
	if p.cur.typ != tIdent {
		return operand{}, fmt.Errorf("expected attribute name after '.'")
	}
	name := p.cur.literal
	p.advance()

	node := expr.Attr(left.node, name)
	if p.cur.typ != tLParen {
		return operand{node: node}, nil
	}

	// Method call: arguments are literals.
	p.advance()
	var args []object.Object
	for p.cur.typ != tRParen {
		arg, err := p.parseExpression(lowest)
		if err != nil {
			return operand{}, err
		}
		if arg.lit == nil {
			return operand{}, fmt.Errorf("method arguments must be literals")
		}
		args = append(args, arg.lit)
		if p.cur.typ == tComma {
			p.advance()
		} else if p.cur.typ != tRParen {
			return operand{}, fmt.Errorf("expected ',' or ')' in argument list")
		}
	}
	p.advance()

	if args == nil {
		args = []object.Object{}
	}
	called, err := expr.Method(node, args, nil)
	if err != nil {
		return operand{}, err
	}
	return operand{node: called}, nil
}

func (p *Parser) parsePostfixIndex(left operand) (operand, error) {
	if left.node == nil {
		return operand{}, fmt.Errorf("indexing requires a placeholder expression")
	}
	p.advance()
	key, err := p.parseExpression(lowest)
	if err != nil {
		return operand{}, err
	}
	if key.lit == nil {
		return operand{}, fmt.Errorf("index must be a literal")
	}
	if p.cur.typ != tRBracket {
		return operand{}, fmt.Errorf("expected ']' at position %d", p.cur.pos)
	}
	p.advance()
	return operand{node: expr.Index(left.node, key.lit)}, nil
}
