package parser

import (
	"github.com/Sergeytikhonov7/Mython/internal/eval"
	"github.com/Sergeytikhonov7/Mython/internal/lexer"
	"github.com/Sergeytikhonov7/Mython/internal/runtime"
	"github.com/Sergeytikhonov7/Mython/internal/token"
)

// Parser drives a lexer.Lexer through the Mython grammar, building the
// eval.Node tree the evaluator executes. Classes must be defined
// before they are instantiated or subclassed, matching the one-pass
// shape of the course's original implementation; this is a documented
// simplification (see DESIGN.md) rather than a spec requirement.
type Parser struct {
	lx      *lexer.Lexer
	classes map[string]*runtime.Class
}

// New wraps lx, ready to Parse a full program.
func New(lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx, classes: make(map[string]*runtime.Class)}
}

// FromString lexes source and returns a ready Parser.
func FromString(source string) (*Parser, error) {
	lx, err := lexer.FromString(source)
	if err != nil {
		return nil, err
	}
	return New(lx), nil
}

func (p *Parser) cur() token.Token     { return p.lx.Current() }
func (p *Parser) advance() token.Token { return p.lx.Advance() }

func (p *Parser) expectChar(c byte) error {
	if p.cur().Kind != token.Char || p.cur().Ch != c {
		return newErr(p.cur().Line, "expected '%c', got %s", c, p.cur())
	}
	p.advance()
	return nil
}

func (p *Parser) expectKind(k token.Kind) (token.Token, error) {
	t := p.cur()
	if t.Kind != k {
		return token.Token{}, newErr(t.Line, "expected %s, got %s", k, t)
	}
	p.advance()
	return t, nil
}

func (p *Parser) isChar(c byte) bool {
	return p.cur().Kind == token.Char && p.cur().Ch == c
}

// Parse consumes the full token stream and returns the program as a
// single Compound of top-level statements.
func (p *Parser) Parse() (eval.Node, error) {
	var stmts []eval.Node
	for p.cur().Kind != token.EOF {
		if p.cur().Kind == token.Newline {
			p.advance()
			continue
		}
		st, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	return &eval.Compound{Statements: stmts}, nil
}

func (p *Parser) parseStatement() (eval.Node, error) {
	switch p.cur().Kind {
	case token.Class:
		return p.parseClassDef()
	case token.If:
		return p.parseIf()
	case token.Return:
		return p.parseReturn()
	case token.Print:
		return p.parsePrint()
	default:
		return p.parseSimpleStatement()
	}
}

// parseBlock expects ':' Newline Indent stmt* Dedent, per the
// indentation shape the lexer guarantees around blocks (spec.md §6).
func (p *Parser) parseBlock() (eval.Node, error) {
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.Newline); err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.Indent); err != nil {
		return nil, err
	}
	var stmts []eval.Node
	for p.cur().Kind != token.Dedent && p.cur().Kind != token.EOF {
		if p.cur().Kind == token.Newline {
			p.advance()
			continue
		}
		st, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	if _, err := p.expectKind(token.Dedent); err != nil {
		return nil, err
	}
	return &eval.Compound{Statements: stmts}, nil
}

func (p *Parser) parseClassDef() (eval.Node, error) {
	p.advance() // 'class'
	nameTok, err := p.expectKind(token.Id)
	if err != nil {
		return nil, err
	}
	var parent *runtime.Class
	if p.isChar('(') {
		p.advance()
		parentTok, err := p.expectKind(token.Id)
		if err != nil {
			return nil, err
		}
		parent = p.classes[parentTok.Str]
		if parent == nil {
			return nil, newErr(parentTok.Line, "unknown class %s", parentTok.Str)
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}

	class := runtime.NewClass(nameTok.Str, parent)
	p.classes[nameTok.Str] = class

	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.Newline); err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.Indent); err != nil {
		return nil, err
	}
	for p.cur().Kind != token.Dedent {
		if p.cur().Kind == token.Newline {
			p.advance()
			continue
		}
		if _, err := p.expectKind(token.Def); err != nil {
			return nil, err
		}
		methodTok, err := p.expectKind(token.Id)
		if err != nil {
			return nil, err
		}
		if err := p.expectChar('('); err != nil {
			return nil, err
		}
		params, err := p.parseParamList()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		// The first declared parameter is the receiver (conventionally
		// "self"); Method.Call binds the instance under that name, so it
		// is not part of the Method's own arity.
		if len(params) == 0 {
			return nil, newErr(methodTok.Line, "method %s is missing its receiver parameter", methodTok.Str)
		}
		class.Methods[methodTok.Str] = &eval.Method{
			ReceiverName: params[0],
			Params:       params[1:],
			Body:         &eval.MethodBody{Body: body},
		}
	}
	if _, err := p.expectKind(token.Dedent); err != nil {
		return nil, err
	}
	return &eval.ClassDefinition{Class: class}, nil
}

func (p *Parser) parseParamList() ([]string, error) {
	var params []string
	if p.isChar(')') {
		return params, nil
	}
	for {
		idTok, err := p.expectKind(token.Id)
		if err != nil {
			return nil, err
		}
		params = append(params, idTok.Str)
		if !p.isChar(',') {
			break
		}
		p.advance()
	}
	return params, nil
}

func (p *Parser) parseIf() (eval.Node, error) {
	p.advance() // 'if'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseNode eval.Node
	if p.cur().Kind == token.Else {
		p.advance()
		elseNode, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &eval.IfElse{Cond: cond, Then: then, Else: elseNode}, nil
}

func (p *Parser) parseReturn() (eval.Node, error) {
	p.advance() // 'return'
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.Newline); err != nil {
		return nil, err
	}
	return &eval.Return{Expr: expr}, nil
}

func (p *Parser) parsePrint() (eval.Node, error) {
	p.advance() // 'print'
	var args []eval.Node
	if p.cur().Kind != token.Newline {
		first, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, first)
		for p.isChar(',') {
			p.advance()
			a, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
		}
	}
	if _, err := p.expectKind(token.Newline); err != nil {
		return nil, err
	}
	return &eval.Print{Args: args}, nil
}

// parseSimpleStatement handles assignment, field assignment, and bare
// expression statements (a MethodCall or NewInstance used for effect),
// per spec.md §4.2.
func (p *Parser) parseSimpleStatement() (eval.Node, error) {
	line := p.cur().Line
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.isChar('=') {
		p.advance()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.Newline); err != nil {
			return nil, err
		}
		v, ok := expr.(*eval.VariableValue)
		if !ok {
			return nil, newErr(line, "invalid assignment target")
		}
		if len(v.DottedIDs) == 1 {
			return &eval.Assignment{Var: v.DottedIDs[0], Rhs: rhs}, nil
		}
		last := len(v.DottedIDs) - 1
		return &eval.FieldAssignment{
			TargetPath: v.DottedIDs[:last],
			Field:      v.DottedIDs[last],
			Rhs:        rhs,
		}, nil
	}
	if _, err := p.expectKind(token.Newline); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseExpr() (eval.Node, error) { return p.parseOr() }

func (p *Parser) parseOr() (eval.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Or {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &eval.Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (eval.Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.And {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &eval.And{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (eval.Node, error) {
	if p.cur().Kind == token.Not {
		p.advance()
		arg, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &eval.Not{Arg: arg}, nil
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (eval.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	cmp, ok := p.comparatorForCurrent()
	if !ok {
		return left, nil
	}
	p.advance()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &eval.Comparison{Cmp: cmp, Left: left, Right: right}, nil
}

func (p *Parser) comparatorForCurrent() (eval.Comparator, bool) {
	switch p.cur().Kind {
	case token.Eq:
		return eval.CompareEq, true
	case token.NotEq:
		return eval.CompareNotEq, true
	case token.LessOrEq:
		return eval.CompareLessOrEq, true
	case token.GreaterOrEq:
		return eval.CompareGreaterOrEq, true
	case token.Char:
		switch p.cur().Ch {
		case '<':
			return eval.CompareLess, true
		case '>':
			return eval.CompareGreater, true
		}
	}
	return nil, false
}

func (p *Parser) parseAdditive() (eval.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.isChar('+') || p.isChar('-') {
		op := p.cur().Ch
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			left = eval.NewAdd(left, right)
		} else {
			left = eval.NewSub(left, right)
		}
	}
	return left, nil
}

func (p *Parser) parseTerm() (eval.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.isChar('*') || p.isChar('/') {
		op := p.cur().Ch
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			left = eval.NewMult(left, right)
		} else {
			left = eval.NewDiv(left, right)
		}
	}
	return left, nil
}

func (p *Parser) parseUnary() (eval.Node, error) {
	if p.isChar('-') {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return eval.NewSub(&eval.NumericLiteral{Value: 0}, operand), nil
	}
	return p.parsePostfixFromPrimary()
}

func (p *Parser) parsePostfixFromPrimary() (eval.Node, error) {
	tok := p.cur()
	switch tok.Kind {
	case token.Number:
		p.advance()
		return &eval.NumericLiteral{Value: runtime.Number(tok.Num)}, nil
	case token.String:
		p.advance()
		return &eval.StringLiteral{Value: runtime.String(tok.Str)}, nil
	case token.True:
		p.advance()
		return &eval.BoolLiteral{Value: true}, nil
	case token.False:
		p.advance()
		return &eval.BoolLiteral{Value: false}, nil
	case token.None:
		p.advance()
		return &eval.NoneLiteral{}, nil
	case token.Char:
		if tok.Ch == '(' {
			p.advance()
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			return e, nil
		}
		return nil, newErr(tok.Line, "unexpected %s", tok)
	case token.Id:
		p.advance()
		return p.parseIdTail(tok.Str, tok.Line)
	default:
		return nil, newErr(tok.Line, "unexpected %s", tok)
	}
}

// parseIdTail parses the chain of '.' field accesses and an optional
// trailing call that can follow a leading identifier: a bare Name(args)
// is NewInstance of a known class; a dotted chain ending in a call is a
// MethodCall on the resolved object; anything else is a VariableValue.
func (p *Parser) parseIdTail(name string, line int) (eval.Node, error) {
	ids := []string{name}
	for p.isChar('.') {
		p.advance()
		idTok, err := p.expectKind(token.Id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, idTok.Str)
	}

	if !p.isChar('(') {
		return &eval.VariableValue{DottedIDs: ids}, nil
	}
	p.advance()
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}

	if len(ids) == 1 {
		class, ok := p.classes[ids[0]]
		if !ok {
			return nil, newErr(line, "unknown class %s", ids[0])
		}
		return &eval.NewInstance{Class: class, Args: args}, nil
	}

	last := len(ids) - 1
	return &eval.MethodCall{
		Object: &eval.VariableValue{DottedIDs: ids[:last]},
		Method: ids[last],
		Args:   args,
	}, nil
}

func (p *Parser) parseArgs() ([]eval.Node, error) {
	var args []eval.Node
	if p.isChar(')') {
		return args, nil
	}
	for {
		a, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if !p.isChar(',') {
			break
		}
		p.advance()
	}
	return args, nil
}
