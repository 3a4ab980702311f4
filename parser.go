// parser.go — recursive descent parser for Lox
//
// OVERVIEW
// --------
// This module consumes the token stream produced by the scanner (lexer.go)
// and builds the typed AST defined in ast.go. It is a classic recursive
// descent parser with exactly one token of lookahead, and it stops at the
// first error: unlike the scanner, the parser does not try to recover.
//
// Grammar (left-associative at every binary level):
//
//	program     → declaration* EOF
//	declaration → varDecl | statement
//	varDecl     → "var" IDENTIFIER ( "=" expression )? ";"
//	statement   → printStmt | block | ifStmt | exprStmt
//	printStmt   → "print" expression ";"
//	block       → "{" declaration* "}"
//	ifStmt      → "if" "(" expression ")" statement ( "else" statement )?
//	exprStmt    → expression ";"
//	expression  → equality
//	equality    → comparison ( ( "!=" | "==" ) comparison )*
//	comparison  → term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term        → factor ( ( "-" | "+" ) factor )*
//	factor      → unary ( ( "/" | "*" ) unary )*
//	unary       → ( "!" | "-" ) unary | primary
//	primary     → NUMBER | STRING | "true" | "false" | "nil"
//	            | "(" expression ")" | IDENTIFIER
//
// The remaining keywords (and, or, while, for, fun, class, return, super,
// this) are scanned but have no grammar rules yet; they fail with a plain
// syntax error wherever they appear, which leaves room to wire them in
// without touching the existing rules.
package loxi

import "fmt"

// ----- errors -----

// ParseErrorKind discriminates parse failures.
type ParseErrorKind int

const (
	ParseSyntaxError ParseErrorKind = iota
	// ParseEndOfFile means the cursor ran past the token stream. A stream
	// that ends with its EOF token can never trigger it (the statement
	// loop checks for EOF before each dispatch), so seeing one escape
	// means the invariant was broken; drivers print it defensively.
	ParseEndOfFile
)

// ParseError aborts a parse; only the first one is ever reported.
type ParseError struct {
	Kind    ParseErrorKind
	Loc     Location
	Message string
}

func (e *ParseError) Error() string {
	if e.Kind == ParseEndOfFile {
		return "ParseError: Unexpected end of file"
	}
	return fmt.Sprintf("%s SyntaxError: %s", e.Loc, e.Message)
}

func (e *ParseError) Position() Location { return e.Loc }

// ----- public entry -----

// Parse builds a Program from a scanned token stream. The stream must come
// from a full scanning pass, i.e. end with the EOF token. String literals
// are interned into the given interner as they are parsed.
func Parse(toks []Token, interner *Interner) (*Program, *ParseError) {
	if len(toks) == 0 {
		return nil, &ParseError{Kind: ParseEndOfFile}
	}
	p := &parser{toks: toks, interner: interner}
	return p.program()
}

// ----- cursor -----

type parser struct {
	toks     []Token
	i        int
	interner *Interner
}

func (p *parser) atEnd() bool { return p.peek().Type == EOF }

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *parser) prev() Token { return p.toks[p.i-1] }

func (p *parser) advance() (Token, *ParseError) {
	if p.i >= len(p.toks) {
		return Token{}, &ParseError{Kind: ParseEndOfFile}
	}
	t := p.toks[p.i]
	p.i++
	return t, nil
}

func (p *parser) match(tt ...TokenType) bool {
	if p.atEnd() {
		return false
	}
	for _, t := range tt {
		if p.peek().Type == t {
			p.i++
			return true
		}
	}
	return false
}

func (p *parser) need(t TokenType, msg string) (Token, *ParseError) {
	if p.match(t) {
		return p.prev(), nil
	}
	g := p.peek()
	return Token{}, &ParseError{Kind: ParseSyntaxError, Loc: g.Loc, Message: msg}
}

// ----- statements -----

func (p *parser) program() (*Program, *ParseError) {
	prog := &Program{}
	for !p.atEnd() {
		s, err := p.declaration()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, s)
	}
	return prog, nil
}

func (p *parser) declaration() (Stmt, *ParseError) {
	if p.match(VAR) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *parser) varDecl() (Stmt, *ParseError) {
	kw := p.prev()
	name, err := p.need(IDENTIFIER, "Expected variable name")
	if err != nil {
		return nil, err
	}
	var init Expr
	if p.match(EQUAL) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.need(SEMICOLON, "Expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarStmt{Loc: kw.Loc, Name: name.Lexeme, Init: init}, nil
}

func (p *parser) statement() (Stmt, *ParseError) {
	switch {
	case p.match(PRINT):
		return p.printStmt()
	case p.match(BRACE_LEFT):
		return p.block()
	case p.match(IF):
		return p.ifStmt()
	default:
		return p.exprStmt()
	}
}

func (p *parser) printStmt() (Stmt, *ParseError) {
	kw := p.prev()
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "Expected ';' after value"); err != nil {
		return nil, err
	}
	return &PrintStmt{Loc: kw.Loc, Expr: e}, nil
}

func (p *parser) block() (Stmt, *ParseError) {
	var stmts []Stmt
	for !p.atEnd() && p.peek().Type != BRACE_RIGHT {
		s, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.need(BRACE_RIGHT, "Expected '}' after block"); err != nil {
		return nil, err
	}
	return &BlockStmt{Statements: stmts}, nil
}

func (p *parser) ifStmt() (Stmt, *ParseError) {
	kw := p.prev()
	if _, err := p.need(PAREN_LEFT, "Expected '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(PAREN_RIGHT, "Expected ')' after if condition"); err != nil {
		return nil, err
	}
	// the branches are statements, not declarations: `if (c) var x;` is out
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var otherwise Stmt
	if p.match(ELSE) {
		otherwise, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Loc: kw.Loc, Condition: cond, Then: then, Otherwise: otherwise}, nil
}

func (p *parser) exprStmt() (Stmt, *ParseError) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: e}, nil
}

// ----- expressions -----

func (p *parser) expression() (Expr, *ParseError) { return p.equality() }

func (p *parser) equality() (Expr, *ParseError) {
	e, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(BANG_EQUAL, EQUAL_EQUAL) {
		op := p.prev()
		r, err := p.comparison()
		if err != nil {
			return nil, err
		}
		e = &BinaryExpr{Loc: op.Loc, Op: binOpFor(op.Type), Left: e, Right: r}
	}
	return e, nil
}

func (p *parser) comparison() (Expr, *ParseError) {
	e, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		op := p.prev()
		r, err := p.term()
		if err != nil {
			return nil, err
		}
		e = &BinaryExpr{Loc: op.Loc, Op: binOpFor(op.Type), Left: e, Right: r}
	}
	return e, nil
}

func (p *parser) term() (Expr, *ParseError) {
	e, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(MINUS, PLUS) {
		op := p.prev()
		r, err := p.factor()
		if err != nil {
			return nil, err
		}
		e = &BinaryExpr{Loc: op.Loc, Op: binOpFor(op.Type), Left: e, Right: r}
	}
	return e, nil
}

func (p *parser) factor() (Expr, *ParseError) {
	e, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(SLASH, STAR) {
		op := p.prev()
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		e = &BinaryExpr{Loc: op.Loc, Op: binOpFor(op.Type), Left: e, Right: r}
	}
	return e, nil
}

func (p *parser) unary() (Expr, *ParseError) {
	if p.match(BANG, MINUS) {
		op := p.prev()
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		uop := OpNot
		if op.Type == MINUS {
			uop = OpNeg
		}
		return &UnaryExpr{Loc: op.Loc, Op: uop, Right: r}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Expr, *ParseError) {
	tok, err := p.advance()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case NUMBER:
		return &LiteralExpr{Loc: tok.Loc, Val: Number(tok.Literal.(float64)), Lexeme: tok.Lexeme}, nil
	case STRING:
		sym := p.interner.Intern(tok.Literal.(string))
		return &LiteralExpr{Loc: tok.Loc, Val: StrLit(sym), Lexeme: tok.Lexeme}, nil
	case TRUE:
		return &LiteralExpr{Loc: tok.Loc, Val: Bool(true), Lexeme: "true"}, nil
	case FALSE:
		return &LiteralExpr{Loc: tok.Loc, Val: Bool(false), Lexeme: "false"}, nil
	case NIL:
		return &LiteralExpr{Loc: tok.Loc, Val: Nil, Lexeme: "nil"}, nil
	case IDENTIFIER:
		return &VariableExpr{Loc: tok.Loc, Name: tok.Lexeme}, nil
	case PAREN_LEFT:
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(PAREN_RIGHT, "Expected ')' after expression"); err != nil {
			return nil, err
		}
		return &GroupingExpr{Inner: inner}, nil
	}
	return nil, &ParseError{Kind: ParseSyntaxError, Loc: tok.Loc, Message: "Expected expression"}
}

func binOpFor(tt TokenType) BinaryOp {
	switch tt {
	case PLUS:
		return OpAdd
	case MINUS:
		return OpSub
	case STAR:
		return OpMul
	case SLASH:
		return OpDiv
	case GREATER:
		return OpGreater
	case GREATER_EQUAL:
		return OpGreaterEqual
	case LESS:
		return OpLess
	case LESS_EQUAL:
		return OpLessEqual
	case EQUAL_EQUAL:
		return OpEqual
	case BANG_EQUAL:
		return OpNotEqual
	}
	panic(fmt.Sprintf("loxi: internal error: %v is not a binary operator", tt))
}
