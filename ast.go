// ast.go: statement and expression nodes produced by the parser
//
// The node sets are closed: five statement forms and five expression forms.
// Operator nodes carry the operator token's location so runtime errors can
// point at the operator, and variable references carry the identifier's
// location for undefined-variable reports. Every node renders to the
// parenthesized prefix notation used by the `ast` subcommand and the tests.
package loxi

import (
	"fmt"
	"strings"
)

// ----- operators -----

// BinaryOp is the operator of a BinaryExpr.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpEqual
	OpNotEqual
)

var binaryOpNames = map[BinaryOp]string{
	OpAdd:          "+",
	OpSub:          "-",
	OpMul:          "*",
	OpDiv:          "/",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpEqual:        "==",
	OpNotEqual:     "!=",
}

func (op BinaryOp) String() string { return binaryOpNames[op] }

// UnaryOp is the operator of a UnaryExpr.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNeg
)

func (op UnaryOp) String() string {
	if op == OpNot {
		return "!"
	}
	return "-"
}

// ----- expressions -----

// Expr is one node of an expression tree.
type Expr interface {
	fmt.Stringer
	expr()
}

// LiteralExpr carries the runtime value its token denotes, built once at
// parse time; evaluating it is a plain copy. Lexeme keeps the raw source
// text for rendering.
type LiteralExpr struct {
	Loc    Location
	Val    Value
	Lexeme string
}

// GroupingExpr is a parenthesized expression; it only shapes the tree.
type GroupingExpr struct {
	Inner Expr
}

// UnaryExpr applies Op to Right. Loc is the operator's position.
type UnaryExpr struct {
	Loc   Location
	Op    UnaryOp
	Right Expr
}

// BinaryExpr applies Op to Left and Right. Loc is the operator's position.
type BinaryExpr struct {
	Loc   Location
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// VariableExpr reads a variable. Loc is the identifier's position.
type VariableExpr struct {
	Loc  Location
	Name string
}

func (*LiteralExpr) expr()  {}
func (*GroupingExpr) expr() {}
func (*UnaryExpr) expr()    {}
func (*BinaryExpr) expr()   {}
func (*VariableExpr) expr() {}

func (e *LiteralExpr) String() string  { return e.Lexeme }
func (e *GroupingExpr) String() string { return fmt.Sprintf("(group %s)", e.Inner) }
func (e *UnaryExpr) String() string    { return fmt.Sprintf("(%s %s)", e.Op, e.Right) }
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Op, e.Left, e.Right)
}
func (e *VariableExpr) String() string { return e.Name }

// ----- statements -----

// Stmt is one statement node.
type Stmt interface {
	fmt.Stringer
	stmt()
}

// ExprStmt evaluates an expression and discards the result.
type ExprStmt struct {
	Expr Expr
}

// PrintStmt evaluates an expression and writes its rendering plus a
// newline. Loc is the print keyword's position.
type PrintStmt struct {
	Loc  Location
	Expr Expr
}

// VarStmt defines a variable in the current scope. Init may be nil, which
// defines the name as nil. Loc is the var keyword's position.
type VarStmt struct {
	Loc  Location
	Name string
	Init Expr
}

// BlockStmt runs its statements in a fresh child scope.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt runs Then or Otherwise (optional) by the condition's truthiness.
// Loc is the if keyword's position.
type IfStmt struct {
	Loc       Location
	Condition Expr
	Then      Stmt
	Otherwise Stmt
}

func (*ExprStmt) stmt()  {}
func (*PrintStmt) stmt() {}
func (*VarStmt) stmt()   {}
func (*BlockStmt) stmt() {}
func (*IfStmt) stmt()    {}

func (s *ExprStmt) String() string  { return s.Expr.String() }
func (s *PrintStmt) String() string { return fmt.Sprintf("(print %s)", s.Expr) }
func (s *VarStmt) String() string {
	if s.Init == nil {
		return fmt.Sprintf("(var %s nil)", s.Name)
	}
	return fmt.Sprintf("(var %s %s)", s.Name, s.Init)
}
func (s *BlockStmt) String() string {
	var b strings.Builder
	b.WriteString("(block")
	for _, stmt := range s.Statements {
		b.WriteByte(' ')
		b.WriteString(stmt.String())
	}
	b.WriteByte(')')
	return b.String()
}
func (s *IfStmt) String() string {
	if s.Otherwise == nil {
		return fmt.Sprintf("(if %s %s)", s.Condition, s.Then)
	}
	return fmt.Sprintf("(if-else %s %s %s)", s.Condition, s.Then, s.Otherwise)
}

// Program is a parsed sequence of statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) String() string {
	var b strings.Builder
	for i, s := range p.Statements {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.String())
	}
	return b.String()
}
