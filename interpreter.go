// interpreter.go — the tree-walking evaluator and its public entry points.
//
// OVERVIEW
// --------
// The Interpreter owns everything one run needs: the persistent global
// scope, the string arena it shares with the parser, and the sink the print
// statement writes to. There is no bytecode and no VM: statements execute
// directly over the AST.
//
// EXECUTION & SCOPING SEMANTICS
// -----------------------------
// Statements run in environments (*Env) chained via parent pointers.
// `Run` and `Interpret` target Globals, so definitions persist across calls
// (this is what a REPL session wants: each line is one program, one shared
// state). Blocks execute in a fresh child scope; an inner `var` shadows an
// outer binding and evaporates when the block ends. A file driver gets a
// fresh Interpreter per file.
//
// RUNTIME ERRORS
// --------------
// Evaluation returns structured *RuntimeError values: an undefined binary
// or unary operation (reported at the operator, with the operand type tags)
// or an undefined variable (reported at the reference). The first runtime
// error aborts the remaining statements. The core never prints diagnostics;
// drivers render them, typically through WrapErrorWithSource (errors.go).
package loxi

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ----- runtime errors -----

// RuntimeErrorKind discriminates evaluation failures.
type RuntimeErrorKind int

const (
	InvalidBinaryOp RuntimeErrorKind = iota
	InvalidUnaryOp
	UndefinedVariable
)

// RuntimeError aborts execution of the remaining statements.
type RuntimeError struct {
	Kind  RuntimeErrorKind
	Loc   Location
	Op    string // operator spelling for the Invalid*Op kinds
	Left  string // left operand type tag (the only operand for unary)
	Right string // right operand type tag, binary only
	Name  string // the missing variable for UndefinedVariable
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case InvalidBinaryOp:
		return fmt.Sprintf("%s RuntimeError: Invalid binary operation '%s' between '%s' and '%s'",
			e.Loc, e.Op, e.Left, e.Right)
	case InvalidUnaryOp:
		return fmt.Sprintf("%s RuntimeError: Invalid unary operation '%s' on '%s'", e.Loc, e.Op, e.Left)
	case UndefinedVariable:
		return fmt.Sprintf("%s RuntimeError: Trying to access undefined variable: '%s'", e.Loc, e.Name)
	}
	return fmt.Sprintf("%s RuntimeError", e.Loc)
}

func (e *RuntimeError) Position() Location { return e.Loc }

// LexErrors bundles every scanning diagnostic of one pass into a single
// error value for callers that drive the whole pipeline through Run.
// Drivers that want per-error caret rendering unpack it again.
type LexErrors []*LexError

func (e LexErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, le := range e {
		msgs[i] = le.Error()
	}
	return fmt.Sprintf("%d lexing errors:\n%s", len(e), strings.Join(msgs, "\n"))
}

// ----- interpreter -----

// Interpreter owns the state of one run: the global scope, the string
// arena shared with the parser, and the print sink.
type Interpreter struct {
	Globals *Env
	Stdout  io.Writer

	interner *Interner
}

// NewInterpreter creates an interpreter with empty globals, a fresh string
// arena, and print output going to os.Stdout.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		Globals:  NewEnv(),
		Stdout:   os.Stdout,
		interner: NewInterner(),
	}
}

// Interner exposes the run's string arena. Parsing for this interpreter
// must go through it so literal handles resolve at evaluation time.
func (ip *Interpreter) Interner() *Interner { return ip.interner }

// Run scans, parses and executes src against the persistent globals. Lex
// errors come back joined as LexErrors (scanning reports every one);
// parse and runtime errors come back as their own types. A REPL calls
// this once per line, a file driver once per file.
func (ip *Interpreter) Run(src string) error {
	res := Scan(src)
	if len(res.Errors) > 0 {
		return LexErrors(res.Errors)
	}
	prog, perr := Parse(res.Tokens, ip.interner)
	if perr != nil {
		return perr
	}
	return ip.Interpret(prog)
}

// Interpret executes the program's statements in order against Globals.
// The first runtime error aborts the rest.
func (ip *Interpreter) Interpret(prog *Program) error {
	for _, s := range prog.Statements {
		if err := ip.execute(s, ip.Globals); err != nil {
			return err
		}
	}
	return nil
}

// ----- execution -----

// execute runs one statement in env.
func (ip *Interpreter) execute(s Stmt, env *Env) *RuntimeError {
	switch st := s.(type) {
	case *ExprStmt:
		_, err := ip.eval(st.Expr, env)
		return err

	case *PrintStmt:
		v, err := ip.eval(st.Expr, env)
		if err != nil {
			return err
		}
		fmt.Fprintln(ip.Stdout, v.Display(ip.interner))
		return nil

	case *VarStmt:
		val := Nil
		if st.Init != nil {
			v, err := ip.eval(st.Init, env)
			if err != nil {
				return err
			}
			val = v
		}
		env.Define(st.Name, val)
		return nil

	case *BlockStmt:
		inner := env.Child()
		for _, child := range st.Statements {
			if err := ip.execute(child, inner); err != nil {
				return err
			}
		}
		return nil

	case *IfStmt:
		cond, err := ip.eval(st.Condition, env)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return ip.execute(st.Then, env)
		}
		if st.Otherwise != nil {
			return ip.execute(st.Otherwise, env)
		}
		return nil
	}
	panic(fmt.Sprintf("loxi: internal error: unknown statement %T", s))
}

// eval reduces an expression to a value in env.
func (ip *Interpreter) eval(e Expr, env *Env) (Value, *RuntimeError) {
	switch ex := e.(type) {
	case *LiteralExpr:
		return ex.Val, nil

	case *GroupingExpr:
		return ip.eval(ex.Inner, env)

	case *VariableExpr:
		v, ok := env.Get(ex.Name)
		if !ok {
			return Value{}, &RuntimeError{Kind: UndefinedVariable, Loc: ex.Loc, Name: ex.Name}
		}
		return v, nil

	case *UnaryExpr:
		right, err := ip.eval(ex.Right, env)
		if err != nil {
			return Value{}, err
		}
		return ip.applyUnary(ex, right)

	case *BinaryExpr:
		left, err := ip.eval(ex.Left, env)
		if err != nil {
			return Value{}, err
		}
		right, err := ip.eval(ex.Right, env)
		if err != nil {
			return Value{}, err
		}
		return ip.applyBinary(ex, left, right)
	}
	panic(fmt.Sprintf("loxi: internal error: unknown expression %T", e))
}

// applyUnary turns an undefined operation into InvalidUnaryOp at the
// operator's location.
func (ip *Interpreter) applyUnary(ex *UnaryExpr, v Value) (Value, *RuntimeError) {
	switch ex.Op {
	case OpNot:
		return v.Not(), nil
	case OpNeg:
		if out, ok := v.Neg(); ok {
			return out, nil
		}
	}
	return Value{}, &RuntimeError{
		Kind: InvalidUnaryOp,
		Loc:  ex.Loc,
		Op:   ex.Op.String(),
		Left: v.Name(),
	}
}

// applyBinary turns an undefined operation into InvalidBinaryOp at the
// operator's location.
func (ip *Interpreter) applyBinary(ex *BinaryExpr, l, r Value) (Value, *RuntimeError) {
	var (
		out Value
		ok  bool
	)
	switch ex.Op {
	case OpAdd:
		out, ok = l.Add(r, ip.interner)
	case OpSub:
		out, ok = l.Sub(r)
	case OpMul:
		out, ok = l.Mul(r)
	case OpDiv:
		out, ok = l.Div(r)
	case OpGreater:
		out, ok = l.Gt(r)
	case OpGreaterEqual:
		out, ok = l.Geq(r)
	case OpLess:
		out, ok = l.Lt(r)
	case OpLessEqual:
		out, ok = l.Leq(r)
	case OpEqual:
		out, ok = l.Eq(r, ip.interner), true
	case OpNotEqual:
		out, ok = l.Neq(r, ip.interner), true
	}
	if !ok {
		return Value{}, &RuntimeError{
			Kind:  InvalidBinaryOp,
			Loc:   ex.Loc,
			Op:    ex.Op.String(),
			Left:  l.Name(),
			Right: r.Name(),
		}
	}
	return out, nil
}
