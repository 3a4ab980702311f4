// parser_test.go
package loxi

import (
	"strings"
	"testing"
)

// --- helpers ---------------------------------------------------------------

func parseOK(t *testing.T, src string) *Program {
	t.Helper()
	res := Scan(src)
	if len(res.Errors) > 0 {
		t.Fatalf("scan errors: %v\nsource:\n%s", res.Errors, src)
	}
	prog, err := Parse(res.Tokens, NewInterner())
	if err != nil {
		t.Fatalf("parse error: %v\nsource:\n%s", err, src)
	}
	return prog
}

func parseFail(t *testing.T, src string) *ParseError {
	t.Helper()
	res := Scan(src)
	if len(res.Errors) > 0 {
		t.Fatalf("scan errors: %v\nsource:\n%s", res.Errors, src)
	}
	prog, err := Parse(res.Tokens, NewInterner())
	if err == nil {
		t.Fatalf("expected a parse error\nsource:\n%s\ngot:\n%s", src, prog)
	}
	return err
}

func wantAst(t *testing.T, src, want string) {
	t.Helper()
	got := parseOK(t, src).String()
	if got != want {
		t.Fatalf("\nsource:\n%s\nwant ast:\n%s\ngot ast:\n%s", src, want, got)
	}
}

// --- tests ------------------------------------------------------------------

func Test_Parser_HelloWorld_TwoStatements(t *testing.T) {
	src := "var hello = \"Hello world!\";\nprint hello;\n"
	prog := parseOK(t, src)
	if len(prog.Statements) != 2 {
		t.Fatalf("want 2 statements, got %d: %s", len(prog.Statements), prog)
	}

	decl, ok := prog.Statements[0].(*VarStmt)
	if !ok || decl.Name != "hello" {
		t.Fatalf("first statement should declare hello, got %#v", prog.Statements[0])
	}
	lit, ok := decl.Init.(*LiteralExpr)
	if !ok || lit.Val.Tag != VTStringLit {
		t.Fatalf("initializer should be an interned string literal, got %#v", decl.Init)
	}

	pr, ok := prog.Statements[1].(*PrintStmt)
	if !ok {
		t.Fatalf("second statement should be print, got %#v", prog.Statements[1])
	}
	if v, ok := pr.Expr.(*VariableExpr); !ok || v.Name != "hello" {
		t.Fatalf("print should read hello, got %#v", pr.Expr)
	}

	if got := prog.String(); got != "(var hello \"Hello world!\")\n(print hello)" {
		t.Fatalf("rendering: %q", got)
	}
}

func Test_Parser_Precedence_Tiers(t *testing.T) {
	cases := []struct{ src, want string }{
		{"1 + 2 * 3;", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3;", "(* (group (+ 1 2)) 3)"},
		{"1 + 2 < 3 == true;", "(== (< (+ 1 2) 3) true)"},
		{"-1 + 2;", "(+ (- 1) 2)"},
		{"-(1 + 2);", "(- (group (+ 1 2)))"},
		{"!!true;", "(! (! true))"},
		{"1 >= 2 > 3;", "(> (>= 1 2) 3)"},
	}
	for _, c := range cases {
		wantAst(t, c.src, c.want)
	}
}

func Test_Parser_Associativity_LeftFold(t *testing.T) {
	cases := []struct{ src, want string }{
		{"1 - 2 - 3;", "(- (- 1 2) 3)"},
		{"8 / 4 / 2;", "(/ (/ 8 4) 2)"},
		{"1 == 2 != 3;", "(!= (== 1 2) 3)"},
	}
	for _, c := range cases {
		wantAst(t, c.src, c.want)
	}
}

func Test_Parser_Literal_Lexeme_Preserved(t *testing.T) {
	// The rendering shows the source spelling, not a normalized value.
	wantAst(t, "print 12.50;", "(print 12.50)")
	wantAst(t, "print nil;", "(print nil)")
}

func Test_Parser_VarDecl_Forms(t *testing.T) {
	wantAst(t, "var x;", "(var x nil)")
	wantAst(t, "var x = 1 + 2;", "(var x (+ 1 2))")
}

func Test_Parser_Block_Nested(t *testing.T) {
	wantAst(t, "{ var x = 1; { print x; } }", "(block (var x 1) (block (print x)))")
	wantAst(t, "{}", "(block)")
}

func Test_Parser_If_Forms_And_DanglingElse(t *testing.T) {
	wantAst(t, "if (true) print 1;", "(if true (print 1))")
	wantAst(t, "if (true) print 1; else print 2;", "(if-else true (print 1) (print 2))")

	// else binds to the nearest if
	wantAst(t, "if (1) if (2) print 3; else print 4;",
		"(if 1 (if-else 2 (print 3) (print 4)))")
}

func Test_Parser_If_Branch_Rejects_Declaration(t *testing.T) {
	err := parseFail(t, "if (true) var x = 1;")
	if err.Kind != ParseSyntaxError || !strings.Contains(err.Message, "Expected expression") {
		t.Fatalf("a declaration is not a branch statement, got %v", err)
	}
}

func Test_Parser_FirstError_Aborts(t *testing.T) {
	err := parseFail(t, "var x = ;\nprint 1;\n")
	if err.Kind != ParseSyntaxError {
		t.Fatalf("want SyntaxError, got %v", err)
	}
	if err.Message != "Expected expression" {
		t.Fatalf("message: %q", err.Message)
	}
	if err.Loc != (Location{Line: 1, Column: 9}) {
		t.Fatalf("error should point at the semicolon, got %v", err.Loc)
	}
}

func Test_Parser_Error_Messages_And_Locations(t *testing.T) {
	cases := []struct {
		src  string
		msg  string
		line int
		col  int
	}{
		{"var 1 = 2;", "Expected variable name", 1, 5},
		{"var x = 1\nprint x;", "Expected ';' after variable declaration", 2, 1},
		{"print 1", "Expected ';' after value", 2, 1},
		{"1 + 2", "Expected ';' after expression", 2, 1},
		{"(1 + 2;", "Expected ')' after expression", 1, 7},
		{"{ print 1;", "Expected '}' after block", 2, 1},
		{"if true) print 1;", "Expected '(' after 'if'", 1, 4},
		{"if (true print 1;", "Expected ')' after if condition", 1, 11},
		{"();", "Expected expression", 1, 2},
	}
	for _, c := range cases {
		err := parseFail(t, c.src)
		if err.Message != c.msg {
			t.Fatalf("source %q: want message %q, got %q", c.src, c.msg, err.Message)
		}
		if err.Loc != (Location{Line: c.line, Column: c.col}) {
			t.Fatalf("source %q: want error at %d:%d, got %v", c.src, c.line, c.col, err.Loc)
		}
		if !strings.Contains(err.Error(), "SyntaxError: ") {
			t.Fatalf("source %q: rendering %q", c.src, err.Error())
		}
	}
}

func Test_Parser_Reserved_Words_Do_Not_Parse(t *testing.T) {
	// The scanner knows every Lox keyword; the grammar wires only a few.
	srcs := []string{
		"class Foo {}",
		"fun f() {}",
		"while (true) print 1;",
		"for (;;) print 1;",
		"return 1;",
		"this;",
		"super;",
		"1 and 2;",
		"1 or 2;",
	}
	for _, src := range srcs {
		err := parseFail(t, src)
		if err.Kind != ParseSyntaxError {
			t.Fatalf("source %q: want SyntaxError, got %v", src, err)
		}
	}
}

func Test_Parser_String_Interning_SharedHandle(t *testing.T) {
	res := scanOK(t, `print "a"; print "a"; print "b";`)
	in := NewInterner()
	prog, err := Parse(res.Tokens, in)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	lit := func(i int) Sym {
		t.Helper()
		v := prog.Statements[i].(*PrintStmt).Expr.(*LiteralExpr).Val
		if v.Tag != VTStringLit {
			t.Fatalf("statement %d should hold an interned literal, got %#v", i, v)
		}
		return v.Data.(Sym)
	}

	a1, a2, b := lit(0), lit(1), lit(2)
	if a1 != a2 {
		t.Fatalf("identical literals should share a handle: %v vs %v", a1, a2)
	}
	if a1 == b {
		t.Fatalf("distinct literals should not share a handle")
	}
	if in.Len() != 2 {
		t.Fatalf("want 2 interned texts, got %d", in.Len())
	}
}

func Test_Parser_EmptyProgram(t *testing.T) {
	prog := parseOK(t, "")
	if len(prog.Statements) != 0 {
		t.Fatalf("empty source should parse to no statements, got %s", prog)
	}
	if prog.String() != "" {
		t.Fatalf("empty program renders %q", prog.String())
	}
}

func Test_Parser_EmptyTokenStream_IsInternalError(t *testing.T) {
	// A real scan always ends with Eof; a missing one is reported, not panicked.
	_, err := Parse(nil, NewInterner())
	if err == nil || err.Kind != ParseEndOfFile {
		t.Fatalf("want EndOfFile, got %v", err)
	}
	if err.Error() != "ParseError: Unexpected end of file" {
		t.Fatalf("rendering: %q", err.Error())
	}
}
