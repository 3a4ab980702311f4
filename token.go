// token.go: source locations and the token model for the Lox scanner
package loxi

import "fmt"

// Location is a 1-based line/column position in the source text. It is
// plain data: every token and every diagnostic carries one.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string { return fmt.Sprintf("[at %d:%d]", l.Line, l.Column) }

// Before reports whether l comes before other in reading order
// (line first, then column).
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Column < other.Column
}

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Punctuation
	PAREN_LEFT  // "("
	PAREN_RIGHT // ")"
	BRACE_LEFT  // "{"
	BRACE_RIGHT // "}"
	COMMA       // ","
	DOT         // "."
	SEMICOLON   // ";"

	// Operators
	BANG          // "!"
	BANG_EQUAL    // "!="
	EQUAL         // "="
	EQUAL_EQUAL   // "=="
	GREATER       // ">"
	GREATER_EQUAL // ">="
	LESS          // "<"
	LESS_EQUAL    // "<="
	PLUS          // "+"
	MINUS         // "-"
	STAR          // "*"
	SLASH         // "/"

	// Literals & identifiers
	IDENTIFIER
	STRING
	NUMBER

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FOR
	FUN
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE
)

// keywords map
var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// spellings maps every fixed-text token type to its canonical source text.
// The scanner recognizes these spellings; Spelling renders them back, so the
// two directions must stay a bijection (tested).
var spellings = map[TokenType]string{
	PAREN_LEFT:  "(",
	PAREN_RIGHT: ")",
	BRACE_LEFT:  "{",
	BRACE_RIGHT: "}",
	COMMA:       ",",
	DOT:         ".",
	SEMICOLON:   ";",

	BANG:          "!",
	BANG_EQUAL:    "!=",
	EQUAL:         "=",
	EQUAL_EQUAL:   "==",
	GREATER:       ">",
	GREATER_EQUAL: ">=",
	LESS:          "<",
	LESS_EQUAL:    "<=",
	PLUS:          "+",
	MINUS:         "-",
	STAR:          "*",
	SLASH:         "/",

	AND:    "and",
	CLASS:  "class",
	ELSE:   "else",
	FALSE:  "false",
	FOR:    "for",
	FUN:    "fun",
	IF:     "if",
	NIL:    "nil",
	OR:     "or",
	PRINT:  "print",
	RETURN: "return",
	SUPER:  "super",
	THIS:   "this",
	TRUE:   "true",
	VAR:    "var",
	WHILE:  "while",
}

var tokenNames = map[TokenType]string{
	EOF:           "Eof",
	PAREN_LEFT:    "ParenLeft",
	PAREN_RIGHT:   "ParenRight",
	BRACE_LEFT:    "BraceLeft",
	BRACE_RIGHT:   "BraceRight",
	COMMA:         "Comma",
	DOT:           "Dot",
	SEMICOLON:     "Semicolon",
	BANG:          "Bang",
	BANG_EQUAL:    "BangEqual",
	EQUAL:         "Equal",
	EQUAL_EQUAL:   "EqualEqual",
	GREATER:       "Greater",
	GREATER_EQUAL: "GreaterEqual",
	LESS:          "Less",
	LESS_EQUAL:    "LessEqual",
	PLUS:          "Plus",
	MINUS:         "Minus",
	STAR:          "Star",
	SLASH:         "Slash",
	IDENTIFIER:    "Identifier",
	STRING:        "String",
	NUMBER:        "Number",
	AND:           "And",
	CLASS:         "Class",
	ELSE:          "Else",
	FALSE:         "False",
	FOR:           "For",
	FUN:           "Fun",
	IF:            "If",
	NIL:           "Nil",
	OR:            "Or",
	PRINT:         "Print",
	RETURN:        "Return",
	SUPER:         "Super",
	THIS:          "This",
	TRUE:          "True",
	VAR:           "Var",
	WHILE:         "While",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Spelling returns the canonical source text of a fixed-text token type
// (punctuation, operator or keyword). Literal-bearing types and EOF have no
// fixed spelling and return "".
func (t TokenType) Spelling() string { return spellings[t] }

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice, quotes included for strings
	Literal interface{} // parsed value: string for STRING, float64 for NUMBER
	Loc     Location    // position of the first character of the lexeme
}

func (t Token) String() string {
	switch t.Type {
	case STRING:
		return fmt.Sprintf("%s String(%q)", t.Loc, t.Literal)
	case NUMBER:
		return fmt.Sprintf("%s Number(%v)", t.Loc, t.Literal)
	case IDENTIFIER:
		return fmt.Sprintf("%s Identifier(%s)", t.Loc, t.Literal)
	default:
		return fmt.Sprintf("%s %s", t.Loc, t.Type)
	}
}
