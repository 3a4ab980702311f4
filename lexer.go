// lexer.go: scanner for Lox source text
package loxi

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ScanResult is everything one scanning pass produces. Lines is the source
// split into lines (kept so diagnostics can be rendered with context),
// Tokens always ends with exactly one EOF token, and Errors collects every
// diagnostic of the pass: the scanner does not stop at the first problem.
type ScanResult struct {
	Lines  []string
	Tokens []Token
	Errors []*LexError
}

// Lexer scans a Lox source string into tokens.
type Lexer struct {
	src    string
	lines  []string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 1-based column of the next unread character
	tokens []Token
	errors []*LexError

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:   src,
		lines: splitLines(src),
		line:  1,
		col:   1,
	}
}

// Scan is shorthand for NewLexer(src).Scan().
func Scan(src string) ScanResult { return NewLexer(src).Scan() }

// splitLines splits terminator-style: a trailing newline does not open a
// final empty line, and an empty source has no lines at all.
func splitLines(src string) []string {
	if src == "" {
		return nil
	}
	lines := strings.Split(src, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) peekN(n int) (byte, bool) {
	idx := l.cur + n
	if idx >= len(l.src) {
		return 0, false
	}
	return l.src[idx], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) rewindToStart() {
	// Rewinding stays within the current token and never crosses a newline
	// (only a digit or letter has been consumed), so stepping the column
	// back by the byte count keeps positions exact.
	l.col -= l.cur - l.start
	l.cur = l.start
}

func (l *Lexer) addToken(tt TokenType, lit interface{}) Token {
	lex := l.src[l.start:l.cur]
	tok := Token{
		Type:    tt,
		Lexeme:  lex,
		Literal: lit,
		Loc:     Location{Line: l.tokStartLine, Column: l.tokStartCol},
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advance()
			l.start = l.cur
		default:
			return
		}
	}
}

// helpers

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}

// ----- errors -----

// LexErrorKind discriminates the scanner's error variants.
type LexErrorKind int

const (
	LexUnknownToken LexErrorKind = iota
	LexUnterminatedString
	LexUnableToParseNumber
)

// LexError is one scanning diagnostic. The scanner records it and resumes,
// so a single pass can report several.
type LexError struct {
	Kind    LexErrorKind
	Loc     Location
	Char    rune   // UnknownToken: the offending character
	Context string // UnknownToken: text of the offending line
	Text    string // UnableToParseNumber: the numeric lexeme
}

func (e *LexError) Error() string {
	switch e.Kind {
	case LexUnknownToken:
		return fmt.Sprintf("%s LexError: Unknown token '%c' in %q", e.Loc, e.Char, e.Context)
	case LexUnterminatedString:
		return fmt.Sprintf("%s LexError: Unterminated string", e.Loc)
	case LexUnableToParseNumber:
		return fmt.Sprintf("%s LexError: Unable to parse number: %q", e.Loc, e.Text)
	}
	return fmt.Sprintf("%s LexError", e.Loc)
}

func (e *LexError) Position() Location { return e.Loc }

func (l *Lexer) tokLoc() Location {
	return Location{Line: l.tokStartLine, Column: l.tokStartCol}
}

func (l *Lexer) lineText(line int) string {
	if line < 1 || line > len(l.lines) {
		return ""
	}
	return l.lines[line-1]
}

// ----- scanners -----

// scanString consumes a double-quoted literal. Lox strings have no escape
// sequences and may not span lines: a newline or the end of input before
// the closing quote records UnterminatedString at the opening quote, and
// recovery treats the rest of the line as consumed.
func (l *Lexer) scanString() {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			l.errors = append(l.errors, &LexError{
				Kind: LexUnterminatedString,
				Loc:  l.tokLoc(),
			})
			l.start = l.cur
			return
		}
		l.advance()
		if b == '"' {
			text := l.src[l.start+1 : l.cur-1]
			l.addToken(STRING, text)
			return
		}
	}
}

// scanIdentifier parses [A-Za-z_][A-Za-z0-9_]*
func (l *Lexer) scanIdentifier() string {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
	return l.src[l.start:l.cur]
}

// scanNumber parses digits with an optional single fractional part. The dot
// is consumed only when a digit follows, so "1." scans as Number, Dot.
func (l *Lexer) scanNumber() {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}

	if b, ok := l.peek(); ok && b == '.' {
		if b2, ok2 := l.peekN(1); ok2 && isDigit(b2) {
			l.advance() // consume '.'
			for {
				b, ok := l.peek()
				if !ok || !isDigit(b) {
					break
				}
				l.advance()
			}
		}
	}

	lex := l.src[l.start:l.cur]
	v, convErr := strconv.ParseFloat(lex, 64)
	if convErr != nil {
		// out-of-range literals land here too
		l.errors = append(l.errors, &LexError{
			Kind: LexUnableToParseNumber,
			Loc:  l.tokLoc(),
			Text: lex,
		})
		l.start = l.cur
		return
	}
	l.addToken(NUMBER, v)
}

// ignoreUntilNewline eats until '\n' or EOF.
func (l *Lexer) ignoreUntilNewline() {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			return
		}
		l.advance()
	}
}

// ----- main scanner -----

// scanToken consumes one lexeme: it either appends a token, records an
// error, or silently eats a comment.
func (l *Lexer) scanToken() {
	ch, _ := l.advance()

	switch ch {
	case '(':
		l.addToken(PAREN_LEFT, "(")
		return
	case ')':
		l.addToken(PAREN_RIGHT, ")")
		return
	case '{':
		l.addToken(BRACE_LEFT, "{")
		return
	case '}':
		l.addToken(BRACE_RIGHT, "}")
		return
	case ',':
		l.addToken(COMMA, ",")
		return
	case '.':
		l.addToken(DOT, ".")
		return
	case ';':
		l.addToken(SEMICOLON, ";")
		return
	case '+':
		l.addToken(PLUS, "+")
		return
	case '-':
		l.addToken(MINUS, "-")
		return
	case '*':
		l.addToken(STAR, "*")
		return
	}

	// Two-char operators and comment-or-slash
	switch ch {
	case '!':
		if b, ok := l.peek(); ok && b == '=' {
			l.advance()
			l.addToken(BANG_EQUAL, "!=")
			return
		}
		l.addToken(BANG, "!")
		return
	case '=':
		if b, ok := l.peek(); ok && b == '=' {
			l.advance()
			l.addToken(EQUAL_EQUAL, "==")
			return
		}
		l.addToken(EQUAL, "=")
		return
	case '<':
		if b, ok := l.peek(); ok && b == '=' {
			l.advance()
			l.addToken(LESS_EQUAL, "<=")
			return
		}
		l.addToken(LESS, "<")
		return
	case '>':
		if b, ok := l.peek(); ok && b == '=' {
			l.advance()
			l.addToken(GREATER_EQUAL, ">=")
			return
		}
		l.addToken(GREATER, ">")
		return
	case '/':
		if b, ok := l.peek(); ok && b == '/' {
			l.ignoreUntilNewline()
			l.start = l.cur
			return
		}
		l.addToken(SLASH, "/")
		return
	}

	// Strings
	if ch == '"' {
		l.scanString()
		return
	}

	// Numbers
	if isDigit(ch) {
		l.rewindToStart()
		l.scanNumber()
		return
	}

	// Identifiers / keywords
	if isAlpha(ch) {
		l.rewindToStart()
		lex := l.scanIdentifier()
		if tt, ok := keywords[lex]; ok {
			l.addToken(tt, lex)
			return
		}
		l.addToken(IDENTIFIER, lex)
		return
	}

	// Anything else is an unknown token. A non-ASCII byte is consumed as a
	// whole rune so the column count stays honest.
	r := rune(ch)
	if ch >= utf8.RuneSelf {
		l.cur--
		var size int
		r, size = utf8.DecodeRuneInString(l.src[l.cur:])
		l.cur += size
	}
	l.errors = append(l.errors, &LexError{
		Kind:    LexUnknownToken,
		Loc:     l.tokLoc(),
		Char:    r,
		Context: l.lineText(l.tokStartLine),
	})
	l.start = l.cur
}

// Scan tokenizes the entire source. The EOF token is placed one line past
// the last source line, column 1, whether or not the source ends with a
// newline.
func (l *Lexer) Scan() ScanResult {
	for {
		l.skipWhitespace()
		l.tokStartLine = l.line
		l.tokStartCol = l.col
		l.start = l.cur
		if l.isAtEnd() {
			break
		}
		l.scanToken()
	}

	l.tokens = append(l.tokens, Token{
		Type: EOF,
		Loc:  Location{Line: len(l.lines) + 1, Column: 1},
	})
	return ScanResult{Lines: l.lines, Tokens: l.tokens, Errors: l.errors}
}
