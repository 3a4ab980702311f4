// interner.go: append-only string arena backing StringLiteral values
package loxi

import "fmt"

// Sym is an opaque handle into an Interner. Two handles from the same
// interner are equal exactly when the interned texts are equal.
type Sym uint32

// Interner deduplicates strings into stable handles. It is append-only and
// not safe for concurrent use; each Interpreter owns exactly one and threads
// it explicitly through parsing and evaluation (no package-level state).
type Interner struct {
	lookup map[string]Sym
	texts  []string
}

func NewInterner() *Interner {
	return &Interner{lookup: make(map[string]Sym)}
}

// Intern returns the handle for text, allocating one on first sight.
func (in *Interner) Intern(text string) Sym {
	if s, ok := in.lookup[text]; ok {
		return s
	}
	s := Sym(len(in.texts))
	in.texts = append(in.texts, text)
	in.lookup[text] = s
	return s
}

// Resolve returns the text behind a handle.
func (in *Interner) Resolve(s Sym) (string, bool) {
	if int(s) >= len(in.texts) {
		return "", false
	}
	return in.texts[s], true
}

// MustResolve resolves a handle that is known to belong to this interner;
// a foreign handle is an internal invariant violation.
func (in *Interner) MustResolve(s Sym) string {
	text, ok := in.Resolve(s)
	if !ok {
		panic(fmt.Sprintf("loxi: internal error: unknown interner handle %d", uint32(s)))
	}
	return text
}

// Len reports how many distinct strings have been interned.
func (in *Interner) Len() int { return len(in.texts) }
