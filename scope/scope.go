// Package scope implements the stack-of-frames symbol table the body
// synthesiser opens, seeds, and queries while building a method body.
// It keeps strict stack semantics: LIFO open/close, innermost-first
// iteration, and no shadowing of freshly generated names.
package scope

import (
	"fmt"

	"github.com/derdrodt/absgen/ast"
	"github.com/derdrodt/absgen/rnd"
)

// Kind distinguishes what an Entry was defined as.
type Kind int

const (
	Field Kind = iota
	Var
	Callable
)

// Entry is one named, typed binding in scope. ReceiverTypes and ArgTypes
// are only meaningful for Callable entries.
type Entry struct {
	Kind          Kind
	Ty            ast.Type
	Ident         ast.Ident
	ReceiverTypes []ast.Type
	ArgTypes      []ast.Type
}

// Scope is an ordered stack of frames; each frame is an ordered sequence
// of entries. The stack is never empty: New seeds a root frame that lives
// for the whole body.
type Scope struct {
	frames [][]Entry
}

// New returns a Scope with a single, empty root frame.
func New() *Scope {
	return &Scope{frames: [][]Entry{{}}}
}

// Depth is the number of frames opened beyond the root, i.e. len(frames)-1.
func (s *Scope) Depth() int { return len(s.frames) - 1 }

// Open pushes a new empty frame.
func (s *Scope) Open() { s.frames = append(s.frames, nil) }

// Close pops the innermost frame. Closing the root frame is a
// programmer-model error: every Open must be paired with exactly one
// Close before the body terminates, and the root frame is never opened by
// a paired call.
func (s *Scope) Close() {
	if len(s.frames) <= 1 {
		panic("scope: Close called with no open frame")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Define appends entry to the innermost frame.
func (s *Scope) Define(entry Entry) {
	i := len(s.frames) - 1
	s.frames[i] = append(s.frames[i], entry)
}

// DefineField defines a Field entry.
func (s *Scope) DefineField(ty ast.Type, ident ast.Ident) {
	s.Define(Entry{Kind: Field, Ty: ty, Ident: ident})
}

// DefineVar defines a Var entry.
func (s *Scope) DefineVar(ty ast.Type, ident ast.Ident) {
	s.Define(Entry{Kind: Var, Ty: ty, Ident: ident})
}

// DefineCallable defines a Callable entry with the given receiver types
// (the interfaces it's available on) and declared argument types.
func (s *Scope) DefineCallable(ty ast.Type, ident ast.Ident, receiverTypes, argTypes []ast.Type) {
	s.Define(Entry{Kind: Callable, Ty: ty, Ident: ident, ReceiverTypes: receiverTypes, ArgTypes: argTypes})
}

// Iter returns every entry across the stack, innermost frame first.
// Duplicates across frames are preserved (though the freshness invariant
// normally prevents them from arising).
func (s *Scope) Iter() []Entry {
	var out []Entry
	for i := len(s.frames) - 1; i >= 0; i-- {
		out = append(out, s.frames[i]...)
	}
	return out
}

func (e Entry) isOfType(ty ast.Type) bool {
	if e.Ty.Ident.Name != ty.Ident.Name {
		return false
	}
	if ty.IsFut() {
		return e.Ty.IsFut() && e.Ty.Payload().Ident.Name == ty.Payload().Ident.Name
	}
	return true
}

// OfType returns entries with Kind != Callable whose declared type
// matches ty by identifier; when ty.IsFut, the payload identifier must
// also match. Interface-subtype matching is by identifier equality only.
func (s *Scope) OfType(ty ast.Type) []Entry {
	var out []Entry
	for _, e := range s.Iter() {
		if e.Kind != Callable && e.isOfType(ty) {
			out = append(out, e)
		}
	}
	return out
}

// HasOfType reports whether OfType(ty) is non-empty.
func (s *Scope) HasOfType(ty ast.Type) bool { return len(s.OfType(ty)) > 0 }

// CallablesOfType returns Kind == Callable entries whose return type
// matches ty by identifier only.
func (s *Scope) CallablesOfType(ty ast.Type) []Entry {
	var out []Entry
	for _, e := range s.Iter() {
		if e.Kind == Callable && e.Ty.Ident.Name == ty.Ident.Name {
			out = append(out, e)
		}
	}
	return out
}

// AssignableEntry returns a uniform pick over non-callable entries. It
// aborts if there are none. A body that has opened a scope with the
// standard seed population always has at least the six seed fields, so
// this should never fire in practice.
func (s *Scope) AssignableEntry(r *rnd.Source) Entry {
	var candidates []Entry
	for _, e := range s.Iter() {
		if e.Kind != Callable {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		panic("scope: AssignableEntry called with no assignable entries")
	}
	return rnd.Choose(r, candidates)
}

// FreshVarIdent repeatedly samples six-letter names (first character
// lowercase; subsequent characters uppercase or lowercase with equal
// probability per position) until one is not already present anywhere in
// the stack.
func (s *Scope) FreshVarIdent(r *rnd.Source) ast.Ident {
	name := generateName(r)
	for s.contains(name) {
		name = generateName(r)
	}
	return ast.NewIdent(name)
}

func (s *Scope) contains(name string) bool {
	for _, e := range s.Iter() {
		if e.Ident.Name == name {
			return true
		}
	}
	return false
}

func randChar(r *rnd.Source, i int) byte {
	lower := i == 0 || r.Chance(0.5)
	idx := byte(r.Float64() * 26)
	if lower {
		return 'a' + idx
	}
	return 'A' + idx
}

func generateName(r *rnd.Source) string {
	buf := make([]byte, 6)
	for i := range buf {
		buf[i] = randChar(r, i)
	}
	return string(buf)
}

// String summarises the scope for debugging: its depth and its total
// entry count. Not used by any synthesiser rule, only diagnostics.
func (s *Scope) String() string {
	return fmt.Sprintf("scope(depth=%d, entries=%d)", s.Depth(), len(s.Iter()))
}
