package ast

import (
	"fmt"
	"strings"
)

// Type is a nominal type with an identifier and, for parametric types
// (currently only Fut), an ordered sequence of argument types.
//
// ABS syntax:
//
//	Int
//	Bool
//	I
//	Fut<Int>
type Type struct {
	Ident Ident
	Args  []Type
}

// NewType builds a non-parametric (or already-applied) type by name.
func NewType(name string, args ...Type) Type {
	return Type{Ident: NewIdent(name), Args: args}
}

// Predefined base types reused across the generator.
var (
	IntType  = NewType("Int")
	BoolType = NewType("Bool")
	UnitType = NewType("Unit")
)

// FutType wraps a payload type as Fut<payload>.
func FutType(payload Type) Type {
	return Type{Ident: NewIdent("Fut"), Args: []Type{payload}}
}

func (t Type) IsInt() bool  { return t.Ident.Name == "Int" && len(t.Args) == 0 }
func (t Type) IsBool() bool { return t.Ident.Name == "Bool" && len(t.Args) == 0 }
func (t Type) IsUnit() bool { return t.Ident.Name == "Unit" && len(t.Args) == 0 }
func (t Type) IsFut() bool  { return t.Ident.Name == "Fut" && len(t.Args) == 1 }

// HasLiteral reports whether values of t can be drawn as a literal.
func (t Type) HasLiteral() bool { return t.IsInt() || t.IsBool() }

// Payload returns the wrapped type of a Fut<T>. It panics if t is not a
// future type. Callers are expected to have checked IsFut first.
func (t Type) Payload() Type {
	if !t.IsFut() {
		panic(fmt.Sprintf("ast: Payload called on non-future type %s", t))
	}
	return t.Args[0]
}

// Equal compares types by identifier and, recursively, by argument
// types. Interface subtyping in this generator's fixed world is
// identifier equality only, never structural widening.
func (t Type) Equal(other Type) bool {
	if t.Ident.Name != other.Ident.Name || len(t.Args) != len(other.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// Randomizer is the minimal randomness capability SampleLiteral needs. Both
// *math/rand.Rand and *rnd.Source satisfy it, so this package stays free of
// a dependency on the rnd package (and of anything beyond the standard
// library) while still letting higher layers supply their own source.
type Randomizer interface {
	Intn(n int) int
}

// SampleLiteral draws a literal of type t: an Int uniformly from [-500,
// 500) or a Bool uniformly from {True, False}. ok is false for any type
// without a literal form.
func (t Type) SampleLiteral(r Randomizer) (lit Literal, ok bool) {
	switch {
	case t.IsInt():
		return IntLiteral(r.Intn(1000) - 500), true
	case t.IsBool():
		return BoolLiteral(r.Intn(2) == 0), true
	default:
		return Literal{}, false
	}
}

func (t Type) String() string {
	if len(t.Args) == 0 {
		return t.Ident.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", t.Ident.Name, strings.Join(parts, ", "))
}
