package ast

import "strings"

// Annotation is a metadata tag attached to a declaration. TypedAnnotation
// carries a type and a payload expression; UntypedAnnotation carries only
// the payload.
type Annotation interface {
	Node
	annotationNode()
}

// TypedAnnotation renders as `[T: expr]`, e.g. `[Spec: Requires(i != null)]`.
type TypedAnnotation struct {
	Ty   Type
	Expr PureExpr
}

func (a TypedAnnotation) String() string { return "[" + a.Ty.String() + ": " + a.Expr.String() + "]" }
func (TypedAnnotation) annotationNode()  {}

// UntypedAnnotation renders as `[expr]`, e.g. `[NonNull]` for a bare
// identifier payload.
type UntypedAnnotation struct {
	Expr PureExpr
}

func (a UntypedAnnotation) String() string { return "[" + a.Expr.String() + "]" }
func (UntypedAnnotation) annotationNode()  {}

// Annotations is a sequence of annotations; they render space-separated.
type Annotations []Annotation

func (as Annotations) String() string {
	parts := make([]string, len(as))
	for i, a := range as {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

// NoAnnotations is the empty annotation sequence.
func NoAnnotations() Annotations { return nil }
