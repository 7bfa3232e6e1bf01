package module

import (
	"github.com/derdrodt/absgen/ast"
	"github.com/derdrodt/absgen/synth"
)

// nonNullRetAnno builds the annotation module.Build attaches to a
// non-null-returning method's signature. Location has no annotation set
// at all (ok=false).
func nonNullRetAnno(target synth.Target) (ast.Annotation, bool) {
	switch target {
	case synth.Crowbar:
		return ast.TypedAnnotation{
			Ty:   ast.NewType("Spec"),
			Expr: ast.DataConstrCall(ast.NewIdent("Ensures"), ast.NotEqual(ast.VarUse(ast.NewIdent("result")), ast.Null())),
		}, true
	case synth.NullableExtension:
		return createNullableNonNull(), true
	default:
		return nil, false
	}
}

func createNullableNonNull() ast.Annotation {
	return ast.UntypedAnnotation{Expr: ast.VarUse(ast.NewIdent("NonNull"))}
}

func createNullableNullable() ast.Annotation {
	return ast.UntypedAnnotation{Expr: ast.VarUse(ast.NewIdent("Nullable"))}
}

// createCrowbarNonNullParam builds `[Spec: Requires(varName != null)]`,
// attached to the generated method's non-null parameter under the
// Crowbar target.
func createCrowbarNonNullParam(varName ast.Ident) ast.Annotation {
	return ast.TypedAnnotation{
		Ty:   ast.NewType("Spec"),
		Expr: ast.DataConstrCall(ast.NewIdent("Requires"), ast.NotEqual(ast.VarUse(varName), ast.Null())),
	}
}
