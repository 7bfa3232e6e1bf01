package synth

import (
	"github.com/derdrodt/absgen/ast"
	"github.com/derdrodt/absgen/diag"
	"github.com/derdrodt/absgen/rnd"
)

// generatePureExpr is the top of the precedence-descending chain:
// pure -> or -> and -> not -> addSub -> mulDiv -> unaryMinus -> atom.
// It additionally handles the two Bool-result escape hatches (an Int
// comparison, and an equality between two freshly drawn same-typed
// operands) before delegating to generateOr.
func (g *Generator) generatePureExpr(ty ast.Type) ast.PureExpr {
	if ty.IsBool() && g.rng.Chance(0.15) {
		ops := []ast.BinaryOp{ast.OpEq, ast.OpLe, ast.OpGe, ast.OpNeq, ast.OpGt, ast.OpLt}
		op := rnd.Choose(g.rng, ops)
		return ast.BinaryExpr{Op: op, Left: g.generateOr(ast.IntType), Right: g.generateOr(ast.IntType)}
	}

	if ty.IsBool() && g.rng.Chance(0.15) {
		t := g.randAvailTy(true)
		return ast.BinaryExpr{Op: ast.OpEq, Left: g.generateOr(t), Right: g.generateOr(t)}
	}

	return g.generateOr(ty)
}

func (g *Generator) generateOr(ty ast.Type) ast.PureExpr {
	if ty.IsBool() && g.rng.Chance(0.2) {
		op := ast.OpEq
		if !g.opts.BuggyBoolOperators {
			op = ast.OpOr
		}
		return ast.BinaryExpr{Op: op, Left: g.generateAnd(ty), Right: g.generateOr(ty)}
	}
	return g.generateAnd(ty)
}

func (g *Generator) generateAnd(ty ast.Type) ast.PureExpr {
	if ty.IsBool() && g.rng.Chance(0.2) {
		op := ast.OpEq
		if !g.opts.BuggyBoolOperators {
			op = ast.OpAnd
		}
		return ast.BinaryExpr{Op: op, Left: g.generateNot(ty), Right: g.generateAnd(ty)}
	}
	return g.generateNot(ty)
}

func (g *Generator) generateNot(ty ast.Type) ast.PureExpr {
	if ty.IsBool() && g.rng.Chance(0.2) {
		return ast.UnaryExpr{Op: ast.OpNot, Operand: g.generateAddSub(ty)}
	}
	return g.generateAddSub(ty)
}

func (g *Generator) generateAddSub(ty ast.Type) ast.PureExpr {
	if ty.IsInt() && g.rng.Chance(0.2) {
		op := rnd.Choose(g.rng, []ast.BinaryOp{ast.OpAdd, ast.OpSub})
		return ast.BinaryExpr{Op: op, Left: g.generateAddSub(ty), Right: g.generateMulDiv(ty)}
	}
	return g.generateMulDiv(ty)
}

func (g *Generator) generateMulDiv(ty ast.Type) ast.PureExpr {
	if ty.IsInt() && g.rng.Chance(0.2) {
		return ast.BinaryExpr{Op: ast.OpMul, Left: g.generateMulDiv(ty), Right: g.generateUnaryMinus(ty)}
	}
	return g.generateUnaryMinus(ty)
}

// generateUnaryMinus is disabled by default: Options.EnableUnaryMinus
// must be set to have this level fire at all, at the same 0.2 rate as
// its sibling levels.
func (g *Generator) generateUnaryMinus(ty ast.Type) ast.PureExpr {
	if g.opts.EnableUnaryMinus && ty.IsInt() && g.rng.Chance(0.2) {
		return ast.UnaryExpr{Op: ast.OpNeg, Operand: g.generateAtom(ty)}
	}
	return g.generateAtom(ty)
}

// generateAtom is the base case: a literal when ty.HasLiteral wins its
// coin flip, otherwise a uniform pick from scope.OfType(ty). An empty
// OfType result here is a programmer-model error: randAvailTy is
// supposed to guarantee an inhabitant exists before this is reached.
func (g *Generator) generateAtom(ty ast.Type) ast.PureExpr {
	if ty.HasLiteral() && g.rng.Chance(0.7) {
		lit, _ := ty.SampleLiteral(g.rng)
		return lit
	}

	avail := g.scope.OfType(ty)
	if len(avail) == 0 {
		diag.Abort("generateAtom", "no suitable ident for type %s", ty)
	}
	entry := rnd.Choose(g.rng, avail)
	return ast.IdentExpr{Name: entry.Ident}
}
