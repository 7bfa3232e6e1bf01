package synth

import (
	"github.com/derdrodt/absgen/ast"
	"github.com/derdrodt/absgen/rnd"
	"github.com/derdrodt/absgen/scope"
)

// ParamIdent is the generated method's sole parameter name. Every
// emitted body null-checks and returns this exact identifier.
var ParamIdent = ast.NewIdent("i")

// Generator is the method-body synthesiser. One Generator produces
// exactly one method body; callers construct a fresh Generator per
// class.
type Generator struct {
	scope          *scope.Scope
	opts           Options
	rng            *rnd.Source
	hasNullCheckIf bool
}

// New builds a Generator with a fresh, empty scope.
func New(opts Options, rng *rnd.Source) *Generator {
	return &Generator{scope: scope.New(), opts: opts, rng: rng}
}

// Scope exposes the generator's scope for introspection (tests, and any
// future caller that wants to assert on the seed population). Nothing in
// this package mutates it from the outside.
func (g *Generator) Scope() *scope.Scope { return g.scope }

func isObjType(ty ast.Type) bool {
	return ty.Ident.Name == "I" || ty.Ident.Name == "J"
}

// GenerateBody produces one method body: it seeds the scope with the six
// standard fields and four standard callables, emits a random number of
// top-level statements, guarantees a null-check-if against ParamIdent is
// present, and ends with `return i;`.
func (g *Generator) GenerateBody() ast.Block {
	size := g.rng.ExpInt(float64(g.opts.AvgMethBodySize))

	g.seedScope()

	stmts := g.generateSizedBlockStmts(size)

	if !g.hasNullCheckIf {
		stmts = append(stmts, g.generateNullCheckIf())
	}
	stmts = append(stmts, g.generateReturn())

	return ast.Block{Stmts: stmts}
}

func (g *Generator) seedScope() {
	g.scope.DefineField(ast.IntType, ast.NewIdent("fint"))
	g.scope.DefineField(ast.BoolType, ast.NewIdent("fb"))
	g.scope.DefineField(ast.FutType(ast.IntType), ast.NewIdent("ff"))
	g.scope.DefineField(ast.FutType(ast.BoolType), ast.NewIdent("ffb"))
	g.scope.DefineField(ast.NewType("I"), ast.NewIdent("fi"))
	g.scope.DefineField(ast.NewType("J"), ast.NewIdent("fj"))

	g.scope.DefineCallable(ast.IntType, ast.NewIdent("n"), []ast.Type{ast.NewType("I")}, nil)
	g.scope.DefineCallable(ast.BoolType, ast.NewIdent("b"), []ast.Type{ast.NewType("I")}, nil)
	g.scope.DefineCallable(ast.UnitType, ast.NewIdent("m"), []ast.Type{ast.NewType("J")}, []ast.Type{ast.IntType})
	g.scope.DefineCallable(ast.NewType("I"), ast.NewIdent("getI"), []ast.Type{ast.NewType("J")}, []ast.Type{ast.BoolType, ast.IntType})
}

// GenerateBlock produces a fresh nested block of a random size drawn from
// AvgBlockSize, opening and closing its own scope frame.
func (g *Generator) GenerateBlock() ast.Block {
	size := g.rng.ExpInt(float64(g.opts.AvgBlockSize))
	return ast.Block{Stmts: g.generateSizedBlockStmts(size)}
}

func (g *Generator) generateSizedBlockStmts(size uint64) []ast.Stmt {
	g.scope.Open()
	stmts := make([]ast.Stmt, 0, size)
	for i := uint64(0); i < size; i++ {
		stmts = append(stmts, g.generateStmt())
	}
	g.scope.Close()
	return stmts
}

// generateStmt dispatches one top-level-or-nested statement: an if
// (generic, or the distinguished null-check when none has fired yet),
// a declaration, or a plain assignment.
func (g *Generator) generateStmt() ast.Stmt {
	if g.scope.Depth() < int(g.opts.MaxDepth) && g.rng.Chance(g.opts.BranchRate) {
		if !g.hasNullCheckIf && g.scope.Depth() == 0 && g.rng.Chance(0.3) {
			return g.generateNullCheckIf()
		}
		return g.generateIf()
	}
	if g.rng.Chance(g.opts.DeclareToAssign) {
		return g.generateDecl()
	}
	return g.generateAssign()
}

func (g *Generator) generateReturn() ast.Stmt {
	return ast.ReturnStmt{Expr: ast.IdentExpr{Name: ParamIdent}}
}

// generateIf builds a generic if: a Bool condition, a fresh then-block,
// and an else-block with probability ElseRatio.
func (g *Generator) generateIf() ast.Stmt {
	cond := g.generatePureExpr(ast.BoolType)
	then := g.GenerateBlock()

	var elseBlock *ast.Block
	if g.rng.Chance(g.opts.ElseRatio) {
		b := g.GenerateBlock()
		elseBlock = &b
	}

	return ast.IfStmt{Cond: cond, Then: then, Else: elseBlock}
}

// generateNullCheckIf builds the distinguished null-check-if: condition
// `i == null`, then-block ending in `i = new D();`. Sets hasNullCheckIf
// so GenerateBody's fallback doesn't append a second one.
func (g *Generator) generateNullCheckIf() ast.Stmt {
	g.hasNullCheckIf = true

	cond := ast.BinaryExpr{Op: ast.OpEq, Left: ast.IdentExpr{Name: ParamIdent}, Right: ast.NullExpr{}}

	then := g.GenerateBlock()
	then.Stmts = append(then.Stmts, ast.AssignStmt{
		Name:  ParamIdent,
		Value: ast.NewExpr{Class: ast.NewIdent("D")},
	})

	var elseBlock *ast.Block
	if g.rng.Chance(g.opts.ElseRatio) {
		b := g.GenerateBlock()
		elseBlock = &b
	}

	return ast.IfStmt{Cond: cond, Then: then, Else: elseBlock}
}

// generateDecl picks a type available in scope (or literal-bearing),
// draws a fresh name, generates a value of that type, and defines the
// name in the current frame.
func (g *Generator) generateDecl() ast.Stmt {
	ty := g.randAvailTy(true)
	name := g.scope.FreshVarIdent(g.rng)
	init := g.generateExpr(ty)

	g.scope.DefineVar(ty, name)

	return ast.VarDeclStmt{VarType: ty, Name: name, Value: init}
}

// generateAssign picks a random non-callable scope entry and assigns a
// freshly generated value of its type.
func (g *Generator) generateAssign() ast.Stmt {
	entry := g.scope.AssignableEntry(g.rng)
	value := g.generateExpr(entry.Ty)
	return ast.AssignStmt{Name: entry.Ident, Value: value}
}

// generateExpr produces the right-hand side of a var-decl or assign: an
// opportunistic effectful expression when one of rules 1-4 fires, a pure
// expression of ty otherwise (rule 5, which always succeeds).
func (g *Generator) generateExpr(ty ast.Type) ast.Node {
	futTy := ast.FutType(ty)

	switch {
	case g.opts.Target != Location && !ty.IsFut() && g.scope.HasOfType(futTy) && g.rng.Chance(0.1):
		return ast.GetExpr{Future: g.generatePureExpr(futTy)}

	case isObjType(ty) && g.rng.Chance(0.5):
		class := "D"
		if ty.Ident.Name == "J" {
			class = "E"
		}
		return ast.NewExpr{Class: ast.NewIdent(class)}

	case g.opts.Target != Location && ty.IsFut() && g.rng.Chance(0.7) && len(g.scope.CallablesOfType(ty.Payload())) > 0:
		return g.generateAsyncCall(ty.Payload())

	case g.opts.Target != Location && g.rng.Chance(0.1) && len(g.scope.CallablesOfType(ty)) > 0:
		return g.generateSyncCall(ty)

	default:
		return g.generatePureExpr(ty)
	}
}

func (g *Generator) generateAsyncCall(retTy ast.Type) ast.Node {
	f := rnd.Choose(g.rng, g.scope.CallablesOfType(retTy))
	receiver := g.generatePureExpr(rnd.Choose(g.rng, f.ReceiverTypes))
	args := make([]ast.PureExpr, len(f.ArgTypes))
	for i, a := range f.ArgTypes {
		args[i] = g.generatePureExpr(a)
	}
	return ast.AsyncCallExpr{Receiver: receiver, Method: f.Ident, Args: args}
}

func (g *Generator) generateSyncCall(retTy ast.Type) ast.Node {
	f := rnd.Choose(g.rng, g.scope.CallablesOfType(retTy))
	receiver := g.generatePureExpr(rnd.Choose(g.rng, f.ReceiverTypes))
	args := make([]ast.PureExpr, len(f.ArgTypes))
	for i, a := range f.ArgTypes {
		args[i] = g.generatePureExpr(a)
	}
	return ast.SyncCallExpr{Receiver: receiver, Method: f.Ident, Args: args}
}

// randAvailTy samples from the fixed weighted menu until it draws a type
// that is either literal-bearing or currently inhabited in scope.
func (g *Generator) randAvailTy(allowFut bool) ast.Type {
	for {
		t := g.randTy(allowFut)
		if t.HasLiteral() || g.scope.HasOfType(t) {
			return t
		}
	}
}

func (g *Generator) randTy(allowFut bool) ast.Type {
	if !allowFut || g.rng.Chance(0.8) {
		menu := []ast.Type{ast.IntType, ast.IntType, ast.BoolType, ast.BoolType, ast.NewType("I"), ast.NewType("J")}
		return rnd.Choose(g.rng, menu)
	}
	return ast.FutType(g.randTy(false))
}
