// Package module wraps generated classes in the fixed module skeleton:
// two interfaces, two concrete classes, and opts.NumRandClasses random
// classes.
package module

import (
	"fmt"

	"github.com/derdrodt/absgen/ast"
	"github.com/derdrodt/absgen/rnd"
	"github.com/derdrodt/absgen/synth"
)

// Build assembles a complete module: the Spec datatype (Crowbar only),
// interfaces I and J, classes D and E, and opts.NumRandClasses classes
// named Generated_k, each with a gen(I) -> I method whose body comes from
// synth.Generator.
func Build(opts synth.Options, rng *rnd.Source) ast.Module {
	b := ast.NewModuleBuilder(ast.NewIdent("MockABS"))

	if opts.Target == synth.Crowbar {
		b.AddItem(specDataType())
	}

	b.AddItem(interfaceI())
	b.AddItem(interfaceJ(opts.Target))
	b.AddItem(classD())
	b.AddItem(classE(opts.Target))

	for i := uint32(0); i < opts.NumRandClasses; i++ {
		name := fmt.Sprintf("Generated_%d", i)
		b.AddItem(classGenerated(name, opts, rng))
	}

	return b.Build()
}

// specDataType builds `data Spec = ObjInv(Bool) | Ensures(Bool) |
// Requires(Bool) | WhileInv(Bool);`.
func specDataType() ast.DataTypeDecl {
	b := ast.NewDataTypeBuilder(ast.NewIdent("Spec"))
	for _, name := range []string{"ObjInv", "Ensures", "Requires", "WhileInv"} {
		b.AddConstructor(ast.NewDataConstrBuilder(ast.NewIdent(name)).AddParam(ast.BoolType).Build())
	}
	return b.Build()
}

func interfaceI() ast.InterfaceDecl {
	return ast.NewInterfaceBuilder(ast.NewIdent("I")).
		AddSig(ast.NewMethodSigBuilder(ast.NewIdent("n"), ast.IntType).Build()).
		AddSig(ast.NewMethodSigBuilder(ast.NewIdent("b"), ast.BoolType).Build()).
		Build()
}

func interfaceJ(target synth.Target) ast.InterfaceDecl {
	getISig := ast.NewMethodSigBuilder(ast.NewIdent("getI"), ast.NewType("I")).
		AddParam(ast.NewParam(ast.BoolType, ast.NewIdent("flag"))).
		AddParam(ast.NewParam(ast.IntType, ast.NewIdent("c")))

	if anno, ok := nonNullRetAnno(target); ok {
		getISig.WithAnnos(ast.Annotations{anno})
	}

	return ast.NewInterfaceBuilder(ast.NewIdent("J")).
		AddSig(ast.NewMethodSigBuilder(ast.NewIdent("m"), ast.UnitType).
			AddParam(ast.NewParam(ast.IntType, ast.NewIdent("v"))).
			Build()).
		AddSig(getISig.Build()).
		Build()
}

func classD() ast.ClassDecl {
	return ast.NewClassBuilder(ast.NewIdent("D")).
		Implements(ast.NewIdent("I")).
		AddMethod(ast.NewMethodDecl(
			ast.NewMethodSigBuilder(ast.NewIdent("n"), ast.IntType).Build(),
			ast.Block{Stmts: []ast.Stmt{ast.ReturnStmt{Expr: ast.IntLiteral(0)}}},
		)).
		AddMethod(ast.NewMethodDecl(
			ast.NewMethodSigBuilder(ast.NewIdent("b"), ast.BoolType).Build(),
			ast.Block{Stmts: []ast.Stmt{ast.ReturnStmt{Expr: ast.BoolLiteral(false)}}},
		)).
		Build()
}

// classE implements J; its getI body binds `new D()` to a local `res`
// before returning it, rather than returning the new object directly.
func classE(target synth.Target) ast.ClassDecl {
	getISig := ast.NewMethodSigBuilder(ast.NewIdent("getI"), ast.NewType("I")).
		AddParam(ast.NewParam(ast.BoolType, ast.NewIdent("flag"))).
		AddParam(ast.NewParam(ast.IntType, ast.NewIdent("c")))

	if target == synth.NullableExtension {
		getISig.WithAnnos(ast.Annotations{createNullableNonNull()})
	}

	getIBody := ast.Block{Stmts: []ast.Stmt{
		ast.VarDeclStmt{VarType: ast.NewType("I"), Name: ast.NewIdent("res"), Value: ast.NewExpr{Class: ast.NewIdent("D")}},
		ast.ReturnStmt{Expr: ast.IdentExpr{Name: ast.NewIdent("res")}},
	}}

	return ast.NewClassBuilder(ast.NewIdent("E")).
		Implements(ast.NewIdent("J")).
		AddMethod(ast.NewMethodDecl(
			ast.NewMethodSigBuilder(ast.NewIdent("m"), ast.UnitType).
				AddParam(ast.NewParam(ast.IntType, ast.NewIdent("v"))).
				Build(),
			ast.Block{},
		)).
		AddMethod(ast.NewMethodDecl(getISig.Build(), getIBody)).
		Build()
}

// classGenerated builds one Generated_k class: the six standard fields
// (matching synth.Generator's seed population exactly, so the body's
// identifier references resolve against the declared fields) and a
// single gen(I i) -> I method synthesised by synth.Generator.
func classGenerated(name string, opts synth.Options, rng *rnd.Source) ast.ClassDecl {
	return ast.NewClassBuilder(ast.NewIdent(name)).
		AddField(ast.NewFieldWithInit(ast.IntType, ast.NewIdent("fint"), ast.IntLiteral(0))).
		AddField(ast.NewFieldWithInit(ast.BoolType, ast.NewIdent("fb"), ast.BoolLiteral(true))).
		AddField(ast.NewField(ast.FutType(ast.IntType), ast.NewIdent("ff"))).
		AddField(ast.NewField(ast.FutType(ast.BoolType), ast.NewIdent("ffb"))).
		AddField(ast.NewFieldWithInit(ast.NewType("I"), ast.NewIdent("fi"), ast.Null())).
		AddField(ast.NewFieldWithInit(ast.NewType("J"), ast.NewIdent("fj"), ast.Null())).
		AddMethod(createRandMethod(opts, rng)).
		Build()
}

// createRandMethod builds the `gen(I i) -> I` method: the return
// annotation, the parameter annotation (style depends on target), and
// the synthesised body.
func createRandMethod(opts synth.Options, rng *rnd.Source) ast.MethodDecl {
	sig := ast.NewMethodSigBuilder(ast.NewIdent("gen"), ast.NewType("I"))
	if anno, ok := nonNullRetAnno(opts.Target); ok {
		sig.WithAnnos(ast.Annotations{anno})
	}

	param := ast.NewParam(ast.NewType("I"), synth.ParamIdent)
	switch opts.Target {
	case synth.Crowbar:
		param = ast.NewParamWithAnnos(ast.NewType("I"), synth.ParamIdent, ast.Annotations{createCrowbarNonNullParam(synth.ParamIdent)})
	case synth.NullableExtension:
		param = ast.NewParamWithAnnos(ast.NewType("I"), synth.ParamIdent, ast.Annotations{createNullableNullable()})
	}
	sig.AddParam(param)

	body := synth.New(opts, rng).GenerateBody()

	return ast.NewMethodDecl(sig.Build(), body)
}
