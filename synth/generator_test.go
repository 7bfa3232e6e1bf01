package synth

import (
	"strings"
	"testing"

	"github.com/derdrodt/absgen/ast"
	"github.com/derdrodt/absgen/rnd"
)

func countNullChecks(b ast.Block) int {
	n := 0
	for _, s := range b.Stmts {
		ifs, ok := s.(ast.IfStmt)
		if !ok {
			continue
		}
		bin, ok := ifs.Cond.(ast.BinaryExpr)
		if ok && bin.Op == ast.OpEq {
			if _, isIdent := bin.Left.(ast.IdentExpr); isIdent {
				if _, isNull := bin.Right.(ast.NullExpr); isNull {
					n++
				}
			}
		}
	}
	return n
}

func TestGenerateBodyEndsInReturnI(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		opts := DefaultOptions()
		g := New(opts, rnd.NewSource(seed))
		body := g.GenerateBody()

		last := body.Stmts[len(body.Stmts)-1]
		ret, ok := last.(ast.ReturnStmt)
		if !ok {
			t.Fatalf("seed %d: last stmt is %T, want ReturnStmt", seed, last)
		}
		if ident, ok := ret.Expr.(ast.IdentExpr); !ok || ident.Name.Name != "i" {
			t.Fatalf("seed %d: return expr = %v, want ident i", seed, ret.Expr)
		}
	}
}

func TestGenerateBodyHasExactlyOneNullCheck(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		opts := DefaultOptions()
		g := New(opts, rnd.NewSource(seed))
		body := g.GenerateBody()

		if n := countNullChecks(body); n != 1 {
			t.Fatalf("seed %d: found %d null checks, want exactly 1", seed, n)
		}
	}
}

func TestGenerateBodyNullCheckAssignsNewD(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		opts := DefaultOptions()
		g := New(opts, rnd.NewSource(seed))
		body := g.GenerateBody()

		var found bool
		for _, s := range body.Stmts {
			ifs, ok := s.(ast.IfStmt)
			if !ok {
				continue
			}
			bin, ok := ifs.Cond.(ast.BinaryExpr)
			if !ok || bin.Op != ast.OpEq {
				continue
			}
			if _, isNull := bin.Right.(ast.NullExpr); !isNull {
				continue
			}
			if len(ifs.Then.Stmts) == 0 {
				continue
			}
			last := ifs.Then.Stmts[len(ifs.Then.Stmts)-1]
			assign, ok := last.(ast.AssignStmt)
			if !ok || assign.Name.Name != "i" {
				continue
			}
			newExpr, ok := assign.Value.(ast.NewExpr)
			if ok && newExpr.Class.Name == "D" {
				found = true
			}
		}
		if !found {
			t.Fatalf("seed %d: no null-check-if with `i = new D();` found", seed)
		}
	}
}

func TestBoundaryZeroMethBodySize(t *testing.T) {
	opts := DefaultOptions()
	opts.AvgMethBodySize = 0
	g := New(opts, rnd.NewSource(1))
	body := g.GenerateBody()

	if len(body.Stmts) < 2 {
		t.Fatalf("expected at least the null-check-if and return, got %d stmts", len(body.Stmts))
	}
	last := body.Stmts[len(body.Stmts)-1]
	if _, ok := last.(ast.ReturnStmt); !ok {
		t.Fatalf("last stmt is %T, want ReturnStmt", last)
	}
}

func TestBoundaryMaxDepthZeroSuppressesIf(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxDepth = 0
	opts.BranchRate = 1.0
	g := New(opts, rnd.NewSource(3))
	body := g.GenerateBody()

	for i, s := range body.Stmts[:len(body.Stmts)-1] {
		if ifs, ok := s.(ast.IfStmt); ok {
			bin, isBin := ifs.Cond.(ast.BinaryExpr)
			isNullCheck := isBin && bin.Op == ast.OpEq
			if !isNullCheck {
				t.Fatalf("stmt %d is a generic if %v, want none when maxDepth=0", i, s)
			}
		}
	}
}

func TestBoundaryTargetLocationNeverEmitsSyncCall(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		opts := DefaultOptions()
		opts.Target = Location
		opts.NumRandClasses = 1
		g := New(opts, rnd.NewSource(seed))
		body := g.GenerateBody()

		var walk func(n ast.Node)
		var found bool
		walk = func(n ast.Node) {
			if found {
				return
			}
			switch v := n.(type) {
			case ast.SyncCallExpr:
				found = true
			case ast.Block:
				for _, s := range v.Stmts {
					walk(s)
				}
			case ast.IfStmt:
				walk(v.Cond)
				walk(v.Then)
				if v.Else != nil {
					walk(*v.Else)
				}
			case ast.VarDeclStmt:
				walk(v.Value)
			case ast.AssignStmt:
				walk(v.Value)
			case ast.ReturnStmt:
				walk(v.Expr)
			}
		}
		walk(body)
		if found {
			t.Fatalf("seed %d: found a sync call under target=Location", seed)
		}
	}
}

func TestGenerateBodyOutputIsDeterministic(t *testing.T) {
	a := New(DefaultOptions(), rnd.NewSource(55)).GenerateBody().String()
	b := New(DefaultOptions(), rnd.NewSource(55)).GenerateBody().String()
	if a != b {
		t.Error("identical seed and options must produce byte-identical output")
	}
}

func TestGenerateBodyProducesNonEmptyOutput(t *testing.T) {
	body := New(DefaultOptions(), rnd.NewSource(7)).GenerateBody()
	s := body.String()
	if !strings.Contains(s, "return i;") {
		t.Errorf("expected rendered body to contain `return i;`, got %q", s)
	}
}
