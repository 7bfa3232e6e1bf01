package scope

import (
	"testing"

	"github.com/derdrodt/absgen/ast"
	"github.com/derdrodt/absgen/rnd"
)

func TestNewStartsWithRootFrame(t *testing.T) {
	s := New()
	if s.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", s.Depth())
	}
}

func TestOpenCloseBalance(t *testing.T) {
	s := New()
	s.Open()
	s.Open()
	if s.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", s.Depth())
	}
	s.Close()
	s.Close()
	if s.Depth() != 0 {
		t.Fatalf("Depth() = %d, want 0", s.Depth())
	}
}

func TestCloseRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Close on root frame to panic")
		}
	}()
	s := New()
	s.Close()
}

func TestDefineVarScopedToFrame(t *testing.T) {
	s := New()
	s.DefineVar(ast.IntType, ast.NewIdent("x"))
	s.Open()
	s.DefineVar(ast.BoolType, ast.NewIdent("y"))

	entries := s.Iter()
	if len(entries) != 2 {
		t.Fatalf("len(Iter()) = %d, want 2", len(entries))
	}
	if entries[0].Ident.Name != "y" {
		t.Errorf("innermost entry should be listed first, got %q", entries[0].Ident.Name)
	}

	s.Close()
	entries = s.Iter()
	if len(entries) != 1 || entries[0].Ident.Name != "x" {
		t.Errorf("expected only x to survive Close, got %v", entries)
	}
}

func TestOfTypeMatchesByIdentOnly(t *testing.T) {
	s := New()
	s.DefineField(ast.NewType("I"), ast.NewIdent("fi"))
	s.DefineField(ast.NewType("J"), ast.NewIdent("fj"))

	got := s.OfType(ast.NewType("I"))
	if len(got) != 1 || got[0].Ident.Name != "fi" {
		t.Errorf("OfType(I) = %v, want [fi]", got)
	}
}

func TestOfTypeFutMatchesPayload(t *testing.T) {
	s := New()
	s.DefineField(ast.FutType(ast.IntType), ast.NewIdent("ff"))
	s.DefineField(ast.FutType(ast.BoolType), ast.NewIdent("ffb"))

	got := s.OfType(ast.FutType(ast.IntType))
	if len(got) != 1 || got[0].Ident.Name != "ff" {
		t.Errorf("OfType(Fut<Int>) = %v, want [ff]", got)
	}
}

func TestOfTypeExcludesCallables(t *testing.T) {
	s := New()
	s.DefineCallable(ast.IntType, ast.NewIdent("n"), []ast.Type{ast.NewType("I")}, nil)

	if s.HasOfType(ast.IntType) {
		t.Error("OfType must never return Callable entries")
	}
	if len(s.CallablesOfType(ast.IntType)) != 1 {
		t.Error("CallablesOfType should find the callable n")
	}
}

func TestFreshVarIdentIsSixLettersAndUnique(t *testing.T) {
	s := New()
	r := rnd.NewSource(1)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := s.FreshVarIdent(r)
		if len(id.Name) != 6 {
			t.Fatalf("FreshVarIdent produced %q, want length 6", id.Name)
		}
		if id.Name[0] < 'a' || id.Name[0] > 'z' {
			t.Fatalf("FreshVarIdent first char %q not lowercase", id.Name)
		}
		if seen[id.Name] {
			t.Fatalf("FreshVarIdent repeated name %q", id.Name)
		}
		seen[id.Name] = true
		s.DefineVar(ast.IntType, id)
	}
}

func TestAssignableEntryPanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected AssignableEntry on empty scope to panic")
		}
	}()
	s := New()
	s.AssignableEntry(rnd.NewSource(1))
}
