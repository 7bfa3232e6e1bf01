package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClearOut(t *testing.T) {
	t.Run("absent directory is created", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "out")

		if err := clearOut(dir); err != nil {
			t.Fatalf("clearOut() error = %v", err)
		}

		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected %s to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %s to be a directory", dir)
		}
	})

	t.Run("existing files are removed, subdirectories are kept", func(t *testing.T) {
		dir := t.TempDir()

		for _, name := range []string{"generated-0.abs", "generated-1.abs"} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("module M;"), 0644); err != nil {
				t.Fatalf("failed to seed %s: %v", name, err)
			}
		}
		subdir := filepath.Join(dir, "keepme")
		if err := os.Mkdir(subdir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", subdir, err)
		}

		if err := clearOut(dir); err != nil {
			t.Fatalf("clearOut() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read %s: %v", dir, err)
		}
		if len(entries) != 1 || entries[0].Name() != "keepme" {
			t.Fatalf("expected only %q to remain, got %v", "keepme", entries)
		}
	})
}

func TestRunGenerateFlagValidation(t *testing.T) {
	oldTarget, oldNumModules, oldNumClasses, oldOutDir := genTarget, genNumModules, genNumClasses, genOutDir
	defer func() {
		genTarget, genNumModules, genNumClasses, genOutDir = oldTarget, oldNumModules, oldNumClasses, oldOutDir
	}()

	t.Run("invalid target is rejected", func(t *testing.T) {
		genTarget = "not-a-real-target"
		genNumModules = 1
		genNumClasses = 1
		genOutDir = t.TempDir()

		err := runGenerate(generateCmd, nil)
		if err == nil {
			t.Fatal("expected an error for an invalid --target, got nil")
		}
	})

	t.Run("zero num-modules is rejected", func(t *testing.T) {
		genTarget = "nullable-extension"
		genNumModules = 0
		genNumClasses = 1
		genOutDir = t.TempDir()

		err := runGenerate(generateCmd, nil)
		if err == nil {
			t.Fatal("expected an error for --num-modules 0, got nil")
		}
	})

	t.Run("valid flags generate the requested number of modules", func(t *testing.T) {
		genTarget = "nullable-extension"
		genNumModules = 3
		genNumClasses = 6
		genOutDir = t.TempDir()

		if err := runGenerate(generateCmd, nil); err != nil {
			t.Fatalf("runGenerate() error = %v", err)
		}

		entries, err := os.ReadDir(genOutDir)
		if err != nil {
			t.Fatalf("failed to read %s: %v", genOutDir, err)
		}
		if len(entries) != int(genNumModules) {
			t.Fatalf("expected %d generated files, got %d", genNumModules, len(entries))
		}
	})
}
