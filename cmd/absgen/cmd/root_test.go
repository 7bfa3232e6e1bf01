package cmd

import "testing"

func TestRootCommandUse(t *testing.T) {
	// exitWithError calls os.Exit, so it can't be invoked directly from a
	// test; this only checks the root command's name.
	if rootCmd.Use != "absgen" {
		t.Fatalf("rootCmd.Use = %q, want %q", rootCmd.Use, "absgen")
	}
}

func TestGenerateCommandRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Use == "generate" {
			return
		}
	}
	t.Fatal("generate command not registered on rootCmd")
}

func TestVersionCommandRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Use == "version" {
			return
		}
	}
	t.Fatal("version command not registered on rootCmd")
}
