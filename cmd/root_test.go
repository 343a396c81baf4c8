package cmd

import (
	"strings"
	"testing"
)

func TestBackendFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("backend")
	if flag == nil {
		t.Fatal("--backend flag not found")
	}
	if flag.DefValue != "" {
		t.Errorf("--backend default = %q, want empty", flag.DefValue)
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestVersionTemplate(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() { version, commit, date = origVersion, origCommit, origDate }()

	SetVersionInfo("1.2.3", "none", "unknown")
	if got := versionTemplate(); got != "anonchat 1.2.3\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	got := versionTemplate()
	if !strings.Contains(got, "commit: abc123") || !strings.Contains(got, "built:  2026-01-01") {
		t.Errorf("versionTemplate() with commit = %q", got)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"check", "serve"} {
		if !names[want] {
			t.Errorf("subcommand %q not registered", want)
		}
	}
}
