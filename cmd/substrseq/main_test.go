package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/richinex/substrseq/config"
)

// runCmd executes the root command with args and stdin, returning stdout.
func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{config.EnvBlockMode, config.EnvMaxWordLen, config.EnvDBPath, config.EnvOutput, config.EnvLogLevel} {
		t.Setenv(key, "")
	}

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestQueryCommand(t *testing.T) {
	out, err := runCmd(t, "", "query", "dbac", "3")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if out != "c\n" {
		t.Errorf("expected %q, got %q", "c\n", out)
	}
}

func TestQueryCommandOutOfRange(t *testing.T) {
	if _, err := runCmd(t, "", "query", "dbac", "21"); err == nil {
		t.Error("expected error for k past the end")
	}
	if _, err := runCmd(t, "", "query", "dbac", "x"); err == nil {
		t.Error("expected error for non-numeric k")
	}
}

func TestSolveCommand(t *testing.T) {
	out, err := runCmd(t, "2\ndbac\n4\naaa\n5\n", "solve")
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if out != "b\na\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSolveCommandPartialFailure(t *testing.T) {
	out, err := runCmd(t, "3\ndbac\n1\ndbac\n0\nzz\n3\n", "solve")
	if err == nil || !strings.Contains(err.Error(), "1 of 3 queries failed") {
		t.Fatalf("expected partial failure error, got %v", err)
	}
	if out != "a\nerror: out_of_range\nz\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSolveCommandJSONWithCache(t *testing.T) {
	db := filepath.Join(t.TempDir(), "answers.db")
	input := "1\nbanana\n7\n"

	if _, err := runCmd(t, input, "solve", "--db", db, "--format", "json"); err != nil {
		t.Fatalf("first solve failed: %v", err)
	}
	out, err := runCmd(t, input, "solve", "--db", db, "--format", "json")
	if err != nil {
		t.Fatalf("second solve failed: %v", err)
	}
	if !strings.Contains(out, `"cached":true`) {
		t.Errorf("expected cached answer, got %q", out)
	}

	hist, err := runCmd(t, "", "history", "--db", db)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if strings.Count(hist, "total=1") != 2 {
		t.Errorf("expected two runs in history, got:\n%s", hist)
	}
}

func TestHistoryRequiresDB(t *testing.T) {
	if _, err := runCmd(t, "", "history"); err == nil {
		t.Error("expected error without a database")
	}
}

func TestVerifyCommand(t *testing.T) {
	out, err := runCmd(t, "", "verify", "aab")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !strings.Contains(out, "agrees with brute force") {
		t.Errorf("unexpected output %q", out)
	}

	out, err = runCmd(t, "", "verify", "--mode", "closed-form", "aab")
	if err == nil {
		t.Error("expected closed-form mode to diverge for aab")
	}
	if !strings.Contains(out, "k=9") {
		t.Errorf("expected divergence at k=9, got %q", out)
	}
}
