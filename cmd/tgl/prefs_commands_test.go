package main

import (
	"testing"

	"tglauncher/internal/testsupport"
)

func TestPrefsListAndSet(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "prefs", "list")
	if err != nil {
		t.Fatalf("prefs list: %v", err)
	}
	requireContains(t, out, "update_time")
	requireContains(t, out, "merge_event_modifiers")

	if _, _, err := runCLI(t, env, "prefs", "set", "skipintro", "1"); err != nil {
		t.Fatalf("prefs set: %v", err)
	}

	out, _, err = runCLI(t, env, "prefs", "list")
	if err != nil {
		t.Fatalf("prefs list after set: %v", err)
	}
	requireContains(t, out, "skipintro")
}

func TestStatusCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Game binary")
}

func TestStatusFailsWithoutBinary(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutGameBinary())

	_, _, err := runCLI(t, env, "status")
	if err == nil {
		t.Fatal("expected status to fail without the game binary")
	}
}
