package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	core "github.com/void-protocol/void-sdk-go/internal/core"
	"github.com/void-protocol/void-sdk-go/pkg/void"
)

const testProgramID = "9oqbvYkKhFA2EFrJKGujRqzHnCRGuGnzTD6dyXuxo6oo"

// runCLI executes the root command in-process against an isolated config dir
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	root.SetContext(context.Background())
	err := root.Execute()
	return out.String(), err
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"VOID_PROGRAM_ID", "VOID_CLUSTER", "VOID_RPC_URL"} {
		t.Setenv(k, "")
	}
	prev := log.Logger
	log.Logger = zerolog.Nop()
	t.Cleanup(func() { log.Logger = prev })
}

// TestVersion tests the version command output
func TestVersion(t *testing.T) {
	isolate(t)
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "void "+void.Version) {
		t.Fatalf("unexpected output: %q", out)
	}
}

// TestInitAccountNotImplemented tests that the command surfaces the SDK error
func TestInitAccountNotImplemented(t *testing.T) {
	isolate(t)
	for _, cluster := range []string{"devnet", "mainnet-beta", "localnet", "unknown"} {
		_, err := runCLI(t, "init-account", "--program-id", testProgramID, "--cluster", cluster)
		if !errors.Is(err, void.ErrNotImplemented) {
			t.Fatalf("cluster %s: expected ErrNotImplemented, got %v", cluster, err)
		}
	}
}

// TestConfigValidate tests the advisory validation command
func TestConfigValidate(t *testing.T) {
	isolate(t)
	out, err := runCLI(t, "config", "validate", "--program-id", testProgramID, "--cluster", "devnet")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "config ok") {
		t.Fatalf("unexpected output: %q", out)
	}

	_, err = runCLI(t, "config", "validate", "--program-id", testProgramID, "--cluster", "testnet")
	var verr core.ValidationError
	if !errors.As(err, &verr) || verr.Field != "cluster" {
		t.Fatalf("expected cluster ValidationError, got %v", err)
	}
}

// TestConfigShow tests that flags are reflected in the rendered config
func TestConfigShow(t *testing.T) {
	isolate(t)
	out, err := runCLI(t, "config", "show", "--cluster", "localnet", "--rpc-url", "http://127.0.0.1:8899")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "cluster: localnet") || !strings.Contains(out, "rpc_url: http://127.0.0.1:8899") {
		t.Fatalf("unexpected output: %q", out)
	}
}

// TestProfiles tests profile add, ls, use and rm
func TestProfiles(t *testing.T) {
	isolate(t)
	if _, err := runCLI(t, "profile", "add", "local", "--program-id", testProgramID, "--cluster", "localnet"); err != nil {
		t.Fatalf("profile add: %v", err)
	}

	out, err := runCLI(t, "profile", "ls")
	if err != nil {
		t.Fatalf("profile ls: %v", err)
	}
	if !strings.Contains(out, "local") || !strings.Contains(out, testProgramID) {
		t.Fatalf("unexpected ls output: %q", out)
	}

	out, err = runCLI(t, "config", "show", "--profile", "local")
	if err != nil {
		t.Fatalf("config show with profile: %v", err)
	}
	if !strings.Contains(out, "program_id: "+testProgramID) {
		t.Fatalf("profile not applied: %q", out)
	}

	if _, err := runCLI(t, "profile", "rm", "local"); err != nil {
		t.Fatalf("profile rm: %v", err)
	}
	if _, err := runCLI(t, "init-account", "--profile", "local"); !errors.Is(err, core.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
