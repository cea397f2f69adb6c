package main

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTotalsCommand(t *testing.T) {
	in := `{"name":"Website","sections":[{"title":"Build","items":[
		{"title":"Pages","quantity":10,"price":50,"margin":10},
		{"title":"Forms","quantity":5,"price":20,"margin":0}
	]}]}`

	out, err := run(t, in, "totals")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Website", "$550.00", "$100.00", "Subtotal Build", "$600.00", "$50.00", "$650.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestTotalsCommand_InvalidJSON(t *testing.T) {
	if _, err := run(t, "{", "totals"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestTotalsCommand_MissingFile(t *testing.T) {
	if _, err := run(t, "", "totals", "--file", "does-not-exist.json"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestHashPasswordCommand(t *testing.T) {
	out, err := run(t, "", "hash-password", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash := strings.TrimSpace(out)
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("password123")); err != nil {
		t.Fatalf("hash does not match: %v", err)
	}

	out, err = run(t, "from-stdin\n", "hash-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out)), []byte("from-stdin")); err != nil {
		t.Fatalf("stdin hash does not match: %v", err)
	}

	if _, err := run(t, "", "hash-password"); err == nil {
		t.Fatalf("expected error for empty password")
	}
}
