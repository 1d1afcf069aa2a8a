package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestTruncate(t *testing.T) {
	if got := truncate("Checking", 20); got != "Checking" {
		t.Fatalf("short name should pass through, got %q", got)
	}

	if got := truncate("My very long account name", 10); got != "My very..." {
		t.Fatalf("expected ellipsis truncation, got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureStdout(t, func() {
		printJSON(map[string]string{"status": "ready"})
	})

	if !strings.Contains(out, `"status": "ready"`) {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestHashPasswordCmd(t *testing.T) {
	orig := bcryptGenerate
	bcryptGenerate = func(p []byte, cost int) ([]byte, error) {
		if string(p) != "Str0ng#Passw0rd" {
			t.Errorf("password = %q", p)
		}
		return []byte("$2a$10$fakedhash"), nil
	}
	defer func() { bcryptGenerate = orig }()

	cmd := hashPasswordCmd()
	cmd.SetArgs([]string{"Str0ng#Passw0rd"})

	out := captureStdout(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if strings.TrimSpace(out) != "$2a$10$fakedhash" {
		t.Fatalf("expected the hash on stdout, got %q", out)
	}
}

func TestHealthCmdAgainstReadyServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ready" {
			t.Errorf("path = %s, want /ready", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ready","postgres":"ok","redis":"ok"}`))
	}))
	defer server.Close()

	origURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = origURL }()

	out := captureStdout(t, func() {
		if err := healthCmd().Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if !strings.Contains(out, `"status": "ready"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestAccountsCmdRendersTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"bankAccounts": [
				{"id": "bankaccount0000000001", "name": "Checking", "initialAmount": "2000", "totalAmount": "1548"}
			],
			"total": 1
		}`))
	}))
	defer server.Close()

	origURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = origURL }()

	cmd := accountsCmd()
	cmd.SetArgs([]string{"--token", "test-token"})

	out := captureStdout(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if !strings.Contains(out, "Checking") || !strings.Contains(out, "1548") {
		t.Fatalf("table missing account data:\n%s", out)
	}
	if !strings.Contains(out, "total: 1") {
		t.Fatalf("missing total line:\n%s", out)
	}
}
