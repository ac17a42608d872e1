package ch

import (
	"context"
	"strings"
	"testing"
)

// TestOpen_BadDSN rejects malformed DSNs before dialing
func TestOpen_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{URL: "://not-a-dsn"})
	if err == nil {
		t.Fatalf("Open expected error for malformed DSN, got nil")
	}
	if !strings.Contains(err.Error(), "parse dsn") {
		t.Fatalf("Open error = %q, want parse dsn failure", err)
	}
}

// TestInsert_BadShape rejects payloads that are not [][]any
func TestInsert_BadShape(t *testing.T) {
	t.Parallel()

	cl := &CH{}
	err := cl.Insert(context.Background(), "table", struct{}{})
	if err == nil {
		t.Fatalf("Insert expected error for bad shape, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported insert shape") {
		t.Fatalf("Insert error = %q, want unsupported shape failure", err)
	}
}

// TestInsert_EmptyBatch is a no op and never touches the connection
func TestInsert_EmptyBatch(t *testing.T) {
	t.Parallel()

	cl := &CH{}
	if err := cl.Insert(context.Background(), "table", [][]any{}); err != nil {
		t.Fatalf("Insert on empty batch returned error: %v", err)
	}
}

// TestClose_Zero is safe on a zero value client
func TestClose_Zero(t *testing.T) {
	t.Parallel()

	var cl *CH
	if err := cl.Close(); err != nil {
		t.Fatalf("Close on nil client returned error: %v", err)
	}
	if err := (&CH{}).Close(); err != nil {
		t.Fatalf("Close on zero client returned error: %v", err)
	}
}
