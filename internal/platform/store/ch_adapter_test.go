package store

import (
	"context"
	"strings"
	"testing"

	"hearth/internal/platform/store/ch"
)

// TestCHAdapter_InsertShapeGuard rejects payloads that are not [][]any
// before touching the underlying client
func TestCHAdapter_InsertShapeGuard(t *testing.T) {
	t.Parallel()

	a := newCHAdapter(&ch.CH{})

	err := a.Insert(context.Background(), "some_table", struct{}{})
	if err == nil {
		t.Fatalf("Insert expected error for bad shape, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported CH insert shape") {
		t.Fatalf("Insert error = %q, want shape guard message", err)
	}
}

// TestCHAdapter_InsertEmptyBatch is a no op even on an unconnected client
func TestCHAdapter_InsertEmptyBatch(t *testing.T) {
	t.Parallel()

	a := newCHAdapter(&ch.CH{})
	if err := a.Insert(context.Background(), "some_table", [][]any{}); err != nil {
		t.Fatalf("Insert on empty batch returned error: %v", err)
	}
}
