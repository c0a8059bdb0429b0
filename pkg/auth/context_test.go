package auth

import (
	"context"
	"errors"
	"testing"
)

func TestWithAdmin_IsAdmin(t *testing.T) {
	ctx := WithAdmin(context.Background())
	if !IsAdmin(ctx) {
		t.Fatal("expected admin context")
	}
	if err := RequireAdmin(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireAdmin_EmptyContext(t *testing.T) {
	if IsAdmin(context.Background()) {
		t.Fatal("empty context must not be admin")
	}
	if err := RequireAdmin(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestIsAdmin_WrongValueType(t *testing.T) {
	ctx := context.WithValue(context.Background(), adminKey, "yes")
	if IsAdmin(ctx) {
		t.Fatal("non-bool value must not grant admin")
	}
}

func TestErrUnauthorized_Message(t *testing.T) {
	if got := ErrUnauthorized.Error(); got != "Unauthorized: Admin access required" {
		t.Fatalf("unexpected message %q", got)
	}
}
