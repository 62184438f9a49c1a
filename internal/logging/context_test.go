package logging

import (
	"context"
	"testing"
)

func TestFromContextFallsBack(t *testing.T) {
	fallback := NewLogger(Config{})
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback logger when none stored")
	}

	scoped := NewLogger(Config{Level: "debug"})
	ctx := WithLogger(context.Background(), scoped)
	if got := FromContext(ctx, fallback); got != scoped {
		t.Fatalf("expected stored logger to win")
	}
}

func TestFromContextNilContext(t *testing.T) {
	fallback := NewLogger(Config{})
	var ctx context.Context
	if got := FromContext(ctx, fallback); got != fallback {
		t.Fatalf("expected fallback for nil context")
	}
}
