package httpapi

import (
	"context"
	"testing"
	"time"
)

type ctxKey struct{}

func TestJoinContexts_CancelsOnBase(t *testing.T) {
	base, cancelBase := context.WithCancel(context.Background())
	req := context.WithValue(context.Background(), ctxKey{}, "v")
	ctx, cancel := joinContexts(base, req)
	defer cancel()

	if ctx.Value(ctxKey{}) != "v" {
		t.Fatalf("request values must be preserved")
	}
	cancelBase()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatalf("joined context not canceled by base")
	}
}

func TestJoinContexts_CancelsOnRequest(t *testing.T) {
	req, cancelReq := context.WithCancel(context.Background())
	ctx, cancel := joinContexts(context.Background(), req)
	defer cancel()
	cancelReq()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatalf("joined context not canceled by request")
	}
}

func TestSetBaseContextNil(t *testing.T) {
	defer SetBaseContext(nil)
	SetBaseContext(nil)
	if serverBaseCtx != context.Background() {
		t.Fatalf("nil base should reset to Background")
	}
}
