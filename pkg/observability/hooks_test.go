package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopEncodeHooks{}
	e.OnEncodeStart(ctx, "figure", "png")
	e.OnEncodeComplete(ctx, "figure", "png", 1024, time.Second, nil)
	e.OnEncodeComplete(ctx, "animation", "gif", 0, time.Second, errors.New("boom"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Encode().(NoopEncodeHooks); !ok {
		t.Error("Encode() should return NoopEncodeHooks by default")
	}

	custom := &testEncodeHooks{}
	SetEncodeHooks(custom)
	if Encode() != custom {
		t.Error("SetEncodeHooks should set custom hooks")
	}

	Encode().OnEncodeStart(context.Background(), "figure", "svg")
	if custom.starts != 1 {
		t.Errorf("starts = %d, want 1", custom.starts)
	}

	Reset()
	if _, ok := Encode().(NoopEncodeHooks); !ok {
		t.Error("Reset() should restore NoopEncodeHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testEncodeHooks{}
	SetEncodeHooks(custom)

	SetEncodeHooks(nil)

	if Encode() != custom {
		t.Error("SetEncodeHooks(nil) should be ignored")
	}

	Reset()
}

type testEncodeHooks struct {
	NoopEncodeHooks
	starts int
}

func (h *testEncodeHooks) OnEncodeStart(context.Context, string, string) { h.starts++ }
