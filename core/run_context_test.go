package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunContext_RecordIntermediary(t *testing.T) {
	store := NewStore("run-1")
	rc := NewRunContext(context.Background(), "run-1", "agent-1", store, nil)

	rc.RecordIntermediary("trace")

	assert.Equal(t, []any{"trace"}, store.Intermediary("agent-1"))
}

func TestRunContext_Output(t *testing.T) {
	store := NewStore("run-1")
	store.RecordOutput("parent", "result")

	rc := NewRunContext(context.Background(), "run-1", "child", store, nil)

	out, ok := rc.Output("parent")
	assert.True(t, ok)
	assert.Equal(t, "result", out)

	_, ok = rc.Output("missing")
	assert.False(t, ok)
}

func TestRunContext_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rc := NewRunContext(ctx, "run-1", "agent-1", NewStore("run-1"), nil)

	assert.NoError(t, rc.Err())

	cancel()

	assert.Error(t, rc.Err())
	select {
	case <-rc.Done():
	default:
		t.Fatal("Done channel should be closed after cancel")
	}
}

func TestRunContext_NilLogger(t *testing.T) {
	rc := NewRunContext(context.Background(), "run-1", "agent-1", NewStore("run-1"), nil)

	assert.NotNil(t, rc.Logger())
	// Must not panic.
	rc.LogDebug("debug")
	rc.LogInfo("info")
	rc.LogWarn("warn")
	rc.LogError("error")
}
