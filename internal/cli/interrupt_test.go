package cli

import (
	"bytes"
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterruptHandler_CancelsContextOnSignal(t *testing.T) {
	var buf bytes.Buffer
	h := NewInterruptHandler(&buf)

	ctx := h.HandleInterrupts(context.Background(), true)
	assert.False(t, h.WasInterrupted())

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context was not canceled after signal")
	}

	assert.True(t, h.WasInterrupted())
	assert.Contains(t, buf.String(), "Scan interrupted")
	assert.Contains(t, buf.String(), "smsledger scan")
}

func TestInterruptHandler_NoSignalLeavesContextOpen(t *testing.T) {
	h := NewInterruptHandler(nil)
	ctx := h.HandleInterrupts(context.Background(), false)

	select {
	case <-ctx.Done():
		t.Fatal("context canceled without a signal")
	default:
	}
	assert.False(t, h.WasInterrupted())
}
