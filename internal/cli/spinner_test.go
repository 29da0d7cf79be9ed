package cli

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestSpinnerNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Testing...").start()
	time.Sleep(100 * time.Millisecond)
	s.stop()

	if buf.Len() != 0 {
		t.Errorf("spinner wrote %q to a non-terminal", buf.String())
	}
	if s.cancelled() {
		t.Error("stop() should not count as cancellation")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinner(ctx, &bytes.Buffer{}, "Testing with context...").start()
	cancel()

	if !s.cancelled() {
		t.Error("spinner should be cancelled after context cancellation")
	}
	s.stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), &bytes.Buffer{}, "Testing idempotent stop...").start()

	// Stop multiple times should not panic
	s.stop()
	s.stop()
	s.stop()
}

func TestNewSpinnerNilContext(t *testing.T) {
	s := newSpinner(nil, &bytes.Buffer{}, "Test").start()
	s.stop()
}
